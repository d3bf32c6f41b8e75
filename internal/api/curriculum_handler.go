package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/reflowhq/reflow/internal/curriculum"
	"github.com/reflowhq/reflow/internal/logger"
	"github.com/reflowhq/reflow/internal/store"
)

// CurriculumHandler serves curriculum creation and progress reads.
// Completion writes come from the flow service, not this surface.
type CurriculumHandler struct {
	log  *logger.Logger
	repo store.CurriculumRepo
}

// NewCurriculumHandler creates the curriculum handler.
func NewCurriculumHandler(log *logger.Logger, repo store.CurriculumRepo) *CurriculumHandler {
	return &CurriculumHandler{
		log:  log.With("handler", "CurriculumHandler"),
		repo: repo,
	}
}

// Create handles POST /api/learners/:learnerID/curricula.
func (ch *CurriculumHandler) Create(c *gin.Context) {
	var req struct {
		Title      string   `json:"title"`
		ConceptIDs []string `json:"conceptIds"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if len(req.ConceptIDs) == 0 {
		RespondError(c, http.StatusBadRequest, "invalid_request", errors.New("conceptIds must not be empty"))
		return
	}

	data := store.CurriculumData{
		ID:         uuid.NewString(),
		LearnerID:  c.Param("learnerID"),
		Title:      req.Title,
		ConceptIDs: req.ConceptIDs,
		Status:     curriculum.StatusActive,
	}
	if err := ch.repo.Create(c.Request.Context(), data); err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"curriculum": data})
}

// Get handles GET /api/curricula/:id.
func (ch *CurriculumHandler) Get(c *gin.Context) {
	data, err := ch.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"curriculum": data})
}
