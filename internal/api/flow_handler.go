package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reflowhq/reflow/internal/evaluate"
	"github.com/reflowhq/reflow/internal/flow"
	"github.com/reflowhq/reflow/internal/logger"
	"github.com/reflowhq/reflow/internal/planner"
)

var errEmptyResponse = errors.New("response must not be empty")

// FlowHandler serves the Flow Mode surface: plan initialization, step
// advancement, and response submission.
type FlowHandler struct {
	log      *logger.Logger
	planner  *planner.Service
	flow     *flow.Service
	evaluate *evaluate.Service
}

// NewFlowHandler creates the Flow Mode handler.
func NewFlowHandler(log *logger.Logger, plannerSvc *planner.Service, flowSvc *flow.Service, evaluateSvc *evaluate.Service) *FlowHandler {
	return &FlowHandler{
		log:      log.With("handler", "FlowHandler"),
		planner:  plannerSvc,
		flow:     flowSvc,
		evaluate: evaluateSvc,
	}
}

// InitPlan handles POST /api/sessions/:sessionID/concepts/:conceptID/plan.
func (fh *FlowHandler) InitPlan(c *gin.Context) {
	var req struct {
		LearnerID    string `json:"learnerId"`
		ConceptName  string `json:"conceptName"`
		Definition   string `json:"definition"`
		CurriculumID string `json:"curriculumId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	result, err := fh.planner.InitPlan(c.Request.Context(), planner.InitRequest{
		SessionID:    c.Param("sessionID"),
		ConceptID:    c.Param("conceptID"),
		LearnerID:    req.LearnerID,
		ConceptName:  req.ConceptName,
		Definition:   req.Definition,
		CurriculumID: req.CurriculumID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"plan":   result.Plan,
		"nodeId": result.NodeID,
		"reused": result.Reused,
	})
}

// Advance handles POST /api/sessions/:sessionID/concepts/:conceptID/advance.
func (fh *FlowHandler) Advance(c *gin.Context) {
	result, err := fh.flow.Advance(c.Request.Context(), c.Param("sessionID"), c.Param("conceptID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	payload := gin.H{
		"action":      result.Action,
		"stepHistory": stepViews(result.StepHistory),
	}
	if result.Step != nil {
		payload["step"] = stepView(*result.Step)
	}
	if result.Action == flow.ActionConceptComplete {
		payload["totalSparksSpent"] = result.TotalSparksSpent
	}
	RespondOK(c, payload)
}

// Respond handles POST /api/sessions/:sessionID/concepts/:conceptID/respond.
func (fh *FlowHandler) Respond(c *gin.Context) {
	var req struct {
		Response string `json:"response"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.Response == "" {
		RespondError(c, http.StatusBadRequest, "invalid_request", errEmptyResponse)
		return
	}

	result, err := fh.evaluate.Submit(c.Request.Context(), c.Param("sessionID"), c.Param("conceptID"), req.Response)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	payload := gin.H{"step": stepView(result.Step)}
	if result.Evaluation != nil {
		payload["evaluation"] = result.Evaluation
	}
	RespondOK(c, payload)
}

// stepView is the wire shape of one step.
type stepViewBody struct {
	ID           string           `json:"id"`
	StepNumber   int              `json:"stepNumber"`
	StepType     flow.StepType    `json:"stepType"`
	Content      flow.StepContent `json:"content"`
	UserResponse *string          `json:"userResponse,omitempty"`
	Evaluation   *flow.Evaluation `json:"evaluation,omitempty"`
}

func stepView(s flow.Step) stepViewBody {
	return stepViewBody{
		ID:           s.ID,
		StepNumber:   s.StepNumber,
		StepType:     s.Type,
		Content:      s.Content,
		UserResponse: s.UserResponse,
		Evaluation:   s.Evaluation,
	}
}

func stepViews(steps []flow.Step) []stepViewBody {
	views := make([]stepViewBody, len(steps))
	for i, s := range steps {
		views[i] = stepView(s)
	}
	return views
}
