package curriculum

import (
	"context"
	"fmt"
	"slices"

	"github.com/reflowhq/reflow/internal/logger"
	"github.com/reflowhq/reflow/internal/store"
)

// Status values for a curriculum.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// Sync consumes concept-completion notifications and keeps curriculum
// progress current: the completed set, the cursor, and the terminal status.
type Sync struct {
	repo store.CurriculumRepo
	log  *logger.Logger
}

// NewSync creates a curriculum progress sync.
func NewSync(repo store.CurriculumRepo, log *logger.Logger) *Sync {
	return &Sync{repo: repo, log: log}
}

// OnConceptComplete records conceptID as completed within the curriculum.
// Repeat notifications for the same concept are idempotent. The cursor
// advances past the leading run of completed concepts, and once every
// concept is completed the curriculum status flips to completed.
func (s *Sync) OnConceptComplete(ctx context.Context, curriculumID, conceptID string) error {
	c, err := s.repo.Get(ctx, curriculumID)
	if err != nil {
		return fmt.Errorf("load curriculum %s: %w", curriculumID, err)
	}

	completed := c.CompletedIDs
	if !slices.Contains(completed, conceptID) {
		completed = append(completed, conceptID)
	}

	done := make(map[string]bool, len(completed))
	for _, id := range completed {
		done[id] = true
	}

	cursor := len(c.ConceptIDs)
	for i, id := range c.ConceptIDs {
		if !done[id] {
			cursor = i
			break
		}
	}

	status := StatusActive
	if allCompleted(c.ConceptIDs, done) {
		status = StatusCompleted
	}

	if err := s.repo.SaveProgress(ctx, curriculumID, completed, cursor, status); err != nil {
		return fmt.Errorf("save curriculum progress: %w", err)
	}

	s.log.Info("curriculum concept completed",
		"curriculum_id", curriculumID,
		"concept_id", conceptID,
		"cursor", cursor,
		"status", status,
	)
	return nil
}

func allCompleted(conceptIDs []string, done map[string]bool) bool {
	for _, id := range conceptIDs {
		if !done[id] {
			return false
		}
	}
	return len(conceptIDs) > 0
}
