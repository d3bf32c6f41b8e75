package mastery

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/reflowhq/reflow/internal/store"
)

// Service folds graded outcomes into per-concept mastery history.
type Service struct {
	nodes store.NodeRepo
}

// NewService creates a mastery service over the given node repository.
func NewService(nodes store.NodeRepo) *Service {
	return &Service{nodes: nodes}
}

// Record appends a history entry to the node, recomputes the current
// mastery label over the full history, and persists both. The persisted
// update also invalidates any synthesis cached against the old label.
// Returns the recomputed label.
func (s *Service) Record(ctx context.Context, nodeID string, entry Entry) (State, error) {
	node, err := s.nodes.Get(ctx, nodeID)
	if err != nil {
		return "", fmt.Errorf("load node %s: %w", nodeID, err)
	}

	history, err := ParseHistory(node.MasteryHistory)
	if err != nil {
		return "", fmt.Errorf("parse mastery history for node %s: %w", nodeID, err)
	}

	history = append(history, entry)
	state := Aggregate(history)

	raw, err := json.Marshal(history)
	if err != nil {
		return "", fmt.Errorf("marshal mastery history: %w", err)
	}

	if err := s.nodes.UpdateMastery(ctx, nodeID, raw, string(state)); err != nil {
		return "", fmt.Errorf("persist mastery for node %s: %w", nodeID, err)
	}

	return state, nil
}

// History returns the node's full chronological history.
func (s *Service) History(ctx context.Context, nodeID string) ([]Entry, error) {
	node, err := s.nodes.Get(ctx, nodeID)
	if err != nil {
		return nil, fmt.Errorf("load node %s: %w", nodeID, err)
	}
	return ParseHistory(node.MasteryHistory)
}

// ParseHistory decodes a stored history blob. A nil blob is an empty
// history, not an error.
func ParseHistory(raw json.RawMessage) ([]Entry, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var history []Entry
	if err := json.Unmarshal(raw, &history); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	return history, nil
}
