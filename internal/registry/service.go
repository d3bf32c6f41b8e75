package registry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/reflowhq/reflow/internal/logger"
	"github.com/reflowhq/reflow/internal/mastery"
	"github.com/reflowhq/reflow/internal/store"
)

// Service is the concept registry: it deduplicates incoming concept names
// into canonical per-learner knowledge nodes and maintains the derived
// topic clustering.
type Service struct {
	nodes   store.NodeRepo
	topics  store.TopicRepo
	matcher Matcher
	llm     clusterer
	log     *logger.Logger
}

// NewService creates the registry service. A nil matcher falls back to
// substring matching.
func NewService(nodes store.NodeRepo, topics store.TopicRepo, matcher Matcher, provider clusterer, log *logger.Logger) *Service {
	if matcher == nil {
		matcher = SubstringMatcher{}
	}
	return &Service{
		nodes:   nodes,
		topics:  topics,
		matcher: matcher,
		llm:     provider,
		log:     log,
	}
}

// ResolveResult reports how an incoming concept was registered.
type ResolveResult struct {
	Node *store.NodeData

	// Merged is true when the concept matched an existing node instead of
	// creating a new one.
	Merged bool
}

// Resolve maps an incoming concept name to a knowledge node, creating one
// if nothing matches. Resolution tries an exact canonical-name hit first,
// then the fuzzy matcher over the learner's existing nodes.
//
// Resolving the same (learner, name, session) twice is idempotent: the
// session ID is recorded once and the session count does not double.
func (s *Service) Resolve(ctx context.Context, learnerID, name, definition, sessionID string) (*ResolveResult, error) {
	canonical := Canonicalize(name)
	if canonical == "" {
		return nil, errors.New("concept name is empty")
	}

	node, err := s.nodes.GetByCanonical(ctx, learnerID, canonical)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	if node == nil {
		node, err = s.fuzzyLookup(ctx, learnerID, canonical)
		if err != nil {
			return nil, err
		}
	}

	if node != nil {
		merged, err := s.merge(ctx, node, name, sessionID)
		if err != nil {
			return nil, err
		}
		return &ResolveResult{Node: merged, Merged: true}, nil
	}

	now := time.Now().UTC()
	created := store.NodeData{
		ID:             uuid.NewString(),
		LearnerID:      learnerID,
		CanonicalName:  canonical,
		DisplayName:    name,
		Definition:     definition,
		CurrentMastery: string(mastery.StateRevisit),
		SessionIDs:     []string{sessionID},
		SessionCount:   1,
		FirstSeen:      now,
		LastSeen:       now,
	}
	if err := s.nodes.Create(ctx, created); err != nil {
		// A concurrent resolver may have created the same canonical name;
		// re-read and merge into the winner.
		if errors.Is(err, store.ErrConflict) {
			return s.Resolve(ctx, learnerID, name, definition, sessionID)
		}
		return nil, fmt.Errorf("create node %q: %w", canonical, err)
	}

	s.log.Info("registered new concept",
		"learner_id", learnerID,
		"node_id", created.ID,
		"canonical_name", canonical,
	)
	return &ResolveResult{Node: &created}, nil
}

func (s *Service) fuzzyLookup(ctx context.Context, learnerID, canonical string) (*store.NodeData, error) {
	nodes, err := s.nodes.ListByLearner(ctx, learnerID)
	if err != nil {
		return nil, err
	}

	candidates := make([]string, len(nodes))
	byCanonical := make(map[string]*store.NodeData, len(nodes))
	for i := range nodes {
		candidates[i] = nodes[i].CanonicalName
		byCanonical[nodes[i].CanonicalName] = &nodes[i]
	}

	match, ok := s.matcher.Match(canonical, candidates)
	if !ok {
		return nil, nil
	}
	return byCanonical[match], nil
}

// merge folds a repeat encounter into an existing node. The most recently
// supplied variant becomes the display name, the definition already on the
// node is kept, and the session is counted at most once.
func (s *Service) merge(ctx context.Context, node *store.NodeData, name, sessionID string) (*store.NodeData, error) {
	sessions := node.SessionIDs
	count := node.SessionCount
	if !contains(sessions, sessionID) {
		sessions = append(sessions, sessionID)
		count++
	}

	display := node.DisplayName
	if name != "" {
		display = name
	}

	now := time.Now().UTC()
	if err := s.nodes.Merge(ctx, node.ID, display, sessions, count, now); err != nil {
		return nil, fmt.Errorf("merge into node %s: %w", node.ID, err)
	}

	merged := *node
	merged.DisplayName = display
	merged.SessionIDs = sessions
	merged.SessionCount = count
	merged.LastSeen = now
	return &merged, nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
