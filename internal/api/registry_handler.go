package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/reflowhq/reflow/internal/logger"
	"github.com/reflowhq/reflow/internal/mastery"
	"github.com/reflowhq/reflow/internal/registry"
	"github.com/reflowhq/reflow/internal/store"
)

// RegistryHandler serves the knowledge-graph surface: concept resolution,
// out-of-session mastery recording, topic clustering, and graph reads.
type RegistryHandler struct {
	log      *logger.Logger
	registry *registry.Service
	mastery  *mastery.Service
	nodes    store.NodeRepo
	topics   store.TopicRepo
}

// NewRegistryHandler creates the knowledge-graph handler.
func NewRegistryHandler(log *logger.Logger, reg *registry.Service, masterySvc *mastery.Service, nodes store.NodeRepo, topics store.TopicRepo) *RegistryHandler {
	return &RegistryHandler{
		log:      log.With("handler", "RegistryHandler"),
		registry: reg,
		mastery:  masterySvc,
		nodes:    nodes,
		topics:   topics,
	}
}

// Resolve handles POST /api/learners/:learnerID/concepts/resolve.
func (rh *RegistryHandler) Resolve(c *gin.Context) {
	var req struct {
		Name       string `json:"name"`
		Definition string `json:"definition"`
		SessionID  string `json:"sessionId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	result, err := rh.registry.Resolve(c.Request.Context(), c.Param("learnerID"), req.Name, req.Definition, req.SessionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"node":   nodeView(*result.Node),
		"merged": result.Merged,
	})
}

// RecordMastery handles POST /api/learners/:learnerID/concepts/:nodeID/mastery.
// It records an out-of-session mastery observation (quiz, flashcards,
// tutor chat) against the node.
func (rh *RegistryHandler) RecordMastery(c *gin.Context) {
	var req struct {
		State      string `json:"state"`
		SourceType string `json:"sourceType"`
		SourceID   string `json:"sourceId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	state := mastery.State(req.State)
	if !state.Valid() {
		RespondError(c, http.StatusBadRequest, "invalid_request", fmt.Errorf("unknown mastery state %q", req.State))
		return
	}

	current, err := rh.mastery.Record(c.Request.Context(), c.Param("nodeID"), mastery.Entry{
		Date:       time.Now().UTC(),
		State:      state,
		SourceType: req.SourceType,
		SourceID:   req.SourceID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	RespondOK(c, gin.H{"currentMastery": current})
}

// Cluster handles POST /api/learners/:learnerID/topics/cluster.
func (rh *RegistryHandler) Cluster(c *gin.Context) {
	learnerID := c.Param("learnerID")
	if err := rh.registry.ClusterIntoTopics(c.Request.Context(), learnerID); err != nil {
		respondServiceError(c, err)
		return
	}

	topics, err := rh.topics.ListByLearner(c.Request.Context(), learnerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"topics": topics})
}

// Graph handles GET /api/learners/:learnerID/graph.
func (rh *RegistryHandler) Graph(c *gin.Context) {
	learnerID := c.Param("learnerID")

	nodes, err := rh.nodes.ListByLearner(c.Request.Context(), learnerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	topics, err := rh.topics.ListByLearner(c.Request.Context(), learnerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	views := make([]gin.H, len(nodes))
	for i, n := range nodes {
		views[i] = nodeView(n)
	}
	RespondOK(c, gin.H{
		"nodes":  views,
		"topics": topics,
	})
}

// nodeView is the wire shape of a knowledge node; mastery history stays
// internal.
func nodeView(n store.NodeData) gin.H {
	return gin.H{
		"id":             n.ID,
		"canonicalName":  n.CanonicalName,
		"displayName":    n.DisplayName,
		"definition":     n.Definition,
		"currentMastery": n.CurrentMastery,
		"sessionCount":   n.SessionCount,
		"topicId":        n.TopicID,
		"topicName":      n.TopicName,
		"firstSeen":      n.FirstSeen,
		"lastSeen":       n.LastSeen,
	}
}
