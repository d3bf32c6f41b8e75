package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reflowhq/reflow/internal/flow"
	"github.com/reflowhq/reflow/internal/logger"
	"github.com/reflowhq/reflow/internal/mastery"
	"github.com/reflowhq/reflow/internal/registry"
	"github.com/reflowhq/reflow/internal/store"
)

type fakeNodeRepo struct {
	nodes map[string]*store.NodeData
}

func (f *fakeNodeRepo) ListByLearner(_ context.Context, learnerID string) ([]store.NodeData, error) {
	var out []store.NodeData
	for _, n := range f.nodes {
		if n.LearnerID == learnerID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (f *fakeNodeRepo) GetByCanonical(_ context.Context, learnerID, canonicalName string) (*store.NodeData, error) {
	for _, n := range f.nodes {
		if n.LearnerID == learnerID && n.CanonicalName == canonicalName {
			cp := *n
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeNodeRepo) Get(_ context.Context, nodeID string) (*store.NodeData, error) {
	n, ok := f.nodes[nodeID]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *n
	return &cp, nil
}

func (f *fakeNodeRepo) Create(_ context.Context, n store.NodeData) error {
	f.nodes[n.ID] = &n
	return nil
}

func (f *fakeNodeRepo) Merge(_ context.Context, nodeID, displayName string, sessionIDs []string, sessionCount int, lastSeen time.Time) error {
	n, ok := f.nodes[nodeID]
	if !ok {
		return store.ErrNotFound
	}
	n.DisplayName = displayName
	n.SessionIDs = sessionIDs
	n.SessionCount = sessionCount
	n.LastSeen = lastSeen
	return nil
}

func (f *fakeNodeRepo) UpdateMastery(_ context.Context, nodeID string, history json.RawMessage, currentMastery string) error {
	n, ok := f.nodes[nodeID]
	if !ok {
		return store.ErrNotFound
	}
	n.MasteryHistory = history
	n.CurrentMastery = currentMastery
	return nil
}

func (f *fakeNodeRepo) AssignTopic(_ context.Context, nodeIDs []string, topicID, topicName string) error {
	for _, id := range nodeIDs {
		if n, ok := f.nodes[id]; ok {
			n.TopicID = topicID
			n.TopicName = topicName
		}
	}
	return nil
}

type fakeTopicRepo struct {
	topics map[string]*store.TopicData
}

func (f *fakeTopicRepo) ListByLearner(_ context.Context, learnerID string) ([]store.TopicData, error) {
	var out []store.TopicData
	for _, t := range f.topics {
		if t.LearnerID == learnerID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTopicRepo) GetByName(_ context.Context, learnerID, name string) (*store.TopicData, error) {
	for _, t := range f.topics {
		if t.LearnerID == learnerID && t.Name == name {
			cp := *t
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeTopicRepo) Create(_ context.Context, t store.TopicData) error {
	f.topics[t.ID] = &t
	return nil
}

func (f *fakeTopicRepo) UpdateStats(_ context.Context, topicID string, conceptCount int, dominantMastery string) error {
	t, ok := f.topics[topicID]
	if !ok {
		return store.ErrNotFound
	}
	t.ConceptCount = conceptCount
	t.DominantMastery = dominantMastery
	return nil
}

type fakeCurriculumRepo struct {
	rows map[string]*store.CurriculumData
}

func (f *fakeCurriculumRepo) Get(_ context.Context, id string) (*store.CurriculumData, error) {
	c, ok := f.rows[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCurriculumRepo) Create(_ context.Context, c store.CurriculumData) error {
	f.rows[c.ID] = &c
	return nil
}

func (f *fakeCurriculumRepo) SaveProgress(_ context.Context, id string, completedIDs []string, cursor int, status string) error {
	c, ok := f.rows[id]
	if !ok {
		return store.ErrNotFound
	}
	c.CompletedIDs = completedIDs
	c.Cursor = cursor
	c.Status = status
	return nil
}

func testRouter(t *testing.T) (*gin.Engine, *fakeNodeRepo, *fakeTopicRepo, *fakeCurriculumRepo) {
	t.Helper()

	nodes := &fakeNodeRepo{nodes: map[string]*store.NodeData{}}
	topics := &fakeTopicRepo{topics: map[string]*store.TopicData{}}
	curricula := &fakeCurriculumRepo{rows: map[string]*store.CurriculumData{}}

	log := logger.NewNop()
	masterySvc := mastery.NewService(nodes)
	registrySvc := registry.NewService(nodes, topics, nil, nil, log)

	router := NewRouter(RouterConfig{
		RegistryHandler:   NewRegistryHandler(log, registrySvc, masterySvc, nodes, topics),
		CurriculumHandler: NewCurriculumHandler(log, curricula),
	})
	return router, nodes, topics, curricula
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	router, _, _, _ := testRouter(t)
	w := doJSON(t, router, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestResolveEndpoint(t *testing.T) {
	router, nodes, _, _ := testRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/learners/learner-1/concepts/resolve", gin.H{
		"name":       "Chain Rule",
		"definition": "nested derivatives",
		"sessionId":  "sess-1",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Node struct {
			ID             string `json:"id"`
			CanonicalName  string `json:"canonicalName"`
			CurrentMastery string `json:"currentMastery"`
		} `json:"node"`
		Merged bool `json:"merged"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Merged)
	assert.Equal(t, "chain rule", resp.Node.CanonicalName)
	assert.Equal(t, "revisit", resp.Node.CurrentMastery)
	assert.Len(t, nodes.nodes, 1)
}

func TestRecordMasteryEndpoint(t *testing.T) {
	router, nodes, _, _ := testRouter(t)
	nodes.nodes["node-1"] = &store.NodeData{
		ID:             "node-1",
		LearnerID:      "learner-1",
		CanonicalName:  "chain rule",
		CurrentMastery: "revisit",
	}

	w := doJSON(t, router, http.MethodPost, "/api/learners/learner-1/concepts/node-1/mastery", gin.H{
		"state":      "developing",
		"sourceType": "quiz",
		"sourceId":   "quiz-9",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "developing", nodes.nodes["node-1"].CurrentMastery)
}

func TestRecordMasteryRejectsUnknownState(t *testing.T) {
	router, _, _, _ := testRouter(t)
	w := doJSON(t, router, http.MethodPost, "/api/learners/learner-1/concepts/node-1/mastery", gin.H{
		"state": "excellent",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecordMasteryUnknownNodeIs404(t *testing.T) {
	router, _, _, _ := testRouter(t)
	w := doJSON(t, router, http.MethodPost, "/api/learners/learner-1/concepts/missing/mastery", gin.H{
		"state":      "solid",
		"sourceType": "quiz",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGraphEndpoint(t *testing.T) {
	router, nodes, topics, _ := testRouter(t)
	nodes.nodes["node-1"] = &store.NodeData{ID: "node-1", LearnerID: "learner-1", CanonicalName: "chain rule", CurrentMastery: "solid"}
	nodes.nodes["node-2"] = &store.NodeData{ID: "node-2", LearnerID: "other", CanonicalName: "limits", CurrentMastery: "shaky"}
	topics.topics["topic-1"] = &store.TopicData{ID: "topic-1", LearnerID: "learner-1", Name: "Differentiation"}

	w := doJSON(t, router, http.MethodGet, "/api/learners/learner-1/graph", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Nodes  []map[string]any `json:"nodes"`
		Topics []map[string]any `json:"topics"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Nodes, 1, "graph must be scoped to the learner")
	assert.Len(t, resp.Topics, 1)
}

func TestCurriculumCreateAndGet(t *testing.T) {
	router, _, _, curricula := testRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/learners/learner-1/curricula", gin.H{
		"title":      "Calculus I",
		"conceptIds": []string{"c1", "c2"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Len(t, curricula.rows, 1)

	var created struct {
		Curriculum store.CurriculumData `json:"curriculum"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "active", created.Curriculum.Status)

	w = doJSON(t, router, http.MethodGet, "/api/curricula/"+created.Curriculum.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCurriculumCreateRequiresConcepts(t *testing.T) {
	router, _, _, _ := testRouter(t)
	w := doJSON(t, router, http.MethodPost, "/api/learners/learner-1/curricula", gin.H{
		"title": "Empty",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServiceErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{store.ErrNotFound, http.StatusNotFound},
		{store.ErrConflict, http.StatusConflict},
		{flow.ErrPlanNotInitialized, http.StatusBadRequest},
		{flow.ErrNotEvaluated, http.StatusBadRequest},
		{flow.ErrNoPendingStep, http.StatusBadRequest},
		{&flow.NotEvaluatedError{StepType: flow.StepCheck, StepNumber: 3}, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		respondServiceError(c, tt.err)
		assert.Equal(t, tt.want, w.Code, "error %v", tt.err)

		var envelope ErrorEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.NotEmpty(t, envelope.Error.Message)
	}
}
