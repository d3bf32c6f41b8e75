package api

import (
	"github.com/gin-gonic/gin"

	"github.com/reflowhq/reflow/internal/logger"
)

// RouterConfig wires handlers into the router. Nil handlers skip their
// routes, which keeps partial wiring usable in tests.
type RouterConfig struct {
	Log *logger.Logger

	FlowHandler       *FlowHandler
	RegistryHandler   *RegistryHandler
	CurriculumHandler *CurriculumHandler
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.Log != nil {
		r.Use(RequestLogger(cfg.Log))
	}

	r.GET("/healthz", func(c *gin.Context) {
		RespondOK(c, gin.H{"ok": true})
	})

	api := r.Group("/api")
	{
		if cfg.FlowHandler != nil {
			api.POST("/sessions/:sessionID/concepts/:conceptID/plan", cfg.FlowHandler.InitPlan)
			api.POST("/sessions/:sessionID/concepts/:conceptID/advance", cfg.FlowHandler.Advance)
			api.POST("/sessions/:sessionID/concepts/:conceptID/respond", cfg.FlowHandler.Respond)
		}

		if cfg.RegistryHandler != nil {
			api.POST("/learners/:learnerID/concepts/resolve", cfg.RegistryHandler.Resolve)
			api.POST("/learners/:learnerID/concepts/:nodeID/mastery", cfg.RegistryHandler.RecordMastery)
			api.POST("/learners/:learnerID/topics/cluster", cfg.RegistryHandler.Cluster)
			api.GET("/learners/:learnerID/graph", cfg.RegistryHandler.Graph)
		}

		if cfg.CurriculumHandler != nil {
			api.POST("/learners/:learnerID/curricula", cfg.CurriculumHandler.Create)
			api.GET("/curricula/:id", cfg.CurriculumHandler.Get)
		}
	}

	return r
}
