package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/reflowhq/reflow/internal/api"
	"github.com/reflowhq/reflow/internal/curriculum"
	"github.com/reflowhq/reflow/internal/evaluate"
	"github.com/reflowhq/reflow/internal/flow"
	"github.com/reflowhq/reflow/internal/llm"
	"github.com/reflowhq/reflow/internal/logger"
	"github.com/reflowhq/reflow/internal/mastery"
	"github.com/reflowhq/reflow/internal/planner"
	"github.com/reflowhq/reflow/internal/registry"
	"github.com/reflowhq/reflow/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Reflow HTTP service",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().String("addr", defaultAddr(), "Listen address (overrides REFLOW_ADDR env var)")
	serveCmd.Flags().String("log-mode", os.Getenv("REFLOW_LOG_MODE"), "Log mode: dev or prod")
}

func defaultAddr() string {
	if a := os.Getenv("REFLOW_ADDR"); a != "" {
		return a
	}
	return ":8080"
}

// runServe opens the store, wires the services, and runs the HTTP server
// until interrupted.
func runServe(cmd *cobra.Command) error {
	ctx := cmd.Context()

	mode, _ := cmd.Flags().GetString("log-mode")
	log, err := logger.New(mode)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w", err)
	}

	masterySvc := mastery.NewService(st.NodeRepo())
	currSync := curriculum.NewSync(st.CurriculumRepo(), log)
	registrySvc := registry.NewService(st.NodeRepo(), st.TopicRepo(), nil, provider, log)
	plannerSvc := planner.NewService(provider, st.ProgressRepo(), registrySvc, log)
	flowSvc := flow.NewService(st.StepRepo(), st.ProgressRepo(), masterySvc, currSync, log)
	evalSvc := evaluate.NewService(provider, st.StepRepo(), st.ProgressRepo(), log)

	router := api.NewRouter(api.RouterConfig{
		Log:               log,
		FlowHandler:       api.NewFlowHandler(log, plannerSvc, flowSvc, evalSvc),
		RegistryHandler:   api.NewRegistryHandler(log, registrySvc, masterySvc, st.NodeRepo(), st.TopicRepo()),
		CurriculumHandler: api.NewCurriculumHandler(log, st.CurriculumRepo()),
	})

	addr, _ := cmd.Flags().GetString("addr")
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", addr, "db", dbPath, "model", provider.ModelID())
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case sig := <-stop:
		log.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
