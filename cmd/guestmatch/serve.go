package main

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
	"go.uber.org/zap"

	"github.com/guestmatch/guestmatch/internal/api"
	"github.com/guestmatch/guestmatch/internal/source"
	"github.com/guestmatch/guestmatch/pkg/config"
	"github.com/guestmatch/guestmatch/pkg/logger"
	"github.com/guestmatch/guestmatch/pkg/matchgraph"
)

func newServeCmd(g *globalOpts) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start a local API server for the graph UI",
		Long: `Loads every configured event (or just --roster) and serves match graphs
over HTTP. Point the graph client at http://localhost:PORT/api/events/{event}/graph.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), g, port)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "Port to serve on (default: config server.port)")

	return cmd
}

func runServe(ctx context.Context, g *globalOpts, port string) error {
	if err := logger.Init("development"); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()
	log := logger.Get()

	cfg, err := loadConfig(g.configPath)
	if err != nil {
		return err
	}
	events := cfg.Events
	if g.roster != "" || g.event != "" {
		ev, err := selectEvent(cfg, g.event, g.roster)
		if err != nil {
			return err
		}
		events = []config.EventConfig{ev}
	}

	loaded, err := source.LoadAll(ctx, events, source.OptionsFromConfig(cfg))
	if err != nil {
		return err
	}
	for slug, l := range loaded {
		log.Info("loaded roster", zap.String("event", slug), zap.String("source", l.Origin), zap.Int("guests", l.Roster.Len()))
	}

	h := api.NewHandler(api.RegistryFromLoaded(loaded), matchgraph.NewBuilder(cfg.MatchLayout()), api.WithLogger(log))
	addr := ":" + firstNonEmpty(port, cfg.Server.Port, "7700")
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Routes(cfg.Server.CORSOrigin),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		fmt.Fprintf(os.Stderr, "guestmatch API server\n")
		fmt.Fprintf(os.Stderr, "  Events:     %d\n", len(loaded))
		fmt.Fprintf(os.Stderr, "  Listening:  http://localhost%s\n", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
