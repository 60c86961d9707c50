// Command guestmatchd is the guestmatch API service.
// It loads every configured event roster at startup and serves match graphs,
// shortlists and guest cards until it is told to stop.
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

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/guestmatch/guestmatch/internal/api"
	"github.com/guestmatch/guestmatch/internal/metrics"
	"github.com/guestmatch/guestmatch/internal/platform"
	"github.com/guestmatch/guestmatch/internal/source"
	"github.com/guestmatch/guestmatch/pkg/config"
	"github.com/guestmatch/guestmatch/pkg/logger"
	"github.com/guestmatch/guestmatch/pkg/matchgraph"
)

type daemonConfig struct {
	Env         string
	MetricsOn   bool
	MetricsAddr string
	App         *config.Config
}

// loadDaemonConfig reads the YAML file named by GUESTMATCH_CONFIG, then lets
// the environment override the server port and database URL.
func loadDaemonConfig(getenv func(string) string) (daemonConfig, error) {
	env := func(key, def string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return def
	}

	app, err := config.Load(env("GUESTMATCH_CONFIG", "guestmatch.yaml"))
	if err != nil {
		return daemonConfig{}, err
	}
	app.Server.Port = env("PORT", app.Server.Port)
	app.Database.URL = env("DATABASE_URL", app.Database.URL)
	if getenv("AUTO_MIGRATE") == "true" {
		app.Database.AutoMigrate = true
	}

	return daemonConfig{
		Env:         env("ENV", "development"),
		MetricsOn:   getenv("METRICS_PROMETHEUS") != "",
		MetricsAddr: env("METRICS_ADDR", ":9090"),
		App:         app,
	}, nil
}

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()
	os.Exit(serve(os.Getenv))
}

// serve runs the daemon and returns the process exit code. Deferred cleanup
// runs before main exits.
func serve(getenv func(string) string) int {
	cfg, err := loadDaemonConfig(getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return 1
	}

	if err := logger.Init(cfg.Env); err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		return 1
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Get().Error("guestmatchd exited", zap.Error(err))
		return 1
	}
	return 0
}

func run(ctx context.Context, cfg daemonConfig) error {
	log := logger.Get()
	app := cfg.App

	if app.Database.AutoMigrate && app.Database.URL != "" {
		version, err := migrate(ctx, app.Database.URL)
		if err != nil {
			return err
		}
		log.Info("database schema up to date", zap.Uint("version", version))
	}

	var rec metrics.Recorder = metrics.Default()
	if cfg.MetricsOn {
		prom := metrics.NewPromRecorder()
		metrics.SetRecorder(prom)
		rec = prom

		msrv := &http.Server{Addr: cfg.MetricsAddr, Handler: metricsMux(prom), ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := msrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("metrics server", zap.Error(err))
			}
		}()
		defer msrv.Close()
		log.Info("prometheus metrics enabled", zap.String("addr", cfg.MetricsAddr))
	}

	loaded, err := source.LoadAll(ctx, app.Events, source.OptionsFromConfig(app))
	if err != nil {
		return fmt.Errorf("load rosters: %w", err)
	}
	for slug, l := range loaded {
		log.Info("loaded roster",
			zap.String("event", slug),
			zap.String("source", l.Origin),
			zap.Int("guests", l.Roster.Len()),
		)
	}

	builder := matchgraph.NewBuilder(app.MatchLayout())
	h := api.NewHandler(
		api.RegistryFromLoaded(loaded),
		builder,
		api.WithLogger(log),
		api.WithRecorder(rec),
	)

	srv := &http.Server{
		Addr:              ":" + app.Server.Port,
		Handler:           h.Routes(app.Server.CORSOrigin),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting guestmatchd",
			zap.String("addr", srv.Addr),
			zap.Int("events", len(loaded)),
			zap.Int("shortlist_size", builder.Layout().ShortlistSize),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func migrate(ctx context.Context, url string) (uint, error) {
	db, err := platform.OpenDB(ctx, url)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	if err := platform.AutoMigrate(db); err != nil {
		return 0, err
	}
	version, dirty, err := platform.SchemaVersion(db)
	if err != nil {
		return 0, err
	}
	if dirty {
		return version, fmt.Errorf("schema version %d is dirty", version)
	}
	return version, nil
}

func metricsMux(prom *metrics.PromRecorder) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", prom.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}
