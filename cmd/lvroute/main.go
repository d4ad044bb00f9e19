// Command lvroute serves shortest-path answers for a campus map file.
//
//	lvroute --graph campus.dot --addr :8080 --watch
//
// Settings come from lvroute.toml, LVROUTE_* environment variables and flags.
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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvroute/config"
	"github.com/katalvlaran/lvroute/logging"
	"github.com/katalvlaran/lvroute/metrics"
	"github.com/katalvlaran/lvroute/routes"
	"github.com/katalvlaran/lvroute/web"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		logging.Fatal("lvroute stopped", "error", err)
	}
}

func run(args []string) error {
	flags := config.Flags("lvroute")
	if err := flags.Parse(args); err != nil {
		return err
	}
	cfg, err := config.Load(flags)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logging.Setup(os.Stdout, level, cfg.Log.JSON)

	// ── Metrics and service ──────────────────────────────────────────────────
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	svc := routes.NewService(routes.WithMetrics(metrics.New(reg)), routes.WithCapacity(cfg.Capacity))
	if err := svc.Load(cfg.Graph, cfg.Format); err != nil {
		return fmt.Errorf("initial load: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// ── Hot reload ───────────────────────────────────────────────────────────
	if cfg.Watch {
		w, err := routes.NewWatcher(svc, cfg.Graph, cfg.Format)
		if err != nil {
			logging.Warn("graph watcher unavailable (hot-reload disabled)", "error", err)
		} else {
			w.Start(ctx)
			defer w.Close()
		}
	}

	// ── HTTP server ──────────────────────────────────────────────────────────
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           web.NewServer(svc, reg),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	serveErr := make(chan error, 1)
	go func() {
		logging.Info("server starting", "addr", cfg.Addr, "graph", cfg.Graph)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// ── Graceful shutdown ────────────────────────────────────────────────────
	select {
	case err := <-serveErr:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}
	logging.Info("shutting down")

	shutCtx, shutCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutCancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logging.Info("goodbye")

	return nil
}
