// Command jwtgate serves a small API behind the bearer-token gate. It is
// configured with a YAML file and JWTGATE_* environment variables.
//
//	JWTGATE_AUTH_SECRET=some-secret jwtgate -config jwtgate.yaml
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/uptimeventures/jwtgate"
	"github.com/uptimeventures/jwtgate/config"
)

// Claims is whatever the token carries; the API echoes it back.
type Claims map[string]any

var claimsHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	token, err := jwtgate.GetToken[Claims](r.Context())
	if err != nil {
		http.Error(w, "failed to get token", http.StatusInternalServerError)
		return
	}

	payload, err := json.Marshal(map[string]any{
		"kid":    token.Header.KeyID,
		"claims": token.Claims,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(payload)
})

func setupHandler(cfg *config.Config, logger logrus.FieldLogger, registry *prometheus.Registry) http.Handler {
	gate := jwtgate.New[Claims]([]byte(cfg.Auth.Secret), cfg.GateOptions(
		jwtgate.WithLogger(jwtgate.NewLogrusLogger(logger)),
		jwtgate.WithMetrics(registry),
	)...)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.Handle("/api/claims", claimsHandler)

	protected := gate.CheckJWT(mux)

	// Scrapes are not bearer-authenticated.
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			mux.ServeHTTP(w, r)
			return
		}
		protected.ServeHTTP(w, r)
	})
}

func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if cfg.Log.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.WithError(err).Warn("unknown log level, using info")
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

func run(ctx context.Context, cfg *config.Config, logger *logrus.Logger) error {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      setupHandler(cfg, logger, registry),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.WithField("addr", server.Addr).Info("listening")
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down")
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}
	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
