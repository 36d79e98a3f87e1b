// Package server exposes the estimator over an HTTP JSON API so a web
// form can drive the same computation as the CLI and TUI.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"kidcost/internal/estimator"
	"kidcost/internal/refdata"
)

// Config controls the server runtime.
type Config struct {
	Addr  string
	Rates estimator.SavingsRates
}

// Service serves estimate requests against an immutable reference table.
type Service struct {
	cfg       Config
	table     *refdata.Table
	logger    *logrus.Logger
	startedAt time.Time
}

// New returns a service bound to the given table.
func New(cfg Config, table *refdata.Table, logger *logrus.Logger) *Service {
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8689"
	}
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return &Service{
		cfg:       cfg,
		table:     table,
		logger:    logger,
		startedAt: time.Now(),
	}
}

// Router builds the HTTP routes.
func (s *Service) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.HandleFunc("/v1/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/v1/states", s.handleStates).Methods(http.MethodGet)
	r.HandleFunc("/v1/options", s.handleOptions).Methods(http.MethodGet)
	r.HandleFunc("/v1/estimate", s.handleEstimate).Methods(http.MethodPost)

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Service) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", s.cfg.Addr).Info("estimate API listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving: %w", err)
	}
}

func (s *Service) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		}).Info("request")
	})
}
