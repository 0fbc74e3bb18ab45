package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/cohort-tools/api/internal/bootstrap"
	"github.com/cohort-tools/api/internal/config"
)

// Server holds the state for the HTTP server.
type Server struct {
	config *config.Config
	router *gin.Engine
	store  *bootstrap.Store
	logger zerolog.Logger
	http   *http.Server
}

// NewServer creates and initializes a new server instance by calling bootstrap functions.
func NewServer() (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	store, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	revocation, err := bootstrap.SetupRevocation(cfg, store, lgr)
	if err != nil {
		_ = store.Close(context.Background())
		return nil, fmt.Errorf("failed to setup token revocation: %w", err)
	}

	deps, err := bootstrap.BuildDependencies(cfg, store.Repos, revocation, lgr)
	if err != nil {
		_ = store.Close(context.Background())
		return nil, fmt.Errorf("failed to setup dependencies: %w", err)
	}

	bootstrap.SeedData(cfg, deps, lgr)

	router := bootstrap.SetupRouter(cfg, deps, lgr)

	return &Server{
		config: cfg,
		router: router,
		store:  store,
		logger: lgr,
	}, nil
}

// Timeouts applied to the HTTP server and its shutdown
const (
	readTimeout     = 10 * time.Second
	writeTimeout    = 30 * time.Second
	idleTimeout     = 2 * time.Minute
	shutdownTimeout = 10 * time.Second
)

// Run serves HTTP until SIGINT/SIGTERM or a listener failure, then shuts down.
func (s *Server) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return s.serve(ctx)
}

func (s *Server) serve(ctx context.Context) error {
	s.http = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	listenErr := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Str("driver", s.config.Database.Driver).Msg("Cohort Tools API listening")
		listenErr <- s.http.ListenAndServe()
	}()

	select {
	case err := <-listenErr:
		if !errors.Is(err, http.ErrServerClosed) {
			if s.store != nil {
				_ = s.store.Close(context.Background())
			}
			return fmt.Errorf("error starting server: %w", err)
		}
	case <-ctx.Done():
		s.logger.Info().Msg("Shutdown requested")
	}

	return s.Shutdown(context.Background())
}

// Shutdown drains in-flight requests, then closes the store connections.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	var errs []error
	if s.http != nil {
		if err := s.http.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("http shutdown: %w", err))
		}
	}
	if s.store != nil {
		if err := s.store.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("closing store: %w", err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		s.logger.Error().Err(err).Msg("Shutdown finished with errors")
		return err
	}
	s.logger.Info().Msg("Shutdown complete")
	return nil
}
