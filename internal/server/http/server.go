// Package http exposes the resource store as a REST API, plus the homepage,
// the rendered index view and static files.
package http

import (
	"context"
	"errors"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gophsocial/internal/logging"
	"github.com/dmitrijs2005/gophsocial/internal/server/config"
	"github.com/dmitrijs2005/gophsocial/internal/server/services"
)

type HTTPServer struct {
	address         string
	homepageFile    string
	staticDir       string
	maxUploadSize   int64
	shutdownTimeout time.Duration
	users           *services.UserService
	posts           *services.PostService
	logger          logging.Logger
	views           *template.Template
}

func NewHTTPServer(cfg *config.Config, l logging.Logger, us *services.UserService, ps *services.PostService) (*HTTPServer, error) {
	views, err := parseViews()
	if err != nil {
		return nil, err
	}

	return &HTTPServer{
		address:         cfg.EndpointAddrHTTP,
		homepageFile:    cfg.HomepageFile,
		staticDir:       cfg.StaticDir,
		maxUploadSize:   cfg.MaxUploadSize,
		shutdownTimeout: cfg.ShutdownTimeout,
		users:           us,
		posts:           ps,
		logger:          l.With("module", "http_server"),
		views:           views,
	}, nil
}

// Handler returns the routed API wrapped in the middleware chain.
func (s *HTTPServer) Handler() http.Handler {
	return chain(s.routes(), s.withRequestID, s.withAccessLog, s.withRecover)
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled, then shuts down
// gracefully, giving in-flight requests up to the shutdown timeout. It returns
// only after the shutdown has finished.
func (s *HTTPServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	stopped := make(chan struct{})
	shutdownDone := make(chan struct{})

	go func() {
		defer close(shutdownDone)

		select {
		case <-ctx.Done():
		case <-stopped:
			return
		}

		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", lis.Addr().String())

	err := srv.Serve(lis)
	if errors.Is(err, http.ErrServerClosed) {
		// Serve returns as soon as Shutdown starts; wait for the drain.
		<-shutdownDone
		return nil
	}

	close(stopped)
	return err
}
