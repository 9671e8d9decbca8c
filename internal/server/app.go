// Package server wires the resource store, its services and both transports
// together and runs them until the process is signalled to stop.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/gophsocial/internal/filex"
	"github.com/dmitrijs2005/gophsocial/internal/logging"
	"github.com/dmitrijs2005/gophsocial/internal/server/config"
	"github.com/dmitrijs2005/gophsocial/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophsocial/internal/server/services"

	gs "github.com/dmitrijs2005/gophsocial/internal/server/grpc"
	hs "github.com/dmitrijs2005/gophsocial/internal/server/http"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	userService *services.UserService
	postService *services.PostService
}

// NewApp builds the store, seeds it and prepares the static directory.
// Log output goes to w.
func NewApp(ctx context.Context, c *config.Config, w io.Writer) (*App, error) {
	logger := logging.New(w, c.LogLevel, c.LogFormat)

	rm := repomanager.NewInMemoryRepositoryManager()

	us := services.NewUserService(rm)
	ps := services.NewPostService(rm)

	if err := us.Seed(ctx); err != nil {
		return nil, fmt.Errorf("seed error: %w", err)
	}

	dir, err := filex.EnsureDir(c.StaticDir)
	if err != nil {
		return nil, fmt.Errorf("static dir error: %w", err)
	}
	logger.Debug(ctx, "Static directory ready", "dir", dir)

	return &App{config: c, logger: logger, userService: us, postService: ps}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case s := <-sigs:
			app.logger.Info(ctx, "Signal received", "signal", s.String())
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s, err := hs.NewHTTPServer(app.config, app.logger, app.userService, app.postService)
	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run starts the transports and blocks until ctx is cancelled, a signal
// arrives or one of the servers fails. A failing server stops the other one.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(ctx, cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	if app.config.EndpointAddrGRPC != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startGRPCServer(ctx, cancelFunc)
		}()
	}

	wg.Wait()

	app.logger.Info(ctx, "App stopped")
}
