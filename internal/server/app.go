// Package server wires the development API server: in-memory repositories,
// the user and payment services, and the HTTP front end.
package server

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/moneyboy/internal/logging"
	"github.com/dmitrijs2005/moneyboy/internal/server/config"
	"github.com/dmitrijs2005/moneyboy/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/moneyboy/internal/server/rest"
	"github.com/dmitrijs2005/moneyboy/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	http   *rest.HTTPServer
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, logging.ParseLevel(c.LogLevel))

	rm := repomanager.NewMemoryRepositoryManager()
	us := services.NewUserService(rm, c)
	ps := services.NewPaymentService(rm)

	return &App{
		config: c,
		logger: logger,
		http:   rest.NewHTTPServer(c.ListenAddr, logger, us, ps),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.http.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until ctx is cancelled, a termination signal arrives, or the
// HTTP server fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "address", app.config.ListenAddr)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.logger.Info(ctx, "Stopped")
}
