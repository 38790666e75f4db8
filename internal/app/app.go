package app

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/okhmat/minesweeper-solver/internal/config"
	"github.com/okhmat/minesweeper-solver/internal/database"
	"github.com/okhmat/minesweeper-solver/internal/middleware"
)

type App struct {
	logger  *logrus.Logger
	router  *http.ServeMux
	db      *pgxpool.Pool
	cookies *config.Cookies
	jwt     *config.JWT
	ws      *config.WebSocket
}

func New(logger *logrus.Logger) *App {
	return &App{
		logger: logger,
		router: http.NewServeMux(),
	}
}

// Start connects to the database, runs migrations, mounts the routes and
// serves until ctx is cancelled, then shuts down gracefully.
func (a *App) Start(ctx context.Context) error {
	db, err := database.ConnectAndMigrate(ctx)
	if err != nil {
		return fmt.Errorf("unable to connect to db: %w", err)
	}
	a.db = db
	defer db.Close()

	a.jwt, err = config.NewJWT()
	if err != nil {
		return err
	}

	a.cookies, err = config.NewCookies(a.jwt)
	if err != nil {
		return err
	}

	a.ws = config.NewWebSocket()

	a.loadRoutes()

	handler := middleware.Wrap(
		a.router,
		middleware.Auth(a.cookies),
		middleware.Cors(),
		middleware.Logging(a.logger),
	)

	server := &http.Server{
		Addr:    config.Addr(),
		Handler: handler,
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	a.logger.Infof("ready to serve @ %s", server.Addr)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.ListenAndServe()
	})
	g.Go(func() error {
		<-gCtx.Done()
		return server.Shutdown(context.Background())
	})

	return g.Wait()
}
