package app

import (
	"github.com/okhmat/minesweeper-solver/internal/handlers"
	"github.com/okhmat/minesweeper-solver/internal/repository"
)

func (a *App) loadRoutes() {
	repo := repository.New(a.db)

	solve := handlers.NewSolve(a.logger, repo)
	auth := handlers.NewAuth(a.logger, repo, a.cookies, a.jwt)
	history := handlers.NewHistory(a.logger, repo)

	a.router.HandleFunc("POST /solve", solve.Post)
	a.router.HandleFunc("GET /solve/connect", solve.ConnectWS(a.ws))

	a.router.HandleFunc("POST /register", auth.Register)
	a.router.HandleFunc("POST /login", auth.Login)
	a.router.HandleFunc("POST /logout", auth.Logout)
	a.router.HandleFunc("GET /status", auth.Status)

	a.router.HandleFunc("GET /history", history.List)
	a.router.HandleFunc("GET /history/{id}", history.Fetch)
}
