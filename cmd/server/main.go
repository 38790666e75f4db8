package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/okhmat/minesweeper-solver/internal/app"
	"github.com/okhmat/minesweeper-solver/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	log := logging.New()

	if err := app.New(log).Start(ctx); err != nil {
		log.Printf("exit reason: %s\n", err)
	}
}
