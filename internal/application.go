package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/perfectplay/tictactoe-engine/internal/config"
	"github.com/perfectplay/tictactoe-engine/internal/shell"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	sh, err := shell.New(logger, conf.HistoryFile, conf.Randomize)
	if err != nil {
		return fmt.Errorf("could not create shell: %w", err)
	}

	shellErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting shell", "randomize", conf.Randomize)
		shellErrCh <- sh.Run(ctx)
	}()

	select {
	case err = <-shellErrCh:
		if err != nil {
			return fmt.Errorf("shell error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
