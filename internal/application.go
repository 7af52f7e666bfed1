package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-board/internal/config"
	"github.com/rocketscienceinc/tictactoe-board/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-board/internal/tui"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	game := tictactoe.NewGame(logger)
	unsubscribe := game.Subscribe(LogTransitions(logger))
	defer unsubscribe()

	program := tea.NewProgram(tui.New(logger, game, tui.NewStyles(conf.Theme)), programOptions(ctx, conf)...)

	log.Info("Starting game")
	if _, err := program.Run(); err != nil {
		if ctx.Err() != nil {
			log.Info("Application context canceled, shutting down")
			return nil
		}

		return fmt.Errorf("terminal program failed: %w", err)
	}

	log.Info("Game closed", "moves", len(game.History())-1, "status", game.Status().Text)

	return nil
}

func programOptions(ctx context.Context, conf *config.Config) []tea.ProgramOption {
	options := []tea.ProgramOption{tea.WithContext(ctx)}
	if !conf.Inline {
		options = append(options, tea.WithAltScreen())
	}

	return options
}

// LogTransitions - a game listener writing every accepted transition to the log.
func LogTransitions(logger *slog.Logger) tictactoe.Listener {
	log := logger.With("component", "transitions")

	return func(event tictactoe.Event, game *tictactoe.Game) {
		attrs := []any{
			"kind", event.Kind,
			"move", event.Move,
			"history", len(game.History()),
			"status", game.Status().Text,
		}
		if event.Kind == tictactoe.EventMove {
			attrs = append(attrs, "cell", event.Cell, "mark", event.Mark)
		}

		log.Info("game transition", attrs...)
	}
}
