package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	adaptersound "tempo/internal/adapters/sound"
	"tempo/internal/logging"
	"tempo/internal/server"
	"tempo/internal/services"
)

// ServeCmd serves the timer TUI over SSH
type ServeCmd struct {
	Host string `help:"Host to bind to" default:"localhost"`
	Port string `help:"Port to listen on" default:"23234"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	logging.Logger.Info("Starting tempo SSH server", "host", s.Host, "port", s.Port)

	// Each SSH user gets a timer of their own, and sound goes to their terminal
	engines := func(ctx context.Context, user string, bell io.Writer) (*services.TimerEngine, error) {
		notifications := services.NewNotificationService(nil, adaptersound.NewBellPlayer(bell), false)
		return cli.Container.OpenTimerEngine(ctx, EngineOptions{
			Namespace:     user,
			Notifications: notifications,
		}, user)
	}

	srv, err := server.NewServer(s.Host, s.Port, cli.settings, engines)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Start(ctx)
}
