package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/quizdeck/internal/app"
	"github.com/abhisek/quizdeck/internal/logging"
)

// runApp loads configuration, builds the logger, and launches the TUI.
func runApp(cmd *cobra.Command, topic string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting quizdeck",
		zap.String("version", version),
		zap.String("env", cfg.Env),
		zap.String("topic", topic))

	return app.Run(app.Options{
		Config: cfg,
		Logger: logger,
		Topic:  topic,
	})
}
