package main

import (
	"github.com/deppfellow/social-media-api/internal/config"
	"github.com/deppfellow/social-media-api/internal/database"
	"github.com/deppfellow/social-media-api/internal/logger"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			log := logger.NewLogger(cfg.Observability)

			return database.Migrate(cmd.Context(), &log, cfg)
		},
	}
}
