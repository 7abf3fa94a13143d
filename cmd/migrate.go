package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	config "task-board-api.com/task-board-api/internal/configs"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations and seed reference data",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := config.NewLogger()

		if err := godotenv.Load(); err != nil {
			logger.Info().Msg(".env file not found, using environment variables")
		}

		cfg := config.Load()
		config.New(cfg.DatabaseDSN)

		logger.Info().Str("dsn", cfg.DatabaseDSN).Msg("migrations applied")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
