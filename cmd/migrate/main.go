package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"todo/config"
	"todo/helper"
	"todo/shared/logger"
)

var rootCmd = &cobra.Command{
	Use:           "migrate",
	Short:         "Apply or roll back MongoDB migrations",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func migration(use, short string, run func(*config.Config) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(config.Get())
		},
	}
}

func main() {
	logger.InitLogger()

	rootCmd.AddCommand(
		migration("up", "Apply every pending migration", helper.Up),
		migration("down", "Roll back the latest migration", helper.Down),
		migration("step-up", "Apply the next pending migration", helper.StepUp),
		migration("drop", "Roll back every migration", helper.Drop),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Migration failed")
		os.Exit(1)
	}
}
