package main

import (
	"pictocat/services/missions"
	"pictocat/services/settings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate the schema, seed defaults and repair stored profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := setup()
		if err != nil {
			return err
		}
		defer b.close()
		return b.migrate(cmd.Context())
	},
}

var resetMissionsCmd = &cobra.Command{
	Use:   "reset-missions",
	Short: "Redraw every player's daily missions now",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := setup()
		if err != nil {
			return err
		}
		defer b.close()

		missionService := missions.NewService(b.db, settings.NewService(b.db, nil, b.log), b.log)
		rolled, err := missionService.ResetAll(cmd.Context(), true)
		if err != nil {
			return err
		}
		b.log.Info("daily missions redrawn", zap.Int("players", rolled))
		return nil
	},
}
