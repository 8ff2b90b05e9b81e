package cli

import (
	"github.com/spf13/cobra"
)

func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Concussion test commands",
	}

	cmd.AddCommand(newTestStartCmd())

	return cmd
}

func newTestStartCmd() *cobra.Command {
	var playerID string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a test run for a player",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"playerId": playerID}
			var result StartTest

			if err := client.Post("/api/testing/start", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&playerID, "player", "", "Player ID (required)")
	_ = cmd.MarkFlagRequired("player")

	return cmd
}
