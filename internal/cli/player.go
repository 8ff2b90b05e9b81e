package cli

import (
	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player record commands",
	}

	cmd.AddCommand(newPlayerCreateCmd())
	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerUpdateCmd())

	return cmd
}

func newPlayerCreateCmd() *cobra.Command {
	var (
		name, dob, org        string
		email, phone, status  string
		height, weight, notes string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a player record",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"name":           name,
				"dob":            dob,
				"organizationId": org,
			}
			if email != "" {
				req["email"] = email
			}
			if phone != "" {
				req["phone"] = phone
			}
			if status != "" {
				req["status"] = status
			}
			if height != "" {
				req["height"] = height
			}
			if weight != "" {
				req["weight"] = weight
			}
			if notes != "" {
				req["medicalNotes"] = notes
			}

			var result Player
			if err := client.Post("/api/players", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name (required)")
	cmd.Flags().StringVar(&dob, "dob", "", "Date of birth, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&org, "org", "", "Organization ID (required)")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&status, "status", "", "Status: active, injured, concussion, recovery")
	cmd.Flags().StringVar(&height, "height", "", "Height")
	cmd.Flags().StringVar(&weight, "weight", "", "Weight")
	cmd.Flags().StringVar(&notes, "notes", "", "Medical notes")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("dob")
	_ = cmd.MarkFlagRequired("org")

	return cmd
}

func newPlayerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your players",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Player

			if err := client.Get("/api/players", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerUpdateCmd() *cobra.Command {
	var (
		name, dob, org        string
		email, phone, status  string
		height, weight, notes string
	)

	cmd := &cobra.Command{
		Use:   "update <player-id>",
		Short: "Update fields on a player record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Only send fields the caller set; unset fields keep their value
			req := map[string]any{}
			if cmd.Flags().Changed("name") {
				req["name"] = name
			}
			if cmd.Flags().Changed("dob") {
				req["dob"] = dob
			}
			if cmd.Flags().Changed("org") {
				req["organizationId"] = org
			}
			if cmd.Flags().Changed("email") {
				req["email"] = email
			}
			if cmd.Flags().Changed("phone") {
				req["phone"] = phone
			}
			if cmd.Flags().Changed("status") {
				req["status"] = status
			}
			if cmd.Flags().Changed("height") {
				req["height"] = height
			}
			if cmd.Flags().Changed("weight") {
				req["weight"] = weight
			}
			if cmd.Flags().Changed("notes") {
				req["medicalNotes"] = notes
			}

			var result Player
			if err := client.Put("/api/players/"+args[0], req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name")
	cmd.Flags().StringVar(&dob, "dob", "", "Date of birth, YYYY-MM-DD")
	cmd.Flags().StringVar(&org, "org", "", "Organization ID")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&status, "status", "", "Status: active, injured, concussion, recovery")
	cmd.Flags().StringVar(&height, "height", "", "Height")
	cmd.Flags().StringVar(&weight, "weight", "", "Weight")
	cmd.Flags().StringVar(&notes, "notes", "", "Medical notes")

	return cmd
}
