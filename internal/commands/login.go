package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/txdesk-dev/txdesk/internal/auth"
)

func newLoginCommand(e *env) *cobra.Command {
	var username string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store an access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := e.load()
			if err != nil {
				return err
			}

			// Simulated login: any non-empty credentials are accepted.
			if _, err := auth.Login(cfg.Auth.TokenPath, username, password); err != nil {
				return err
			}
			fmt.Printf("Logged in as %s\n", username)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "username (required)")
	_ = cmd.MarkFlagRequired("username")
	cmd.Flags().StringVar(&password, "password", "", "password (required)")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := e.load()
			if err != nil {
				return err
			}
			if err := auth.Logout(cfg.Auth.TokenPath); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}
