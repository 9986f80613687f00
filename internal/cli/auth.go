package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lautaroCastilloJ/storefront/internal/api"
)

func newLoginCommand(configPath *string) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Sign in against the backend and persist the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.session.SignIn(cmd.Context(), args[0], password); err != nil {
				return fmt.Errorf("sign-in failed: %w", err)
			}

			s := a.session.Current()
			fmt.Printf("signed in as %s (%s)\n", s.Username, s.Role)
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "password")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and wipe the persisted session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			a.session.SignOut(cmd.Context())
			fmt.Println("signed out")
			return nil
		},
	}
}

func newWhoamiCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			s := a.session.Current()
			if !s.IsAuthenticated {
				fmt.Println("not signed in")
				return nil
			}
			fmt.Printf("username: %s\nrole: %s\n", s.Username, s.Role)
			if s.CustomerID != "" {
				fmt.Printf("customer id: %s\n", s.CustomerID)
			}
			return nil
		},
	}
}

func newRegisterCommand(configPath *string) *cobra.Command {
	var req api.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register <username>",
		Short: "Create a new customer account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			req.UserName = args[0]
			if err := a.api.Register(cmd.Context(), req); err != nil {
				return fmt.Errorf("registration failed: %w", err)
			}
			fmt.Printf("registered %s\n", req.UserName)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Password, "password", "p", "", "password")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.DisplayName, "display-name", "", "display name")
	cmd.Flags().StringVar(&req.PhoneNumber, "phone", "", "phone number")
	cmd.MarkFlagRequired("password")
	cmd.MarkFlagRequired("email")
	return cmd
}
