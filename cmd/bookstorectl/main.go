package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"gin-bookstore/config"
	"gin-bookstore/infra"
	"gin-bookstore/repositories"
	"gin-bookstore/services"
)

// readPassword reads a password from the terminal without echo.
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}
	fmt.Println()
	return strings.TrimSpace(string(bytePassword)), nil
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the bookstore database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()
			db := infra.SetupDB(cfg)
			if err := infra.Migrate(db); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			fmt.Println("Migration completed.")
			return nil
		},
	}
}

func newCreateAdminCmd() *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Bootstrap an Admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword("Admin password: ")
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			if len(password) < 8 {
				return errors.New("password must be at least 8 characters")
			}
			confirm, err := readPassword("Confirm password: ")
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			if password != confirm {
				return errors.New("passwords do not match")
			}

			cfg := config.LoadConfig()
			db := infra.SetupDB(cfg)
			authService := services.NewAuthService(repositories.NewAuthRepository(db))
			if err := authService.RegisterAdmin(username, password); err != nil {
				return fmt.Errorf("failed to create admin: %w", err)
			}
			fmt.Printf("Admin created: %s\n", username)
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "admin", "admin account name")
	return cmd
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "bookstorectl",
		Short: "Operator tasks for the bookstore",
	}
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newCreateAdminCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
