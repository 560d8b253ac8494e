package main

import (
	"context"
	"errors"
	"fmt"

	"vocab/internal/config"
	"vocab/pkg/logger"
	"vocab/pkg/password"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// passwordCommand constructs the 'password' subcommand with helpers to hash
// a password and to check a password against a stored hash.
func passwordCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Hashes and verifies passwords with the configured parameters",
	}

	hashCmd := &cobra.Command{
		Use:   "hash",
		Short: "Prints the argon2id hash of a password",
		Run: func(cmd *cobra.Command, args []string) {
			raw, _ := cmd.Flags().GetString("password")

			hashed, err := newHasher(cfg).Hash(raw)
			if err != nil {
				logger.Fatal(context.Background(), "could not hash password", zap.Error(err))
			}

			fmt.Println(hashed) //nolint: forbidigo
		},
	}
	hashCmd.Flags().String("password", "", "Raw password")
	_ = hashCmd.MarkFlagRequired("password")

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Checks a password against an argon2id hash",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetString("password")
			hashed, _ := cmd.Flags().GetString("hash")

			err := newHasher(cfg).Verify(raw, hashed)
			switch {
			case err == nil:
				fmt.Println("match") //nolint: forbidigo

				return nil
			case errors.Is(err, password.ErrMismatch):
				fmt.Println("mismatch") //nolint: forbidigo
			default:
				logger.Error(context.Background(), "could not verify password", zap.Error(err))
			}

			return err //nolint: wrapcheck
		},
	}
	verifyCmd.Flags().String("password", "", "Raw password")
	verifyCmd.Flags().String("hash", "", "Stored hash")
	_ = verifyCmd.MarkFlagRequired("password")
	_ = verifyCmd.MarkFlagRequired("hash")

	cmd.AddCommand(hashCmd, verifyCmd)

	return cmd
}
