package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"dental-clinic-api/cmd/bootstrap"
	"dental-clinic-api/config"
	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/infrastructure/cache"
	"dental-clinic-api/internal/infrastructure/database"
	"dental-clinic-api/pkg/jwt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "dental-clinic-api",
		Short:        "Dental clinic REST backend",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(tokenCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, *logrus.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, bootstrap.NewLogger(cfg.Log), nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}

			app, err := bootstrap.New(cfg, log)
			if err != nil {
				log.Errorf("Failed to initialize application: %v", err)
				return err
			}
			return app.Run()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or revert database migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			return database.MigrateUp(cfg.DB, log)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Revert the last migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			return database.MigrateDown(cfg.DB, log)
		},
	})

	return cmd
}

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage access tokens",
	}

	var (
		personnelID int
		role        string
	)
	issueCmd := &cobra.Command{
		Use:   "issue",
		Short: "Mint an access token and register it in the allowlist",
		RunE: func(cmd *cobra.Command, args []string) error {
			personnelType := entity.PersonnelType(strings.ToUpper(role))
			if !personnelType.Valid() {
				return fmt.Errorf("unknown role %q", role)
			}
			if personnelID <= 0 {
				return fmt.Errorf("--personnel must be a positive id")
			}

			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.JWT.Secret == "" {
				return fmt.Errorf("JWT_SECRET is not set")
			}

			redisClient, err := cache.NewRedisClient(cfg.Redis, log)
			if err != nil {
				return err
			}
			defer redisClient.Close()

			jwtService := jwt.NewJWTService(cfg.JWT)
			token, tokenID, err := jwtService.GenerateAccessToken(personnelID, string(personnelType))
			if err != nil {
				return fmt.Errorf("failed to sign token: %w", err)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			key := jwt.AccessTokenKey(personnelID, tokenID)
			if err := redisClient.Set(ctx, key, string(personnelType), jwtService.GetAccessExpiry()).Err(); err != nil {
				return fmt.Errorf("failed to store token: %w", err)
			}

			log.WithFields(logrus.Fields{"personnel_id": personnelID, "role": personnelType, "token_id": tokenID}).Info("Access token issued")
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	issueCmd.Flags().IntVar(&personnelID, "personnel", 0, "personnel id the token is issued for")
	issueCmd.Flags().StringVar(&role, "role", "", "personnel type: DENTIST, ASSISTANT, STAFF or ADMIN")
	issueCmd.MarkFlagRequired("personnel")
	issueCmd.MarkFlagRequired("role")

	cmd.AddCommand(issueCmd)
	return cmd
}
