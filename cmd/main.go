package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"growe/internal/caching"
	"growe/internal/config"
	"growe/internal/handlers"
	"growe/internal/repositories"
	"growe/pkg/database"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          "growe",
		Short:        "Growe logistics brokerage API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), configPath)
		},
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (TOML); defaults to $GROWE_CONFIG")

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), configPath)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create the document collections",
		RunE: func(cmd *cobra.Command, args []string) error {
			return migrate(cmd.Context(), configPath)
		},
	})

	cmd.AddCommand(createUserCmd(&configPath))

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("growe version %s\n", version)
		},
	})

	return cmd
}

func createUserCmd(configPath *string) *cobra.Command {
	var email, password, role, company string

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Provision a login credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			pool, err := database.NewPool(ctx, cfg.Database.URL)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer pool.Close()

			if err := database.EnsureCollections(ctx, pool, repositories.Collections...); err != nil {
				return err
			}

			authService := newAuthService(cfg, repositories.NewUserRepository(pool), nil)
			user, err := authService.Register(ctx, email, password, role, company)
			if err != nil {
				return err
			}

			fmt.Printf("Created user %s (%s) with role %s\n", user.Email, user.ID, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Login email")
	cmd.Flags().StringVar(&password, "password", "", "Login password")
	cmd.Flags().StringVar(&role, "role", "partner", "Role: admin, partner or viewer")
	cmd.Flags().StringVar(&company, "company", "", "Company name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func migrate(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	pool, err := database.NewPool(ctx, cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	return database.EnsureCollections(ctx, pool, repositories.Collections...)
}

func serve(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPool(ctx, cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	if err := database.EnsureCollections(ctx, pool, repositories.Collections...); err != nil {
		return err
	}

	cacheSvc := caching.NewRedisCacheService(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	api, rbac := buildAPI(cfg, pool, cacheSvc, map[string]handlers.Pinger{
		"database": pool,
		"redis":    cacheSvc,
	})
	e := handlers.NewServer(api, rbac)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Growe API v%s starting on port %s", version, cfg.Server.Port)
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
