package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"promoreel/internal/app"
	"promoreel/internal/auth"
	"promoreel/internal/server"
	"promoreel/pkg/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long:  `Serve the generator over HTTP with password-gated endpoints.`,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if cfg.AppPassword == "" {
		return fmt.Errorf("APP_PASSWORD must be set to serve over HTTP")
	}

	service, err := app.BuildService(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	gate := auth.NewGate(auth.GateOptions{
		Password:    cfg.AppPassword,
		MaxAttempts: cfg.Auth.MaxAttempts,
		Lockout:     time.Duration(cfg.Auth.LockoutSeconds) * time.Second,
	})

	srv := server.New(server.Options{
		Generator:   service,
		Gate:        gate,
		OutputDir:   cfg.Video.OutputDir,
		AdNetworkID: cfg.AdNetworkID,
	})

	return srv.Run(fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port))
}
