package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/budai/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}
		if err := cfg.ValidateServer(); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		a, err := buildApp(ctx, s)
		if err != nil {
			return err
		}
		if err := a.Seed(ctx); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}

		gin.SetMode(cfg.Server.Mode)
		router := api.NewRouter(a, logger.Named("api"))

		logger.Info("starting server",
			zap.String("addr", cfg.Server.Addr),
			zap.String("mode", cfg.Server.Mode),
			zap.String("driver", cfg.Database.Driver),
			zap.String("llm", cfg.LLM.Provider))
		return api.Serve(ctx, cfg.Server.Addr, router, logger.Named("http"))
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the badge catalog and co-creation themes",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		a, err := buildApp(ctx, s)
		if err != nil {
			return err
		}
		if err := a.Seed(ctx); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
		fmt.Println("Badges and themes are up to date.")
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides server.addr)")
}
