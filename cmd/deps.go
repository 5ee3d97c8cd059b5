package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/budai/internal/app"
	"github.com/abhisek/budai/internal/auth"
	"github.com/abhisek/budai/internal/llm"
	"github.com/abhisek/budai/internal/store"
	"github.com/abhisek/budai/internal/tutor"
)

// openStore opens the configured database. --db always selects a SQLite
// file; otherwise database.driver and database.dsn apply, with an empty
// SQLite DSN resolving to the default data path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	driver, dsn := cfg.Database.Driver, cfg.Database.DSN

	if p, _ := cmd.Flags().GetString("db"); p != "" {
		if err := store.EnsureDir(p); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
		driver, dsn = store.DriverSQLite, store.SQLiteDSN(p)
	} else if driver == store.DriverSQLite && dsn == "" {
		p, err := store.DefaultSQLitePath()
		if err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
		dsn = store.SQLiteDSN(p)
	}

	s, err := store.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// buildApp wires content generation and identity around s. Without a
// configured LLM provider every generated artefact uses the built-in
// fallback content.
func buildApp(ctx context.Context, s *store.Store) (*app.App, error) {
	var provider llm.Provider
	if cfg.LLM.Provider != "" {
		p, err := llm.NewProvider(ctx, cfg.LLM, s.Events(), logger.Named("llm"))
		if err != nil {
			return nil, fmt.Errorf("create LLM provider: %w", err)
		}
		provider = p
	} else {
		logger.Info("no LLM provider configured, using fallback content")
	}

	tc := tutor.DefaultConfig()
	if cfg.Content.Language != "" {
		tc.Language = cfg.Content.Language
	}
	t := tutor.NewService(provider, tc, logger.Named("tutor"))

	opts := app.Options{
		RequireVerification: cfg.Auth.RequireVerification,
		DevCodes:            cfg.Auth.DevCodes,
		Weight:              cfg.Scoring.Weight,
		TaskXP:              cfg.Rewards.TaskXP,
		CoachMaxTurns:       cfg.Coach.MaxTurns,
	}
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	return app.New(s, t, tokens, auth.NewCodeStore(), opts, logger.Named("app")), nil
}
