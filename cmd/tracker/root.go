package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/jhoicas/pos-tracker/internal/infrastructure/postgres"
	"github.com/jhoicas/pos-tracker/pkg/config"
	"github.com/jhoicas/pos-tracker/pkg/logger"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:          "tracker",
	Short:        "Herramientas de operación del inventario POS",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("cargar configuración: %w", err)
		}
		cfg = c
		logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: cfg.App.Name + "-cli"})
		return nil
	},
}

// openPool abre el pool con la configuración cargada; el llamador lo cierra.
func openPool(ctx context.Context) (*pgxpool.Pool, error) {
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	return pool, nil
}
