package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jhoicas/pos-tracker/internal/infrastructure/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migraciones del esquema (up, down, version)",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Aplica todas las migraciones pendientes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *postgres.Migrator) error {
			if err := m.Up(); err != nil {
				return err
			}
			return printVersion(cmd, m)
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down [n]",
	Short: "Revierte n migraciones (por defecto 1)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n := 1
		if len(args) == 1 {
			v, err := strconv.Atoi(args[0])
			if err != nil || v < 1 {
				return fmt.Errorf("n debe ser un entero positivo: %q", args[0])
			}
			n = v
		}
		return withMigrator(func(m *postgres.Migrator) error {
			if err := m.Down(n); err != nil {
				return err
			}
			return printVersion(cmd, m)
		})
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Muestra la versión actual del esquema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *postgres.Migrator) error {
			return printVersion(cmd, m)
		})
	},
}

func withMigrator(fn func(m *postgres.Migrator) error) error {
	m, err := postgres.NewMigrator(cfg.DB.ConnectionString())
	if err != nil {
		return err
	}
	defer m.Close()
	return fn(m)
}

func printVersion(cmd *cobra.Command, m *postgres.Migrator) error {
	v, dirty, err := m.Version()
	if err != nil {
		return err
	}
	cmd.Printf("versión del esquema: %d (dirty=%t)\n", v, dirty)
	return nil
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateVersionCmd)
	rootCmd.AddCommand(migrateCmd)
}
