package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/pos-tracker/internal/application/auth"
	"github.com/jhoicas/pos-tracker/internal/infrastructure/postgres"
)

var (
	adminUsername string
	adminEmail    string
	adminPassword string
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Crea el usuario administrador si no existe",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		password := adminPassword
		if password == "" {
			password = os.Getenv("ADMIN_PASSWORD")
		}
		if password == "" {
			return errors.New("--password o ADMIN_PASSWORD es obligatorio")
		}

		ctx := cmd.Context()
		pool, err := openPool(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		authUC := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		})
		user, created, err := authUC.EnsureAdmin(ctx, adminUsername, adminEmail, password)
		if err != nil {
			return err
		}
		if created {
			cmd.Printf("administrador creado: %s (%s)\n", user.Username, user.ID)
		} else {
			cmd.Printf("el usuario %s ya existe, sin cambios\n", user.Username)
		}
		return nil
	},
}

func init() {
	createAdminCmd.Flags().StringVar(&adminUsername, "username", "admin", "Nombre de usuario")
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "admin@example.com", "Email")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "Contraseña (o ADMIN_PASSWORD)")
	rootCmd.AddCommand(createAdminCmd)
}
