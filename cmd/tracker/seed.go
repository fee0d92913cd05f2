package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/pos-tracker/internal/application/inventory"
	appseed "github.com/jhoicas/pos-tracker/internal/application/seed"
	"github.com/jhoicas/pos-tracker/internal/application/usecase"
	"github.com/jhoicas/pos-tracker/internal/infrastructure/postgres"
)

var (
	seedValue uint64
	seedActor string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Carga marcas, artículos y movimientos de demostración",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		pool, err := openPool(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		userRepo := postgres.NewUserRepository(pool)
		actor, err := userRepo.GetByUsername(ctx, seedActor)
		if err != nil {
			return err
		}
		if actor == nil {
			return fmt.Errorf("usuario %q no existe; ejecute primero create-admin", seedActor)
		}

		brandRepo := postgres.NewBrandRepository(pool)
		itemRepo := postgres.NewInventoryItemRepository(pool)
		adjustments := inventory.NewAdjustmentUseCase(
			postgres.NewTxRunner(pool, cfg.Inventory.LockTimeout), nil,
			inventory.Options{LockTimeout: cfg.Inventory.LockTimeout, MaxRetries: cfg.Inventory.MaxRetries},
		)
		itemUC := usecase.NewItemUseCase(itemRepo, brandRepo, adjustments, nil)

		sum, err := appseed.New(brandRepo, itemUC, adjustments, seedValue).Run(ctx, actor.ID)
		if err != nil {
			return err
		}
		cmd.Printf("marcas nuevas: %d\nartículos: %d\najustes: %d\n", sum.Brands, sum.Items, sum.Adjustments)
		return nil
	},
}

func init() {
	seedCmd.Flags().Uint64Var(&seedValue, "seed", 0, "Semilla del generador (0 = aleatoria)")
	seedCmd.Flags().StringVar(&seedActor, "actor", "admin", "Usuario que queda como autor de los ajustes")
	rootCmd.AddCommand(seedCmd)
}
