// tracker es la CLI de operación: migraciones, datos de demostración y alta del administrador.
//
// Uso:
//
//	tracker migrate up|down [n]|version
//	tracker seed [--seed 42] [--actor admin]
//	tracker create-admin --username admin --password <secreto>
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

func main() {
	// .env es opcional: las variables pueden venir del entorno
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
