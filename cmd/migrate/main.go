// migrate aplica o revierte el esquema embebido.
//
// Uso: go run ./cmd/migrate [up|down|status|version]
package main

import (
	"fmt"
	"os"

	"github.com/jhoicas/despachosys-api/internal/infrastructure/postgres"
	"github.com/jhoicas/despachosys-api/pkg/config"
	"github.com/jhoicas/despachosys-api/pkg/logger"
)

func main() {
	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, Service: "migrate"})

	m, err := postgres.NewMigrator(cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir conexión")
	}
	defer m.Close()

	switch cmd {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	case "status":
		err = m.Status()
	case "version":
		var v int64
		v, err = m.Version()
		if err == nil {
			fmt.Println(v)
		}
	default:
		fmt.Fprintf(os.Stderr, "Comando desconocido: %s (up|down|status|version)\n", cmd)
		os.Exit(2)
	}
	if err != nil {
		log.Error().Err(err).Str("cmd", cmd).Msg("migración fallida")
		os.Exit(1)
	}
}
