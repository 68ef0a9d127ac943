package postgres

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"github.com/jhoicas/despachosys-api/migrations"
	"github.com/jhoicas/despachosys-api/pkg/config"
	"github.com/jhoicas/despachosys-api/pkg/logger"
)

// gooseLogger adapta el logger de la app a goose.Logger.
type gooseLogger struct {
	log *logger.Logger
}

func (g gooseLogger) Printf(format string, v ...interface{}) {
	g.log.Info().Msgf(format, v...)
}

func (g gooseLogger) Fatalf(format string, v ...interface{}) {
	g.log.Fatal().Msgf(format, v...)
}

// Migrator aplica el esquema embebido en migrations.FS vía goose (driver lib/pq).
type Migrator struct {
	db *sql.DB
}

// NewMigrator abre una conexión database/sql dedicada a las migraciones.
func NewMigrator(cfg config.DBConfig, log *logger.Logger) (*Migrator, error) {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(gooseLogger{log: log})
	db, err := goose.OpenDBWithDriver("postgres", cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("abrir conexión de migraciones: %w", mapError(err))
	}
	return &Migrator{db: db}, nil
}

// Up aplica todas las migraciones pendientes.
func (m *Migrator) Up() error {
	if err := goose.Up(m.db, "."); err != nil {
		return fmt.Errorf("goose up: %w", mapError(err))
	}
	return nil
}

// Down revierte la última migración.
func (m *Migrator) Down() error {
	if err := goose.Down(m.db, "."); err != nil {
		return fmt.Errorf("goose down: %w", mapError(err))
	}
	return nil
}

// Status imprime el estado de cada migración.
func (m *Migrator) Status() error {
	return goose.Status(m.db, ".")
}

// Version devuelve la versión actual del esquema.
func (m *Migrator) Version() (int64, error) {
	return goose.GetDBVersion(m.db)
}

// Close cierra la conexión.
func (m *Migrator) Close() error {
	return m.db.Close()
}
