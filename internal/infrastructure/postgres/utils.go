package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/despachosys-api/internal/domain"
)

// Códigos SQLSTATE que se traducen a errores de dominio.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeOutOfRange          = "22003" // numeric_value_out_of_range (p. ej. BIGINT desbordado)
	codeInvalidText         = "22P02"
)

// isForeignKeyViolation verifica si un error es una violación de FK (23503).
func isForeignKeyViolation(err error) bool {
	return pgCode(err) == codeForeignKeyViolation
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUnavailable detecta fallos de conexión con el almacenamiento: errores de dial,
// de red, clase SQLSTATE 08 (connection exception) y 57P0x (apagado del servidor).
func isUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	code := pgCode(err)
	if strings.HasPrefix(code, "08") || strings.HasPrefix(code, "57P0") {
		return true
	}
	return strings.Contains(err.Error(), "closed pool")
}

// mapError traduce errores de pgx a errores de dominio conservando el mensaje original.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	switch pgCode(err) {
	case codeUniqueViolation:
		return fmt.Errorf("%w: %v", domain.ErrDuplicate, err)
	case codeForeignKeyViolation:
		return fmt.Errorf("%w: referencia inexistente: %v", domain.ErrNotFound, err)
	case codeCheckViolation, codeOutOfRange, codeInvalidText:
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if isUnavailable(err) {
		return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	return err
}

// mapDeleteError como mapError, pero una FK violada al borrar significa que la fila
// sigue referenciada por otros registros.
func mapDeleteError(err error) error {
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: %v", domain.ErrConflict, err)
	}
	return mapError(err)
}
