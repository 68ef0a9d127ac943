package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/despachosys-api/internal/domain"
)

// psql builder con placeholders $n de PostgreSQL.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// prefixed antepone el alias de tabla a cada columna.
func prefixed(alias string, cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = alias + "." + c
	}
	return out
}

// customerRefColumns columnas de nombre del cliente unido con alias.
func customerRefColumns(alias string) []string {
	return []string{
		"COALESCE(" + alias + ".name, '') AS customer_name",
		"COALESCE(" + alias + ".legal_name, '') AS customer_legal_name",
		"COALESCE(" + alias + ".trade_name, '') AS customer_trade_name",
	}
}

// getOne ejecuta el SELECT y escanea una fila. Devuelve (nil, nil) si no hay filas.
func getOne[T any](ctx context.Context, q Querier, b squirrel.SelectBuilder) (*T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	var out T
	if err := pgxscan.Get(ctx, q, &out, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, mapError(err)
	}
	return &out, nil
}

// selectAll ejecuta el SELECT y escanea todas las filas.
func selectAll[T any](ctx context.Context, q Querier, b squirrel.SelectBuilder) ([]*T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	out := make([]*T, 0)
	if err := pgxscan.Select(ctx, q, &out, query, args...); err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

// exec ejecuta una sentencia sin resultado y devuelve las filas afectadas.
func exec(ctx context.Context, q Querier, b squirrel.Sqlizer) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// insert inserta una fila a partir de un mapa columna -> valor.
func insert(ctx context.Context, q Querier, table string, values map[string]interface{}) error {
	if _, err := exec(ctx, q, psql.Insert(table).SetMap(values)); err != nil {
		return fmt.Errorf("insert %s: %w", table, mapError(err))
	}
	return nil
}

// updateByID actualiza una fila por id. ErrNotFound si no existe.
func updateByID(ctx context.Context, q Querier, table, id string, values map[string]interface{}) error {
	values["updated_at"] = squirrel.Expr("now()")
	n, err := exec(ctx, q, psql.Update(table).SetMap(values).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return fmt.Errorf("update %s: %w", table, mapError(err))
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// deleteByID borra una fila por id. ErrNotFound si no existe; ErrConflict si está referenciada.
func deleteByID(ctx context.Context, q Querier, table, id string) error {
	n, err := exec(ctx, q, psql.Delete(table).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return fmt.Errorf("delete %s: %w", table, mapDeleteError(err))
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// scalar ejecuta una consulta de un único valor.
func scalar(ctx context.Context, q Querier, b squirrel.SelectBuilder, dst any) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	if err := q.QueryRow(ctx, query, args...).Scan(dst); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return mapError(err)
	}
	return nil
}
