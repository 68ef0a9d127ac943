package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/jhoicas/despachosys-api/internal/domain/entity"
	"github.com/jhoicas/despachosys-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

var userColumns = []string{
	"id", "open_id", "name", "email", "login_method", "role", "created_at", "updated_at", "last_signed_in_at",
}

// UserRepo usuarios sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el repositorio. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return getOne[entity.User](ctx, r.q,
		psql.Select(userColumns...).From("users").Where(squirrel.Eq{"id": id}))
}

func (r *UserRepo) GetByOpenID(ctx context.Context, openID string) (*entity.User, error) {
	return getOne[entity.User](ctx, r.q,
		psql.Select(userColumns...).From("users").Where(squirrel.Eq{"open_id": openID}))
}

// List usuarios más recientes primero.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	return selectAll[entity.User](ctx, r.q,
		psql.Select(userColumns...).From("users").OrderBy("created_at DESC"))
}

func upsertUserQuery(u *entity.User) squirrel.InsertBuilder {
	return psql.Insert("users").
		SetMap(map[string]interface{}{
			"id":                u.ID,
			"open_id":           u.OpenID,
			"name":              u.Name,
			"email":             u.Email,
			"login_method":      u.LoginMethod,
			"role":              u.Role,
			"created_at":        u.CreatedAt,
			"updated_at":        u.UpdatedAt,
			"last_signed_in_at": u.LastSignedInAt,
		}).
		Suffix("ON CONFLICT (open_id) DO UPDATE SET " +
			"name = EXCLUDED.name, email = EXCLUDED.email, login_method = EXCLUDED.login_method, " +
			"last_signed_in_at = EXCLUDED.last_signed_in_at, updated_at = now() " +
			"RETURNING " + strings.Join(userColumns, ", "))
}

// Upsert crea o refresca el usuario por open_id y devuelve la fila resultante.
func (r *UserRepo) Upsert(ctx context.Context, u *entity.User) (*entity.User, error) {
	query, args, err := upsertUserQuery(u).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	var out entity.User
	if err := pgxscan.Get(ctx, r.q, &out, query, args...); err != nil {
		return nil, fmt.Errorf("upsert user: %w", mapError(err))
	}
	return &out, nil
}

func (r *UserRepo) UpdateRole(ctx context.Context, id, role string) error {
	return updateByID(ctx, r.q, "users", id, map[string]interface{}{"role": role})
}
