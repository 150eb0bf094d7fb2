package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Estacionamientos-api/internal/domain"
	"github.com/jhoicas/Estacionamientos-api/internal/domain/entity"
	"github.com/jhoicas/Estacionamientos-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, name, username, normalized_username, email, normalized_email, phone, password_hash, role, status, created_at, updated_at`

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.Name, user.Username, user.NormalizedUsername, user.Email, user.NormalizedEmail,
		nullIfEmpty(user.Phone), user.PasswordHash, user.Role, user.Status, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// FindByNormalizedIdentifier busca por email o username normalizado.
func (r *UserRepo) FindByNormalizedIdentifier(ctx context.Context, identifier string) (*entity.User, error) {
	return r.findOne(ctx, `
		SELECT `+userColumns+` FROM users
		WHERE normalized_email = $1 OR normalized_username = $1
		LIMIT 1`, identifier)
}

// ExistsByNormalized indica si ya existe un usuario con ese email o ese username.
func (r *UserRepo) ExistsByNormalized(ctx context.Context, email, username string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE normalized_email = $1 OR normalized_username = $2)`,
		email, username,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists user: %w", err)
	}
	return exists, nil
}

func (r *UserRepo) findOne(ctx context.Context, query string, args ...any) (*entity.User, error) {
	var u entity.User
	var phone *string
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.Name, &u.Username, &u.NormalizedUsername, &u.Email, &u.NormalizedEmail,
		&phone, &u.PasswordHash, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if phone != nil {
		u.Phone = *phone
	}
	return &u, nil
}
