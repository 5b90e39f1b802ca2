package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JoseMolina94/youtube-api-integration/internal/domain"
)

// userColumns must match the Scan order in scanUser.
const userColumns = `id, name, email, password_hash, favorites, see_later, created_at, updated_at`

// uniqueViolation is the PostgreSQL SQLSTATE for unique constraint violations.
const uniqueViolation = "23505"

// listColumns maps the closed domain.List enum to column names. Queries are
// built only from this map, never from caller input.
var listColumns = map[domain.List]string{
	domain.ListFavorites: "favorites",
	domain.ListSeeLater:  "see_later",
}

// UserRepo implements domain.UserRepository backed by PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepo creates a UserRepo from the shared connection pool.
func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Favorites, &user.SeeLater,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &user, nil
}

func (r *UserRepo) Create(ctx context.Context, name, email, passwordHash string) (*domain.User, error) {
	user, err := scanUser(r.pool.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING `+userColumns,
		name, email, passwordHash))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (r *UserRepo) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, userID))
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

// AddToList appends itemID to the given list unless already present, as one
// atomic statement. The CASE guard makes the operation idempotent without a
// prior read, so concurrent adds for the same user cannot lose updates.
func (r *UserRepo) AddToList(ctx context.Context, userID uuid.UUID, list domain.List, itemID string) ([]string, error) {
	col, ok := listColumns[list]
	if !ok {
		return nil, domain.ErrUnknownList
	}

	var items []string
	err := r.pool.QueryRow(ctx, fmt.Sprintf(`
		UPDATE users
		SET %[1]s = CASE WHEN $2 = ANY(%[1]s) THEN %[1]s ELSE array_append(%[1]s, $2) END,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING %[1]s
	`, col), userID, itemID).Scan(&items)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to add to %s: %w", col, err)
	}
	return items, nil
}

// RemoveFromList removes all occurrences of itemID from the given list as one
// atomic statement; absent items are a no-op.
func (r *UserRepo) RemoveFromList(ctx context.Context, userID uuid.UUID, list domain.List, itemID string) ([]string, error) {
	col, ok := listColumns[list]
	if !ok {
		return nil, domain.ErrUnknownList
	}

	var items []string
	err := r.pool.QueryRow(ctx, fmt.Sprintf(`
		UPDATE users
		SET %[1]s = array_remove(%[1]s, $2), updated_at = NOW()
		WHERE id = $1
		RETURNING %[1]s
	`, col), userID, itemID).Scan(&items)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to remove from %s: %w", col, err)
	}
	return items, nil
}

func (r *UserRepo) GetList(ctx context.Context, userID uuid.UUID, list domain.List) ([]string, error) {
	col, ok := listColumns[list]
	if !ok {
		return nil, domain.ErrUnknownList
	}

	var items []string
	err := r.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, col), userID).Scan(&items)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", col, err)
	}
	return items, nil
}
