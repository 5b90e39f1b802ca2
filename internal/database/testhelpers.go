package database

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/JoseMolina94/youtube-api-integration/internal/domain"
)

// CreateTestUser is a helper that creates a user with default values for testing.
// Returns the created user.
func CreateTestUser(t *testing.T, pool *pgxpool.Pool, email string) *domain.User {
	t.Helper()

	repo := NewUserRepo(pool)
	ctx := context.Background()

	user, err := repo.Create(ctx, "Test User", email, "$2a$10$fakefakefakefakefakefakefakefakefakefakefakefakefakef")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, user.ID)

	return user
}
