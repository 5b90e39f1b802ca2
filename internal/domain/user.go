package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// List identifies one of the two per-user membership lists.
type List string

const (
	ListFavorites List = "favorites"
	ListSeeLater  List = "see_later"
)

// Valid reports whether l is one of the known lists.
func (l List) Valid() bool {
	return l == ListFavorites || l == ListSeeLater
}

type User struct {
	ID    uuid.UUID `db:"id" json:"id"`
	Name  string    `db:"name" json:"name"`
	Email string    `db:"email" json:"email"`
	// PasswordHash is write-only from the API's perspective: it is set at
	// registration, compared at login, and never serialized in responses.
	PasswordHash string    `db:"password_hash" json:"-"`
	Favorites    []string  `db:"favorites" json:"favorites"`
	SeeLater     []string  `db:"see_later" json:"see_later"`
	CreatedAt    time.Time `db:"created_at" json:"-"`
	UpdatedAt    time.Time `db:"updated_at" json:"-"`
}

type UserRepository interface {
	Create(ctx context.Context, name, email, passwordHash string) (*User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)

	// List mutations are single atomic statements at the storage layer.
	// Concurrent add/remove calls for the same user must never lose updates,
	// so read-modify-write is not allowed here.
	AddToList(ctx context.Context, userID uuid.UUID, list List, itemID string) ([]string, error)
	RemoveFromList(ctx context.Context, userID uuid.UUID, list List, itemID string) ([]string, error)
	GetList(ctx context.Context, userID uuid.UUID, list List) ([]string, error)
}
