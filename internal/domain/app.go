package domain

import (
	"context"

	"github.com/google/uuid"
)

// AppService is the application layer consumed by the HTTP surface.
type AppService interface {
	Register(ctx context.Context, name, email, password string) (*User, error)
	Login(ctx context.Context, email, password string) (token string, user *User, err error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*User, error)

	AddListItem(ctx context.Context, userID uuid.UUID, list List, itemID string) ([]string, error)
	RemoveListItem(ctx context.Context, userID uuid.UUID, list List, itemID string) ([]string, error)
	ListItems(ctx context.Context, userID uuid.UUID, list List) ([]string, error)
}
