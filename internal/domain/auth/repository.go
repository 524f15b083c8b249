package auth

import "context"

type Repository interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	Create(ctx context.Context, user *User) error
	CountByUsername(ctx context.Context, username string) (int64, error)
}
