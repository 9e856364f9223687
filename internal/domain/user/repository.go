package user

import (
	"context"

	"gigboard/internal/common"
)

type Repository interface {
	Create(ctx context.Context, u User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id common.UUID) (*User, error)
}
