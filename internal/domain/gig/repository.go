package gig

import (
	"context"

	"gigboard/internal/common"
)

type Repository interface {
	Create(ctx context.Context, g Gig) (*Gig, error)
	GetByID(ctx context.Context, id common.UUID) (*Gig, error)
	// ListNewest returns gigs ordered newest-first; limit 0 means all.
	ListNewest(ctx context.Context, limit int) ([]Gig, error)
	ListByOwner(ctx context.Context, ownerID common.UUID, limit int) ([]Gig, error)
}
