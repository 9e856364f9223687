package application

import (
	"context"

	"gigboard/internal/common"
)

type Repository interface {
	// Create inserts a new application. A second application for the same
	// (gig, worker) pair fails with a conflict error.
	Create(ctx context.Context, app Application) (*Application, error)
	GetByID(ctx context.Context, id common.UUID) (*Application, error)
	FindByGigAndWorker(ctx context.Context, gigID, workerID common.UUID) (*Application, error)
	// UpdateStatus persists only the status column.
	UpdateStatus(ctx context.Context, id common.UUID, status Status) error
	ListForWorker(ctx context.Context, workerID common.UUID) ([]WorkerInboxItem, error)
	ListForOwner(ctx context.Context, ownerID common.UUID) ([]OwnerInboxItem, error)
}
