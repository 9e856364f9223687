package app

import (
	"context"
	"strings"

	"gigboard/internal/common"
	"gigboard/internal/domain/application"
	"gigboard/internal/domain/gig"
)

type ApplicationService struct {
	repo application.Repository
	gigs gig.Repository
}

func NewApplicationService(repo application.Repository, gigs gig.Repository) *ApplicationService {
	return &ApplicationService{repo: repo, gigs: gigs}
}

type ApplyResult struct {
	Application *application.Application
	// AlreadyApplied is set when the worker had applied before; the
	// existing application is returned untouched.
	AlreadyApplied bool
}

// Apply creates a PENDING application for (gig, worker). Applying twice is
// idempotent: the store's uniqueness constraint rejects the insert and the
// existing row is reported instead.
func (s *ApplicationService) Apply(ctx context.Context, workerID, gigID common.UUID, message string) (*ApplyResult, error) {
	if _, err := s.gigs.GetByID(ctx, gigID); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, application.Application{
		GigID:    gigID,
		WorkerID: workerID,
		Message:  strings.TrimSpace(message),
		Status:   application.StatusPending,
	})
	if err == nil {
		return &ApplyResult{Application: created}, nil
	}
	if !common.Is(err, common.CodeConflict) {
		return nil, err
	}
	existing, findErr := s.repo.FindByGigAndWorker(ctx, gigID, workerID)
	if findErr != nil {
		return nil, findErr
	}
	return &ApplyResult{Application: existing, AlreadyApplied: true}, nil
}

// SetStatus moves an application to ACCEPTED or REJECTED. Only the owner of
// the gig may decide. There is no guard against re-deciding an application
// that is already terminal: the last decision wins.
func (s *ApplicationService) SetStatus(ctx context.Context, actorID, applicationID common.UUID, status application.Status) (*application.Application, error) {
	if status != application.StatusAccepted && status != application.StatusRejected {
		return nil, common.NewError(common.CodeValidation, "invalid status", nil)
	}
	app, err := s.repo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	g, err := s.gigs.GetByID(ctx, app.GigID)
	if err != nil {
		return nil, err
	}
	if g.OwnerID != actorID {
		return nil, common.NewError(common.CodeForbidden, "Not allowed.", nil)
	}
	if err := s.repo.UpdateStatus(ctx, applicationID, status); err != nil {
		return nil, err
	}
	app.Status = status
	return app, nil
}

// Inbox holds both sides of a user's application traffic, bucketed by
// status, each bucket newest-first.
type Inbox struct {
	MyPending  []application.WorkerInboxItem
	MyAccepted []application.WorkerInboxItem
	MyRejected []application.WorkerInboxItem

	ReceivedPending  []application.OwnerInboxItem
	ReceivedAccepted []application.OwnerInboxItem
	ReceivedRejected []application.OwnerInboxItem
}

func (s *ApplicationService) Inbox(ctx context.Context, userID common.UUID) (*Inbox, error) {
	mine, err := s.repo.ListForWorker(ctx, userID)
	if err != nil {
		return nil, err
	}
	received, err := s.repo.ListForOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	inbox := &Inbox{}
	for _, item := range mine {
		switch item.Status {
		case application.StatusAccepted:
			inbox.MyAccepted = append(inbox.MyAccepted, item)
		case application.StatusRejected:
			inbox.MyRejected = append(inbox.MyRejected, item)
		default:
			inbox.MyPending = append(inbox.MyPending, item)
		}
	}
	for _, item := range received {
		switch item.Status {
		case application.StatusAccepted:
			inbox.ReceivedAccepted = append(inbox.ReceivedAccepted, item)
		case application.StatusRejected:
			inbox.ReceivedRejected = append(inbox.ReceivedRejected, item)
		default:
			inbox.ReceivedPending = append(inbox.ReceivedPending, item)
		}
	}
	return inbox, nil
}
