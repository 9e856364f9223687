package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"gigboard/internal/common"
	"gigboard/internal/domain/application"
)

const applicationColumns = `id, gig_id, worker_id, message, status, created_at`

type ApplicationRepository struct {
	db *sqlx.DB
}

func NewApplicationRepository(db *sqlx.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	app.ID = common.NewUUID()
	app.CreatedAt = time.Now().UTC()
	if app.Status == "" {
		app.Status = application.StatusPending
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO applications (`+applicationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		app.ID, app.GigID, app.WorkerID, app.Message, app.Status, app.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "already applied", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	var app application.Application
	err := r.db.GetContext(ctx, &app, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) FindByGigAndWorker(ctx context.Context, gigID, workerID common.UUID) (*application.Application, error) {
	var app application.Application
	err := r.db.GetContext(ctx, &app, `SELECT `+applicationColumns+` FROM applications WHERE gig_id = $1 AND worker_id = $2`,
		gigID, workerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id common.UUID, status application.Status) error {
	result, err := r.db.ExecContext(ctx, `UPDATE applications SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to update application", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "application not found", sql.ErrNoRows)
	}
	return nil
}

func (r *ApplicationRepository) ListForWorker(ctx context.Context, workerID common.UUID) ([]application.WorkerInboxItem, error) {
	var items []application.WorkerInboxItem
	err := r.db.SelectContext(ctx, &items, `SELECT a.id, a.gig_id, a.worker_id, a.message, a.status, a.created_at,
			g.title AS gig_title, g.employer_name, g.location AS gig_location, g.pay AS gig_pay
		FROM applications a
		JOIN gigs g ON g.id = a.gig_id
		WHERE a.worker_id = $1
		ORDER BY a.created_at DESC`, workerID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list worker applications", err)
	}
	return items, nil
}

func (r *ApplicationRepository) ListForOwner(ctx context.Context, ownerID common.UUID) ([]application.OwnerInboxItem, error) {
	var items []application.OwnerInboxItem
	err := r.db.SelectContext(ctx, &items, `SELECT a.id, a.gig_id, a.worker_id, a.message, a.status, a.created_at,
			g.title AS gig_title, u.name AS worker_name, u.email AS worker_email
		FROM applications a
		JOIN gigs g ON g.id = a.gig_id
		JOIN users u ON u.id = a.worker_id
		WHERE g.owner_id = $1
		ORDER BY a.created_at DESC`, ownerID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list received applications", err)
	}
	return items, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
