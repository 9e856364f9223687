package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"gigboard/internal/common"
	"gigboard/internal/domain/gig"
)

const gigColumns = `id, owner_id, title, employer_name, location, pay, duration, workers_needed,
	job_type, skills, schedule, contact_info, description, status, created_at`

type GigRepository struct {
	db *sqlx.DB
}

func NewGigRepository(db *sqlx.DB) *GigRepository {
	return &GigRepository{db: db}
}

func (r *GigRepository) Create(ctx context.Context, g gig.Gig) (*gig.Gig, error) {
	g.ID = common.NewUUID()
	g.CreatedAt = time.Now().UTC()
	if g.Status == "" {
		g.Status = gig.StatusOpen
	}
	if g.WorkersNeeded <= 0 {
		g.WorkersNeeded = 1
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO gigs (`+gigColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		g.ID, g.OwnerID, g.Title, g.EmployerName, g.Location, g.Pay, g.Duration, g.WorkersNeeded,
		g.JobType, g.Skills, g.Schedule, g.ContactInfo, g.Description, g.Status, g.CreatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create gig", err)
	}
	return &g, nil
}

func (r *GigRepository) GetByID(ctx context.Context, id common.UUID) (*gig.Gig, error) {
	var g gig.Gig
	err := r.db.GetContext(ctx, &g, `SELECT `+gigColumns+` FROM gigs WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "gig not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load gig", err)
	}
	return &g, nil
}

func (r *GigRepository) ListNewest(ctx context.Context, limit int) ([]gig.Gig, error) {
	query := `SELECT ` + gigColumns + ` FROM gigs ORDER BY created_at DESC`
	var err error
	var items []gig.Gig
	if limit > 0 {
		err = r.db.SelectContext(ctx, &items, query+` LIMIT $1`, limit)
	} else {
		err = r.db.SelectContext(ctx, &items, query)
	}
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list gigs", err)
	}
	return items, nil
}

func (r *GigRepository) ListByOwner(ctx context.Context, ownerID common.UUID, limit int) ([]gig.Gig, error) {
	query := `SELECT ` + gigColumns + ` FROM gigs WHERE owner_id = $1 ORDER BY created_at DESC`
	var err error
	var items []gig.Gig
	if limit > 0 {
		err = r.db.SelectContext(ctx, &items, query+` LIMIT $2`, ownerID, limit)
	} else {
		err = r.db.SelectContext(ctx, &items, query, ownerID)
	}
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list owner gigs", err)
	}
	return items, nil
}
