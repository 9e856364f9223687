package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// migrations run in order at startup. Statements are idempotent so a
// restart against an already-migrated database is a no-op.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS gigs (
		id UUID PRIMARY KEY,
		owner_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		employer_name TEXT NOT NULL,
		location TEXT NOT NULL,
		pay TEXT NOT NULL,
		duration TEXT NOT NULL DEFAULT '',
		workers_needed INTEGER NOT NULL DEFAULT 1 CHECK (workers_needed > 0),
		job_type TEXT NOT NULL DEFAULT '',
		skills TEXT NOT NULL DEFAULT '',
		schedule TEXT NOT NULL DEFAULT '',
		contact_info TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'open',
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_gigs_created_at ON gigs (created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_gigs_owner ON gigs (owner_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS applications (
		id UUID PRIMARY KEY,
		gig_id UUID NOT NULL REFERENCES gigs(id) ON DELETE CASCADE,
		worker_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		message TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'PENDING',
		created_at TIMESTAMPTZ NOT NULL,
		UNIQUE (gig_id, worker_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_applications_worker ON applications (worker_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_applications_gig ON applications (gig_id, created_at DESC)`,
}

func Migrate(ctx context.Context, db *sqlx.DB) error {
	for i, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
