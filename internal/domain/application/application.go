package application

import (
	"time"

	"gigboard/internal/common"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
	StatusRejected Status = "REJECTED"
)

type Application struct {
	ID        common.UUID `db:"id"`
	GigID     common.UUID `db:"gig_id"`
	WorkerID  common.UUID `db:"worker_id"`
	Message   string      `db:"message"`
	Status    Status      `db:"status"`
	CreatedAt time.Time   `db:"created_at"`
}

// WorkerInboxItem is an application joined with the gig it targets, for
// the "what I applied to" side of the inbox.
type WorkerInboxItem struct {
	Application
	GigTitle     string `db:"gig_title"`
	EmployerName string `db:"employer_name"`
	GigLocation  string `db:"gig_location"`
	GigPay       string `db:"gig_pay"`
}

// OwnerInboxItem is an application joined with the gig and the applicant,
// for the "who applied to my postings" side.
type OwnerInboxItem struct {
	Application
	GigTitle    string `db:"gig_title"`
	WorkerName  string `db:"worker_name"`
	WorkerEmail string `db:"worker_email"`
}
