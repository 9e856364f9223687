package gig

import (
	"time"

	"gigboard/internal/common"
)

// StatusOpen is the status every freshly posted gig starts with. Status is
// deliberately free-form text rather than an enum; nothing downstream
// constrains it.
const StatusOpen = "open"

type Gig struct {
	ID            common.UUID `db:"id"`
	OwnerID       common.UUID `db:"owner_id"`
	Title         string      `db:"title"`
	EmployerName  string      `db:"employer_name"`
	Location      string      `db:"location"`
	Pay           string      `db:"pay"`
	Duration      string      `db:"duration"`
	WorkersNeeded int         `db:"workers_needed"`
	JobType       string      `db:"job_type"`
	Skills        string      `db:"skills"`
	Schedule      string      `db:"schedule"`
	ContactInfo   string      `db:"contact_info"`
	Description   string      `db:"description"`
	Status        string      `db:"status"`
	CreatedAt     time.Time   `db:"created_at"`
}

func IsValidJobType(jobType string) bool {
	switch jobType {
	case "", "full-time", "part-time", "contract", "temporary":
		return true
	default:
		return false
	}
}
