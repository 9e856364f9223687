package user

import (
	"strings"
	"time"

	"gigboard/internal/common"
)

type User struct {
	ID           common.UUID `db:"id"`
	Name         string      `db:"name"`
	Email        string      `db:"email"`
	PasswordHash string      `db:"password_hash"`
	CreatedAt    time.Time   `db:"created_at"`
}

// NormalizeEmail is applied before every store or lookup so that
// registration and login agree on case and surrounding whitespace.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
