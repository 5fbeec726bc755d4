package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a practice participant. Users are provisioned externally (see
// cmd/seeder); this engine only reads them.
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
