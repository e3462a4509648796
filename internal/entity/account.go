package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the owner of extractions and items. Accounts are referenced by
// notifications and created lazily on first sight.
type Account struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}
