package entity

import (
	"time"

	"github.com/google/uuid"
)

// Supplier is a reference entity describing where ingredients are purchased.
type Supplier struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	TaxID     string    // Company registration number, free-form.
	ClientID  uuid.UUID // Owning client account.
	CreatedAt time.Time
	UpdatedAt time.Time
}
