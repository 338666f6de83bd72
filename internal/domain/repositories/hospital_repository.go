package repositories

import (
	"context"

	"github.com/doodledaron/findcare/backend/internal/domain/entities"
)

// HospitalSearchParams narrows a hospital search. Zero-valued fields impose
// no constraint; present fields compose by logical AND.
type HospitalSearchParams struct {
	// Type filters by hospital type; "all" and "" match everything
	Type              string
	Specialty         string
	MaxDistanceKm     float64
	EmergencyServices bool
	MinRating         float64
	Insurance         string
}

// HospitalRepository defines the interface for hospital record-store operations
type HospitalRepository interface {
	// List returns every hospital in the store
	List(ctx context.Context) ([]*entities.Hospital, error)

	// GetByID retrieves a hospital by ID
	GetByID(ctx context.Context, id int) (*entities.Hospital, error)

	// Search returns hospitals matching params, preserving store order
	Search(ctx context.Context, params HospitalSearchParams) ([]*entities.Hospital, error)
}
