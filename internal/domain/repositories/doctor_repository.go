package repositories

import (
	"context"

	"github.com/doodledaron/findcare/backend/internal/domain/entities"
)

// DoctorSortKey selects the ordering for doctor lists
type DoctorSortKey string

const (
	// SortByRating orders descending by rating
	SortByRating DoctorSortKey = "rating"
	// SortByWait orders ascending by queue depth
	SortByWait DoctorSortKey = "wait"
	// SortByExperience orders descending by years of experience
	SortByExperience DoctorSortKey = "experience"
)

// DoctorSearchParams narrows a doctor search. Zero-valued fields impose no
// constraint; present fields compose by logical AND.
type DoctorSearchParams struct {
	Department         string
	Specialty          string
	HospitalID         int
	Availability       bool
	MinRating          float64
	MinExperienceYears int
	Language           string
}

// DoctorRepository defines the interface for doctor record-store operations
type DoctorRepository interface {
	// List returns every doctor in the store
	List(ctx context.Context) ([]*entities.Doctor, error)

	// GetByID retrieves a doctor by ID
	GetByID(ctx context.Context, id int) (*entities.Doctor, error)

	// Search returns doctors matching params, preserving store order
	Search(ctx context.Context, params DoctorSearchParams) ([]*entities.Doctor, error)

	// BookSlot removes slot from the doctor's availability and increments the
	// queue depth. It reports false, without error, when the slot is not
	// currently available.
	BookSlot(ctx context.Context, doctorID int, slot string) (bool, error)

	// ReleaseSlot returns slot to the doctor's availability and decrements
	// the queue depth, flooring at zero.
	ReleaseSlot(ctx context.Context, doctorID int, slot string) error
}
