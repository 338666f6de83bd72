package repositories

import (
	"context"

	"github.com/doodledaron/findcare/backend/internal/domain/entities"
)

// AppointmentRepository defines the interface for appointment persistence
type AppointmentRepository interface {
	// Create saves a new appointment
	Create(ctx context.Context, appointment *entities.Appointment) error

	// GetByID retrieves an appointment by ID
	GetByID(ctx context.Context, id string) (*entities.Appointment, error)

	// Update overwrites an existing appointment
	Update(ctx context.Context, appointment *entities.Appointment) error

	// ListByPatientEmail returns every appointment booked under the email
	ListByPatientEmail(ctx context.Context, email string) ([]*entities.Appointment, error)

	// ListByDoctor returns every appointment for a doctor
	ListByDoctor(ctx context.Context, doctorID string) ([]*entities.Appointment, error)

	// ListByHospital returns every appointment at a hospital
	ListByHospital(ctx context.Context, hospitalID string) ([]*entities.Appointment, error)
}
