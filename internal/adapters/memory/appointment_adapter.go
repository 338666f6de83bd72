package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/doodledaron/findcare/backend/internal/domain/entities"
	"github.com/doodledaron/findcare/backend/pkg/errors"
)

// AppointmentAdapter is an in-memory implementation of AppointmentRepository.
// Records are kept in creation order so listings read oldest-first.
type AppointmentAdapter struct {
	mu           sync.RWMutex
	appointments []*entities.Appointment
	byID         map[string]*entities.Appointment
}

// NewAppointmentAdapter creates an empty store.
func NewAppointmentAdapter() *AppointmentAdapter {
	return &AppointmentAdapter{byID: make(map[string]*entities.Appointment)}
}

// Create saves a new appointment.
func (a *AppointmentAdapter) Create(ctx context.Context, appointment *entities.Appointment) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, exists := a.byID[appointment.ID]; exists {
		return errors.NewConflictError("appointment already exists")
	}
	stored := *appointment
	a.appointments = append(a.appointments, &stored)
	a.byID[stored.ID] = &stored
	return nil
}

// GetByID retrieves one appointment.
func (a *AppointmentAdapter) GetByID(ctx context.Context, id string) (*entities.Appointment, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	appt, ok := a.byID[id]
	if !ok {
		return nil, errors.NewNotFoundError("appointment not found")
	}
	copied := *appt
	return &copied, nil
}

// Update overwrites an existing appointment in place.
func (a *AppointmentAdapter) Update(ctx context.Context, appointment *entities.Appointment) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	stored, ok := a.byID[appointment.ID]
	if !ok {
		return errors.NewNotFoundError("appointment not found")
	}
	*stored = *appointment
	return nil
}

// ListByPatientEmail returns every appointment booked under the email,
// matched case-insensitively.
func (a *AppointmentAdapter) ListByPatientEmail(ctx context.Context, email string) ([]*entities.Appointment, error) {
	return a.listWhere(func(appt *entities.Appointment) bool {
		return strings.EqualFold(appt.PatientEmail, email)
	}), nil
}

// ListByDoctor returns every appointment for a doctor.
func (a *AppointmentAdapter) ListByDoctor(ctx context.Context, doctorID string) ([]*entities.Appointment, error) {
	return a.listWhere(func(appt *entities.Appointment) bool {
		return appt.DoctorID == doctorID
	}), nil
}

// ListByHospital returns every appointment at a hospital.
func (a *AppointmentAdapter) ListByHospital(ctx context.Context, hospitalID string) ([]*entities.Appointment, error) {
	return a.listWhere(func(appt *entities.Appointment) bool {
		return appt.HospitalID == hospitalID
	}), nil
}

func (a *AppointmentAdapter) listWhere(keep func(*entities.Appointment) bool) []*entities.Appointment {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var out []*entities.Appointment
	for _, appt := range a.appointments {
		if keep(appt) {
			copied := *appt
			out = append(out, &copied)
		}
	}
	return out
}
