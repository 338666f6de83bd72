package services

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/doodledaron/findcare/backend/internal/domain/entities"
	"github.com/doodledaron/findcare/backend/internal/domain/repositories"
	apperrors "github.com/doodledaron/findcare/backend/pkg/errors"
	"github.com/doodledaron/findcare/backend/pkg/validate"
)

// CreateAppointmentRequest carries the patient's booking form
type CreateAppointmentRequest struct {
	PatientName  string `json:"patient_name"`
	PatientEmail string `json:"patient_email"`
	PatientPhone string `json:"patient_phone"`
	DoctorID     int    `json:"doctor_id"`
	Date         string `json:"appointment_date"`
	Time         string `json:"appointment_time"`
	Notes        string `json:"notes"`
}

// AppointmentService handles the booking lifecycle: create, cancel,
// reschedule and status changes, keeping doctor slots in sync.
type AppointmentService struct {
	repo         repositories.AppointmentRepository
	doctorRepo   repositories.DoctorRepository
	hospitalRepo repositories.HospitalRepository
	queue        *QueueService
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(
	repo repositories.AppointmentRepository,
	doctorRepo repositories.DoctorRepository,
	hospitalRepo repositories.HospitalRepository,
	queue *QueueService,
) *AppointmentService {
	return &AppointmentService{
		repo:         repo,
		doctorRepo:   doctorRepo,
		hospitalRepo: hospitalRepo,
		queue:        queue,
	}
}

// Create validates the booking form, claims the doctor's slot and stores
// the appointment with doctor and hospital details denormalized in.
func (s *AppointmentService) Create(ctx context.Context, req *CreateAppointmentRequest) (*entities.Appointment, error) {
	if err := validateBookingForm(req); err != nil {
		return nil, err
	}

	doctor, err := s.doctorRepo.GetByID(ctx, req.DoctorID)
	if err != nil {
		return nil, err
	}

	hospital, err := s.hospitalRepo.GetByID(ctx, doctor.HospitalID)
	if err != nil {
		return nil, err
	}

	booked, err := s.doctorRepo.BookSlot(ctx, req.DoctorID, req.Time)
	if err != nil {
		return nil, err
	}
	if !booked {
		return nil, apperrors.NewConflictError("slot is no longer available")
	}

	now := time.Now()
	appointment := &entities.Appointment{
		ID:           uuid.New().String(),
		PatientName:  strings.TrimSpace(req.PatientName),
		PatientEmail: strings.TrimSpace(req.PatientEmail),
		PatientPhone: strings.TrimSpace(req.PatientPhone),
		HospitalID:   strconv.Itoa(hospital.ID),
		HospitalName: hospital.Name,
		DoctorID:     strconv.Itoa(doctor.ID),
		DoctorName:   doctor.Name,
		Department:   doctor.Department,
		Date:         req.Date,
		Time:         req.Time,
		Notes:        strings.TrimSpace(req.Notes),
		Status:       entities.AppointmentStatusScheduled,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		// Undo the slot claim so a storage failure does not leak a booking.
		_ = s.doctorRepo.ReleaseSlot(ctx, req.DoctorID, req.Time)
		return nil, err
	}

	if s.queue != nil {
		s.queue.NotifyBooked(ctx, req.DoctorID, req.Time)
	}
	return appointment, nil
}

// GetByID retrieves an appointment by ID
func (s *AppointmentService) GetByID(ctx context.Context, id string) (*entities.Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

// ByPatientEmail returns the patient's appointments
func (s *AppointmentService) ByPatientEmail(ctx context.Context, email string) ([]*entities.Appointment, error) {
	return s.repo.ListByPatientEmail(ctx, email)
}

// ByDoctor returns a doctor's appointments
func (s *AppointmentService) ByDoctor(ctx context.Context, doctorID string) ([]*entities.Appointment, error) {
	return s.repo.ListByDoctor(ctx, doctorID)
}

// ByHospital returns a hospital's appointments
func (s *AppointmentService) ByHospital(ctx context.Context, hospitalID string) ([]*entities.Appointment, error) {
	return s.repo.ListByHospital(ctx, hospitalID)
}

// UpdateStatus moves the appointment to a new status. Cancelling through
// here frees the slot the same way Cancel does.
func (s *AppointmentService) UpdateStatus(ctx context.Context, id string, status entities.AppointmentStatus) (*entities.Appointment, error) {
	if !entities.ValidAppointmentStatus(status) {
		return nil, apperrors.NewValidationError("unknown appointment status")
	}
	if status == entities.AppointmentStatusCancelled {
		return s.Cancel(ctx, id)
	}

	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	appointment.Status = status
	appointment.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// Cancel cancels the appointment and returns the slot to the doctor
func (s *AppointmentService) Cancel(ctx context.Context, id string) (*entities.Appointment, error) {
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment.Status == entities.AppointmentStatusCancelled {
		return nil, apperrors.NewConflictError("appointment is already cancelled")
	}

	appointment.Status = entities.AppointmentStatusCancelled
	appointment.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, appointment); err != nil {
		return nil, err
	}

	doctorID, convErr := strconv.Atoi(appointment.DoctorID)
	if convErr == nil {
		_ = s.doctorRepo.ReleaseSlot(ctx, doctorID, appointment.Time)
		if s.queue != nil {
			s.queue.NotifyCancelled(ctx, doctorID, appointment.Time)
		}
	}
	return appointment, nil
}

// Reschedule moves the appointment to a new date/time. The new slot must
// be free; the old one is released only after the new one is claimed.
func (s *AppointmentService) Reschedule(ctx context.Context, id, newDate, newTime string) (*entities.Appointment, error) {
	if !validate.Date(newDate) {
		return nil, apperrors.NewValidationError("invalid appointment date")
	}
	if !validate.ClockTime(newTime) {
		return nil, apperrors.NewValidationError("invalid appointment time")
	}

	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !appointment.Active() {
		return nil, apperrors.NewConflictError("cannot reschedule a cancelled appointment")
	}

	doctorID, err := strconv.Atoi(appointment.DoctorID)
	if err != nil {
		return nil, apperrors.NewInternalError("appointment has a malformed doctor id", err)
	}

	booked, err := s.doctorRepo.BookSlot(ctx, doctorID, newTime)
	if err != nil {
		return nil, err
	}
	if !booked {
		return nil, apperrors.NewConflictError("requested slot is not available")
	}

	oldTime := appointment.Time
	appointment.Date = newDate
	appointment.Time = newTime
	appointment.Status = entities.AppointmentStatusScheduled
	appointment.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, appointment); err != nil {
		_ = s.doctorRepo.ReleaseSlot(ctx, doctorID, newTime)
		return nil, err
	}

	_ = s.doctorRepo.ReleaseSlot(ctx, doctorID, oldTime)
	return appointment, nil
}

// Upcoming returns the patient's active appointments starting from now,
// soonest first.
func (s *AppointmentService) Upcoming(ctx context.Context, email string) ([]*entities.Appointment, error) {
	appointments, err := s.repo.ListByPatientEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var upcoming []*entities.Appointment
	for _, appt := range appointments {
		if appt.Active() && appt.Status != entities.AppointmentStatusCompleted && appt.StartsAt().After(now) {
			upcoming = append(upcoming, appt)
		}
	}
	sortAppointmentsByStart(upcoming)
	return upcoming, nil
}

// TodayForDoctor returns the doctor's appointments on the current date
func (s *AppointmentService) TodayForDoctor(ctx context.Context, doctorID string) ([]*entities.Appointment, error) {
	appointments, err := s.repo.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	today := time.Now().Format("2006-01-02")
	var todays []*entities.Appointment
	for _, appt := range appointments {
		if appt.Date == today && appt.Active() {
			todays = append(todays, appt)
		}
	}
	sortAppointmentsByStart(todays)
	return todays, nil
}

// History returns the patient's completed and cancelled appointments,
// most recent first.
func (s *AppointmentService) History(ctx context.Context, email string) ([]*entities.Appointment, error) {
	appointments, err := s.repo.ListByPatientEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	var history []*entities.Appointment
	for _, appt := range appointments {
		switch appt.Status {
		case entities.AppointmentStatusCompleted, entities.AppointmentStatusCancelled:
			history = append(history, appt)
		}
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].StartsAt().After(history[j].StartsAt())
	})
	return history, nil
}

func sortAppointmentsByStart(appointments []*entities.Appointment) {
	sort.SliceStable(appointments, func(i, j int) bool {
		return appointments[i].StartsAt().Before(appointments[j].StartsAt())
	})
}

func validateBookingForm(req *CreateAppointmentRequest) error {
	if !validate.TextLength(req.PatientName, 2, 100) {
		return apperrors.NewValidationError("patient name is required")
	}
	if !validate.Email(req.PatientEmail) {
		return apperrors.NewValidationError("invalid patient email")
	}
	if req.PatientPhone != "" && !validate.PhoneNumber(req.PatientPhone) {
		return apperrors.NewValidationError("invalid patient phone number")
	}
	if !validate.Date(req.Date) {
		return apperrors.NewValidationError("invalid appointment date")
	}
	if !validate.ClockTime(req.Time) {
		return apperrors.NewValidationError("invalid appointment time")
	}
	if req.DoctorID <= 0 {
		return apperrors.NewValidationError("doctor id is required")
	}
	return nil
}
