package services

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/doodledaron/findcare/backend/internal/domain/entities"
	"github.com/doodledaron/findcare/backend/internal/domain/providers"
	"github.com/doodledaron/findcare/backend/internal/domain/repositories"
	apperrors "github.com/doodledaron/findcare/backend/pkg/errors"
)

// minutesPerPatient is the modeled consultation length used for wait
// estimates.
const minutesPerPatient = 8

// QueueService derives per-patient queue status and broadcasts queue-depth
// changes over the event bus.
type QueueService struct {
	doctorRepo repositories.DoctorRepository
	apptRepo   repositories.AppointmentRepository
	bus        providers.EventBus
	rng        *rand.Rand
}

// NewQueueService creates a new queue service
func NewQueueService(
	doctorRepo repositories.DoctorRepository,
	apptRepo repositories.AppointmentRepository,
	bus providers.EventBus,
) *QueueService {
	return &QueueService{
		doctorRepo: doctorRepo,
		apptRepo:   apptRepo,
		bus:        bus,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithRand overrides the random source (used for tests).
func (s *QueueService) WithRand(rng *rand.Rand) *QueueService {
	s.rng = rng
	return s
}

// Status estimates the patient's place in the doctor's queue. Position is
// randomized within [1, queue depth] and the wait scales linearly with it;
// this is an estimate shown on the status screen, not a ticketing guarantee.
func (s *QueueService) Status(ctx context.Context, patientEmail string, doctorID int) (*entities.QueueStatus, error) {
	appointments, err := s.apptRepo.ListByPatientEmail(ctx, patientEmail)
	if err != nil {
		return nil, err
	}

	active := false
	for _, appt := range appointments {
		if appt.Active() {
			active = true
			break
		}
	}
	if !active {
		return nil, apperrors.NewNotFoundError("no active appointment for patient")
	}

	doctor, err := s.doctorRepo.GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	position := 0
	if doctor.PatientsInQueue > 0 {
		position = s.rng.Intn(doctor.PatientsInQueue) + 1
	}

	return &entities.QueueStatus{
		DoctorID:             doctorID,
		Position:             position,
		TotalInQueue:         doctor.PatientsInQueue,
		EstimatedWaitMinutes: position * minutesPerPatient,
		LastUpdated:          time.Now(),
	}, nil
}

// NotifyBooked publishes a queue-depth increase for the doctor
func (s *QueueService) NotifyBooked(ctx context.Context, doctorID int, slot string) {
	s.publish(ctx, entities.QueueEventBooked, doctorID, slot)
}

// NotifyCancelled publishes a queue-depth decrease for the doctor
func (s *QueueService) NotifyCancelled(ctx context.Context, doctorID int, slot string) {
	s.publish(ctx, entities.QueueEventCancelled, doctorID, slot)
}

// Events subscribes to the live queue-event stream
func (s *QueueService) Events(ctx context.Context) (<-chan *entities.QueueEvent, error) {
	if s.bus == nil {
		return nil, apperrors.NewInternalError("event bus not configured", nil)
	}
	return s.bus.Subscribe(ctx, providers.QueueChannel)
}

// publish is best-effort: losing an event degrades the live screen, it
// never fails the booking that triggered it.
func (s *QueueService) publish(ctx context.Context, eventType entities.QueueEventType, doctorID int, slot string) {
	if s.bus == nil {
		return
	}

	depth := 0
	if doctor, err := s.doctorRepo.GetByID(ctx, doctorID); err == nil {
		depth = doctor.PatientsInQueue
	}

	event := &entities.QueueEvent{
		ID:              uuid.New().String(),
		Type:            eventType,
		DoctorID:        doctorID,
		PatientsInQueue: depth,
		Slot:            slot,
		Timestamp:       time.Now(),
	}
	if err := s.bus.Publish(ctx, providers.QueueChannel, event); err != nil {
		log.Warn().Err(err).Int("doctor_id", doctorID).Msg("Failed to publish queue event")
	}
}
