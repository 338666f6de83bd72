package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodledaron/findcare/backend/internal/adapters/memory"
	"github.com/doodledaron/findcare/backend/internal/application/services"
	"github.com/doodledaron/findcare/backend/internal/domain/entities"
	apperrors "github.com/doodledaron/findcare/backend/pkg/errors"
)

type appointmentFixture struct {
	service    *services.AppointmentService
	doctors    *memory.DoctorAdapter
	repository *memory.AppointmentAdapter
}

func newAppointmentFixture() *appointmentFixture {
	doctors := memory.NewDoctorAdapter()
	repository := memory.NewAppointmentAdapter()
	service := services.NewAppointmentService(
		repository,
		doctors,
		memory.NewHospitalAdapter(),
		nil,
	)
	return &appointmentFixture{service: service, doctors: doctors, repository: repository}
}

func validBooking() *services.CreateAppointmentRequest {
	return &services.CreateAppointmentRequest{
		PatientName:  "Tan Wei Lin",
		PatientEmail: "weilin@example.com",
		PatientPhone: "+65 9123 4567",
		DoctorID:     1,
		Date:         time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		Time:         "3:00 PM",
		Notes:        "first visit",
	}
}

func TestAppointmentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("books the slot and denormalizes doctor details", func(t *testing.T) {
		f := newAppointmentFixture()

		appointment, err := f.service.Create(ctx, validBooking())

		require.NoError(t, err)
		assert.NotEmpty(t, appointment.ID)
		assert.Equal(t, "Dr. James Wong", appointment.DoctorName)
		assert.Equal(t, "Singapore General Hospital", appointment.HospitalName)
		assert.Equal(t, "Neurology", appointment.Department)
		assert.Equal(t, entities.AppointmentStatusScheduled, appointment.Status)

		doctor, err := f.doctors.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.False(t, doctor.HasSlot("3:00 PM"))
		assert.Equal(t, 4, doctor.PatientsInQueue)
	})

	t.Run("taken slot conflicts", func(t *testing.T) {
		f := newAppointmentFixture()

		_, err := f.service.Create(ctx, validBooking())
		require.NoError(t, err)

		second := validBooking()
		second.PatientEmail = "other@example.com"
		_, err = f.service.Create(ctx, second)

		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConflict))
	})

	t.Run("rejects invalid forms before touching the slot", func(t *testing.T) {
		f := newAppointmentFixture()

		cases := map[string]func(*services.CreateAppointmentRequest){
			"missing name":  func(r *services.CreateAppointmentRequest) { r.PatientName = " " },
			"bad email":     func(r *services.CreateAppointmentRequest) { r.PatientEmail = "not-an-email" },
			"bad phone":     func(r *services.CreateAppointmentRequest) { r.PatientPhone = "12345" },
			"bad date":      func(r *services.CreateAppointmentRequest) { r.Date = "15/09/2026" },
			"bad time":      func(r *services.CreateAppointmentRequest) { r.Time = "25:00" },
			"missing doctor": func(r *services.CreateAppointmentRequest) { r.DoctorID = 0 },
		}

		for name, mutate := range cases {
			t.Run(name, func(t *testing.T) {
				req := validBooking()
				mutate(req)

				_, err := f.service.Create(ctx, req)

				require.Error(t, err)
				assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
			})
		}

		doctor, err := f.doctors.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, doctor.AvailableSlots, 3)
	})
}

func TestAppointmentService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("frees the slot and decrements the queue", func(t *testing.T) {
		f := newAppointmentFixture()
		appointment, err := f.service.Create(ctx, validBooking())
		require.NoError(t, err)

		cancelled, err := f.service.Cancel(ctx, appointment.ID)

		require.NoError(t, err)
		assert.Equal(t, entities.AppointmentStatusCancelled, cancelled.Status)

		doctor, err := f.doctors.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.True(t, doctor.HasSlot("3:00 PM"))
		assert.Equal(t, 3, doctor.PatientsInQueue)
	})

	t.Run("cancelling twice conflicts", func(t *testing.T) {
		f := newAppointmentFixture()
		appointment, err := f.service.Create(ctx, validBooking())
		require.NoError(t, err)

		_, err = f.service.Cancel(ctx, appointment.ID)
		require.NoError(t, err)
		_, err = f.service.Cancel(ctx, appointment.ID)

		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConflict))
	})
}

func TestAppointmentService_Reschedule(t *testing.T) {
	ctx := context.Background()

	t.Run("claims the new slot and releases the old one", func(t *testing.T) {
		f := newAppointmentFixture()
		appointment, err := f.service.Create(ctx, validBooking())
		require.NoError(t, err)

		newDate := time.Now().AddDate(0, 0, 14).Format("2006-01-02")
		moved, err := f.service.Reschedule(ctx, appointment.ID, newDate, "4:15 PM")

		require.NoError(t, err)
		assert.Equal(t, "4:15 PM", moved.Time)
		assert.Equal(t, newDate, moved.Date)

		doctor, err := f.doctors.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.True(t, doctor.HasSlot("3:00 PM"))
		assert.False(t, doctor.HasSlot("4:15 PM"))
	})

	t.Run("unavailable target slot conflicts and changes nothing", func(t *testing.T) {
		f := newAppointmentFixture()
		appointment, err := f.service.Create(ctx, validBooking())
		require.NoError(t, err)

		_, err = f.service.Reschedule(ctx, appointment.ID, appointment.Date, "9:00 PM")

		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConflict))

		unchanged, err := f.service.GetByID(ctx, appointment.ID)
		require.NoError(t, err)
		assert.Equal(t, "3:00 PM", unchanged.Time)
	})
}

func TestAppointmentService_Listings(t *testing.T) {
	ctx := context.Background()
	f := newAppointmentFixture()

	booking := validBooking()
	appointment, err := f.service.Create(ctx, booking)
	require.NoError(t, err)

	past := validBooking()
	past.Time = "2:30 PM"
	pastAppt, err := f.service.Create(ctx, past)
	require.NoError(t, err)
	_, err = f.service.UpdateStatus(ctx, pastAppt.ID, entities.AppointmentStatusCompleted)
	require.NoError(t, err)

	t.Run("upcoming excludes completed visits", func(t *testing.T) {
		upcoming, err := f.service.Upcoming(ctx, booking.PatientEmail)

		require.NoError(t, err)
		require.Len(t, upcoming, 1)
		assert.Equal(t, appointment.ID, upcoming[0].ID)
	})

	t.Run("history holds completed and cancelled visits", func(t *testing.T) {
		history, err := f.service.History(ctx, booking.PatientEmail)

		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, pastAppt.ID, history[0].ID)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		_, err := f.service.UpdateStatus(ctx, appointment.ID, entities.AppointmentStatus("archived"))

		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	})
}
