package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodledaron/findcare/backend/internal/adapters/memory"
	"github.com/doodledaron/findcare/backend/internal/api/handlers"
	"github.com/doodledaron/findcare/backend/internal/application/services"
	"github.com/doodledaron/findcare/backend/internal/domain/entities"
)

type appointmentHandlerFixture struct {
	handler *handlers.AppointmentHandler
	doctors *memory.DoctorAdapter
	service *services.AppointmentService
}

func newAppointmentHandlerFixture() *appointmentHandlerFixture {
	doctors := memory.NewDoctorAdapter()
	appointments := memory.NewAppointmentAdapter()
	queue := services.NewQueueService(doctors, appointments, nil)
	service := services.NewAppointmentService(appointments, doctors, memory.NewHospitalAdapter(), queue)
	return &appointmentHandlerFixture{
		handler: handlers.NewAppointmentHandler(service, nil),
		doctors: doctors,
		service: service,
	}
}

func bookingPayload() map[string]interface{} {
	return map[string]interface{}{
		"patient_name":     "John Tan",
		"patient_email":    "john.tan@example.com",
		"patient_phone":    "+65 9123 4567",
		"doctor_id":        1,
		"appointment_date": time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		"appointment_time": "3:00 PM",
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", target, bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestAppointmentHandler_CreateAppointment(t *testing.T) {
	t.Run("books the slot and returns the appointment", func(t *testing.T) {
		f := newAppointmentHandlerFixture()

		w := postJSON(t, f.handler.CreateAppointment, "/api/appointments", bookingPayload())

		require.Equal(t, http.StatusCreated, w.Code)

		var appt entities.Appointment
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &appt))
		assert.NotEmpty(t, appt.ID)
		assert.Equal(t, "Dr. James Wong", appt.DoctorName)
		assert.Equal(t, "Singapore General Hospital", appt.HospitalName)
		assert.Equal(t, entities.AppointmentStatusScheduled, appt.Status)

		doctor, err := f.doctors.GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.NotContains(t, doctor.AvailableSlots, "3:00 PM")
	})

	t.Run("returns conflict when the slot is already taken", func(t *testing.T) {
		f := newAppointmentHandlerFixture()

		first := postJSON(t, f.handler.CreateAppointment, "/api/appointments", bookingPayload())
		require.Equal(t, http.StatusCreated, first.Code)

		second := postJSON(t, f.handler.CreateAppointment, "/api/appointments", bookingPayload())
		assert.Equal(t, http.StatusConflict, second.Code)
	})

	t.Run("rejects an invalid booking form", func(t *testing.T) {
		f := newAppointmentHandlerFixture()

		payload := bookingPayload()
		payload["patient_email"] = "not-an-email"

		w := postJSON(t, f.handler.CreateAppointment, "/api/appointments", payload)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects a malformed payload", func(t *testing.T) {
		f := newAppointmentHandlerFixture()

		req := httptest.NewRequest("POST", "/api/appointments", bytes.NewBufferString("not-json"))
		w := httptest.NewRecorder()

		f.handler.CreateAppointment(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAppointmentHandler_CancelAppointment(t *testing.T) {
	f := newAppointmentHandlerFixture()

	created := postJSON(t, f.handler.CreateAppointment, "/api/appointments", bookingPayload())
	require.Equal(t, http.StatusCreated, created.Code)

	var appt entities.Appointment
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &appt))

	req := httptest.NewRequest("POST", fmt.Sprintf("/api/appointments/%s/cancel", appt.ID), nil)
	req.SetPathValue("id", appt.ID)
	w := httptest.NewRecorder()

	f.handler.CancelAppointment(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var cancelled entities.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cancelled))
	assert.Equal(t, entities.AppointmentStatusCancelled, cancelled.Status)

	doctor, err := f.doctors.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Contains(t, doctor.AvailableSlots, "3:00 PM")
}

func TestAppointmentHandler_RescheduleAppointment(t *testing.T) {
	f := newAppointmentHandlerFixture()

	created := postJSON(t, f.handler.CreateAppointment, "/api/appointments", bookingPayload())
	require.Equal(t, http.StatusCreated, created.Code)

	var appt entities.Appointment
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &appt))

	payload := map[string]string{
		"appointment_date": time.Now().AddDate(0, 0, 14).Format("2006-01-02"),
		"appointment_time": "4:15 PM",
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", fmt.Sprintf("/api/appointments/%s/reschedule", appt.ID), bytes.NewBuffer(body))
	req.SetPathValue("id", appt.ID)
	w := httptest.NewRecorder()

	f.handler.RescheduleAppointment(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var moved entities.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &moved))
	assert.Equal(t, "4:15 PM", moved.Time)

	doctor, err := f.doctors.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Contains(t, doctor.AvailableSlots, "3:00 PM")
	assert.NotContains(t, doctor.AvailableSlots, "4:15 PM")
}

func TestAppointmentHandler_ListAppointments(t *testing.T) {
	t.Run("lists by patient email", func(t *testing.T) {
		f := newAppointmentHandlerFixture()

		created := postJSON(t, f.handler.CreateAppointment, "/api/appointments", bookingPayload())
		require.Equal(t, http.StatusCreated, created.Code)

		req := httptest.NewRequest("GET", "/api/appointments?patient_email=john.tan@example.com", nil)
		w := httptest.NewRecorder()

		f.handler.ListAppointments(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var appointments []*entities.Appointment
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &appointments))
		assert.Len(t, appointments, 1)
	})

	t.Run("requires a filter", func(t *testing.T) {
		f := newAppointmentHandlerFixture()

		req := httptest.NewRequest("GET", "/api/appointments", nil)
		w := httptest.NewRecorder()

		f.handler.ListAppointments(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAppointmentHandler_UpdateStatus(t *testing.T) {
	f := newAppointmentHandlerFixture()

	created := postJSON(t, f.handler.CreateAppointment, "/api/appointments", bookingPayload())
	require.Equal(t, http.StatusCreated, created.Code)

	var appt entities.Appointment
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &appt))

	body, err := json.Marshal(map[string]string{"status": "completed"})
	require.NoError(t, err)

	req := httptest.NewRequest("PATCH", fmt.Sprintf("/api/appointments/%s/status", appt.ID), bytes.NewBuffer(body))
	req.SetPathValue("id", appt.ID)
	w := httptest.NewRecorder()

	f.handler.UpdateStatus(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var updated entities.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, entities.AppointmentStatusCompleted, updated.Status)
}
