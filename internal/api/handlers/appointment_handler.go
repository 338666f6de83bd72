package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/doodledaron/findcare/backend/internal/application/services"
	"github.com/doodledaron/findcare/backend/internal/domain/entities"
	"github.com/doodledaron/findcare/backend/internal/infrastructure/observability"
)

// AppointmentHandler handles appointment lifecycle requests
type AppointmentHandler struct {
	service *services.AppointmentService
	metrics *observability.Metrics
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(service *services.AppointmentService, metrics *observability.Metrics) *AppointmentHandler {
	return &AppointmentHandler{service: service, metrics: metrics}
}

// CreateAppointment handles POST /api/appointments
func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req services.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	appointment, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.countBooking(r, "rejected")
		respondWithAppError(w, err)
		return
	}

	h.countBooking(r, "booked")
	respondWithJSON(w, http.StatusCreated, appointment)
}

// GetAppointment handles GET /api/appointments/{id}
func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	appointment, err := h.service.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, appointment)
}

// ListAppointments handles GET /api/appointments, filtered by exactly one
// of patient_email, doctor_id or hospital_id.
func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		appointments []*entities.Appointment
		err          error
	)
	switch {
	case q.Get("patient_email") != "":
		appointments, err = h.service.ByPatientEmail(r.Context(), q.Get("patient_email"))
	case q.Get("doctor_id") != "":
		appointments, err = h.service.ByDoctor(r.Context(), q.Get("doctor_id"))
	case q.Get("hospital_id") != "":
		appointments, err = h.service.ByHospital(r.Context(), q.Get("hospital_id"))
	default:
		respondWithError(w, http.StatusBadRequest, "patient_email, doctor_id or hospital_id is required")
		return
	}
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, appointments)
}

// Upcoming handles GET /api/appointments/upcoming
func (h *AppointmentHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("patient_email")
	if email == "" {
		respondWithError(w, http.StatusBadRequest, "patient_email is required")
		return
	}

	appointments, err := h.service.Upcoming(r.Context(), email)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, appointments)
}

// History handles GET /api/appointments/history
func (h *AppointmentHandler) History(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("patient_email")
	if email == "" {
		respondWithError(w, http.StatusBadRequest, "patient_email is required")
		return
	}

	appointments, err := h.service.History(r.Context(), email)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, appointments)
}

// TodayForDoctor handles GET /api/appointments/today
func (h *AppointmentHandler) TodayForDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID := r.URL.Query().Get("doctor_id")
	if doctorID == "" {
		respondWithError(w, http.StatusBadRequest, "doctor_id is required")
		return
	}

	appointments, err := h.service.TodayForDoctor(r.Context(), doctorID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, appointments)
}

// CancelAppointment handles POST /api/appointments/{id}/cancel
func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	appointment, err := h.service.Cancel(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	h.countBooking(r, "cancelled")
	respondWithJSON(w, http.StatusOK, appointment)
}

// RescheduleAppointment handles POST /api/appointments/{id}/reschedule
func (h *AppointmentHandler) RescheduleAppointment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date string `json:"appointment_date"`
		Time string `json:"appointment_time"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	appointment, err := h.service.Reschedule(r.Context(), r.PathValue("id"), req.Date, req.Time)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, appointment)
}

// UpdateStatus handles PATCH /api/appointments/{id}/status
func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status entities.AppointmentStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	appointment, err := h.service.UpdateStatus(r.Context(), r.PathValue("id"), req.Status)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, appointment)
}

func (h *AppointmentHandler) countBooking(r *http.Request, outcome string) {
	if h.metrics != nil {
		observability.RecordBookingMetric(r.Context(), h.metrics, outcome)
	}
}
