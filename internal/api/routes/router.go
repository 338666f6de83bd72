package routes

import (
	"net/http"

	"github.com/doodledaron/findcare/backend/internal/api/handlers"
	"github.com/doodledaron/findcare/backend/internal/api/middleware"
	"github.com/doodledaron/findcare/backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	doctorHandler   *handlers.DoctorHandler
	hospitalHandler *handlers.HospitalHandler

	appointmentHandler *handlers.AppointmentHandler
	queueHandler       *handlers.QueueHandler

	catalogHandler    *handlers.CatalogHandler
	navigationHandler *handlers.NavigationHandler
	assessmentHandler *handlers.AssessmentHandler

	metrics *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	doctorHandler *handlers.DoctorHandler,
	hospitalHandler *handlers.HospitalHandler,
	appointmentHandler *handlers.AppointmentHandler,
	queueHandler *handlers.QueueHandler,
	catalogHandler *handlers.CatalogHandler,
	navigationHandler *handlers.NavigationHandler,
	assessmentHandler *handlers.AssessmentHandler,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		doctorHandler:   doctorHandler,
		hospitalHandler: hospitalHandler,

		appointmentHandler: appointmentHandler,
		queueHandler:       queueHandler,

		catalogHandler:    catalogHandler,
		navigationHandler: navigationHandler,
		assessmentHandler: assessmentHandler,

		metrics: metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Doctor endpoints
	r.mux.HandleFunc("GET /api/doctors", r.doctorHandler.ListDoctors)
	r.mux.HandleFunc("GET /api/doctors/search", r.doctorHandler.SearchDoctors)
	r.mux.HandleFunc("GET /api/doctors/top-rated", r.doctorHandler.TopRated)
	r.mux.HandleFunc("GET /api/doctors/shortest-wait", r.doctorHandler.ShortestWait)
	r.mux.HandleFunc("GET /api/doctors/{id}", r.doctorHandler.GetDoctor)
	r.mux.HandleFunc("GET /api/doctors/{id}/slots", r.doctorHandler.GetSlots)

	// Hospital endpoints
	r.mux.HandleFunc("GET /api/hospitals", r.hospitalHandler.ListHospitals)
	r.mux.HandleFunc("GET /api/hospitals/search", r.hospitalHandler.SearchHospitals)
	r.mux.HandleFunc("POST /api/hospitals/search", r.hospitalHandler.RankedSearch)
	r.mux.HandleFunc("GET /api/hospitals/search/cached", r.hospitalHandler.CachedSearch)
	r.mux.HandleFunc("GET /api/hospitals/nearest-emergency", r.hospitalHandler.NearestEmergency)
	r.mux.HandleFunc("GET /api/hospitals/{id}", r.hospitalHandler.GetHospital)
	r.mux.HandleFunc("GET /api/hospitals/{id}/queue", r.hospitalHandler.GetQueueInfo)
	r.mux.HandleFunc("GET /api/hospitals/{id}/wait-times", r.hospitalHandler.GetWaitTimes)
	r.mux.HandleFunc("GET /api/hospitals/{id}/contact", r.hospitalHandler.GetContact)
	r.mux.HandleFunc("GET /api/hospitals/{id}/rating", r.hospitalHandler.GetRating)

	// Catalog endpoints
	r.mux.HandleFunc("GET /api/departments", r.catalogHandler.ListDepartments)
	r.mux.HandleFunc("GET /api/symptoms", r.catalogHandler.ListSymptoms)

	// Appointment endpoints
	r.mux.HandleFunc("POST /api/appointments", r.appointmentHandler.CreateAppointment)
	r.mux.HandleFunc("GET /api/appointments", r.appointmentHandler.ListAppointments)
	r.mux.HandleFunc("GET /api/appointments/upcoming", r.appointmentHandler.Upcoming)
	r.mux.HandleFunc("GET /api/appointments/history", r.appointmentHandler.History)
	r.mux.HandleFunc("GET /api/appointments/today", r.appointmentHandler.TodayForDoctor)
	r.mux.HandleFunc("GET /api/appointments/{id}", r.appointmentHandler.GetAppointment)
	r.mux.HandleFunc("POST /api/appointments/{id}/cancel", r.appointmentHandler.CancelAppointment)
	r.mux.HandleFunc("POST /api/appointments/{id}/reschedule", r.appointmentHandler.RescheduleAppointment)
	r.mux.HandleFunc("PATCH /api/appointments/{id}/status", r.appointmentHandler.UpdateStatus)

	// Queue endpoints
	r.mux.HandleFunc("GET /api/queue/status", r.queueHandler.GetStatus)
	r.mux.HandleFunc("GET /api/queue/events", r.queueHandler.StreamEvents)

	// Navigation and check-in endpoints
	r.mux.HandleFunc("GET /api/navigation/steps", r.navigationHandler.GetSteps)
	r.mux.HandleFunc("GET /api/navigation/checkpoints", r.navigationHandler.GetCheckpoints)
	r.mux.HandleFunc("POST /api/checkin/scan", r.navigationHandler.RecordScan)
	r.mux.HandleFunc("GET /api/checkin/progress", r.navigationHandler.GetProgress)

	// Assessment endpoints
	r.mux.HandleFunc("GET /api/assessment", r.assessmentHandler.GetAssessment)
	r.mux.HandleFunc("POST /api/assessment/complete", r.assessmentHandler.CompleteAssessment)
	r.mux.HandleFunc("GET /api/assessment/recommend", r.assessmentHandler.Recommend)

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	// CORS wraps everything so preflight requests never hit the mux
	handler = middleware.CORSMiddleware(handler)

	return handler
}
