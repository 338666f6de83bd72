package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/doodledaron/findcare/backend/internal/domain/entities"
	"github.com/doodledaron/findcare/backend/internal/domain/repositories"
	"github.com/doodledaron/findcare/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/doodledaron/findcare/backend/pkg/errors"
)

var appointmentColumns = []interface{}{
	"id", "patient_name", "patient_email", "patient_phone",
	"hospital_id", "hospital_name", "hospital_email",
	"doctor_id", "doctor_name", "doctor_email", "department",
	"appointment_date", "appointment_time", "notes", "status",
	"created_at", "updated_at",
}

// AppointmentAdapter implements the AppointmentRepository interface over PostgreSQL
type AppointmentAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewAppointmentAdapter creates a new appointment adapter
func NewAppointmentAdapter(client *postgres.Client) repositories.AppointmentRepository {
	return &AppointmentAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create creates a new appointment
func (a *AppointmentAdapter) Create(ctx context.Context, appointment *entities.Appointment) error {
	record := goqu.Record{
		"id":               appointment.ID,
		"patient_name":     appointment.PatientName,
		"patient_email":    appointment.PatientEmail,
		"patient_phone":    appointment.PatientPhone,
		"hospital_id":      appointment.HospitalID,
		"hospital_name":    appointment.HospitalName,
		"hospital_email":   appointment.HospitalEmail,
		"doctor_id":        appointment.DoctorID,
		"doctor_name":      appointment.DoctorName,
		"doctor_email":     appointment.DoctorEmail,
		"department":       appointment.Department,
		"appointment_date": appointment.Date,
		"appointment_time": appointment.Time,
		"notes":            appointment.Notes,
		"status":           appointment.Status,
		"created_at":       appointment.CreatedAt,
		"updated_at":       appointment.UpdatedAt,
	}

	query, args, err := a.db.Insert("appointments").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	_, err = a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to create appointment", err)
	}
	return nil
}

// GetByID retrieves an appointment by ID
func (a *AppointmentAdapter) GetByID(ctx context.Context, id string) (*entities.Appointment, error) {
	query, args, err := a.db.Select(appointmentColumns...).
		From("appointments").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	appointment, err := scanAppointment(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("appointment with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get appointment", err)
	}
	return appointment, nil
}

// Update overwrites an existing appointment
func (a *AppointmentAdapter) Update(ctx context.Context, appointment *entities.Appointment) error {
	appointment.UpdatedAt = time.Now()

	record := goqu.Record{
		"patient_name":     appointment.PatientName,
		"patient_email":    appointment.PatientEmail,
		"patient_phone":    appointment.PatientPhone,
		"appointment_date": appointment.Date,
		"appointment_time": appointment.Time,
		"notes":            appointment.Notes,
		"status":           appointment.Status,
		"updated_at":       appointment.UpdatedAt,
	}

	query, args, err := a.db.Update("appointments").
		Set(record).
		Where(goqu.Ex{"id": appointment.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update appointment", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("appointment with id %s not found", appointment.ID))
	}
	return nil
}

// ListByPatientEmail retrieves appointments booked under the email
func (a *AppointmentAdapter) ListByPatientEmail(ctx context.Context, email string) ([]*entities.Appointment, error) {
	ds := a.db.Select(appointmentColumns...).
		From("appointments").
		Where(goqu.L("LOWER(patient_email) = LOWER(?)", email)).
		Order(goqu.I("created_at").Asc())
	return a.queryAppointments(ctx, ds)
}

// ListByDoctor retrieves appointments for a doctor
func (a *AppointmentAdapter) ListByDoctor(ctx context.Context, doctorID string) ([]*entities.Appointment, error) {
	ds := a.db.Select(appointmentColumns...).
		From("appointments").
		Where(goqu.Ex{"doctor_id": doctorID}).
		Order(goqu.I("created_at").Asc())
	return a.queryAppointments(ctx, ds)
}

// ListByHospital retrieves appointments at a hospital
func (a *AppointmentAdapter) ListByHospital(ctx context.Context, hospitalID string) ([]*entities.Appointment, error) {
	ds := a.db.Select(appointmentColumns...).
		From("appointments").
		Where(goqu.Ex{"hospital_id": hospitalID}).
		Order(goqu.I("created_at").Asc())
	return a.queryAppointments(ctx, ds)
}

func (a *AppointmentAdapter) queryAppointments(ctx context.Context, ds *goqu.SelectDataset) ([]*entities.Appointment, error) {
	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list appointments", err)
	}
	defer rows.Close()

	var appointments []*entities.Appointment
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan appointment", err)
		}
		appointments = append(appointments, appointment)
	}
	return appointments, rows.Err()
}

func scanAppointment(row rowScanner) (*entities.Appointment, error) {
	appointment := &entities.Appointment{}
	var patientPhone, hospitalEmail, doctorEmail, notes sql.NullString

	err := row.Scan(
		&appointment.ID,
		&appointment.PatientName,
		&appointment.PatientEmail,
		&patientPhone,
		&appointment.HospitalID,
		&appointment.HospitalName,
		&hospitalEmail,
		&appointment.DoctorID,
		&appointment.DoctorName,
		&doctorEmail,
		&appointment.Department,
		&appointment.Date,
		&appointment.Time,
		&notes,
		&appointment.Status,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	appointment.PatientPhone = patientPhone.String
	appointment.HospitalEmail = hospitalEmail.String
	appointment.DoctorEmail = doctorEmail.String
	appointment.Notes = notes.String
	return appointment, nil
}
