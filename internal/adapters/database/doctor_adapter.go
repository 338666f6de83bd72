package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/lib/pq"

	"github.com/doodledaron/findcare/backend/internal/domain/entities"
	"github.com/doodledaron/findcare/backend/internal/domain/repositories"
	"github.com/doodledaron/findcare/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/doodledaron/findcare/backend/pkg/errors"
)

var doctorColumns = []interface{}{
	"id", "name", "specialty", "department", "hospital_id", "rating",
	"patients_in_queue", "wait_minutes", "experience_years",
	"available_slots", "languages", "education", "certifications",
	"consultation_fee", "image",
}

// DoctorAdapter implements the DoctorRepository interface over PostgreSQL
type DoctorAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewDoctorAdapter creates a new doctor adapter
func NewDoctorAdapter(client *postgres.Client) repositories.DoctorRepository {
	return &DoctorAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// List retrieves every doctor ordered by id
func (a *DoctorAdapter) List(ctx context.Context) ([]*entities.Doctor, error) {
	ds := a.db.Select(doctorColumns...).From("doctors").Order(goqu.I("id").Asc())
	return a.queryDoctors(ctx, ds)
}

// GetByID retrieves a doctor by ID
func (a *DoctorAdapter) GetByID(ctx context.Context, id int) (*entities.Doctor, error) {
	query, args, err := a.db.Select(doctorColumns...).
		From("doctors").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	doctor, err := scanDoctor(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("doctor with id %d not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get doctor", err)
	}
	return doctor, nil
}

// Search retrieves doctors matching params, ordered by id
func (a *DoctorAdapter) Search(ctx context.Context, params repositories.DoctorSearchParams) ([]*entities.Doctor, error) {
	ds := a.db.Select(doctorColumns...).From("doctors")

	if params.Department != "" {
		ds = ds.Where(goqu.L("LOWER(department) = LOWER(?)", params.Department))
	}
	if params.Specialty != "" {
		ds = ds.Where(goqu.L("specialty ILIKE ?", "%"+params.Specialty+"%"))
	}
	if params.HospitalID != 0 {
		ds = ds.Where(goqu.Ex{"hospital_id": params.HospitalID})
	}
	if params.Availability {
		ds = ds.Where(goqu.L("array_length(available_slots, 1) > 0"))
	}
	if params.MinRating > 0 {
		ds = ds.Where(goqu.C("rating").Gte(params.MinRating))
	}
	if params.MinExperienceYears > 0 {
		ds = ds.Where(goqu.C("experience_years").Gte(params.MinExperienceYears))
	}
	if params.Language != "" {
		ds = ds.Where(goqu.L("EXISTS (SELECT 1 FROM unnest(languages) AS lang WHERE lang ILIKE ?)", "%"+params.Language+"%"))
	}

	ds = ds.Order(goqu.I("id").Asc())
	return a.queryDoctors(ctx, ds)
}

// BookSlot removes slot from availability and increments the queue in one
// statement. The WHERE clause makes the check-and-claim atomic; a zero row
// count means the slot was not available.
func (a *DoctorAdapter) BookSlot(ctx context.Context, doctorID int, slot string) (bool, error) {
	query, args, err := a.db.Update("doctors").
		Set(goqu.Record{
			"available_slots":   goqu.L("array_remove(available_slots, ?)", slot),
			"patients_in_queue": goqu.L("patients_in_queue + 1"),
		}).
		Where(
			goqu.Ex{"id": doctorID},
			goqu.L("? = ANY(available_slots)", slot),
		).
		ToSQL()
	if err != nil {
		return false, apperrors.NewInternalError("failed to build book query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return false, apperrors.NewInternalError("failed to book slot", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		exists, err := a.doctorExists(ctx, doctorID)
		if err != nil {
			return false, err
		}
		if !exists {
			return false, apperrors.NewNotFoundError(fmt.Sprintf("doctor with id %d not found", doctorID))
		}
		return false, nil
	}
	return true, nil
}

// ReleaseSlot returns slot to availability and decrements the queue,
// flooring at zero. The slot is only appended when absent.
func (a *DoctorAdapter) ReleaseSlot(ctx context.Context, doctorID int, slot string) error {
	query, args, err := a.db.Update("doctors").
		Set(goqu.Record{
			"available_slots": goqu.L(
				"CASE WHEN ? = ANY(available_slots) THEN available_slots ELSE array_append(available_slots, ?) END",
				slot, slot,
			),
			"patients_in_queue": goqu.L("GREATEST(patients_in_queue - 1, 0)"),
		}).
		Where(goqu.Ex{"id": doctorID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build release query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to release slot", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("doctor with id %d not found", doctorID))
	}
	return nil
}

func (a *DoctorAdapter) doctorExists(ctx context.Context, id int) (bool, error) {
	query, args, err := a.db.Select(goqu.L("1")).
		From("doctors").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return false, apperrors.NewInternalError("failed to build exists query", err)
	}

	var one int
	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, apperrors.NewInternalError("failed to check doctor", err)
	}
	return true, nil
}

func (a *DoctorAdapter) queryDoctors(ctx context.Context, ds *goqu.SelectDataset) ([]*entities.Doctor, error) {
	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list doctors", err)
	}
	defer rows.Close()

	var doctors []*entities.Doctor
	for rows.Next() {
		doctor, err := scanDoctor(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan doctor", err)
		}
		doctors = append(doctors, doctor)
	}
	return doctors, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDoctor(row rowScanner) (*entities.Doctor, error) {
	doctor := &entities.Doctor{}
	var education, image sql.NullString
	var consultationFee sql.NullFloat64

	err := row.Scan(
		&doctor.ID,
		&doctor.Name,
		&doctor.Specialty,
		&doctor.Department,
		&doctor.HospitalID,
		&doctor.Rating,
		&doctor.PatientsInQueue,
		&doctor.WaitMinutes,
		&doctor.ExperienceYears,
		pq.Array(&doctor.AvailableSlots),
		pq.Array(&doctor.Languages),
		&education,
		pq.Array(&doctor.Certifications),
		&consultationFee,
		&image,
	)
	if err != nil {
		return nil, err
	}

	doctor.Education = education.String
	doctor.ConsultationFee = consultationFee.Float64
	doctor.Image = image.String
	return doctor, nil
}
