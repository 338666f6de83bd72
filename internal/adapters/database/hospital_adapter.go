package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/lib/pq"

	"github.com/doodledaron/findcare/backend/internal/domain/entities"
	"github.com/doodledaron/findcare/backend/internal/domain/repositories"
	"github.com/doodledaron/findcare/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/doodledaron/findcare/backend/pkg/errors"
)

var hospitalColumns = []interface{}{
	"id", "name", "address", "type", "specialties", "rating",
	"distance_km", "phone", "emergency_services", "image",
	"operating_hours", "facilities", "insurance",
}

// HospitalAdapter implements the HospitalRepository interface over PostgreSQL
type HospitalAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewHospitalAdapter creates a new hospital adapter
func NewHospitalAdapter(client *postgres.Client) repositories.HospitalRepository {
	return &HospitalAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// List retrieves every hospital ordered by id
func (a *HospitalAdapter) List(ctx context.Context) ([]*entities.Hospital, error) {
	ds := a.db.Select(hospitalColumns...).From("hospitals").Order(goqu.I("id").Asc())
	return a.queryHospitals(ctx, ds)
}

// GetByID retrieves a hospital by ID
func (a *HospitalAdapter) GetByID(ctx context.Context, id int) (*entities.Hospital, error) {
	query, args, err := a.db.Select(hospitalColumns...).
		From("hospitals").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	hospital, err := scanHospital(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("hospital with id %d not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get hospital", err)
	}
	return hospital, nil
}

// Search retrieves hospitals matching params, ordered by id
func (a *HospitalAdapter) Search(ctx context.Context, params repositories.HospitalSearchParams) ([]*entities.Hospital, error) {
	ds := a.db.Select(hospitalColumns...).From("hospitals")

	if params.Type != "" && !strings.EqualFold(params.Type, "all") {
		ds = ds.Where(goqu.L("LOWER(type) = LOWER(?)", params.Type))
	}
	if params.Specialty != "" {
		ds = ds.Where(goqu.L("EXISTS (SELECT 1 FROM unnest(specialties) s WHERE s ILIKE ?)", "%"+params.Specialty+"%"))
	}
	if params.MaxDistanceKm > 0 {
		ds = ds.Where(goqu.C("distance_km").Lte(params.MaxDistanceKm))
	}
	if params.EmergencyServices {
		ds = ds.Where(goqu.Ex{"emergency_services": true})
	}
	if params.MinRating > 0 {
		ds = ds.Where(goqu.C("rating").Gte(params.MinRating))
	}
	if params.Insurance != "" {
		ds = ds.Where(goqu.L("EXISTS (SELECT 1 FROM unnest(insurance) i WHERE i ILIKE ?)", "%"+params.Insurance+"%"))
	}

	ds = ds.Order(goqu.I("id").Asc())
	return a.queryHospitals(ctx, ds)
}

func (a *HospitalAdapter) queryHospitals(ctx context.Context, ds *goqu.SelectDataset) ([]*entities.Hospital, error) {
	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list hospitals", err)
	}
	defer rows.Close()

	var hospitals []*entities.Hospital
	for rows.Next() {
		hospital, err := scanHospital(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan hospital", err)
		}
		hospitals = append(hospitals, hospital)
	}
	return hospitals, rows.Err()
}

func scanHospital(row rowScanner) (*entities.Hospital, error) {
	hospital := &entities.Hospital{}
	var hospitalType string
	var image, operatingHours sql.NullString

	err := row.Scan(
		&hospital.ID,
		&hospital.Name,
		&hospital.Address,
		&hospitalType,
		pq.Array(&hospital.Specialties),
		&hospital.Rating,
		&hospital.DistanceKm,
		&hospital.Phone,
		&hospital.EmergencyServices,
		&image,
		&operatingHours,
		pq.Array(&hospital.Facilities),
		pq.Array(&hospital.Insurance),
	)
	if err != nil {
		return nil, err
	}

	hospital.Type = entities.ClassifyHospitalType(hospitalType)
	hospital.Image = image.String
	hospital.OperatingHours = operatingHours.String
	return hospital, nil
}
