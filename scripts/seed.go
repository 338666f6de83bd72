package main

import (
	"context"
	"log"
	"os"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/lib/pq"

	"github.com/doodledaron/findcare/backend/internal/adapters/memory"
	"github.com/doodledaron/findcare/backend/internal/infrastructure/clients/postgres"
	"github.com/doodledaron/findcare/backend/pkg/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS hospitals (
	id                 INTEGER PRIMARY KEY,
	name               TEXT NOT NULL,
	address            TEXT NOT NULL DEFAULT '',
	type               TEXT NOT NULL DEFAULT 'public',
	specialties        TEXT[] NOT NULL DEFAULT '{}',
	rating             DOUBLE PRECISION NOT NULL DEFAULT 0,
	distance_km        DOUBLE PRECISION NOT NULL DEFAULT 0,
	phone              TEXT NOT NULL DEFAULT '',
	emergency_services BOOLEAN NOT NULL DEFAULT FALSE,
	image              TEXT NOT NULL DEFAULT '',
	operating_hours    TEXT NOT NULL DEFAULT '',
	facilities         TEXT[] NOT NULL DEFAULT '{}',
	insurance          TEXT[] NOT NULL DEFAULT '{}'
);

CREATE TABLE IF NOT EXISTS doctors (
	id                INTEGER PRIMARY KEY,
	name              TEXT NOT NULL,
	specialty         TEXT NOT NULL DEFAULT '',
	department        TEXT NOT NULL DEFAULT '',
	hospital_id       INTEGER NOT NULL REFERENCES hospitals(id),
	rating            DOUBLE PRECISION NOT NULL DEFAULT 0,
	patients_in_queue INTEGER NOT NULL DEFAULT 0,
	wait_minutes      INTEGER NOT NULL DEFAULT 0,
	experience_years  INTEGER NOT NULL DEFAULT 0,
	available_slots   TEXT[] NOT NULL DEFAULT '{}',
	languages         TEXT[] NOT NULL DEFAULT '{}',
	education         TEXT NOT NULL DEFAULT '',
	certifications    TEXT[] NOT NULL DEFAULT '{}',
	consultation_fee  DOUBLE PRECISION NOT NULL DEFAULT 0,
	image             TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS appointments (
	id               TEXT PRIMARY KEY,
	patient_name     TEXT NOT NULL,
	patient_email    TEXT NOT NULL,
	patient_phone    TEXT NOT NULL DEFAULT '',
	hospital_id      TEXT NOT NULL,
	hospital_name    TEXT NOT NULL DEFAULT '',
	hospital_email   TEXT NOT NULL DEFAULT '',
	doctor_id        TEXT NOT NULL,
	doctor_name      TEXT NOT NULL DEFAULT '',
	doctor_email     TEXT NOT NULL DEFAULT '',
	department       TEXT NOT NULL DEFAULT '',
	appointment_date TEXT NOT NULL,
	appointment_time TEXT NOT NULL,
	notes            TEXT NOT NULL DEFAULT '',
	status           TEXT NOT NULL DEFAULT 'scheduled',
	created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_doctors_hospital ON doctors (hospital_id);
CREATE INDEX IF NOT EXISTS idx_appointments_patient_email ON appointments (patient_email);
CREATE INDEX IF NOT EXISTS idx_appointments_doctor ON appointments (doctor_id);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pgClient.Close()

	ctx := context.Background()

	if _, err := pgClient.DB().ExecContext(ctx, schema); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, truncating tables before seeding")
		if _, err := pgClient.DB().ExecContext(ctx, `
			TRUNCATE TABLE
				appointments,
				doctors,
				hospitals
			CASCADE
		`); err != nil {
			log.Fatalf("Failed to reset tables: %v", err)
		}
	}

	db := goqu.New("postgres", pgClient.DB())

	// 1. Seed hospitals
	for _, h := range memory.SeedHospitals() {
		record := goqu.Record{
			"id":                 h.ID,
			"name":               h.Name,
			"address":            h.Address,
			"type":               string(h.Type),
			"specialties":        pq.Array(h.Specialties),
			"rating":             h.Rating,
			"distance_km":        h.DistanceKm,
			"phone":              h.Phone,
			"emergency_services": h.EmergencyServices,
			"image":              h.Image,
			"operating_hours":    h.OperatingHours,
			"facilities":         pq.Array(h.Facilities),
			"insurance":          pq.Array(h.Insurance),
		}
		query, args, err := db.Insert("hospitals").Rows(record).
			OnConflict(goqu.DoNothing()).Prepared(true).ToSQL()
		if err != nil {
			log.Fatalf("Failed to build hospital insert: %v", err)
		}
		if _, err := pgClient.DB().ExecContext(ctx, query, args...); err != nil {
			log.Printf("Failed to insert hospital %s: %v", h.Name, err)
		}
	}
	log.Println("Hospitals seeded")

	// 2. Seed doctors
	for _, d := range memory.SeedDoctors() {
		record := goqu.Record{
			"id":                d.ID,
			"name":              d.Name,
			"specialty":         d.Specialty,
			"department":        d.Department,
			"hospital_id":       d.HospitalID,
			"rating":            d.Rating,
			"patients_in_queue": d.PatientsInQueue,
			"wait_minutes":      d.WaitMinutes,
			"experience_years":  d.ExperienceYears,
			"available_slots":   pq.Array(d.AvailableSlots),
			"languages":         pq.Array(d.Languages),
			"education":         d.Education,
			"certifications":    pq.Array(d.Certifications),
			"consultation_fee":  d.ConsultationFee,
			"image":             d.Image,
		}
		query, args, err := db.Insert("doctors").Rows(record).
			OnConflict(goqu.DoNothing()).Prepared(true).ToSQL()
		if err != nil {
			log.Fatalf("Failed to build doctor insert: %v", err)
		}
		if _, err := pgClient.DB().ExecContext(ctx, query, args...); err != nil {
			log.Printf("Failed to insert doctor %s: %v", d.Name, err)
		}
	}
	log.Println("Doctors seeded")

	log.Println("Seeding complete")
}
