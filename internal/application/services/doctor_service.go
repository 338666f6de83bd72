package services

import (
	"context"
	"sort"
	"strings"

	"github.com/doodledaron/findcare/backend/internal/domain/entities"
	"github.com/doodledaron/findcare/backend/internal/domain/repositories"
)

// AllDepartments is the sentinel department name that matches everything.
const AllDepartments = "All Departments"

// DoctorService handles doctor catalog queries and slot bookkeeping
type DoctorService struct {
	repo repositories.DoctorRepository
}

// NewDoctorService creates a new doctor service
func NewDoctorService(repo repositories.DoctorRepository) *DoctorService {
	return &DoctorService{repo: repo}
}

// List returns every doctor
func (s *DoctorService) List(ctx context.Context) ([]*entities.Doctor, error) {
	return s.repo.List(ctx)
}

// GetByID retrieves a doctor by ID
func (s *DoctorService) GetByID(ctx context.Context, id int) (*entities.Doctor, error) {
	return s.repo.GetByID(ctx, id)
}

// Search returns doctors matching params. The "All Departments" sentinel
// imposes no department constraint.
func (s *DoctorService) Search(ctx context.Context, params repositories.DoctorSearchParams) ([]*entities.Doctor, error) {
	if strings.EqualFold(params.Department, AllDepartments) {
		params.Department = ""
	}
	return s.repo.Search(ctx, params)
}

// Sort orders doctors by the given key. The sort is stable so equal-keyed
// doctors keep their relative input order; an unknown key returns the input
// order untouched.
func (s *DoctorService) Sort(doctors []*entities.Doctor, key repositories.DoctorSortKey) []*entities.Doctor {
	sorted := append([]*entities.Doctor(nil), doctors...)
	switch key {
	case repositories.SortByRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rating > sorted[j].Rating
		})
	case repositories.SortByWait:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].PatientsInQueue < sorted[j].PatientsInQueue
		})
	case repositories.SortByExperience:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].ExperienceYears > sorted[j].ExperienceYears
		})
	}
	return sorted
}

// TopRated returns up to limit doctors ordered by rating
func (s *DoctorService) TopRated(ctx context.Context, limit int) ([]*entities.Doctor, error) {
	doctors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sorted := s.Sort(doctors, repositories.SortByRating)
	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

// ShortestWait returns the doctor with the fewest patients in queue,
// optionally restricted to a department.
func (s *DoctorService) ShortestWait(ctx context.Context, department string) (*entities.Doctor, error) {
	doctors, err := s.Search(ctx, repositories.DoctorSearchParams{Department: department})
	if err != nil {
		return nil, err
	}
	if len(doctors) == 0 {
		return nil, nil
	}
	return s.Sort(doctors, repositories.SortByWait)[0], nil
}

// AvailableSlots returns the doctor's currently bookable slots
func (s *DoctorService) AvailableSlots(ctx context.Context, doctorID int) ([]string, error) {
	doctor, err := s.repo.GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	return doctor.AvailableSlots, nil
}

// BookSlot claims a slot for the doctor. It reports false when the slot is
// not available; that is a normal outcome, not an error.
func (s *DoctorService) BookSlot(ctx context.Context, doctorID int, slot string) (bool, error) {
	return s.repo.BookSlot(ctx, doctorID, slot)
}

// ReleaseSlot returns a slot to the doctor's availability
func (s *DoctorService) ReleaseSlot(ctx context.Context, doctorID int, slot string) error {
	return s.repo.ReleaseSlot(ctx, doctorID, slot)
}
