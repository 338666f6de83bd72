package services

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/doodledaron/findcare/backend/internal/domain/entities"
	"github.com/doodledaron/findcare/backend/internal/domain/providers"
	"github.com/doodledaron/findcare/backend/internal/domain/repositories"
	apperrors "github.com/doodledaron/findcare/backend/pkg/errors"
)

// Ranked-search result sources.
const (
	SearchSourceRemote = "remote"
	SearchSourceStatic = "static"
)

// RankedSearchResult carries ranked hospitals tagged with where they came
// from, so callers can tell a live ranking from the static fallback.
type RankedSearchResult struct {
	Hospitals []*entities.Hospital `json:"hospitals"`
	Source    string               `json:"source"`
}

// HospitalQueueInfo aggregates per-doctor queue depth for one hospital
type HospitalQueueInfo struct {
	HospitalID       int `json:"hospital_id"`
	TotalInQueue     int `json:"total_in_queue"`
	DoctorsAvailable int `json:"doctors_available"`
	AvgWaitMinutes   int `json:"avg_wait_minutes"`
}

// DepartmentWait is the expected wait for one department at a hospital
type DepartmentWait struct {
	Department  string `json:"department"`
	WaitMinutes int    `json:"wait_minutes"`
	Doctors     int    `json:"doctors"`
}

// HospitalContact is the subset of hospital fields needed to reach it
type HospitalContact struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// RatingBreakdown grades a hospital's rating into a coarse label
type RatingBreakdown struct {
	HospitalID int     `json:"hospital_id"`
	Rating     float64 `json:"rating"`
	Label      string  `json:"label"`
}

// HospitalService handles hospital catalog queries, including the remote
// ranked search with its static fallback.
type HospitalService struct {
	repo       repositories.HospitalRepository
	doctorRepo repositories.DoctorRepository
	search     providers.HospitalSearchProvider
	cache      providers.CacheProvider
}

// NewHospitalService creates a new hospital service
func NewHospitalService(
	repo repositories.HospitalRepository,
	doctorRepo repositories.DoctorRepository,
	search providers.HospitalSearchProvider,
	cache providers.CacheProvider,
) *HospitalService {
	return &HospitalService{
		repo:       repo,
		doctorRepo: doctorRepo,
		search:     search,
		cache:      cache,
	}
}

// List returns every hospital
func (s *HospitalService) List(ctx context.Context) ([]*entities.Hospital, error) {
	return s.repo.List(ctx)
}

// GetByID retrieves a hospital by ID
func (s *HospitalService) GetByID(ctx context.Context, id int) (*entities.Hospital, error) {
	return s.repo.GetByID(ctx, id)
}

// Search returns hospitals matching params against the static store
func (s *HospitalService) Search(ctx context.Context, params repositories.HospitalSearchParams) ([]*entities.Hospital, error) {
	return s.repo.Search(ctx, params)
}

// SearchRanked asks the remote ranking service first. When the provider
// fails the caller still gets hospitals: the static store serves them,
// filtered by the requested department, and the result is tagged static.
// The latest result is persisted so the client can re-read it on reload.
func (s *HospitalService) SearchRanked(ctx context.Context, req *providers.HospitalSearchRequest) (*RankedSearchResult, error) {
	result := &RankedSearchResult{Source: SearchSourceRemote}

	hospitals, err := s.search.Search(ctx, req)
	if err != nil {
		log.Warn().Err(err).Str("session_id", req.SessionID).
			Msg("Remote hospital ranking failed, serving static catalog")

		hospitals, err = s.repo.Search(ctx, repositories.HospitalSearchParams{
			Specialty: req.Department,
		})
		if err != nil {
			return nil, err
		}
		result.Source = SearchSourceStatic
	}
	result.Hospitals = hospitals

	s.persistSearchResult(ctx, result)
	return result, nil
}

// CachedSearch returns the last persisted ranked-search result, if any.
func (s *HospitalService) CachedSearch(ctx context.Context) (*RankedSearchResult, error) {
	if s.cache == nil {
		return nil, apperrors.NewNotFoundError("no cached search result")
	}
	data, err := s.cache.Get(ctx, providers.KeyHospitalSearchResponse)
	if err != nil {
		return nil, apperrors.NewNotFoundError("no cached search result")
	}
	var result RankedSearchResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, apperrors.NewInternalError("failed to decode cached search result", err)
	}
	return &result, nil
}

func (s *HospitalService) persistSearchResult(ctx context.Context, result *RankedSearchResult) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(result)
	if err != nil {
		return
	}
	// Last write wins; the client reads this once per page load.
	if err := s.cache.Set(ctx, providers.KeyHospitalSearchResponse, payload, 0); err != nil {
		log.Warn().Err(err).Msg("Failed to persist hospital search result")
	}
}

// SortByDistance orders hospitals nearest-first, stably
func (s *HospitalService) SortByDistance(hospitals []*entities.Hospital) []*entities.Hospital {
	sorted := append([]*entities.Hospital(nil), hospitals...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DistanceKm < sorted[j].DistanceKm
	})
	return sorted
}

// NearestEmergency returns the closest hospital with emergency services
func (s *HospitalService) NearestEmergency(ctx context.Context) (*entities.Hospital, error) {
	hospitals, err := s.repo.Search(ctx, repositories.HospitalSearchParams{EmergencyServices: true})
	if err != nil {
		return nil, err
	}
	if len(hospitals) == 0 {
		return nil, apperrors.NewNotFoundError("no emergency hospital available")
	}
	return s.SortByDistance(hospitals)[0], nil
}

// QueueInfo aggregates queue depth across the hospital's doctors
func (s *HospitalService) QueueInfo(ctx context.Context, hospitalID int) (*HospitalQueueInfo, error) {
	if _, err := s.repo.GetByID(ctx, hospitalID); err != nil {
		return nil, err
	}

	doctors, err := s.doctorRepo.Search(ctx, repositories.DoctorSearchParams{HospitalID: hospitalID})
	if err != nil {
		return nil, err
	}

	info := &HospitalQueueInfo{HospitalID: hospitalID}
	totalWait := 0
	for _, d := range doctors {
		info.TotalInQueue += d.PatientsInQueue
		totalWait += d.WaitMinutes
		if len(d.AvailableSlots) > 0 {
			info.DoctorsAvailable++
		}
	}
	if len(doctors) > 0 {
		info.AvgWaitMinutes = totalWait / len(doctors)
	}
	return info, nil
}

// WaitTimesByDepartment breaks the hospital's expected wait down per
// department, averaging across that department's doctors.
func (s *HospitalService) WaitTimesByDepartment(ctx context.Context, hospitalID int) ([]*DepartmentWait, error) {
	if _, err := s.repo.GetByID(ctx, hospitalID); err != nil {
		return nil, err
	}

	doctors, err := s.doctorRepo.Search(ctx, repositories.DoctorSearchParams{HospitalID: hospitalID})
	if err != nil {
		return nil, err
	}

	totals := make(map[string]*DepartmentWait)
	var order []string
	for _, d := range doctors {
		dw, ok := totals[d.Department]
		if !ok {
			dw = &DepartmentWait{Department: d.Department}
			totals[d.Department] = dw
			order = append(order, d.Department)
		}
		dw.WaitMinutes += d.WaitMinutes
		dw.Doctors++
	}

	waits := make([]*DepartmentWait, 0, len(order))
	for _, dept := range order {
		dw := totals[dept]
		dw.WaitMinutes /= dw.Doctors
		waits = append(waits, dw)
	}
	return waits, nil
}

// Contact returns the hospital's contact card
func (s *HospitalService) Contact(ctx context.Context, hospitalID int) (*HospitalContact, error) {
	hospital, err := s.repo.GetByID(ctx, hospitalID)
	if err != nil {
		return nil, err
	}
	return &HospitalContact{
		ID:      hospital.ID,
		Name:    hospital.Name,
		Phone:   hospital.Phone,
		Address: hospital.Address,
	}, nil
}

// Rating returns the hospital's rating with a coarse label
func (s *HospitalService) Rating(ctx context.Context, hospitalID int) (*RatingBreakdown, error) {
	hospital, err := s.repo.GetByID(ctx, hospitalID)
	if err != nil {
		return nil, err
	}

	label := "average"
	switch {
	case hospital.Rating >= 4.5:
		label = "excellent"
	case hospital.Rating >= 4.0:
		label = "good"
	}
	return &RatingBreakdown{
		HospitalID: hospital.ID,
		Rating:     hospital.Rating,
		Label:      label,
	}, nil
}
