package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/doodledaron/findcare/backend/internal/adapters/memory"
	"github.com/doodledaron/findcare/backend/internal/application/services"
	"github.com/doodledaron/findcare/backend/internal/domain/entities"
	"github.com/doodledaron/findcare/backend/internal/domain/providers"
	apperrors "github.com/doodledaron/findcare/backend/pkg/errors"
)

func newHospitalService(search *MockSearchProvider, cache *MockCacheProvider) *services.HospitalService {
	var searchProvider providers.HospitalSearchProvider
	if search != nil {
		searchProvider = search
	}
	var cacheProvider providers.CacheProvider
	if cache != nil {
		cacheProvider = cache
	}
	return services.NewHospitalService(
		memory.NewHospitalAdapter(),
		memory.NewDoctorAdapter(),
		searchProvider,
		cacheProvider,
	)
}

func TestHospitalService_SearchRanked(t *testing.T) {
	ctx := context.Background()

	t.Run("remote results are tagged remote and persisted", func(t *testing.T) {
		search := new(MockSearchProvider)
		cache := new(MockCacheProvider)
		service := newHospitalService(search, cache)

		ranked := []*entities.Hospital{
			{ID: 101, Name: "Ranked General", Type: entities.HospitalTypePublic},
		}
		req := &providers.HospitalSearchRequest{SessionID: "sess-1", Department: "Cardiology"}
		search.On("Search", mock.Anything, req).Return(ranked, nil)
		cache.On("Set", mock.Anything, providers.KeyHospitalSearchResponse, mock.Anything, 0).Return(nil)

		result, err := service.SearchRanked(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, services.SearchSourceRemote, result.Source)
		require.Len(t, result.Hospitals, 1)
		assert.Equal(t, "Ranked General", result.Hospitals[0].Name)
		cache.AssertExpectations(t)
	})

	t.Run("provider failure falls back to the static catalog", func(t *testing.T) {
		search := new(MockSearchProvider)
		cache := new(MockCacheProvider)
		service := newHospitalService(search, cache)

		req := &providers.HospitalSearchRequest{SessionID: "sess-2", Department: "Oncology"}
		search.On("Search", mock.Anything, req).
			Return(nil, apperrors.NewExternalError("ranking service unavailable", nil))
		cache.On("Set", mock.Anything, providers.KeyHospitalSearchResponse, mock.Anything, 0).Return(nil)

		result, err := service.SearchRanked(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, services.SearchSourceStatic, result.Source)
		require.Len(t, result.Hospitals, 2)
		for _, h := range result.Hospitals {
			assert.True(t, h.HasSpecialty("Oncology"))
		}
	})
}

func TestHospitalService_Aggregations(t *testing.T) {
	service := newHospitalService(nil, nil)
	ctx := context.Background()

	t.Run("queue info sums the hospital's doctors", func(t *testing.T) {
		info, err := service.QueueInfo(ctx, 1)

		require.NoError(t, err)
		// doctors 1, 2 and 4 work at hospital 1
		assert.Equal(t, 6, info.TotalInQueue)
		assert.Equal(t, 3, info.DoctorsAvailable)
		assert.Equal(t, 7, info.AvgWaitMinutes)
	})

	t.Run("wait times break down per department", func(t *testing.T) {
		waits, err := service.WaitTimesByDepartment(ctx, 1)

		require.NoError(t, err)
		require.Len(t, waits, 3)
		assert.Equal(t, "Neurology", waits[0].Department)
		assert.Equal(t, 10, waits[0].WaitMinutes)
	})

	t.Run("queue info for an unknown hospital is not found", func(t *testing.T) {
		_, err := service.QueueInfo(ctx, 42)

		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
	})

	t.Run("nearest emergency is the closest flagged hospital", func(t *testing.T) {
		hospital, err := service.NearestEmergency(ctx)

		require.NoError(t, err)
		assert.Equal(t, "Singapore General Hospital", hospital.Name)
	})

	t.Run("rating label grades the score", func(t *testing.T) {
		breakdown, err := service.Rating(ctx, 6)

		require.NoError(t, err)
		assert.Equal(t, "excellent", breakdown.Label)

		breakdown, err = service.Rating(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, "good", breakdown.Label)
	})
}

func TestHospitalService_SortByDistance(t *testing.T) {
	service := newHospitalService(nil, nil)

	hospitals := []*entities.Hospital{
		{ID: 1, DistanceKm: 7.3},
		{ID: 2, DistanceKm: 2.5},
		{ID: 3, DistanceKm: 4.1},
	}

	sorted := service.SortByDistance(hospitals)

	assert.Equal(t, 2, sorted[0].ID)
	assert.Equal(t, 3, sorted[1].ID)
	assert.Equal(t, 1, sorted[2].ID)
	assert.Equal(t, 1, hospitals[0].ID)
}
