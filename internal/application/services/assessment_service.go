package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/doodledaron/findcare/backend/internal/domain/entities"
	"github.com/doodledaron/findcare/backend/internal/domain/providers"
	"github.com/doodledaron/findcare/backend/internal/domain/repositories"
	apperrors "github.com/doodledaron/findcare/backend/pkg/errors"
)

// AssessmentService completes symptom-intake conversations and recommends
// a department from the symptom catalog.
type AssessmentService struct {
	intake      providers.IntakeProvider
	cache       providers.CacheProvider
	catalogRepo repositories.CatalogRepository
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(
	intake providers.IntakeProvider,
	cache providers.CacheProvider,
	catalogRepo repositories.CatalogRepository,
) *AssessmentService {
	return &AssessmentService{
		intake:      intake,
		cache:       cache,
		catalogRepo: catalogRepo,
	}
}

// CompleteIntake closes the intake conversation with the webhook and
// persists the resulting assessment. A webhook that replies with nothing
// usable still yields an assessment: the default one.
func (s *AssessmentService) CompleteIntake(ctx context.Context, sessionID string) (*entities.Assessment, error) {
	assessment, err := s.intake.Complete(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		assessment = entities.DefaultAssessment()
	}

	if assessment.RecommendedDepartment == "" {
		assessment.RecommendedDepartment = s.recommendFromCatalog(ctx, assessment.Symptom)
	}

	s.persist(ctx, assessment)
	return assessment, nil
}

// Cached returns the last persisted assessment, if any.
func (s *AssessmentService) Cached(ctx context.Context) (*entities.Assessment, error) {
	if s.cache == nil {
		return nil, apperrors.NewNotFoundError("no cached assessment")
	}
	data, err := s.cache.Get(ctx, providers.KeyAssessmentData)
	if err != nil {
		return nil, apperrors.NewNotFoundError("no cached assessment")
	}
	var assessment entities.Assessment
	if err := json.Unmarshal(data, &assessment); err != nil {
		return nil, apperrors.NewInternalError("failed to decode cached assessment", err)
	}
	return &assessment, nil
}

// Recommend maps a free-text symptom onto a department using the symptom
// catalog. Unmatched symptoms route to Internal Medicine.
func (s *AssessmentService) Recommend(ctx context.Context, symptom string) (string, error) {
	return s.recommendFromCatalog(ctx, symptom), nil
}

func (s *AssessmentService) recommendFromCatalog(ctx context.Context, symptom string) string {
	fallback := "Internal Medicine"
	if s.catalogRepo == nil {
		return fallback
	}

	symptoms, err := s.catalogRepo.Symptoms(ctx)
	if err != nil {
		return fallback
	}

	needle := strings.ToLower(strings.TrimSpace(symptom))
	if needle == "" {
		return fallback
	}

	for _, candidate := range symptoms {
		name := strings.ToLower(candidate.Name)
		if strings.Contains(needle, name) || strings.Contains(name, needle) {
			if candidate.SuggestedSpecialty != "" {
				return candidate.SuggestedSpecialty
			}
		}
	}
	return fallback
}

// persist is last-write-wins; the client reads this once per page load.
func (s *AssessmentService) persist(ctx context.Context, assessment *entities.Assessment) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(assessment)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, providers.KeyAssessmentData, payload, 0); err != nil {
		log.Warn().Err(err).Msg("Failed to persist assessment")
	}
}
