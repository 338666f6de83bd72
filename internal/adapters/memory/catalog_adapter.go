package memory

import (
	"context"
	"strings"

	"github.com/doodledaron/findcare/backend/internal/domain/entities"
	"github.com/doodledaron/findcare/backend/pkg/errors"
)

// CatalogAdapter serves the static department and symptom catalogs. The
// catalogs are immutable after construction so no locking is needed.
type CatalogAdapter struct {
	departments []*entities.Department
	symptoms    []*entities.Symptom
}

// NewCatalogAdapter creates a store seeded with the fixture catalogs.
func NewCatalogAdapter() *CatalogAdapter {
	return &CatalogAdapter{
		departments: SeedDepartments(),
		symptoms:    SeedSymptoms(),
	}
}

// Departments returns the department catalog.
func (a *CatalogAdapter) Departments(ctx context.Context) ([]*entities.Department, error) {
	return append([]*entities.Department(nil), a.departments...), nil
}

// Symptoms returns the symptom picker catalog.
func (a *CatalogAdapter) Symptoms(ctx context.Context) ([]*entities.Symptom, error) {
	return append([]*entities.Symptom(nil), a.symptoms...), nil
}

// SymptomsByCategory returns symptoms in a category, matched
// case-insensitively.
func (a *CatalogAdapter) SymptomsByCategory(ctx context.Context, category string) ([]*entities.Symptom, error) {
	var out []*entities.Symptom
	for _, s := range a.symptoms {
		if strings.EqualFold(s.Category, category) {
			out = append(out, s)
		}
	}
	return out, nil
}

// NavigationAdapter serves the static indoor route and checkpoint records.
type NavigationAdapter struct {
	steps       []*entities.NavigationStep
	checkpoints []*entities.Checkpoint
	byID        map[int]*entities.Checkpoint
}

// NewNavigationAdapter creates a store seeded with the fixture route.
func NewNavigationAdapter() *NavigationAdapter {
	checkpoints := SeedCheckpoints()
	byID := make(map[int]*entities.Checkpoint, len(checkpoints))
	for _, c := range checkpoints {
		byID[c.ID] = c
	}
	return &NavigationAdapter{
		steps:       SeedNavigationSteps(),
		checkpoints: checkpoints,
		byID:        byID,
	}
}

// Steps returns the ordered walking route.
func (a *NavigationAdapter) Steps(ctx context.Context) ([]*entities.NavigationStep, error) {
	return append([]*entities.NavigationStep(nil), a.steps...), nil
}

// Checkpoints returns every scannable checkpoint.
func (a *NavigationAdapter) Checkpoints(ctx context.Context) ([]*entities.Checkpoint, error) {
	return append([]*entities.Checkpoint(nil), a.checkpoints...), nil
}

// CheckpointByID retrieves one checkpoint.
func (a *NavigationAdapter) CheckpointByID(ctx context.Context, id int) (*entities.Checkpoint, error) {
	c, ok := a.byID[id]
	if !ok {
		return nil, errors.NewNotFoundError("checkpoint not found")
	}
	return c, nil
}

// CheckpointsByFloor returns checkpoints on a floor.
func (a *NavigationAdapter) CheckpointsByFloor(ctx context.Context, floor int) ([]*entities.Checkpoint, error) {
	var out []*entities.Checkpoint
	for _, c := range a.checkpoints {
		if c.Floor == floor {
			out = append(out, c)
		}
	}
	return out, nil
}
