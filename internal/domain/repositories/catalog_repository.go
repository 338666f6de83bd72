package repositories

import (
	"context"

	"github.com/doodledaron/findcare/backend/internal/domain/entities"
)

// CatalogRepository serves the static department and symptom catalogs
type CatalogRepository interface {
	// Departments returns the department catalog
	Departments(ctx context.Context) ([]*entities.Department, error)

	// Symptoms returns the symptom picker catalog
	Symptoms(ctx context.Context) ([]*entities.Symptom, error)

	// SymptomsByCategory returns symptoms in a category
	SymptomsByCategory(ctx context.Context, category string) ([]*entities.Symptom, error)
}

// NavigationRepository serves the static indoor route and checkpoint records
type NavigationRepository interface {
	// Steps returns the ordered walking route
	Steps(ctx context.Context) ([]*entities.NavigationStep, error)

	// Checkpoints returns every scannable checkpoint
	Checkpoints(ctx context.Context) ([]*entities.Checkpoint, error)

	// CheckpointByID retrieves a checkpoint by ID
	CheckpointByID(ctx context.Context, id int) (*entities.Checkpoint, error)

	// CheckpointsByFloor returns checkpoints on a floor
	CheckpointsByFloor(ctx context.Context, floor int) ([]*entities.Checkpoint, error)
}
