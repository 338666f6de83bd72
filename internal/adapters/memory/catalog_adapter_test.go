package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodledaron/findcare/backend/internal/domain/entities"
	"github.com/doodledaron/findcare/backend/pkg/errors"
)

func TestCatalogAdapter(t *testing.T) {
	adapter := NewCatalogAdapter()
	ctx := context.Background()

	t.Run("departments", func(t *testing.T) {
		departments, err := adapter.Departments(ctx)

		require.NoError(t, err)
		require.Len(t, departments, 8)
		assert.Equal(t, "Cardiology", departments[0].Name)
	})

	t.Run("symptoms", func(t *testing.T) {
		symptoms, err := adapter.Symptoms(ctx)

		require.NoError(t, err)
		assert.Len(t, symptoms, 10)
	})

	t.Run("symptoms by category", func(t *testing.T) {
		symptoms, err := adapter.SymptomsByCategory(ctx, "Neurological")

		require.NoError(t, err)
		require.Len(t, symptoms, 2)
		assert.Equal(t, "Headache", symptoms[0].Name)
		assert.Equal(t, "Dizziness", symptoms[1].Name)
	})

	t.Run("unknown category yields empty", func(t *testing.T) {
		symptoms, err := adapter.SymptomsByCategory(ctx, "dental")

		require.NoError(t, err)
		assert.Empty(t, symptoms)
	})
}

func TestNavigationAdapter(t *testing.T) {
	adapter := NewNavigationAdapter()
	ctx := context.Background()

	t.Run("steps come back in route order", func(t *testing.T) {
		steps, err := adapter.Steps(ctx)

		require.NoError(t, err)
		require.Len(t, steps, 4)
		assert.Equal(t, "Main Entrance to Elevator", steps[0].Title)
	})

	t.Run("checkpoint by id", func(t *testing.T) {
		checkpoint, err := adapter.CheckpointByID(ctx, 5)

		require.NoError(t, err)
		assert.Equal(t, "Emergency Department", checkpoint.Name)
		assert.Equal(t, entities.CheckpointEmergency, checkpoint.Type)
	})

	t.Run("unknown checkpoint returns not found", func(t *testing.T) {
		_, err := adapter.CheckpointByID(ctx, 99)

		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrorTypeNotFound))
	})

	t.Run("checkpoints by floor", func(t *testing.T) {
		checkpoints, err := adapter.CheckpointsByFloor(ctx, 2)

		require.NoError(t, err)
		require.Len(t, checkpoints, 2)
		assert.Equal(t, "Cardiology Department", checkpoints[0].Name)
		assert.Equal(t, "Internal Medicine", checkpoints[1].Name)
	})
}
