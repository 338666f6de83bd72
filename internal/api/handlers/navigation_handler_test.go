package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodledaron/findcare/backend/internal/adapters/memory"
	"github.com/doodledaron/findcare/backend/internal/api/handlers"
	"github.com/doodledaron/findcare/backend/internal/application/services"
	"github.com/doodledaron/findcare/backend/internal/domain/entities"
)

func newNavigationHandler() *handlers.NavigationHandler {
	return handlers.NewNavigationHandler(services.NewCheckinService(memory.NewNavigationAdapter()))
}

func scanPayload(session string, checkpointID int) map[string]interface{} {
	return map[string]interface{}{
		"session_id":    session,
		"checkpoint_id": checkpointID,
	}
}

func TestNavigationHandler_GetSteps(t *testing.T) {
	handler := newNavigationHandler()

	req := httptest.NewRequest("GET", "/api/navigation/steps", nil)
	w := httptest.NewRecorder()

	handler.GetSteps(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var steps []*entities.NavigationStep
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &steps))
	assert.Len(t, steps, 4)
}

func TestNavigationHandler_GetCheckpoints(t *testing.T) {
	t.Run("returns all checkpoints", func(t *testing.T) {
		handler := newNavigationHandler()

		req := httptest.NewRequest("GET", "/api/navigation/checkpoints", nil)
		w := httptest.NewRecorder()

		handler.GetCheckpoints(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var checkpoints []*entities.Checkpoint
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &checkpoints))
		assert.Len(t, checkpoints, 6)
	})

	t.Run("filters by floor", func(t *testing.T) {
		handler := newNavigationHandler()

		req := httptest.NewRequest("GET", "/api/navigation/checkpoints?floor=3", nil)
		w := httptest.NewRecorder()

		handler.GetCheckpoints(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var checkpoints []*entities.Checkpoint
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &checkpoints))
		require.NotEmpty(t, checkpoints)
		for _, cp := range checkpoints {
			assert.Equal(t, 3, cp.Floor)
		}
	})

	t.Run("rejects a non-numeric floor", func(t *testing.T) {
		handler := newNavigationHandler()

		req := httptest.NewRequest("GET", "/api/navigation/checkpoints?floor=x", nil)
		w := httptest.NewRecorder()

		handler.GetCheckpoints(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestNavigationHandler_RecordScan(t *testing.T) {
	t.Run("walks the route in order", func(t *testing.T) {
		handler := newNavigationHandler()

		for _, checkpointID := range []int{1, 2, 3} {
			w := postJSON(t, handler.RecordScan, "/api/checkin/scan", scanPayload("sess-1", checkpointID))
			require.Equal(t, http.StatusOK, w.Code)

			var result entities.NFCScanResult
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
			assert.True(t, result.Success)
		}
	})

	t.Run("rejects a skipped checkpoint without advancing", func(t *testing.T) {
		handler := newNavigationHandler()

		w := postJSON(t, handler.RecordScan, "/api/checkin/scan", scanPayload("sess-2", 2))
		require.Equal(t, http.StatusOK, w.Code)

		var result entities.NFCScanResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.False(t, result.Success)
		assert.Contains(t, result.ErrorMessage, "entrance")
	})

	t.Run("returns not found for an unknown checkpoint", func(t *testing.T) {
		handler := newNavigationHandler()

		w := postJSON(t, handler.RecordScan, "/api/checkin/scan", scanPayload("sess-3", 42))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("requires a session id", func(t *testing.T) {
		handler := newNavigationHandler()

		w := postJSON(t, handler.RecordScan, "/api/checkin/scan", scanPayload("", 1))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestNavigationHandler_GetProgress(t *testing.T) {
	handler := newNavigationHandler()

	w := postJSON(t, handler.RecordScan, "/api/checkin/scan", scanPayload("sess-4", 1))
	require.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest("GET", "/api/checkin/progress?session_id=sess-4", nil)
	rec := httptest.NewRecorder()

	handler.GetProgress(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var progress services.CheckinProgress
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &progress))
	assert.Len(t, progress.ScannedTypes, 1)
	assert.False(t, progress.Complete)
}
