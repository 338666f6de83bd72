package intake

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/doodledaron/findcare/backend/pkg/errors"
)

func TestIntakeAdapter_Complete(t *testing.T) {
	t.Run("returns the assessment the webhook produced", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)

			w.Header().Set("Content-Type", "application/json")
			require.NoError(t, json.NewEncoder(w).Encode(map[string]string{
				"symptom":                "chest pain",
				"onset":                  "2 hours ago",
				"description":            "sharp pain radiating to the left arm",
				"recommended_department": "Cardiology",
			}))
		}))
		defer server.Close()

		adapter := NewIntakeAdapter(server.URL, 0)
		assessment, err := adapter.Complete(context.Background(), "sess-42")

		require.NoError(t, err)
		require.NotNil(t, assessment)
		assert.Equal(t, "chest pain", assessment.Symptom)
		assert.Equal(t, "Cardiology", assessment.RecommendedDepartment)
	})

	t.Run("empty body yields nil assessment without error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		adapter := NewIntakeAdapter(server.URL, 0)
		assessment, err := adapter.Complete(context.Background(), "sess-42")

		require.NoError(t, err)
		assert.Nil(t, assessment)
	})

	t.Run("non-JSON body yields nil assessment without error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("thanks, intake recorded"))
		}))
		defer server.Close()

		adapter := NewIntakeAdapter(server.URL, 0)
		assessment, err := adapter.Complete(context.Background(), "sess-42")

		require.NoError(t, err)
		assert.Nil(t, assessment)
	})

	t.Run("server error surfaces as external error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		adapter := NewIntakeAdapter(server.URL, 0)
		_, err := adapter.Complete(context.Background(), "sess-42")

		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeExternal))
	})

	t.Run("configured timeout reaches the client", func(t *testing.T) {
		adapter := NewIntakeAdapter("http://intake.test", 5).(*IntakeAdapter)
		assert.Equal(t, 5*time.Second, adapter.httpClient.Timeout)

		fallback := NewIntakeAdapter("http://intake.test", 0).(*IntakeAdapter)
		assert.Equal(t, defaultHTTPTimeout, fallback.httpClient.Timeout)
	})
}
