package intake

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/doodledaron/findcare/backend/internal/domain/entities"
	"github.com/doodledaron/findcare/backend/internal/domain/providers"
	apperrors "github.com/doodledaron/findcare/backend/pkg/errors"
)

const defaultHTTPTimeout = 10 * time.Second

// IntakeAdapter implements IntakeProvider against the conversational-AI
// completion webhook.
type IntakeAdapter struct {
	webhookURL string
	httpClient *http.Client
}

// NewIntakeAdapter creates a new intake adapter. A non-positive timeout
// falls back to the default.
func NewIntakeAdapter(webhookURL string, timeoutSeconds int) providers.IntakeProvider {
	timeout := defaultHTTPTimeout
	if timeoutSeconds > 0 {
		timeout = time.Duration(timeoutSeconds) * time.Second
	}
	return NewIntakeAdapterWithClient(webhookURL, &http.Client{Timeout: timeout})
}

// NewIntakeAdapterWithClient allows overriding the HTTP client (used for tests).
func NewIntakeAdapterWithClient(webhookURL string, httpClient *http.Client) providers.IntakeProvider {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &IntakeAdapter{
		webhookURL: webhookURL,
		httpClient: httpClient,
	}
}

// Complete notifies the webhook that intake finished. The webhook's reply
// is best-effort: an empty body or one that is not an assessment document
// yields (nil, nil) so callers fall back to a default assessment.
func (a *IntakeAdapter) Complete(ctx context.Context, sessionID string) (*entities.Assessment, error) {
	if a.webhookURL == "" {
		return nil, apperrors.NewExternalError("symptom intake webhook not configured", nil)
	}

	// The webhook is session-scoped on its own side; the trigger is an
	// empty POST.
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.webhookURL, nil)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build completion request", err)
	}

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return nil, apperrors.NewExternalError("intake completion request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.NewExternalError(
			fmt.Sprintf("intake completion returned status %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewExternalError("failed to read completion response", err)
	}

	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, nil
	}

	var assessment entities.Assessment
	if err := json.Unmarshal(body, &assessment); err != nil {
		log.Debug().Str("session_id", sessionID).Msg("Intake webhook reply was not an assessment document")
		return nil, nil
	}
	return &assessment, nil
}
