package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/doodledaron/findcare/backend/internal/domain/entities"
	"github.com/doodledaron/findcare/backend/internal/domain/providers"
	apperrors "github.com/doodledaron/findcare/backend/pkg/errors"
	"github.com/doodledaron/findcare/backend/pkg/format"
)

const defaultHTTPTimeout = 15 * time.Second

// rankingResponse is the wire shape returned by the ranking service.
type rankingResponse struct {
	Origin               string          `json:"origin"`
	DestinationAddresses []string        `json:"destination_addresses"`
	OriginAddresses      []string        `json:"origin_addresses"`
	Top8                 []rankingRecord `json:"top8"`
}

type rankingRecord struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Address            string             `json:"address"`
	Location           providers.GeoPoint `json:"location_in_latitude_and_longitude"`
	Phone              string             `json:"phone"`
	Website            string             `json:"website"`
	HospitalType       string             `json:"hospital_type"`
	DistanceKm         float64            `json:"distance_km_from_user_location"`
	CurrentQueuePeople int                `json:"current_queue_people"`
	AvgWaitMinutes     int                `json:"avg_wait_minutes"`
	DoctorsAvailable   int                `json:"doctors_available"`
	RankingScore       float64            `json:"ranking_score"`
	TravelMinInTraffic int                `json:"travel_min_in_traffic"`
	ETATotalMin        int                `json:"eta_total_min"`
}

// RankingAdapter implements HospitalSearchProvider against the external
// hospital-ranking webhook.
type RankingAdapter struct {
	webhookURL string
	httpClient *http.Client
}

// NewRankingAdapter creates a new ranking adapter. A non-positive timeout
// falls back to the default.
func NewRankingAdapter(webhookURL string, timeoutSeconds int) providers.HospitalSearchProvider {
	timeout := defaultHTTPTimeout
	if timeoutSeconds > 0 {
		timeout = time.Duration(timeoutSeconds) * time.Second
	}
	return NewRankingAdapterWithClient(webhookURL, &http.Client{Timeout: timeout})
}

// NewRankingAdapterWithClient allows overriding the HTTP client (used for tests).
func NewRankingAdapterWithClient(webhookURL string, httpClient *http.Client) providers.HospitalSearchProvider {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &RankingAdapter{
		webhookURL: webhookURL,
		httpClient: httpClient,
	}
}

// Search posts the query to the ranking service and reshapes the top8
// records into catalog hospitals, preserving rank order.
func (a *RankingAdapter) Search(ctx context.Context, req *providers.HospitalSearchRequest) ([]*entities.Hospital, error) {
	if a.webhookURL == "" {
		return nil, apperrors.NewExternalError("hospital search webhook not configured", nil)
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to marshal search request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build search request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return nil, apperrors.NewExternalError("hospital search request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.NewExternalError(
			fmt.Sprintf("hospital search returned status %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewExternalError("failed to read search response", err)
	}

	var ranked rankingResponse
	if err := json.Unmarshal(body, &ranked); err != nil {
		return nil, apperrors.NewExternalError("failed to decode search response", err)
	}

	hospitals := make([]*entities.Hospital, 0, len(ranked.Top8))
	for _, record := range ranked.Top8 {
		hospitals = append(hospitals, mapRecord(record))
	}
	return hospitals, nil
}

// mapRecord reshapes one remote record into a catalog hospital.
func mapRecord(r rankingRecord) *entities.Hospital {
	return &entities.Hospital{
		ID:                parseHospitalID(r.ID),
		Name:              format.TitleCase(r.Name),
		Address:           r.Address,
		Type:              entities.ClassifyHospitalType(r.HospitalType),
		Rating:            r.RankingScore,
		DistanceKm:        r.DistanceKm,
		Phone:             r.Phone,
		EmergencyServices: true,
		Image:             stockImage(r.ID),
		OperatingHours:    "Open 24 hours",
	}
}

// parseHospitalID extracts the numeric part of HSP-prefixed ids. Ids that
// do not fit the scheme hash to a stable positive number so repeated
// searches keep the same identity.
func parseHospitalID(raw string) int {
	if trimmed := strings.TrimPrefix(raw, "HSP"); trimmed != raw {
		if id, err := strconv.Atoi(trimmed); err == nil {
			return id
		}
	}
	h := fnv.New32a()
	h.Write([]byte(raw))
	return int(h.Sum32() % 1_000_000)
}

// stockImage picks a deterministic placeholder so the same hospital always
// renders with the same image.
func stockImage(id string) string {
	h := fnv.New32a()
	h.Write([]byte(id))
	return fmt.Sprintf("/hospitals/stock-%d.jpg", h.Sum32()%6+1)
}
