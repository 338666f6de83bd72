package providers

import (
	"context"

	"github.com/doodledaron/findcare/backend/internal/domain/entities"
)

// GeoPoint is a latitude/longitude pair in the ranking wire format
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// HospitalSearchRequest is the payload posted to the external ranking service
type HospitalSearchRequest struct {
	SessionID    string   `json:"sessionId"`
	Symptoms     string   `json:"symptoms"`
	Onset        string   `json:"onset"`
	Location     GeoPoint `json:"location"`
	Preference   string   `json:"preference"`
	InsuranceRef string   `json:"insuranceRef"`
	Department   string   `json:"department"`
}

// HospitalSearchProvider ranks hospitals for a symptom/location query via an
// externally owned service and reshapes the response into catalog records.
type HospitalSearchProvider interface {
	// Search posts the request and returns ranked hospitals. A non-2xx
	// response surfaces as an EXTERNAL error; callers fall back to the
	// static store.
	Search(ctx context.Context, req *HospitalSearchRequest) ([]*entities.Hospital, error)
}

// IntakeProvider completes a symptom-intake conversation with the
// conversational-AI webhook.
type IntakeProvider interface {
	// Complete notifies the webhook that intake finished and returns the
	// assessment it produced. An empty or non-JSON response returns
	// (nil, nil) and callers fall back to a default assessment.
	Complete(ctx context.Context, sessionID string) (*entities.Assessment, error)
}
