package entities

import "strings"

// HospitalType distinguishes public and private hospitals
type HospitalType string

const (
	HospitalTypePublic  HospitalType = "public"
	HospitalTypePrivate HospitalType = "private"
)

// Hospital represents a hospital in the catalog
type Hospital struct {
	ID                int          `json:"id" db:"id"`
	Name              string       `json:"name" db:"name"`
	Address           string       `json:"address" db:"address"`
	Type              HospitalType `json:"type" db:"type"`
	Specialties       []string     `json:"specialties" db:"-"`
	Rating            float64      `json:"rating" db:"rating"`
	DistanceKm        float64      `json:"distance_km" db:"distance_km"`
	Phone             string       `json:"phone" db:"phone"`
	EmergencyServices bool         `json:"emergency_services" db:"emergency_services"`
	Image             string       `json:"image,omitempty" db:"image"`
	OperatingHours    string       `json:"operating_hours,omitempty" db:"operating_hours"`
	Facilities        []string     `json:"facilities,omitempty" db:"-"`
	Insurance         []string     `json:"insurance,omitempty" db:"-"`
}

// ClassifyHospitalType maps free-text type descriptions onto the two-value
// enum by substring match. Unknown descriptions default to public; that
// permissive default mirrors upstream behavior and silently absorbs
// unrecognized types.
func ClassifyHospitalType(raw string) HospitalType {
	lower := strings.ToLower(raw)
	switch {
	case strings.Contains(lower, "private"):
		return HospitalTypePrivate
	case strings.Contains(lower, "government"), strings.Contains(lower, "public"):
		return HospitalTypePublic
	default:
		return HospitalTypePublic
	}
}

// AcceptsInsurance reports whether any accepted plan contains the given
// provider name, case-insensitively.
func (h *Hospital) AcceptsInsurance(provider string) bool {
	needle := strings.ToLower(provider)
	for _, plan := range h.Insurance {
		if strings.Contains(strings.ToLower(plan), needle) {
			return true
		}
	}
	return false
}

// HasSpecialty reports whether the hospital lists the given specialty,
// case-insensitively.
func (h *Hospital) HasSpecialty(specialty string) bool {
	needle := strings.ToLower(specialty)
	for _, s := range h.Specialties {
		if strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers cannot mutate store-owned slices.
func (h *Hospital) Clone() *Hospital {
	c := *h
	c.Specialties = append([]string(nil), h.Specialties...)
	c.Facilities = append([]string(nil), h.Facilities...)
	c.Insurance = append([]string(nil), h.Insurance...)
	return &c
}
