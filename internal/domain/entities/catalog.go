package entities

// Department represents a hospital department
type Department struct {
	ID          int      `json:"id" db:"id"`
	Name        string   `json:"name" db:"name"`
	Description string   `json:"description" db:"description"`
	Specialties []string `json:"specialties" db:"-"`
	Color       string   `json:"color" db:"color"`
}

// SymptomSeverity grades how urgent a symptom is
type SymptomSeverity string

const (
	SeverityLow       SymptomSeverity = "low"
	SeverityMedium    SymptomSeverity = "medium"
	SeverityHigh      SymptomSeverity = "high"
	SeverityEmergency SymptomSeverity = "emergency"
)

// Symptom represents an entry in the symptom picker catalog
type Symptom struct {
	ID                 int             `json:"id" db:"id"`
	Name               string          `json:"name" db:"name"`
	Category           string          `json:"category" db:"category"`
	Severity           SymptomSeverity `json:"severity" db:"severity"`
	Icon               string          `json:"icon" db:"icon"`
	SuggestedSpecialty string          `json:"suggested_specialty,omitempty" db:"suggested_specialty"`
	Description        string          `json:"description,omitempty" db:"description"`
}

// Assessment is the outcome of a completed symptom-intake conversation
type Assessment struct {
	Symptom               string `json:"symptom"`
	Onset                 string `json:"onset"`
	Description           string `json:"description"`
	RecommendedDepartment string `json:"recommended_department"`
}

// DefaultAssessment is returned when the intake webhook yields nothing usable.
func DefaultAssessment() *Assessment {
	return &Assessment{
		Symptom:               "general discomfort",
		Onset:                 "today",
		Description:           "Patient completed the voice intake without a structured summary.",
		RecommendedDepartment: "Internal Medicine",
	}
}
