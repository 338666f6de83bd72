package entities

// Doctor represents a practicing doctor in the catalog
type Doctor struct {
	ID              int      `json:"id" db:"id"`
	Name            string   `json:"name" db:"name"`
	Specialty       string   `json:"specialty" db:"specialty"`
	Department      string   `json:"department" db:"department"`
	HospitalID      int      `json:"hospital_id" db:"hospital_id"`
	Rating          float64  `json:"rating" db:"rating"`
	PatientsInQueue int      `json:"patients_in_queue" db:"patients_in_queue"`
	WaitMinutes     int      `json:"wait_minutes" db:"wait_minutes"`
	ExperienceYears int      `json:"experience_years" db:"experience_years"`
	AvailableSlots  []string `json:"available_slots" db:"-"`
	Languages       []string `json:"languages" db:"-"`
	Education       string   `json:"education,omitempty" db:"education"`
	Certifications  []string `json:"certifications,omitempty" db:"-"`
	ConsultationFee float64  `json:"consultation_fee,omitempty" db:"consultation_fee"`
	Image           string   `json:"image,omitempty" db:"image"`
}

// HasSlot reports whether slot is currently bookable.
func (d *Doctor) HasSlot(slot string) bool {
	for _, s := range d.AvailableSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers cannot mutate store-owned slices.
func (d *Doctor) Clone() *Doctor {
	c := *d
	c.AvailableSlots = append([]string(nil), d.AvailableSlots...)
	c.Languages = append([]string(nil), d.Languages...)
	c.Certifications = append([]string(nil), d.Certifications...)
	return &c
}
