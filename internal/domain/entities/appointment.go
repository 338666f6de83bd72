package entities

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled  AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed  AppointmentStatus = "confirmed"
	AppointmentStatusInProgress AppointmentStatus = "in-progress"
	AppointmentStatusCompleted  AppointmentStatus = "completed"
	AppointmentStatusCancelled  AppointmentStatus = "cancelled"
)

// ValidAppointmentStatus reports whether s is one of the known status codes.
// Transitions between statuses are deliberately not state-machine enforced.
func ValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusConfirmed,
		AppointmentStatusInProgress, AppointmentStatusCompleted,
		AppointmentStatusCancelled:
		return true
	}
	return false
}

// Appointment represents a booked visit. Patient, hospital and doctor fields
// are denormalized so a record renders without extra lookups.
type Appointment struct {
	ID            string            `json:"id" db:"id"`
	PatientName   string            `json:"patient_name" db:"patient_name"`
	PatientEmail  string            `json:"patient_email" db:"patient_email"`
	PatientPhone  string            `json:"patient_phone" db:"patient_phone"`
	HospitalID    string            `json:"hospital_id" db:"hospital_id"`
	HospitalName  string            `json:"hospital_name" db:"hospital_name"`
	HospitalEmail string            `json:"hospital_email" db:"hospital_email"`
	DoctorID      string            `json:"doctor_id" db:"doctor_id"`
	DoctorName    string            `json:"doctor_name" db:"doctor_name"`
	DoctorEmail   string            `json:"doctor_email" db:"doctor_email"`
	Department    string            `json:"department" db:"department"`
	Date          string            `json:"appointment_date" db:"appointment_date"`
	Time          string            `json:"appointment_time" db:"appointment_time"`
	Notes         string            `json:"notes" db:"notes"`
	Status        AppointmentStatus `json:"status" db:"status"`
	CreatedAt     time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at" db:"updated_at"`
}

// StartsAt combines the date and 12-hour time strings into a time.Time.
// Malformed records return the zero time.
func (a *Appointment) StartsAt() time.Time {
	t, err := time.Parse("2006-01-02 3:04 PM", a.Date+" "+a.Time)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Active reports whether the appointment still occupies a queue slot.
func (a *Appointment) Active() bool {
	return a.Status != AppointmentStatusCancelled
}
