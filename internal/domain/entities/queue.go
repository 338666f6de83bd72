package entities

import "time"

// QueueStatus is derived per request from a doctor's current queue depth.
// Position is randomized within the queue; this is an estimate, not a
// ticketing guarantee.
type QueueStatus struct {
	DoctorID             int       `json:"doctor_id"`
	Position             int       `json:"position"`
	TotalInQueue         int       `json:"total_in_queue"`
	EstimatedWaitMinutes int       `json:"estimated_wait_minutes"`
	LastUpdated          time.Time `json:"last_updated"`
}

// QueueEventType classifies queue-depth changes
type QueueEventType string

const (
	QueueEventBooked    QueueEventType = "booked"
	QueueEventCancelled QueueEventType = "cancelled"
)

// QueueEvent is published whenever a booking or cancellation changes a
// doctor's queue depth.
type QueueEvent struct {
	ID              string         `json:"id"`
	Type            QueueEventType `json:"type"`
	DoctorID        int            `json:"doctor_id"`
	PatientsInQueue int            `json:"patients_in_queue"`
	Slot            string         `json:"slot,omitempty"`
	Timestamp       time.Time      `json:"timestamp"`
}
