package entities

import "time"

// CheckpointType classifies indoor waypoints
type CheckpointType string

const (
	CheckpointEntrance   CheckpointType = "entrance"
	CheckpointDepartment CheckpointType = "department"
	CheckpointRoom       CheckpointType = "room"
	CheckpointElevator   CheckpointType = "elevator"
	CheckpointEmergency  CheckpointType = "emergency"
)

// Coordinates locates a checkpoint on the floor plan
type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NavigationStep is one stage of a fixed indoor walking route
type NavigationStep struct {
	ID               int      `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Instruction      string   `json:"instruction"`
	Floor            int      `json:"floor"`
	EstimatedMinutes int      `json:"estimated_minutes"`
	Landmarks        []string `json:"landmarks,omitempty"`
}

// Checkpoint is a scannable NFC waypoint along the route
type Checkpoint struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Type        CheckpointType `json:"type"`
	Floor       int            `json:"floor"`
	Coordinates *Coordinates   `json:"coordinates,omitempty"`
	Description string         `json:"description,omitempty"`
}

// NFCScanResult records the outcome of a checkpoint scan
type NFCScanResult struct {
	SessionID    string    `json:"session_id"`
	CheckpointID int       `json:"checkpoint_id"`
	Timestamp    time.Time `json:"timestamp"`
	Success      bool      `json:"success"`
	ErrorMessage string    `json:"error_message,omitempty"`
}
