package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/doodledaron/findcare/backend/internal/domain/entities"
	"github.com/doodledaron/findcare/backend/internal/domain/repositories"
	apperrors "github.com/doodledaron/findcare/backend/pkg/errors"
)

// checkinOrder is the scan sequence a patient walks through: entrance,
// then elevator, then their department's reception.
var checkinOrder = []entities.CheckpointType{
	entities.CheckpointEntrance,
	entities.CheckpointElevator,
	entities.CheckpointDepartment,
}

// CheckinProgress reports how far along the route a session is
type CheckinProgress struct {
	SessionID      string                    `json:"session_id"`
	ScannedTypes   []entities.CheckpointType `json:"scanned_types"`
	NextCheckpoint entities.CheckpointType   `json:"next_checkpoint,omitempty"`
	Complete       bool                      `json:"complete"`
}

// CheckinService validates NFC checkpoint scans against the fixed route
// order. Sessions are held in memory; a check-in only spans one visit.
type CheckinService struct {
	navRepo  repositories.NavigationRepository
	mu       sync.Mutex
	sessions map[string][]entities.CheckpointType
}

// NewCheckinService creates a new check-in service
func NewCheckinService(navRepo repositories.NavigationRepository) *CheckinService {
	return &CheckinService{
		navRepo:  navRepo,
		sessions: make(map[string][]entities.CheckpointType),
	}
}

// RecordScan validates a checkpoint scan for the session. Scans must follow
// the route order; a scan out of sequence comes back unsuccessful with the
// reason, without advancing the session.
func (s *CheckinService) RecordScan(ctx context.Context, sessionID string, checkpointID int) (*entities.NFCScanResult, error) {
	if sessionID == "" {
		return nil, apperrors.NewValidationError("session id is required")
	}

	checkpoint, err := s.navRepo.CheckpointByID(ctx, checkpointID)
	if err != nil {
		return nil, err
	}

	result := &entities.NFCScanResult{
		SessionID:    sessionID,
		CheckpointID: checkpointID,
		Timestamp:    time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	scanned := s.sessions[sessionID]
	if len(scanned) >= len(checkinOrder) {
		result.ErrorMessage = "check-in already complete"
		return result, nil
	}

	expected := checkinOrder[len(scanned)]
	if checkpoint.Type != expected {
		result.ErrorMessage = fmt.Sprintf("expected a %s checkpoint next, scanned %s", expected, checkpoint.Type)
		return result, nil
	}

	s.sessions[sessionID] = append(scanned, checkpoint.Type)
	result.Success = true
	return result, nil
}

// Progress reports the session's position along the route
func (s *CheckinService) Progress(ctx context.Context, sessionID string) (*CheckinProgress, error) {
	if sessionID == "" {
		return nil, apperrors.NewValidationError("session id is required")
	}

	s.mu.Lock()
	scanned := append([]entities.CheckpointType(nil), s.sessions[sessionID]...)
	s.mu.Unlock()

	progress := &CheckinProgress{
		SessionID:    sessionID,
		ScannedTypes: scanned,
		Complete:     len(scanned) >= len(checkinOrder),
	}
	if !progress.Complete {
		progress.NextCheckpoint = checkinOrder[len(scanned)]
	}
	return progress, nil
}

// Route returns the fixed indoor walking route
func (s *CheckinService) Route(ctx context.Context) ([]*entities.NavigationStep, error) {
	return s.navRepo.Steps(ctx)
}

// Checkpoints returns every scannable checkpoint
func (s *CheckinService) Checkpoints(ctx context.Context) ([]*entities.Checkpoint, error) {
	return s.navRepo.Checkpoints(ctx)
}

// CheckpointsByFloor returns the checkpoints on a floor
func (s *CheckinService) CheckpointsByFloor(ctx context.Context, floor int) ([]*entities.Checkpoint, error) {
	return s.navRepo.CheckpointsByFloor(ctx, floor)
}
