package usecase

import (
	"context"
	"fmt"
)

// StateAdmin is the slice of the state store the maintenance operations
// need. Reset wipes the pool tables; Snapshot serializes the whole document.
type StateAdmin interface {
	Reset(ctx context.Context) error
	Snapshot(ctx context.Context) ([]byte, error)
}

// MaintenanceService backs the operator endpoints: full pool resets and
// snapshot exports for backups.
type MaintenanceService struct {
	admin StateAdmin
}

func NewMaintenanceService(admin StateAdmin) *MaintenanceService {
	return &MaintenanceService{admin: admin}
}

// ResetAll clears matches, rosters, points, and stakes. Match locks
// survive; a locked name stays locked until the process restarts.
func (s *MaintenanceService) ResetAll(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MaintenanceService.ResetAll")
	defer span.End()

	if err := s.admin.Reset(ctx); err != nil {
		return fmt.Errorf("reset state: %w", err)
	}
	return nil
}

// ExportSnapshot returns the current pool document in its persisted JSON
// form, suitable for offline backup.
func (s *MaintenanceService) ExportSnapshot(ctx context.Context) ([]byte, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MaintenanceService.ExportSnapshot")
	defer span.End()

	payload, err := s.admin.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("export snapshot: %w", err)
	}
	return payload, nil
}
