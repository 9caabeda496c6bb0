package deployments

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreatePending(eventId, programID, checksum string) (*DeploymentRecord, error) {
	record := &DeploymentRecord{
		EventId:         eventId,
		ProgramID:       programID,
		ProgramChecksum: checksum,
		Status:          StatusPending,
	}
	if result := r.db.Create(record); result.Error != nil {
		return nil, fmt.Errorf("create deployment record: %w", result.Error)
	}
	return record, nil
}

func (r *Repository) MarkDeployed(eventId, account, signature string, feeLamports uint64) error {
	result := r.db.Model(&DeploymentRecord{}).
		Where("event_id = ?", eventId).
		Updates(map[string]interface{}{
			"status":           StatusDeployed,
			"ledger_account":   account,
			"ledger_signature": signature,
			"fee_lamports":     feeLamports,
			"updated_at":       time.Now().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("mark deployed: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("no deployment record for event %s", eventId)
	}
	return nil
}

func (r *Repository) MarkFailed(eventId, reason string) error {
	result := r.db.Model(&DeploymentRecord{}).
		Where("event_id = ?", eventId).
		Updates(map[string]interface{}{
			"status":         StatusFailed,
			"failure_reason": reason,
			"updated_at":     time.Now().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("mark failed: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("no deployment record for event %s", eventId)
	}
	return nil
}

// ListStalePending returns deployments that have been pending for longer than
// maxAge, oldest first.
func (r *Repository) ListStalePending(maxAge time.Duration) ([]DeploymentRecord, error) {
	cutoff := time.Now().UTC().Add(-maxAge)
	var records []DeploymentRecord
	result := r.db.
		Where("status = ? AND created_at < ?", StatusPending, cutoff).
		Order("created_at asc").
		Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}
	return records, nil
}

func (r *Repository) FindByEventId(eventId string) (*DeploymentRecord, error) {
	var record DeploymentRecord
	result := r.db.Where("event_id = ?", eventId).First(&record)
	if result.Error != nil {
		return nil, result.Error
	}
	return &record, nil
}

func (r *Repository) ListByProgram(checksum string) ([]DeploymentRecord, error) {
	var records []DeploymentRecord
	result := r.db.Where("program_checksum = ?", checksum).Order("created_at desc").Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}
	return records, nil
}

func (r *Repository) RecordExecution(eventId, checksum, function, outputsJSON string, verified bool) error {
	record := &ExecutionRecord{
		EventId:         eventId,
		ProgramChecksum: checksum,
		Function:        function,
		PublicOutputs:   outputsJSON,
		Verified:        verified,
	}
	if result := r.db.Create(record); result.Error != nil {
		return fmt.Errorf("record execution: %w", result.Error)
	}
	return nil
}

func (r *Repository) ListExecutions(checksum, function string) ([]ExecutionRecord, error) {
	var records []ExecutionRecord
	result := r.db.
		Where("program_checksum = ? AND function = ?", checksum, function).
		Order("created_at desc").
		Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}
	return records, nil
}
