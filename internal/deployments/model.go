package deployments

import "time"

const (
	StatusPending  = "pending"
	StatusDeployed = "deployed"
	StatusFailed   = "failed"
)

type DeploymentRecord struct {
	Id              uint   `gorm:"primaryKey;autoIncrement"`
	EventId         string `gorm:"uniqueIndex;size:64"`
	ProgramID       string `gorm:"index;size:128"`
	ProgramChecksum string `gorm:"index;size:64"`
	LedgerAccount   string `gorm:"size:64"`
	LedgerSignature string `gorm:"size:128"`
	FeeLamports     uint64
	Status          string `gorm:"size:16"`
	FailureReason   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type ExecutionRecord struct {
	Id              uint   `gorm:"primaryKey;autoIncrement"`
	EventId         string `gorm:"uniqueIndex;size:64"`
	ProgramChecksum string `gorm:"index;size:64"`
	Function        string `gorm:"size:128"`
	PublicOutputs   string
	Verified        bool
	CreatedAt       time.Time
}
