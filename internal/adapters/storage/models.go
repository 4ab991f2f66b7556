package storage

import "time"

// OperationModel is the GORM model for the operations table
type OperationModel struct {
	ID           string `gorm:"primaryKey"`
	Kind         string `gorm:"index"`
	Branch       string `gorm:"default:''"`
	WorktreePath string `gorm:"default:''"`
	RepoRoot     string `gorm:"index;default:''"`
	Outcome      string `gorm:"default:''"`
	Detail       string `gorm:"default:''"`
	OccurredAt   time.Time
	CreatedAt    time.Time
}

// TableName specifies the table name for OperationModel
func (OperationModel) TableName() string { return "operations" }
