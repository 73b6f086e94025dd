package storage

import "time"

// CompletedSessionModel is the GORM model for the completed_sessions table
type CompletedSessionModel struct {
	Category    string    `gorm:"not null;default:'work';index:idx_category"`
	CompletedAt time.Time `gorm:"not null;index:idx_completed_at"`
	CreatedAt   time.Time
	Date        string `gorm:"not null;default:''"`
	Duration    int    `gorm:"not null;default:0"`
	ID          string `gorm:"primaryKey"`
	Task        string `gorm:"not null;default:''"`
}

// TableName specifies the table name for GORM
func (CompletedSessionModel) TableName() string { return "completed_sessions" }

// SlotModel is the GORM model for the key/value slots table
type SlotModel struct {
	CreatedAt time.Time
	Key       string `gorm:"primaryKey;column:slot_key"`
	UpdatedAt time.Time
	Value     string `gorm:"not null;default:''"`
}

// TableName specifies the table name for GORM
func (SlotModel) TableName() string { return "slots" }
