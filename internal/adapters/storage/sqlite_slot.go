package storage

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tempo/internal/domain"
	"tempo/internal/ports"
)

// SQLiteSlot implements ports.KeyValueSlot on the slots table
type SQLiteSlot struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.KeyValueSlot = (*SQLiteSlot)(nil)

func (s *SQLiteSlot) Get(key string) (string, error) {
	var model SlotModel
	err := withRetry(func() error {
		return s.db.Where("slot_key = ?", key).First(&model).Error
	}, maxRetries)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrSlotEmpty
		}
		return "", fmt.Errorf("failed to read slot: %w", err)
	}
	return model.Value, nil
}

func (s *SQLiteSlot) Set(key, value string) error {
	model := SlotModel{Key: key, Value: value}
	err := withRetry(func() error {
		return s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slot_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&model).Error
	}, maxRetries)
	if err != nil {
		return fmt.Errorf("failed to write slot: %w", err)
	}
	return nil
}

func (s *SQLiteSlot) Remove(key string) error {
	err := withRetry(func() error {
		return s.db.Where("slot_key = ?", key).Delete(&SlotModel{}).Error
	}, maxRetries)
	if err != nil {
		return fmt.Errorf("failed to remove slot: %w", err)
	}
	return nil
}
