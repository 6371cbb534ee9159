package repository

import (
	"context"

	"clinic-frontdesk/internal/domain/entity"

	"gorm.io/gorm"
)

type SettingRepository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Setting, error)
	// Upsert writes the whole settings batch, keyed on the setting key.
	Upsert(ctx context.Context, db *gorm.DB, settings []entity.Setting) error
}
