package repository

import (
	"context"

	"clinic-frontdesk/internal/domain/entity"

	"gorm.io/gorm"
)

type BlockedDateRepository interface {
	Create(ctx context.Context, db *gorm.DB, blocked *entity.BlockedDate) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.BlockedDate, error)
	FindByDate(ctx context.Context, db *gorm.DB, date string) (*entity.BlockedDate, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.BlockedDate, error)
	// Dates returns just the blocked date strings, the shape every
	// availability check needs.
	Dates(ctx context.Context, db *gorm.DB) ([]string, error)
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
}
