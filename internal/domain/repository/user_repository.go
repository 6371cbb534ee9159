package repository

import (
	"context"

	"clinic-frontdesk/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, db *gorm.DB, user *entity.StaffUser) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.StaffUser, error)
	FindByUsername(ctx context.Context, db *gorm.DB, username string) (*entity.StaffUser, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.StaffUser, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
	CountByRole(ctx context.Context, db *gorm.DB, role string) (int64, error)
	Update(ctx context.Context, db *gorm.DB, user *entity.StaffUser) error
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
}
