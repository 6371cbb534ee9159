package repository

import (
	"context"
	"errors"

	"clinic-frontdesk/internal/domain/entity"
	domainRepo "clinic-frontdesk/internal/domain/repository"

	"gorm.io/gorm"
)

type blockedDateRepository struct{}

func NewBlockedDateRepository() domainRepo.BlockedDateRepository {
	return &blockedDateRepository{}
}

func (r *blockedDateRepository) Create(ctx context.Context, db *gorm.DB, blocked *entity.BlockedDate) error {
	return db.WithContext(ctx).Create(blocked).Error
}

func (r *blockedDateRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.BlockedDate, error) {
	var blocked entity.BlockedDate
	err := db.WithContext(ctx).Where("id = ?", id).First(&blocked).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &blocked, nil
}

func (r *blockedDateRepository) FindByDate(ctx context.Context, db *gorm.DB, date string) (*entity.BlockedDate, error) {
	var blocked entity.BlockedDate
	err := db.WithContext(ctx).Where("date = ?", date).First(&blocked).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &blocked, nil
}

func (r *blockedDateRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.BlockedDate, error) {
	var blocked []entity.BlockedDate
	err := db.WithContext(ctx).Order("date DESC").Find(&blocked).Error
	if err != nil {
		return nil, err
	}
	return blocked, nil
}

func (r *blockedDateRepository) Dates(ctx context.Context, db *gorm.DB) ([]string, error) {
	var dates []string
	err := db.WithContext(ctx).Model(&entity.BlockedDate{}).
		Pluck("date", &dates).Error
	if err != nil {
		return nil, err
	}
	return dates, nil
}

func (r *blockedDateRepository) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.BlockedDate{})
	return result.RowsAffected, result.Error
}
