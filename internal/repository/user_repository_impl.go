package repository

import (
	"context"
	"errors"

	"clinic-frontdesk/internal/domain/entity"
	domainRepo "clinic-frontdesk/internal/domain/repository"

	"gorm.io/gorm"
)

type userRepository struct{}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(ctx context.Context, db *gorm.DB, user *entity.StaffUser) error {
	return db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.StaffUser, error) {
	var user entity.StaffUser
	err := db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, db *gorm.DB, username string) (*entity.StaffUser, error) {
	var user entity.StaffUser
	err := db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.StaffUser, error) {
	var users []entity.StaffUser
	err := db.WithContext(ctx).Order("username ASC").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.StaffUser{}).Count(&count).Error
	return count, err
}

func (r *userRepository) CountByRole(ctx context.Context, db *gorm.DB, role string) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.StaffUser{}).
		Where("role = ?", role).
		Count(&count).Error
	return count, err
}

func (r *userRepository) Update(ctx context.Context, db *gorm.DB, user *entity.StaffUser) error {
	return db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.StaffUser{})
	return result.RowsAffected, result.Error
}
