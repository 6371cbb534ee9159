package service

import (
	"context"
	"strconv"

	"clinic-frontdesk/internal/domain/entity"
	"clinic-frontdesk/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditService interface {
	Record(ctx context.Context, tx *gorm.DB, userID *int, action string, details map[string]interface{}) error
	RecordChange(ctx context.Context, tx *gorm.DB, userID *int, action string, entityID int, oldValue, newValue interface{}) error
}

type auditService struct {
	db        *gorm.DB
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(db *gorm.DB, log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		db:        db,
		log:       log,
		auditRepo: auditRepo,
	}
}

// Record writes one audit row with free-form details.
func (s *auditService) Record(ctx context.Context, tx *gorm.DB, userID *int, action string, details map[string]interface{}) error {
	auditLog := &entity.AuditLog{
		UserID:   userID,
		Action:   action,
		Metadata: entity.JSON(details),
	}

	if err := s.auditRepo.Create(ctx, tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}

// RecordChange writes an audit row carrying before and after values.
func (s *auditService) RecordChange(ctx context.Context, tx *gorm.DB, userID *int, action string, entityID int, oldValue, newValue interface{}) error {
	metadata := entity.JSON{
		"entity_id": strconv.Itoa(entityID),
		"old_value": oldValue,
		"new_value": newValue,
	}

	auditLog := &entity.AuditLog{
		UserID:   userID,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(ctx, tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
