package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-frontdesk/internal/converter"
	"clinic-frontdesk/internal/delivery/dto"
	"clinic-frontdesk/internal/domain/entity"
	"clinic-frontdesk/internal/domain/repository"
	"clinic-frontdesk/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDateAlreadyBlocked  = errors.New("date is already blocked")
	ErrBlockedDateNotFound = errors.New("blocked date not found")
)

type BlockedDateUsecase interface {
	List(ctx context.Context) ([]dto.BlockedDateResponse, error)
	Create(ctx context.Context, actorID int, req *dto.CreateBlockedDateRequest) (*dto.BlockedDateResponse, error)
	Delete(ctx context.Context, actorID, blockedDateID int) error
}

type blockedDateUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	blockedRepo  repository.BlockedDateRepository
	auditService service.AuditService
}

func NewBlockedDateUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	blockedRepo repository.BlockedDateRepository,
	auditService service.AuditService,
) BlockedDateUsecase {
	return &blockedDateUsecase{
		db:           db,
		log:          log,
		blockedRepo:  blockedRepo,
		auditService: auditService,
	}
}

func (u *blockedDateUsecase) List(ctx context.Context) ([]dto.BlockedDateResponse, error) {
	dates, err := u.blockedRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list blocked dates: %+v", err)
		return nil, err
	}
	return converter.BlockedDatesToResponses(dates), nil
}

func (u *blockedDateUsecase) Create(ctx context.Context, actorID int, req *dto.CreateBlockedDateRequest) (*dto.BlockedDateResponse, error) {
	if _, err := time.Parse(entity.DateLayout, req.Date); err != nil {
		return nil, ErrBadDateFormat
	}

	blocked := &entity.BlockedDate{
		Date:   req.Date,
		Reason: req.Reason,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.blockedRepo.Create(ctx, tx, blocked); err != nil {
		if isDuplicateKeyError(err, "date") {
			return nil, ErrDateAlreadyBlocked
		}
		u.log.Warnf("Failed to block date: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(ctx, tx, &actorID, entity.AuditActionDateBlock, map[string]interface{}{
		"date":   blocked.Date,
		"reason": blocked.Reason,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.BlockedDateToResponse(blocked), nil
}

func (u *blockedDateUsecase) Delete(ctx context.Context, actorID, blockedDateID int) error {
	blocked, err := u.blockedRepo.FindByID(ctx, u.db, blockedDateID)
	if err != nil {
		u.log.Warnf("Failed to find blocked date: %+v", err)
		return err
	}
	if blocked == nil {
		return ErrBlockedDateNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	rows, err := u.blockedRepo.Delete(ctx, tx, blockedDateID)
	if err != nil {
		u.log.Warnf("Failed to unblock date: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrBlockedDateNotFound
	}

	if err := u.auditService.Record(ctx, tx, &actorID, entity.AuditActionDateUnblock, map[string]interface{}{
		"date": blocked.Date,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
