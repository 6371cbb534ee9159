package usecase

import (
	"context"
	"errors"
	"strconv"

	"clinic-frontdesk/internal/converter"
	"clinic-frontdesk/internal/delivery/dto"
	"clinic-frontdesk/internal/domain/entity"
	"clinic-frontdesk/internal/domain/repository"
	"clinic-frontdesk/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrInvalidLimit = errors.New("capacity limit must be a non-negative number")

type SettingsUsecase interface {
	Get(ctx context.Context) (*dto.SettingsResponse, error)
	// Update writes the whole settings batch. Absent limits fall back to the
	// unlimited default.
	Update(ctx context.Context, actorID int, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error)
}

type settingsUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	settingRepo  repository.SettingRepository
	availability *service.AvailabilityService
	auditService service.AuditService
}

func NewSettingsUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	settingRepo repository.SettingRepository,
	availability *service.AvailabilityService,
	auditService service.AuditService,
) SettingsUsecase {
	return &settingsUsecase{
		db:           db,
		log:          log,
		settingRepo:  settingRepo,
		availability: availability,
		auditService: auditService,
	}
}

func (u *settingsUsecase) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	settings, err := u.availability.Settings(ctx)
	if err != nil {
		u.log.Warnf("Failed to load settings: %+v", err)
		return nil, err
	}
	return converter.SettingsToResponse(settings), nil
}

func (u *settingsUsecase) Update(ctx context.Context, actorID int, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	rows := []entity.Setting{
		{Key: entity.KeyBlockSaturdays, Value: strconv.FormatBool(req.BlockSaturdays)},
		{Key: entity.KeyBlockSundays, Value: strconv.FormatBool(req.BlockSundays)},
	}

	for _, weekday := range entity.ConfigurableWeekdays() {
		value := req.Limits[entity.WeekdayName(weekday)]
		if value == "" {
			value = entity.DefaultDailyLimit
		}
		if limit, err := strconv.Atoi(value); err != nil || limit < 0 {
			return nil, ErrInvalidLimit
		}
		rows = append(rows, entity.Setting{Key: entity.WeekdayLimitKey(weekday), Value: value})
	}

	for _, svc := range entity.ServiceCatalog() {
		rows = append(rows, entity.Setting{Key: entity.PriceKey(svc.Key), Value: req.Prices[svc.Key]})
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.settingRepo.Upsert(ctx, tx, rows); err != nil {
		u.log.Warnf("Failed to upsert settings: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(ctx, tx, &actorID, entity.AuditActionSettingsUpdate, map[string]interface{}{
		"block_saturdays": req.BlockSaturdays,
		"block_sundays":   req.BlockSundays,
		"limits":          req.Limits,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.Get(ctx)
}
