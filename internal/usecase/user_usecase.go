package usecase

import (
	"context"
	"errors"

	"clinic-frontdesk/internal/converter"
	"clinic-frontdesk/internal/delivery/dto"
	"clinic-frontdesk/internal/domain/entity"
	"clinic-frontdesk/internal/domain/repository"
	"clinic-frontdesk/internal/service"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrLastAdmin     = errors.New("cannot remove the last administrator")
)

type UserUsecase interface {
	List(ctx context.Context) ([]dto.UserResponse, error)
	Create(ctx context.Context, actorID int, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	Update(ctx context.Context, actorID, userID int, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, actorID, userID int) error
}

type userUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	auditService service.AuditService
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) UserUsecase {
	return &userUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		auditService: auditService,
	}
}

func (u *userUsecase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := u.userRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list staff users: %+v", err)
		return nil, err
	}
	return converter.UsersToResponses(users), nil
}

func (u *userUsecase) Create(ctx context.Context, actorID int, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.StaffUser{
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
		Role:         req.Role,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.userRepo.Create(ctx, tx, user); err != nil {
		if isDuplicateKeyError(err, "username") {
			return nil, ErrUsernameTaken
		}
		u.log.Warnf("Failed to create staff user: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(ctx, tx, &actorID, entity.AuditActionUserCreate, map[string]interface{}{
		"username": user.Username,
		"role":     user.Role,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) Update(ctx context.Context, actorID, userID int, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by id: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	// Demoting the only admin would lock everyone out of the admin area.
	if user.IsAdmin() && req.Role != entity.RoleAdmin {
		admins, err := u.userRepo.CountByRole(ctx, u.db, entity.RoleAdmin)
		if err != nil {
			u.log.Warnf("Failed to count administrators: %+v", err)
			return nil, err
		}
		if admins <= 1 {
			return nil, ErrLastAdmin
		}
	}

	oldRole := user.Role
	user.Role = req.Role
	if req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		user.PasswordHash = string(hashedPassword)
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.userRepo.Update(ctx, tx, user); err != nil {
		u.log.Warnf("Failed to update staff user: %+v", err)
		return nil, err
	}

	if err := u.auditService.RecordChange(ctx, tx, &actorID, entity.AuditActionUserUpdate, user.ID, oldRole, user.Role); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) Delete(ctx context.Context, actorID, userID int) error {
	user, err := u.userRepo.FindByID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by id: %+v", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if user.IsAdmin() {
		admins, err := u.userRepo.CountByRole(ctx, u.db, entity.RoleAdmin)
		if err != nil {
			u.log.Warnf("Failed to count administrators: %+v", err)
			return err
		}
		if admins <= 1 {
			return ErrLastAdmin
		}
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	rows, err := u.userRepo.Delete(ctx, tx, userID)
	if err != nil {
		u.log.Warnf("Failed to delete staff user: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}

	if err := u.auditService.Record(ctx, tx, &actorID, entity.AuditActionUserDelete, map[string]interface{}{
		"username": user.Username,
		"role":     user.Role,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
