package usecase

import (
	"context"
	"testing"

	"clinic-frontdesk/internal/delivery/dto"
	"clinic-frontdesk/internal/domain/entity"

	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users map[int]*entity.StaffUser
}

func newFakeUserRepo(users ...*entity.StaffUser) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[int]*entity.StaffUser)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) Create(ctx context.Context, db *gorm.DB, user *entity.StaffUser) error {
	user.ID = len(f.users) + 1
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.StaffUser, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, db *gorm.DB, username string) (*entity.StaffUser, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.StaffUser, error) {
	var out []entity.StaffUser
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) CountByRole(ctx context.Context, db *gorm.DB, role string) (int64, error) {
	var count int64
	for _, u := range f.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, db *gorm.DB, user *entity.StaffUser) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	if _, ok := f.users[id]; !ok {
		return 0, nil
	}
	delete(f.users, id)
	return 1, nil
}

func TestDeleteLastAdminRejected(t *testing.T) {
	userRepo := newFakeUserRepo(
		&entity.StaffUser{ID: 1, Username: "admin", Role: entity.RoleAdmin},
		&entity.StaffUser{ID: 2, Username: "marta", Role: entity.RoleSecretary},
	)
	uc := NewUserUsecase(nil, quietLogger(), userRepo, fakeAuditService{})

	if err := uc.Delete(context.Background(), 1, 1); err != ErrLastAdmin {
		t.Fatalf("err = %v, want ErrLastAdmin", err)
	}
	if _, ok := userRepo.users[1]; !ok {
		t.Error("rejected deletion removed the user anyway")
	}
}

func TestDemoteLastAdminRejected(t *testing.T) {
	userRepo := newFakeUserRepo(
		&entity.StaffUser{ID: 1, Username: "admin", Role: entity.RoleAdmin},
	)
	uc := NewUserUsecase(nil, quietLogger(), userRepo, fakeAuditService{})

	req := &dto.UpdateUserRequest{Role: entity.RoleSecretary}
	_, err := uc.Update(context.Background(), 1, 1, req)
	if err != ErrLastAdmin {
		t.Fatalf("err = %v, want ErrLastAdmin", err)
	}
	if userRepo.users[1].Role != entity.RoleAdmin {
		t.Error("rejected demotion changed the role anyway")
	}
}

func TestDeleteMissingUser(t *testing.T) {
	uc := NewUserUsecase(nil, quietLogger(), newFakeUserRepo(), fakeAuditService{})

	if err := uc.Delete(context.Background(), 1, 42); err != ErrUserNotFound {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}
