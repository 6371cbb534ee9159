package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"clinic-frontdesk/internal/delivery/dto"

	"github.com/jackc/pgx/v5/pgconn"
)

func newBlockedDateFixture() BlockedDateUsecase {
	return NewBlockedDateUsecase(nil, quietLogger(), &fakeBlockedDateRepo{}, fakeAuditService{})
}

func TestUniqueViolationMapsToDateConflict(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{
			name:       "unique violation on the date index",
			err:        &pgconn.PgError{Code: "23505", ConstraintName: "blocked_dates_date_key"},
			constraint: "date",
			want:       true,
		},
		{
			name:       "wrapped unique violation",
			err:        fmt.Errorf("create blocked date: %w", &pgconn.PgError{Code: "23505", ConstraintName: "blocked_dates_date_key"}),
			constraint: "date",
			want:       true,
		},
		{
			name:       "constraint name compared case insensitively",
			err:        &pgconn.PgError{Code: "23505", ConstraintName: "BLOCKED_DATES_DATE_KEY"},
			constraint: "date",
			want:       true,
		},
		{
			name:       "unique violation on an unrelated constraint",
			err:        &pgconn.PgError{Code: "23505", ConstraintName: "staff_users_username_key"},
			constraint: "date",
			want:       false,
		},
		{
			name:       "foreign key violation is not a conflict",
			err:        &pgconn.PgError{Code: "23503", ConstraintName: "blocked_dates_date_key"},
			constraint: "date",
			want:       false,
		},
		{
			name:       "plain error is not a conflict",
			err:        errors.New("connection refused"),
			constraint: "date",
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isDuplicateKeyError(tt.err, tt.constraint); got != tt.want {
				t.Errorf("isDuplicateKeyError(%v, %q) = %v, want %v", tt.err, tt.constraint, got, tt.want)
			}
		})
	}
}

func TestBlockDateRejectsMalformedDate(t *testing.T) {
	uc := newBlockedDateFixture()

	_, err := uc.Create(context.Background(), 1, &dto.CreateBlockedDateRequest{Date: "06-09-2026", Reason: "congreso"})
	if err != ErrBadDateFormat {
		t.Fatalf("Create = %v, want ErrBadDateFormat", err)
	}
}

func TestUnblockMissingDate(t *testing.T) {
	uc := newBlockedDateFixture()

	if err := uc.Delete(context.Background(), 1, 99); err != ErrBlockedDateNotFound {
		t.Fatalf("Delete = %v, want ErrBlockedDateNotFound", err)
	}
}
