package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-frontdesk/internal/domain/entity"
)

func roleRequest(role string) *http.Request {
	req := httptest.NewRequest("GET", "/api/v1/staff/appointments", nil)
	if role == "" {
		return req
	}
	ctx := context.WithValue(req.Context(), RoleKey, role)
	return req.WithContext(ctx)
}

func TestRequireStaff(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		wantStatus int
	}{
		{"admin allowed", entity.RoleAdmin, http.StatusOK},
		{"secretary allowed", entity.RoleSecretary, http.StatusOK},
		{"unknown role forbidden", "paciente", http.StatusForbidden},
		{"missing role unauthorized", "", http.StatusUnauthorized},
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			RequireStaff(next).ServeHTTP(rec, roleRequest(tt.role))
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	RequireAdmin(next).ServeHTTP(rec, roleRequest(entity.RoleSecretary))
	if rec.Code != http.StatusForbidden {
		t.Errorf("secretary on admin route: status = %d, want %d", rec.Code, http.StatusForbidden)
	}

	rec = httptest.NewRecorder()
	RequireAdmin(next).ServeHTTP(rec, roleRequest(entity.RoleAdmin))
	if rec.Code != http.StatusOK {
		t.Errorf("admin on admin route: status = %d, want %d", rec.Code, http.StatusOK)
	}
}
