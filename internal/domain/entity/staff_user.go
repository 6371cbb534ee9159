package entity

import "time"

// Staff roles. There is no public role: anonymous requests simply carry no
// session.
const (
	RoleAdmin     = "admin"
	RoleSecretary = "secretaria"
)

// StaffUser is a front-desk account. Patients never have accounts; the public
// booking form is anonymous.
type StaffUser struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	Role         string    `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (StaffUser) TableName() string {
	return "staff_users"
}

// IsAdmin reports whether the account has the admin role.
func (u *StaffUser) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ValidRole reports whether role is one of the known staff roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleSecretary
}
