package entity

import "time"

// BlockedDate is a calendar day the clinic has closed for new appointments.
// Blocking is absolute: staff booking flows cannot bypass it. At most one
// row per date, enforced by the unique index.
type BlockedDate struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Date      string    `gorm:"type:date;uniqueIndex;not null" json:"date"`
	Reason    string    `gorm:"type:text" json:"reason"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (BlockedDate) TableName() string {
	return "blocked_dates"
}
