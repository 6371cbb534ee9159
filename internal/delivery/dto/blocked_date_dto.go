package dto

import "time"

type CreateBlockedDateRequest struct {
	Date   string `json:"date" validate:"required,len=10"`
	Reason string `json:"reason" validate:"omitempty,max=255"`
}

type BlockedDateResponse struct {
	ID        int       `json:"id"`
	Date      string    `json:"date"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
