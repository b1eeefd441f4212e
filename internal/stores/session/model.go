package session

import (
	"time"

	"github.com/google/uuid"
)

// Session represents one login session row
type Session struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`

	UserID     string    `json:"user_id" gorm:"column:user_id;size:255"`
	ExpireDate time.Time `json:"expire_date" gorm:"column:expire_date;index"`
}

// TableName sets the table name for GORM
func (Session) TableName() string {
	return "sessions"
}

// Expired reports whether the session has expired as of now
func (s *Session) Expired(now time.Time) bool {
	return s.ExpireDate.Before(now)
}
