package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID               uint      `gorm:"primaryKey"`
	UUID             uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Username         string    `gorm:"size:32;uniqueIndex"`
	Email            string    `gorm:"size:255;uniqueIndex"`
	PasswordHash     string
	RegisteredAt     time.Time
	EmailConfirmed   bool
	EmailConfirmedAt *time.Time
	IsDeleted        bool
	DeletedAt        *time.Time
	LastLoginAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (u *User) Normalize() {
	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
}
