package model

import (
	"strings"
	"time"
)

// Bottler is an independent house that released whiskey sourced elsewhere.
// A bottle without a bottler is a distillery bottling.
type Bottler struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"index"`
	Name        string `gorm:"size:100"`
	Description string
	Region1     string `gorm:"size:100"`
	Region2     string `gorm:"size:100"`
	URL         *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (b *Bottler) OwnerID() uint {
	if b == nil {
		return 0
	}

	return b.UserID
}

func (b *Bottler) Normalize() {
	b.Name = strings.TrimSpace(b.Name)
	b.Description = strings.TrimSpace(b.Description)
	b.Region1 = strings.TrimSpace(b.Region1)
	b.Region2 = strings.TrimSpace(b.Region2)
	b.URL = trimOptional(b.URL)
}
