package model

import (
	"strings"
	"time"

	"go.openly.dev/pointy"
)

// Distillery is credited with the liquid in a bottle. A bottle may credit
// several distilleries.
type Distillery struct {
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

func (d *Distillery) OwnerID() uint {
	if d == nil {
		return 0
	}

	return d.UserID
}

func (d *Distillery) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)
	d.Region1 = strings.TrimSpace(d.Region1)
	d.Region2 = strings.TrimSpace(d.Region2)
	d.URL = trimOptional(d.URL)
}

func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*value)
	if len(trimmed) == 0 {
		return nil
	}

	return pointy.String(trimmed)
}
