package model

import (
	"strings"
	"time"
)

type BottleType string

const (
	AmericanWhiskey  BottleType = "AMERICAN_WHISKEY"
	Bourbon          BottleType = "BOURBON"
	CanadianWhisky   BottleType = "CANADIAN_WHISKY"
	IrishWhiskey     BottleType = "IRISH_WHISKEY"
	JapaneseWhisky   BottleType = "JAPANESE_WHISKY"
	Rye              BottleType = "RYE"
	Scotch           BottleType = "SCOTCH"
	SingleMalt       BottleType = "SINGLE_MALT"
	TennesseeWhiskey BottleType = "TENNESSEE_WHISKEY"
	WorldWhiskey     BottleType = "WORLD_WHISKEY"
)

var bottleTypeNames = map[BottleType]string{
	AmericanWhiskey:  "American Whiskey",
	Bourbon:          "Bourbon",
	CanadianWhisky:   "Canadian Whisky",
	IrishWhiskey:     "Irish Whiskey",
	JapaneseWhisky:   "Japanese Whisky",
	Rye:              "Rye",
	Scotch:           "Scotch",
	SingleMalt:       "Single Malt",
	TennesseeWhiskey: "Tennessee Whiskey",
	WorldWhiskey:     "World Whiskey",
}

// BottleTypes lists every type in display order.
func BottleTypes() []BottleType {
	return []BottleType{
		AmericanWhiskey, Bourbon, CanadianWhisky, IrishWhiskey, JapaneseWhisky,
		Rye, Scotch, SingleMalt, TennesseeWhiskey, WorldWhiskey,
	}
}

func ParseBottleType(value string) (BottleType, bool) {
	bottleType := BottleType(strings.ToUpper(strings.TrimSpace(value)))
	_, ok := bottleTypeNames[bottleType]

	return bottleType, ok
}

func (t BottleType) DisplayName() string {
	if name, ok := bottleTypeNames[t]; ok {
		return name
	}

	return string(t)
}

type Bottle struct {
	ID            uint       `gorm:"primaryKey"`
	UserID        uint       `gorm:"index"`
	Name          string     `gorm:"size:100"`
	Type          BottleType `gorm:"size:32;index"`
	ABV           *float64
	Size          *int
	YearBarrelled *int
	YearBottled   *int
	URL           *string
	Description   string
	Review        string
	Stars         *float64
	Cost          *float64
	DatePurchased *time.Time `gorm:"type:date"`
	DateOpened    *time.Time `gorm:"type:date"`
	DateKilled    *time.Time `gorm:"type:date"`
	IsPrivate     bool
	PersonalNote  string
	BottlerID     *uint
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Bottler      *Bottler      `gorm:"foreignKey:BottlerID;constraint:OnDelete:RESTRICT;"`
	Distilleries []Distillery  `gorm:"many2many:bottle_distilleries;"`
	Images       []BottleImage `gorm:"foreignKey:BottleID;constraint:OnDelete:CASCADE;"`
}

// BottleDistillery is a row of the bottle_distilleries join table. Links are
// written explicitly by the repository.
type BottleDistillery struct {
	BottleID     uint `gorm:"primaryKey"`
	DistilleryID uint `gorm:"primaryKey;index"`
}

func (b *Bottle) OwnerID() uint {
	if b == nil {
		return 0
	}

	return b.UserID
}

// IsKilled reports whether the bottle has been finished.
func (b *Bottle) IsKilled() bool {
	return b.DateKilled != nil
}

func (b *Bottle) ImageCount() int {
	return len(b.Images)
}

func (b *Bottle) DistilleryIDs() []uint {
	ids := make([]uint, 0, len(b.Distilleries))
	for _, distillery := range b.Distilleries {
		ids = append(ids, distillery.ID)
	}

	return ids
}

func (b *Bottle) DistilleryNames() []string {
	names := make([]string, 0, len(b.Distilleries))
	for _, distillery := range b.Distilleries {
		names = append(names, distillery.Name)
	}

	return names
}

func (b *Bottle) Normalize() {
	b.Name = strings.TrimSpace(b.Name)
	b.Description = strings.TrimSpace(b.Description)
	b.Review = strings.TrimSpace(b.Review)
	b.PersonalNote = strings.TrimSpace(b.PersonalNote)
	b.URL = trimOptional(b.URL)
}
