package model

import "time"

const MaxBottleImages = 3

type BottleImage struct {
	ID        uint `gorm:"primaryKey"`
	BottleID  uint `gorm:"uniqueIndex:idx_bottle_image_sequence"`
	Sequence  int  `gorm:"uniqueIndex:idx_bottle_image_sequence"`
	CreatedAt time.Time
}

// SequenceMove renumbers one image of a bottle during compaction.
type SequenceMove struct {
	From int
	To   int
}
