package models

import (
	"time"

	"gorm.io/gorm"
)

type Show struct {
	ID        uint      `gorm:"primaryKey"`
	ArtistID  uint      `gorm:"not null;index"`
	Artist    Artist    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	VenueID   uint      `gorm:"not null;index"`
	Venue     Venue     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	StartTime time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// Now is swapped in tests.
var Now = time.Now

// BeforeCreate stamps StartTime at insert time when the caller left it unset.
func (show *Show) BeforeCreate(tx *gorm.DB) (err error) {
	if show.ArtistID == 0 || show.VenueID == 0 {
		return gorm.ErrInvalidValue
	}
	if show.StartTime.IsZero() {
		show.StartTime = Now()
	}
	return
}
