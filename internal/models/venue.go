package models

import (
	"time"

	"gorm.io/gorm"
)

type Venue struct {
	ID                 uint    `gorm:"primaryKey"`
	Name               string  `gorm:"not null"`
	City               string  `gorm:"size:120"`
	State              string  `gorm:"size:120"`
	Address            string  `gorm:"size:120"`
	Phone              string  `gorm:"size:120"`
	ImageLink          string  `gorm:"size:500"`
	FacebookLink       string  `gorm:"size:120"`
	WebsiteLink        string  `gorm:"size:120"`
	Genres             []Genre `gorm:"many2many:venue_genres;"`
	SeekingTalent      bool    `gorm:"not null;default:false"`
	SeekingDescription string  `gorm:"size:500"`
	Shows              []Show
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (venue *Venue) BeforeSave(tx *gorm.DB) (err error) {
	if venue.Name == "" {
		return gorm.ErrInvalidValue
	}
	return
}

func (venue *Venue) GenreNames() []string {
	return genreNames(venue.Genres)
}
