package models

import (
	"time"

	"gorm.io/gorm"
)

type Artist struct {
	ID                 uint    `gorm:"primaryKey"`
	Name               string  `gorm:"not null"`
	City               string  `gorm:"size:120"`
	State              string  `gorm:"size:120"`
	Phone              string  `gorm:"size:120"`
	Genres             []Genre `gorm:"many2many:artist_genres;"`
	ImageLink          string  `gorm:"size:500"`
	FacebookLink       string  `gorm:"size:120"`
	WebsiteLink        string  `gorm:"size:120"`
	SeekingVenue       bool    `gorm:"not null;default:false"`
	SeekingDescription string  `gorm:"size:500"`
	Shows              []Show
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (artist *Artist) BeforeSave(tx *gorm.DB) (err error) {
	if artist.Name == "" {
		return gorm.ErrInvalidValue
	}
	return
}

func (artist *Artist) GenreNames() []string {
	return genreNames(artist.Genres)
}
