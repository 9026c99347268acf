// Package listings turns venue, artist and show rows into the view models the
// pages render, and runs the create/update operations behind the forms.
package listings

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Service struct {
	db  *gorm.DB
	now func() time.Time
}

func New(db *gorm.DB) *Service {
	return &Service{db: db, now: time.Now}
}

// WithClock returns a copy of s that reads the current time from now.
func (s *Service) WithClock(now func() time.Time) *Service {
	cp := *s
	cp.now = now
	return &cp
}

func orderByStart(db *gorm.DB) *gorm.DB {
	return db.Order("start_time ASC").Order("id ASC")
}

func lookupErr(kind string, id uint, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(kind, id)
	}
	return err
}
