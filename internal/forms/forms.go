// Package forms holds the HTML form schemas bound by gin and their validation rules.
package forms

import (
	"strings"
	"time"

	"github.com/farellandr/gigboard/internal/models"
)

// StartTimeLayout is the layout the show form accepts for start_time.
const StartTimeLayout = "2006-01-02 15:04:05"

type VenueForm struct {
	Name               string   `form:"name" binding:"required,notblank,max=120"`
	City               string   `form:"city" binding:"required,max=120"`
	State              string   `form:"state" binding:"required,state"`
	Address            string   `form:"address" binding:"required,max=120"`
	Phone              string   `form:"phone" binding:"omitempty,phone"`
	ImageLink          string   `form:"image_link" binding:"omitempty,url,max=500"`
	Genres             []string `form:"genres" binding:"required,min=1,dive,genre"`
	FacebookLink       string   `form:"facebook_link" binding:"omitempty,url,max=120"`
	WebsiteLink        string   `form:"website_link" binding:"omitempty,url,max=120"`
	SeekingTalent      string   `form:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" binding:"max=500"`
}

type ArtistForm struct {
	Name               string   `form:"name" binding:"required,notblank,max=120"`
	City               string   `form:"city" binding:"required,max=120"`
	State              string   `form:"state" binding:"required,state"`
	Phone              string   `form:"phone" binding:"omitempty,phone"`
	ImageLink          string   `form:"image_link" binding:"omitempty,url,max=500"`
	Genres             []string `form:"genres" binding:"required,min=1,dive,genre"`
	FacebookLink       string   `form:"facebook_link" binding:"omitempty,url,max=120"`
	WebsiteLink        string   `form:"website_link" binding:"omitempty,url,max=120"`
	SeekingVenue       string   `form:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" binding:"max=500"`
}

type ShowForm struct {
	ArtistID  uint      `form:"artist_id" binding:"required"`
	VenueID   uint      `form:"venue_id" binding:"required"`
	StartTime time.Time `form:"start_time" time_format:"2006-01-02 15:04:05"`
}

func (f VenueForm) Seeking() bool  { return Checked(f.SeekingTalent) }
func (f ArtistForm) Seeking() bool { return Checked(f.SeekingVenue) }

// Checked reports whether a checkbox value carries the "y" sentinel
// (or a browser "on"/"true").
func Checked(v string) bool {
	v = strings.TrimSpace(v)
	return strings.EqualFold(v, "y") || strings.EqualFold(v, "on") || strings.EqualFold(v, "true")
}

// NormalizeGenres trims, drops empties and removes case-insensitive duplicates,
// keeping the first spelling seen.
func NormalizeGenres(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, g := range in {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		key := strings.ToLower(g)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, g)
	}
	return out
}

func FromVenue(v models.Venue) VenueForm {
	f := VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		ImageLink:          v.ImageLink,
		Genres:             v.GenreNames(),
		FacebookLink:       v.FacebookLink,
		WebsiteLink:        v.WebsiteLink,
		SeekingDescription: v.SeekingDescription,
	}
	if v.SeekingTalent {
		f.SeekingTalent = "y"
	}
	return f
}

func FromArtist(a models.Artist) ArtistForm {
	f := ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		ImageLink:          a.ImageLink,
		Genres:             a.GenreNames(),
		FacebookLink:       a.FacebookLink,
		WebsiteLink:        a.WebsiteLink,
		SeekingDescription: a.SeekingDescription,
	}
	if a.SeekingVenue {
		f.SeekingVenue = "y"
	}
	return f
}
