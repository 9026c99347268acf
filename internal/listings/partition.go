package listings

import (
	"time"

	"github.com/farellandr/gigboard/internal/models"
)

type Bucket int

const (
	BucketNone Bucket = iota
	BucketPast
	BucketUpcoming
)

// Classify places start relative to now. A start equal to now is in neither bucket.
func Classify(start, now time.Time) Bucket {
	switch {
	case start.Before(now):
		return BucketPast
	case start.After(now):
		return BucketUpcoming
	}
	return BucketNone
}

// Counterpart selects which side of a show gets denormalised into a ShowEntry.
type Counterpart int

const (
	CounterpartArtist Counterpart = iota + 1
	CounterpartVenue
	CounterpartBoth
)

type ShowEntry struct {
	ShowID          uint
	VenueID         uint
	VenueName       string
	VenueImageLink  string
	ArtistID        uint
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
	StartTimeText   string
}

type Partitioned struct {
	Past          []ShowEntry
	Upcoming      []ShowEntry
	PastCount     int
	UpcomingCount int
}

// Partition splits shows into past and upcoming relative to now, keeping input
// order. Counterpart associations must be loaded; a missing one is an
// *IntegrityError.
func Partition(shows []models.Show, now time.Time, side Counterpart) (Partitioned, error) {
	out := Partitioned{Past: []ShowEntry{}, Upcoming: []ShowEntry{}}
	for _, show := range shows {
		bucket := Classify(show.StartTime, now)
		if bucket == BucketNone {
			continue
		}
		entry, err := newShowEntry(show, side)
		if err != nil {
			return Partitioned{}, err
		}
		if bucket == BucketPast {
			out.Past = append(out.Past, entry)
		} else {
			out.Upcoming = append(out.Upcoming, entry)
		}
	}
	out.PastCount = len(out.Past)
	out.UpcomingCount = len(out.Upcoming)
	return out, nil
}

// CountUpcoming is the upcoming branch of Partition without the denormalisation.
func CountUpcoming(shows []models.Show, now time.Time) int {
	n := 0
	for _, show := range shows {
		if Classify(show.StartTime, now) == BucketUpcoming {
			n++
		}
	}
	return n
}

func newShowEntry(show models.Show, side Counterpart) (ShowEntry, error) {
	entry := ShowEntry{
		ShowID:        show.ID,
		VenueID:       show.VenueID,
		ArtistID:      show.ArtistID,
		StartTime:     show.StartTime,
		StartTimeText: FormatDateTime(show.StartTime, StyleFull),
	}
	if side == CounterpartArtist || side == CounterpartBoth {
		if show.Artist.ID == 0 || show.Artist.ID != show.ArtistID {
			return ShowEntry{}, &IntegrityError{ShowID: show.ID, Field: "artist_id", Value: show.ArtistID}
		}
		entry.ArtistName = show.Artist.Name
		entry.ArtistImageLink = show.Artist.ImageLink
	}
	if side == CounterpartVenue || side == CounterpartBoth {
		if show.Venue.ID == 0 || show.Venue.ID != show.VenueID {
			return ShowEntry{}, &IntegrityError{ShowID: show.ID, Field: "venue_id", Value: show.VenueID}
		}
		entry.VenueName = show.Venue.Name
		entry.VenueImageLink = show.Venue.ImageLink
	}
	return entry, nil
}
