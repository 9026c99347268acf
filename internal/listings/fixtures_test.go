package listings

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/farellandr/gigboard/internal/models"
	"github.com/farellandr/gigboard/internal/store/storetest"
)

var refNow = time.Date(2024, time.March, 1, 20, 0, 0, 0, time.UTC)

type fixture struct {
	db      *gorm.DB
	svc     *Service
	venues  map[string]models.Venue
	artists map[string]models.Artist
}

// seed loads the three venues, three artists and five shows of the demo
// dataset, with show times placed around refNow.
func seed(t *testing.T) *fixture {
	t.Helper()
	db := storetest.Open(t)
	f := &fixture{
		db:      db,
		svc:     New(db).WithClock(func() time.Time { return refNow }),
		venues:  map[string]models.Venue{},
		artists: map[string]models.Artist{},
	}

	venues := []models.Venue{
		{Name: "The Musical Hop", City: "San Francisco", State: "CA", Address: "1015 Folsom Street", Phone: "123-123-1234", SeekingTalent: true, SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us."},
		{Name: "The Dueling Pianos Bar", City: "New York", State: "NY", Address: "335 Delancey Street", Phone: "914-003-1132"},
		{Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA", Address: "34 Whiskey Moore Ave", Phone: "415-000-1234"},
	}
	for i := range venues {
		mustCreate(t, db, &venues[i])
		f.venues[venues[i].Name] = venues[i]
	}

	artists := []models.Artist{
		{Name: "Guns N Petals", City: "San Francisco", State: "CA", Phone: "326-123-5000", SeekingVenue: true},
		{Name: "Matt Quevado", City: "New York", State: "NY", Phone: "300-400-5000"},
		{Name: "The Wild Sax Band", City: "San Francisco", State: "CA", Phone: "432-325-5432"},
	}
	for i := range artists {
		mustCreate(t, db, &artists[i])
		f.artists[artists[i].Name] = artists[i]
	}

	hop := f.venues["The Musical Hop"].ID
	park := f.venues["Park Square Live Music & Coffee"].ID
	shows := []models.Show{
		{VenueID: hop, ArtistID: f.artists["Guns N Petals"].ID, StartTime: refNow.Add(-30 * 24 * time.Hour)},
		{VenueID: park, ArtistID: f.artists["Matt Quevado"].ID, StartTime: refNow.Add(-60 * 24 * time.Hour)},
		{VenueID: park, ArtistID: f.artists["The Wild Sax Band"].ID, StartTime: refNow.Add(30 * 24 * time.Hour)},
		{VenueID: park, ArtistID: f.artists["The Wild Sax Band"].ID, StartTime: refNow.Add(37 * 24 * time.Hour)},
		{VenueID: park, ArtistID: f.artists["The Wild Sax Band"].ID, StartTime: refNow.Add(44 * 24 * time.Hour)},
	}
	for i := range shows {
		mustCreate(t, db, &shows[i])
	}
	return f
}

func mustCreate(t *testing.T, db *gorm.DB, v interface{}) {
	t.Helper()
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("seed %T: %v", v, err)
	}
}
