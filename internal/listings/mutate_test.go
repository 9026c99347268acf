package listings

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farellandr/gigboard/internal/forms"
	"github.com/farellandr/gigboard/internal/metrics"
	"github.com/farellandr/gigboard/internal/models"
	"github.com/farellandr/gigboard/internal/store/storetest"
)

func venueForm() forms.VenueForm {
	return forms.VenueForm{
		Name:          "  The Blue Door  ",
		City:          "Austin",
		State:         "TX",
		Address:       "12 Sixth Street",
		Phone:         "512-555-0100",
		Genres:        []string{"Jazz", "Blues", "jazz"},
		WebsiteLink:   "https://bluedoor.example",
		SeekingTalent: "y",
	}
}

func TestCreateVenue(t *testing.T) {
	f := seed(t)
	before := storetest.Count(t, f.db, &models.Venue{})

	venue, err := f.svc.CreateVenue(context.Background(), venueForm())
	require.NoError(t, err)

	assert.NotZero(t, venue.ID)
	assert.Equal(t, before+1, storetest.Count(t, f.db, &models.Venue{}))
	assert.Equal(t, 0, storetest.InUse(t, f.db))

	got, err := f.svc.VenueDetail(context.Background(), venue.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Blue Door", got.Name)
	assert.Equal(t, []string{"Blues", "Jazz"}, got.Genres)
	assert.True(t, got.SeekingTalent)
	assert.Equal(t, "https://bluedoor.example", got.Website)
}

func TestCreateVenueReusesGenres(t *testing.T) {
	f := seed(t)

	_, err := f.svc.CreateVenue(context.Background(), venueForm())
	require.NoError(t, err)
	form := venueForm()
	form.Name = "Second Door"
	_, err = f.svc.CreateVenue(context.Background(), form)
	require.NoError(t, err)

	assert.Equal(t, int64(2), storetest.Count(t, f.db, &models.Genre{}))
}

func TestCreateVenueRollsBackOnFailure(t *testing.T) {
	f := seed(t)
	storetest.FailCreates(t, f.db, "venues")
	before := storetest.Count(t, f.db, &models.Venue{})
	failures := testutil.ToFloat64(metrics.Mutations.WithLabelValues("venue", "create", "error"))

	_, err := f.svc.CreateVenue(context.Background(), venueForm())

	assert.ErrorIs(t, err, storetest.ErrInjected)
	assert.Equal(t, before, storetest.Count(t, f.db, &models.Venue{}))
	assert.Zero(t, storetest.Count(t, f.db, &models.Genre{}))
	assert.Equal(t, 0, storetest.InUse(t, f.db))
	assert.Equal(t, failures+1, testutil.ToFloat64(metrics.Mutations.WithLabelValues("venue", "create", "error")))
}

func TestUpdateVenueReplacesFieldsAndGenres(t *testing.T) {
	f := seed(t)
	created, err := f.svc.CreateVenue(context.Background(), venueForm())
	require.NoError(t, err)

	form := venueForm()
	form.Name = "The Red Door"
	form.Genres = []string{"Folk"}
	form.SeekingTalent = ""
	form.Phone = ""
	_, err = f.svc.UpdateVenue(context.Background(), created.ID, form)
	require.NoError(t, err)

	got, err := f.svc.VenueDetail(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Red Door", got.Name)
	assert.Equal(t, []string{"Folk"}, got.Genres)
	assert.False(t, got.SeekingTalent)
	assert.Empty(t, got.Phone)
}

func TestUpdateVenueRollsBackOnFailure(t *testing.T) {
	f := seed(t)
	hop := f.venues["The Musical Hop"]
	storetest.FailUpdates(t, f.db, "venues")

	form := venueForm()
	form.Name = "Renamed"
	_, err := f.svc.UpdateVenue(context.Background(), hop.ID, form)
	assert.ErrorIs(t, err, storetest.ErrInjected)

	got, err := f.svc.Venue(context.Background(), hop.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Musical Hop", got.Name)
	assert.Equal(t, 0, storetest.InUse(t, f.db))
}

func TestUpdateVenueNotFound(t *testing.T) {
	f := seed(t)

	_, err := f.svc.UpdateVenue(context.Background(), 999, venueForm())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateAndUpdateArtist(t *testing.T) {
	f := seed(t)
	form := forms.ArtistForm{
		Name:         "Nina Loops",
		City:         "Seattle",
		State:        "WA",
		Genres:       []string{"Electronic"},
		SeekingVenue: "on",
	}

	artist, err := f.svc.CreateArtist(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, int64(4), storetest.Count(t, f.db, &models.Artist{}))

	form.City = "Portland"
	form.State = "OR"
	form.Genres = []string{"Electronic", "Hip-Hop"}
	_, err = f.svc.UpdateArtist(context.Background(), artist.ID, form)
	require.NoError(t, err)

	got, err := f.svc.ArtistDetail(context.Background(), artist.ID)
	require.NoError(t, err)
	assert.Equal(t, "Portland", got.City)
	assert.Equal(t, []string{"Electronic", "Hip-Hop"}, got.Genres)
	assert.True(t, got.SeekingVenue)
}

func TestCreateArtistRollsBackOnFailure(t *testing.T) {
	f := seed(t)
	storetest.FailCreates(t, f.db, "artists")

	_, err := f.svc.CreateArtist(context.Background(), forms.ArtistForm{Name: "Ghost", City: "Reno", State: "NV", Genres: []string{"Soul"}})

	assert.ErrorIs(t, err, storetest.ErrInjected)
	assert.Equal(t, int64(3), storetest.Count(t, f.db, &models.Artist{}))
	assert.Equal(t, 0, storetest.InUse(t, f.db))
}

func TestCreateShow(t *testing.T) {
	f := seed(t)
	start := refNow.Add(90 * 24 * time.Hour)

	show, err := f.svc.CreateShow(context.Background(), forms.ShowForm{
		ArtistID:  f.artists["Guns N Petals"].ID,
		VenueID:   f.venues["The Dueling Pianos Bar"].ID,
		StartTime: start,
	})
	require.NoError(t, err)
	assert.NotZero(t, show.ID)
	assert.Equal(t, int64(6), storetest.Count(t, f.db, &models.Show{}))

	got, err := f.svc.VenueDetail(context.Background(), f.venues["The Dueling Pianos Bar"].ID)
	require.NoError(t, err)
	require.Len(t, got.UpcomingShows, 1)
	assert.Equal(t, "Guns N Petals", got.UpcomingShows[0].ArtistName)
}

func TestCreateShowDefaultsStartTime(t *testing.T) {
	f := seed(t)
	stamp := time.Date(2030, time.January, 2, 3, 4, 5, 0, time.UTC)
	models.Now = func() time.Time { return stamp }
	t.Cleanup(func() { models.Now = time.Now })

	show, err := f.svc.CreateShow(context.Background(), forms.ShowForm{
		ArtistID: f.artists["Matt Quevado"].ID,
		VenueID:  f.venues["The Musical Hop"].ID,
	})
	require.NoError(t, err)
	assert.True(t, stamp.Equal(show.StartTime))
}

func TestCreateShowUnknownReference(t *testing.T) {
	f := seed(t)

	_, err := f.svc.CreateShow(context.Background(), forms.ShowForm{
		ArtistID:  999,
		VenueID:   f.venues["The Musical Hop"].ID,
		StartTime: refNow,
	})

	var ref *ReferenceError
	require.ErrorAs(t, err, &ref)
	assert.Equal(t, "artist", ref.Kind)
	assert.Equal(t, uint(999), ref.ID)
	assert.Equal(t, int64(5), storetest.Count(t, f.db, &models.Show{}))
	assert.Equal(t, 0, storetest.InUse(t, f.db))
}

func TestCreateShowRollsBackOnFailure(t *testing.T) {
	f := seed(t)
	storetest.FailCreates(t, f.db, "shows")

	_, err := f.svc.CreateShow(context.Background(), forms.ShowForm{
		ArtistID:  f.artists["Matt Quevado"].ID,
		VenueID:   f.venues["The Musical Hop"].ID,
		StartTime: refNow,
	})

	assert.ErrorIs(t, err, storetest.ErrInjected)
	assert.Equal(t, int64(5), storetest.Count(t, f.db, &models.Show{}))
}
