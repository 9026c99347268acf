package listings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farellandr/gigboard/internal/models"
)

func TestVenueDetail(t *testing.T) {
	f := seed(t)
	park := f.venues["Park Square Live Music & Coffee"]
	genres := []models.Genre{{Name: "Rock n Roll"}, {Name: "Jazz"}, {Name: "Classical"}}
	require.NoError(t, f.db.Model(&park).Association("Genres").Append(genres))

	got, err := f.svc.VenueDetail(context.Background(), park.ID)
	require.NoError(t, err)

	assert.Equal(t, park.Name, got.Name)
	assert.Equal(t, "34 Whiskey Moore Ave", got.Address)
	assert.Equal(t, []string{"Classical", "Jazz", "Rock n Roll"}, got.Genres)
	assert.Equal(t, 1, got.PastShowsCount)
	assert.Equal(t, 3, got.UpcomingShowsCount)
	require.Len(t, got.PastShows, 1)
	assert.Equal(t, "Matt Quevado", got.PastShows[0].ArtistName)
	require.Len(t, got.UpcomingShows, 3)
	for i := 1; i < len(got.UpcomingShows); i++ {
		assert.True(t, got.UpcomingShows[i-1].StartTime.Before(got.UpcomingShows[i].StartTime))
	}
	assert.Equal(t, "The Wild Sax Band", got.UpcomingShows[0].ArtistName)
	assert.NotEmpty(t, got.UpcomingShows[0].StartTimeText)
}

func TestVenueDetailWithoutShows(t *testing.T) {
	f := seed(t)

	got, err := f.svc.VenueDetail(context.Background(), f.venues["The Dueling Pianos Bar"].ID)
	require.NoError(t, err)
	assert.Empty(t, got.PastShows)
	assert.Empty(t, got.UpcomingShows)
	assert.Zero(t, got.PastShowsCount)
	assert.Empty(t, got.Genres)
}

func TestArtistDetail(t *testing.T) {
	f := seed(t)
	sax := f.artists["The Wild Sax Band"]

	got, err := f.svc.ArtistDetail(context.Background(), sax.ID)
	require.NoError(t, err)

	assert.Equal(t, "The Wild Sax Band", got.Name)
	assert.False(t, got.SeekingVenue)
	assert.Zero(t, got.PastShowsCount)
	assert.Equal(t, 3, got.UpcomingShowsCount)
	assert.Equal(t, "Park Square Live Music & Coffee", got.UpcomingShows[0].VenueName)
	assert.Empty(t, got.UpcomingShows[0].ArtistName)
}

func TestDetailNotFound(t *testing.T) {
	f := seed(t)

	_, err := f.svc.VenueDetail(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.ArtistDetail(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.Venue(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestShowsListsBothSides(t *testing.T) {
	f := seed(t)

	shows, err := f.svc.Shows(context.Background())
	require.NoError(t, err)

	require.Len(t, shows, 5)
	assert.Equal(t, "Matt Quevado", shows[0].ArtistName)
	assert.Equal(t, "Park Square Live Music & Coffee", shows[0].VenueName)
	for i := 1; i < len(shows); i++ {
		assert.False(t, shows[i].StartTime.Before(shows[i-1].StartTime))
	}
}

func TestOptions(t *testing.T) {
	f := seed(t)

	artists, err := f.svc.Artists(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Option{
		{ID: f.artists["Guns N Petals"].ID, Name: "Guns N Petals"},
		{ID: f.artists["Matt Quevado"].ID, Name: "Matt Quevado"},
		{ID: f.artists["The Wild Sax Band"].ID, Name: "The Wild Sax Band"},
	}, artists)

	venues, err := f.svc.VenueOptions(context.Background())
	require.NoError(t, err)
	assert.Len(t, venues, 3)
}
