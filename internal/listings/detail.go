package listings

import (
	"context"

	"github.com/farellandr/gigboard/internal/models"
)

type VenueDetail struct {
	ID                 uint
	Name               string
	Genres             []string
	Address            string
	City               string
	State              string
	Phone              string
	Website            string
	FacebookLink       string
	SeekingTalent      bool
	SeekingDescription string
	ImageLink          string
	PastShows          []ShowEntry
	UpcomingShows      []ShowEntry
	PastShowsCount     int
	UpcomingShowsCount int
}

type ArtistDetail struct {
	ID                 uint
	Name               string
	Genres             []string
	City               string
	State              string
	Phone              string
	Website            string
	FacebookLink       string
	SeekingVenue       bool
	SeekingDescription string
	ImageLink          string
	PastShows          []ShowEntry
	UpcomingShows      []ShowEntry
	PastShowsCount     int
	UpcomingShowsCount int
}

func (s *Service) VenueDetail(ctx context.Context, id uint) (VenueDetail, error) {
	var venue models.Venue
	err := s.db.WithContext(ctx).
		Preload("Genres").
		Preload("Shows", orderByStart).
		Preload("Shows.Artist").
		First(&venue, id).Error
	if err != nil {
		return VenueDetail{}, lookupErr("venue", id, err)
	}

	shows, err := Partition(venue.Shows, s.now(), CounterpartArtist)
	if err != nil {
		return VenueDetail{}, err
	}
	return VenueDetail{
		ID:                 venue.ID,
		Name:               venue.Name,
		Genres:             venue.GenreNames(),
		Address:            venue.Address,
		City:               venue.City,
		State:              venue.State,
		Phone:              venue.Phone,
		Website:            venue.WebsiteLink,
		FacebookLink:       venue.FacebookLink,
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: venue.SeekingDescription,
		ImageLink:          venue.ImageLink,
		PastShows:          shows.Past,
		UpcomingShows:      shows.Upcoming,
		PastShowsCount:     shows.PastCount,
		UpcomingShowsCount: shows.UpcomingCount,
	}, nil
}

func (s *Service) ArtistDetail(ctx context.Context, id uint) (ArtistDetail, error) {
	var artist models.Artist
	err := s.db.WithContext(ctx).
		Preload("Genres").
		Preload("Shows", orderByStart).
		Preload("Shows.Venue").
		First(&artist, id).Error
	if err != nil {
		return ArtistDetail{}, lookupErr("artist", id, err)
	}

	shows, err := Partition(artist.Shows, s.now(), CounterpartVenue)
	if err != nil {
		return ArtistDetail{}, err
	}
	return ArtistDetail{
		ID:                 artist.ID,
		Name:               artist.Name,
		Genres:             artist.GenreNames(),
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		Website:            artist.WebsiteLink,
		FacebookLink:       artist.FacebookLink,
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: artist.SeekingDescription,
		ImageLink:          artist.ImageLink,
		PastShows:          shows.Past,
		UpcomingShows:      shows.Upcoming,
		PastShowsCount:     shows.PastCount,
		UpcomingShowsCount: shows.UpcomingCount,
	}, nil
}
