package listings

import (
	"context"
	"fmt"

	"github.com/farellandr/gigboard/internal/models"
)

type Option struct {
	ID   uint
	Name string
}

func (s *Service) Areas(ctx context.Context) ([]Area, error) {
	var venues []models.Venue
	if err := s.db.WithContext(ctx).Preload("Shows").Order("id ASC").Find(&venues).Error; err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	return GroupByLocation(venues, s.now()), nil
}

func (s *Service) Artists(ctx context.Context) ([]Option, error) {
	var artists []models.Artist
	if err := s.db.WithContext(ctx).Select("id", "name").Order("id ASC").Find(&artists).Error; err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	out := make([]Option, 0, len(artists))
	for _, a := range artists {
		out = append(out, Option{ID: a.ID, Name: a.Name})
	}
	return out, nil
}

func (s *Service) VenueOptions(ctx context.Context) ([]Option, error) {
	var venues []models.Venue
	if err := s.db.WithContext(ctx).Select("id", "name").Order("id ASC").Find(&venues).Error; err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	out := make([]Option, 0, len(venues))
	for _, v := range venues {
		out = append(out, Option{ID: v.ID, Name: v.Name})
	}
	return out, nil
}

// Shows lists every show, past and upcoming, by start time.
func (s *Service) Shows(ctx context.Context) ([]ShowEntry, error) {
	var shows []models.Show
	err := s.db.WithContext(ctx).
		Preload("Venue").
		Preload("Artist").
		Scopes(orderByStart).
		Find(&shows).Error
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}
	out := make([]ShowEntry, 0, len(shows))
	for _, show := range shows {
		entry, err := newShowEntry(show, CounterpartBoth)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, nil
}

func (s *Service) Venue(ctx context.Context, id uint) (models.Venue, error) {
	var venue models.Venue
	if err := s.db.WithContext(ctx).Preload("Genres").First(&venue, id).Error; err != nil {
		return models.Venue{}, lookupErr("venue", id, err)
	}
	return venue, nil
}

func (s *Service) Artist(ctx context.Context, id uint) (models.Artist, error) {
	var artist models.Artist
	if err := s.db.WithContext(ctx).Preload("Genres").First(&artist, id).Error; err != nil {
		return models.Artist{}, lookupErr("artist", id, err)
	}
	return artist, nil
}
