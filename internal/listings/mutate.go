package listings

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/farellandr/gigboard/internal/forms"
	"github.com/farellandr/gigboard/internal/metrics"
	"github.com/farellandr/gigboard/internal/models"
	"github.com/farellandr/gigboard/internal/store"
)

func (s *Service) CreateVenue(ctx context.Context, f forms.VenueForm) (venue models.Venue, err error) {
	defer func() { metrics.RecordMutation("venue", "create", err) }()

	applyVenueForm(&venue, f)
	err = store.RunInTx(ctx, s.db, func(tx *gorm.DB) error {
		genres, err := resolveGenres(tx, f.Genres)
		if err != nil {
			return err
		}
		venue.Genres = genres
		if err := tx.Create(&venue).Error; err != nil {
			return fmt.Errorf("create venue: %w", err)
		}
		return nil
	})
	return venue, err
}

// UpdateVenue overwrites every mutable field of venue id and replaces its genres.
func (s *Service) UpdateVenue(ctx context.Context, id uint, f forms.VenueForm) (venue models.Venue, err error) {
	defer func() { metrics.RecordMutation("venue", "update", err) }()

	err = store.RunInTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := tx.First(&venue, id).Error; err != nil {
			return lookupErr("venue", id, err)
		}
		applyVenueForm(&venue, f)
		genres, err := resolveGenres(tx, f.Genres)
		if err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Save(&venue).Error; err != nil {
			return fmt.Errorf("update venue %d: %w", id, err)
		}
		if err := tx.Model(&venue).Association("Genres").Replace(genres); err != nil {
			return fmt.Errorf("replace genres of venue %d: %w", id, err)
		}
		return nil
	})
	return venue, err
}

func (s *Service) CreateArtist(ctx context.Context, f forms.ArtistForm) (artist models.Artist, err error) {
	defer func() { metrics.RecordMutation("artist", "create", err) }()

	applyArtistForm(&artist, f)
	err = store.RunInTx(ctx, s.db, func(tx *gorm.DB) error {
		genres, err := resolveGenres(tx, f.Genres)
		if err != nil {
			return err
		}
		artist.Genres = genres
		if err := tx.Create(&artist).Error; err != nil {
			return fmt.Errorf("create artist: %w", err)
		}
		return nil
	})
	return artist, err
}

func (s *Service) UpdateArtist(ctx context.Context, id uint, f forms.ArtistForm) (artist models.Artist, err error) {
	defer func() { metrics.RecordMutation("artist", "update", err) }()

	err = store.RunInTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := tx.First(&artist, id).Error; err != nil {
			return lookupErr("artist", id, err)
		}
		applyArtistForm(&artist, f)
		genres, err := resolveGenres(tx, f.Genres)
		if err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Save(&artist).Error; err != nil {
			return fmt.Errorf("update artist %d: %w", id, err)
		}
		if err := tx.Model(&artist).Association("Genres").Replace(genres); err != nil {
			return fmt.Errorf("replace genres of artist %d: %w", id, err)
		}
		return nil
	})
	return artist, err
}

// CreateShow books an artist at a venue. Both must exist; otherwise a
// *ReferenceError is returned and nothing is written.
func (s *Service) CreateShow(ctx context.Context, f forms.ShowForm) (show models.Show, err error) {
	defer func() { metrics.RecordMutation("show", "create", err) }()

	show = models.Show{ArtistID: f.ArtistID, VenueID: f.VenueID, StartTime: f.StartTime}
	err = store.RunInTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := mustExist(tx, &models.Artist{}, "artist", f.ArtistID); err != nil {
			return err
		}
		if err := mustExist(tx, &models.Venue{}, "venue", f.VenueID); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(&show).Error; err != nil {
			return fmt.Errorf("create show: %w", err)
		}
		return nil
	})
	return show, err
}

func mustExist(tx *gorm.DB, model interface{}, kind string, id uint) error {
	var n int64
	if err := tx.Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return fmt.Errorf("look up %s %d: %w", kind, id, err)
	}
	if n == 0 {
		return &ReferenceError{Kind: kind, ID: id}
	}
	return nil
}

func resolveGenres(tx *gorm.DB, names []string) ([]models.Genre, error) {
	names = forms.NormalizeGenres(names)
	genres := make([]models.Genre, 0, len(names))
	for _, name := range names {
		var genre models.Genre
		if err := tx.Where("name = ?", name).FirstOrCreate(&genre, models.Genre{Name: name}).Error; err != nil {
			return nil, fmt.Errorf("resolve genre %q: %w", name, err)
		}
		genres = append(genres, genre)
	}
	return genres, nil
}

func applyVenueForm(venue *models.Venue, f forms.VenueForm) {
	venue.Name = strings.TrimSpace(f.Name)
	venue.City = strings.TrimSpace(f.City)
	venue.State = f.State
	venue.Address = strings.TrimSpace(f.Address)
	venue.Phone = f.Phone
	venue.ImageLink = f.ImageLink
	venue.FacebookLink = f.FacebookLink
	venue.WebsiteLink = f.WebsiteLink
	venue.SeekingTalent = f.Seeking()
	venue.SeekingDescription = f.SeekingDescription
}

func applyArtistForm(artist *models.Artist, f forms.ArtistForm) {
	artist.Name = strings.TrimSpace(f.Name)
	artist.City = strings.TrimSpace(f.City)
	artist.State = f.State
	artist.Phone = f.Phone
	artist.ImageLink = f.ImageLink
	artist.FacebookLink = f.FacebookLink
	artist.WebsiteLink = f.WebsiteLink
	artist.SeekingVenue = f.Seeking()
	artist.SeekingDescription = f.SeekingDescription
}
