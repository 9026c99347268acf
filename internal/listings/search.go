package listings

import (
	"context"
	"fmt"
	"strings"

	"github.com/farellandr/gigboard/internal/models"
)

type Match struct {
	ID            uint
	Name          string
	UpcomingShows int
}

type SearchResult struct {
	Term  string
	Count int
	Data  []Match
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching term as a literal substring.
// An empty term matches everything.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// Both sides are folded by the database so the comparison uses one notion of case.
const nameContains = `LOWER(name) LIKE LOWER(?) ESCAPE '\'`

func (s *Service) SearchVenues(ctx context.Context, term string) (SearchResult, error) {
	term = strings.TrimSpace(term)
	var venues []models.Venue
	err := s.db.WithContext(ctx).
		Preload("Shows").
		Where(nameContains, containsPattern(term)).
		Order("id ASC").
		Find(&venues).Error
	if err != nil {
		return SearchResult{}, fmt.Errorf("search venues: %w", err)
	}

	now := s.now()
	result := SearchResult{Term: term, Data: make([]Match, 0, len(venues))}
	for _, v := range venues {
		result.Data = append(result.Data, Match{ID: v.ID, Name: v.Name, UpcomingShows: CountUpcoming(v.Shows, now)})
	}
	result.Count = len(result.Data)
	return result, nil
}

func (s *Service) SearchArtists(ctx context.Context, term string) (SearchResult, error) {
	term = strings.TrimSpace(term)
	var artists []models.Artist
	err := s.db.WithContext(ctx).
		Preload("Shows").
		Where(nameContains, containsPattern(term)).
		Order("id ASC").
		Find(&artists).Error
	if err != nil {
		return SearchResult{}, fmt.Errorf("search artists: %w", err)
	}

	now := s.now()
	result := SearchResult{Term: term, Data: make([]Match, 0, len(artists))}
	for _, a := range artists {
		result.Data = append(result.Data, Match{ID: a.ID, Name: a.Name, UpcomingShows: CountUpcoming(a.Shows, now)})
	}
	result.Count = len(result.Data)
	return result, nil
}
