package listings

import (
	"time"

	"github.com/farellandr/gigboard/internal/models"
)

type VenueSummary struct {
	ID            uint
	Name          string
	UpcomingShows int
}

type Area struct {
	City   string
	State  string
	Venues []VenueSummary
}

type location struct {
	city  string
	state string
}

// areaIndex is a map from location to area that remembers insertion order.
type areaIndex struct {
	pos   map[location]int
	areas []Area
}

func newAreaIndex() *areaIndex {
	return &areaIndex{pos: make(map[location]int)}
}

func (idx *areaIndex) add(key location, v VenueSummary) {
	i, ok := idx.pos[key]
	if !ok {
		i = len(idx.areas)
		idx.pos[key] = i
		idx.areas = append(idx.areas, Area{City: key.city, State: key.state})
	}
	idx.areas[i].Venues = append(idx.areas[i].Venues, v)
}

// GroupByLocation groups venues by exact (city, state) in first-seen order and
// attaches each venue's upcoming show count. Venues need their Shows loaded.
func GroupByLocation(venues []models.Venue, now time.Time) []Area {
	idx := newAreaIndex()
	for _, v := range venues {
		idx.add(location{city: v.City, state: v.State}, VenueSummary{
			ID:            v.ID,
			Name:          v.Name,
			UpcomingShows: CountUpcoming(v.Shows, now),
		})
	}
	if idx.areas == nil {
		return []Area{}
	}
	return idx.areas
}
