package models

import (
	"sort"
	"strings"
)

type Genre struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"not null;uniqueIndex;size:120"`
}

func genreNames(genres []Genre) []string {
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Name)
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	return names
}

// All lists every model for auto-migration.
func All() []interface{} {
	return []interface{}{&Genre{}, &Venue{}, &Artist{}, &Show{}}
}
