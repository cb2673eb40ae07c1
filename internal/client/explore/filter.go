// Package explore implements the pure, stateless view logic of WorldQuery:
// searching and filtering the country collection, the side-by-side
// comparison projection, and map deep-link resolution. Nothing here touches
// storage or the network; functions are recomputed on every input change.
package explore

import (
	"strings"

	"worldquery/internal/client/models"
)

// Criteria holds the active browse filters. Zero values disable the
// corresponding filter.
type Criteria struct {
	Term          string
	Region        string
	Language      string
	FavoritesOnly bool
}

// Active reports whether any filter is currently set.
func (c Criteria) Active() bool {
	return c.Term != "" || c.Region != "" || c.Language != "" || c.FavoritesOnly
}

// Search keeps countries whose common name contains term,
// case-insensitively. An empty term keeps everything.
func Search(countries []models.Country, term string) []models.Country {
	if term == "" {
		return countries
	}
	needle := strings.ToLower(term)
	var out []models.Country
	for _, c := range countries {
		if strings.Contains(strings.ToLower(c.Name.Common), needle) {
			out = append(out, c)
		}
	}
	return out
}

// FilterByRegion keeps countries whose region matches exactly. An empty
// region keeps everything.
func FilterByRegion(countries []models.Country, region string) []models.Country {
	if region == "" {
		return countries
	}
	var out []models.Country
	for _, c := range countries {
		if c.Region == region {
			out = append(out, c)
		}
	}
	return out
}

// FilterByLanguage keeps countries that list language among their language
// values. An empty language keeps everything.
func FilterByLanguage(countries []models.Country, language string) []models.Country {
	if language == "" {
		return countries
	}
	var out []models.Country
	for _, c := range countries {
		if speaks(&c, language) {
			out = append(out, c)
		}
	}
	return out
}

func speaks(c *models.Country, language string) bool {
	for _, v := range c.Languages {
		if v == language {
			return true
		}
	}
	return false
}

// FilterByFavorites keeps countries whose code satisfies isFavorite when
// enabled; otherwise it is a no-op.
func FilterByFavorites(countries []models.Country, isFavorite func(code string) bool, enabled bool) []models.Country {
	if !enabled {
		return countries
	}
	var out []models.Country
	for _, c := range countries {
		if isFavorite(c.CCA3) {
			out = append(out, c)
		}
	}
	return out
}

// Filter ANDs all active criteria. Each individual filter is a pure
// keep/drop predicate, so application order does not affect the result.
func Filter(countries []models.Country, crit Criteria, isFavorite func(code string) bool) []models.Country {
	out := Search(countries, crit.Term)
	out = FilterByRegion(out, crit.Region)
	out = FilterByLanguage(out, crit.Language)
	out = FilterByFavorites(out, isFavorite, crit.FavoritesOnly)
	return out
}
