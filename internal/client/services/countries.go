package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"worldquery/internal/client/models"
	"worldquery/internal/common"
	"worldquery/internal/logging"
)

// CountrySource is the subset of the API client the cache needs; tests
// provide fakes.
type CountrySource interface {
	All(ctx context.Context) ([]models.Country, error)
}

// Countries holds the most recent full country-list fetch in memory for the
// browse, filter, and compare views. The cache is never persisted; a failed
// refresh leaves the previous contents in place.
type Countries struct {
	api CountrySource
	log logging.Logger

	mu        sync.RWMutex
	countries []models.Country
	languages []string
	loaded    bool
}

func NewCountries(api CountrySource, log logging.Logger) *Countries {
	return &Countries{api: api, log: log.With("component", "countries")}
}

// Load fetches the full collection once; subsequent calls are no-ops until
// Refresh.
func (c *Countries) Load(ctx context.Context) error {
	c.mu.RLock()
	loaded := c.loaded
	c.mu.RUnlock()
	if loaded {
		return nil
	}
	return c.Refresh(ctx)
}

// Refresh refetches the collection, sorts it by common name, and rebuilds
// the distinct-language index.
func (c *Countries) Refresh(ctx context.Context) error {
	countries, err := c.api.All(ctx)
	if err != nil {
		c.log.Error(ctx, "failed to fetch countries", "error", err)
		return err
	}

	sort.Slice(countries, func(i, j int) bool {
		return strings.ToLower(countries[i].Name.Common) < strings.ToLower(countries[j].Name.Common)
	})

	seen := make(map[string]struct{})
	var languages []string
	for _, country := range countries {
		for _, lang := range country.Languages {
			if _, ok := seen[lang]; !ok {
				seen[lang] = struct{}{}
				languages = append(languages, lang)
			}
		}
	}
	sort.Strings(languages)

	c.mu.Lock()
	c.countries = countries
	c.languages = languages
	c.loaded = true
	c.mu.Unlock()

	c.log.Info(ctx, "country data refreshed", "count", len(countries))
	return nil
}

// Loaded reports whether a fetch has succeeded yet.
func (c *Countries) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// All returns the cached collection, sorted by common name.
func (c *Countries) All() []models.Country {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.countries
}

// Languages returns the sorted distinct language values across the cached
// collection, as offered by the language filter.
func (c *Countries) Languages() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.languages
}

// ByCode finds a cached country by cca3 (or cca2) code, case-insensitively.
func (c *Countries) ByCode(code string) (*models.Country, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.loaded {
		return nil, common.ErrNotLoaded
	}

	upper := strings.ToUpper(code)
	for i := range c.countries {
		if c.countries[i].CCA3 == upper || c.countries[i].CCA2 == upper {
			return &c.countries[i], nil
		}
	}
	return nil, common.ErrNotFound
}
