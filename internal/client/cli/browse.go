package cli

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"worldquery/internal/client/explore"
	"worldquery/internal/client/models"
	"worldquery/internal/common"
)

// clearFilterArg resets a single filter when passed in place of a value.
const clearFilterArg = "-"

func (a *App) requireLogin() bool {
	if a.isLoggedIn() {
		return false
	}
	fmt.Fprintln(a.out, "Please log in first (register/login).")
	return true
}

// ensureData loads the country collection on first use. Subsequent calls
// are no-ops while the cache holds data.
func (a *App) ensureData(ctx context.Context) bool {
	if a.countries.Loaded() {
		return true
	}
	fmt.Fprintln(a.out, "Loading countries...")
	if err := a.countries.Load(ctx); err != nil {
		a.log.Error(ctx, "error loading countries", "error", err)
		if errors.Is(err, common.ErrFetchFailed) {
			fmt.Fprintln(a.out, "Failed to load countries. Check your connection and run 'refresh' to retry.")
		} else {
			fmt.Fprintln(a.out, "Failed to load countries, run 'refresh' to retry.")
		}
		return false
	}
	return true
}

func (a *App) filtered() []models.Country {
	return explore.Filter(a.countries.All(), a.criteria, a.session.IsFavorite)
}

func (a *App) list(ctx context.Context) {
	if a.requireLogin() {
		return
	}
	if !a.ensureData(ctx) {
		return
	}

	countries := a.filtered()
	if len(countries) == 0 {
		fmt.Fprintln(a.out, "No countries match the current filters.")
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tCAPITAL\tREGION\tPOPULATION\tFAV")
	for i := range countries {
		c := &countries[i]
		fav := ""
		if a.session.IsFavorite(c.CCA3) {
			fav = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			c.CCA3, c.Name.Common, c.CapitalCity(), c.Region,
			explore.FormatPopulation(c.Population), fav)
	}
	w.Flush()

	fmt.Fprintf(a.out, "%d countries", len(countries))
	if a.criteria.Active() {
		fmt.Fprint(a.out, " (filtered)")
	}
	fmt.Fprintln(a.out)
}

func (a *App) search(ctx context.Context, term string) {
	if a.requireLogin() {
		return
	}
	if term == clearFilterArg {
		term = ""
	}
	a.criteria.Term = term
	a.list(ctx)
}

func (a *App) region(ctx context.Context, name string) {
	if a.requireLogin() {
		return
	}
	if name == clearFilterArg {
		name = ""
	}
	a.criteria.Region = name
	a.list(ctx)
}

func (a *App) language(ctx context.Context, name string) {
	if a.requireLogin() {
		return
	}
	if name == clearFilterArg {
		name = ""
	}
	if name == "" && len(a.countries.Languages()) > 0 {
		fmt.Fprintln(a.out, "Known languages:")
		for _, l := range a.countries.Languages() {
			fmt.Fprintln(a.out, "  "+l)
		}
	}
	a.criteria.Language = name
	a.list(ctx)
}

func (a *App) favoritesOnly(ctx context.Context, mode string) {
	if a.requireLogin() {
		return
	}
	switch mode {
	case "on":
		a.criteria.FavoritesOnly = true
	case "off":
		a.criteria.FavoritesOnly = false
	default:
		fmt.Fprintln(a.out, "Usage: favorites on|off")
		return
	}
	a.list(ctx)
}

func (a *App) toggleFavorite(ctx context.Context, code string) {
	if a.requireLogin() {
		return
	}
	if !a.ensureData(ctx) {
		return
	}

	country, err := a.countries.ByCode(code)
	if err != nil {
		fmt.Fprintln(a.out, "Unknown country code:", code)
		return
	}

	if err := a.session.ToggleFavorite(ctx, country.CCA3); err != nil {
		a.log.Error(ctx, "error saving favorites", "error", err)
		fmt.Fprintln(a.out, "Could not save favorites.")
		return
	}

	if a.session.IsFavorite(country.CCA3) {
		fmt.Fprintf(a.out, "Added %s to favorites.\n", country.Name.Common)
	} else {
		fmt.Fprintf(a.out, "Removed %s from favorites.\n", country.Name.Common)
	}
}

func (a *App) clearFilters(ctx context.Context) {
	if a.requireLogin() {
		return
	}
	a.criteria = explore.Criteria{}
	fmt.Fprintln(a.out, "Filters cleared.")
}

func (a *App) refresh(ctx context.Context) {
	if a.requireLogin() {
		return
	}
	fmt.Fprintln(a.out, "Refreshing countries...")
	if err := a.countries.Refresh(ctx); err != nil {
		a.log.Error(ctx, "error refreshing countries", "error", err)
		fmt.Fprintln(a.out, "Refresh failed, previous data kept.")
		return
	}
	fmt.Fprintf(a.out, "Loaded %d countries.\n", len(a.countries.All()))
}
