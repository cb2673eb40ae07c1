package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"worldquery/internal/client/explore"
	"worldquery/internal/client/models"
	"worldquery/internal/common"
)

// show fetches a single country fresh from the API and renders the detail
// view, including its resolved border neighbors.
func (a *App) show(ctx context.Context, code string) {
	if a.requireLogin() {
		return
	}

	country, err := a.api.ByCode(ctx, code)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintln(a.out, "No country found for code:", code)
			return
		}
		a.log.Error(ctx, "error fetching country", "code", code, "error", err)
		fmt.Fprintln(a.out, "Failed to load country details. Try again later.")
		return
	}

	a.printDetail(ctx, country)
}

func (a *App) printDetail(ctx context.Context, c *models.Country) {
	fmt.Fprintf(a.out, "%s (%s)\n", c.Name.Common, c.CCA3)
	if c.Name.Official != "" && c.Name.Official != c.Name.Common {
		fmt.Fprintln(a.out, c.Name.Official)
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	row := func(label, value string) {
		if value == "" {
			value = explore.NotAvailable
		}
		fmt.Fprintf(w, "  %s\t%s\n", label, value)
	}

	row("Capital", c.CapitalCity())
	row("Region", c.Region)
	row("Subregion", c.Subregion)
	row("Population", explore.FormatPopulation(c.Population))
	row("Area", explore.AreaInfo(c))
	row("Density", explore.Density(c))
	row("Languages", explore.LanguageInfo(c))
	row("Currencies", explore.CurrencyInfo(c))
	row("Timezones", explore.TimezoneInfo(c))
	row("Continents", strings.Join(c.Continents, ", "))
	row("Gini", explore.GiniInfo(c))
	row("Driving side", explore.DrivingSide(c))
	row("Start of week", c.StartOfWeek)
	row("TLD", strings.Join(c.TLD, ", "))
	row("UN member", yesNo(c.UNMember))
	row("Landlocked", yesNo(c.Landlocked))
	if c.Flags.PNG != "" {
		row("Flag", c.Flags.PNG)
	}
	if c.Maps.GoogleMaps != "" {
		row("Google Maps", c.Maps.GoogleMaps)
	}
	w.Flush()

	a.printNeighbors(ctx, c)

	if lat, lng, ok := c.Coordinates(); ok {
		fmt.Fprintf(a.out, "  View on map: map %v %v %s\n", lat, lng, c.Name.Common)
	}

	if a.session.IsFavorite(c.CCA3) {
		fmt.Fprintln(a.out, "  * In your favorites")
	}
}

// printNeighbors resolves border codes into display names. Resolution is
// best-effort; a failed lookup leaves the raw codes on screen.
func (a *App) printNeighbors(ctx context.Context, c *models.Country) {
	if len(c.Borders) == 0 {
		fmt.Fprintln(a.out, "  Borders: none")
		return
	}

	neighbors, err := a.api.ByCodes(ctx, c.Borders)
	if err != nil {
		a.log.Warn(ctx, "error resolving border countries", "error", err)
		fmt.Fprintln(a.out, "  Borders:", strings.Join(c.Borders, ", "))
		return
	}

	names := make([]string, 0, len(neighbors))
	for i := range neighbors {
		names = append(names, fmt.Sprintf("%s (%s)", neighbors[i].Name.Common, neighbors[i].CCA3))
	}
	fmt.Fprintln(a.out, "  Borders:", strings.Join(names, ", "))
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
