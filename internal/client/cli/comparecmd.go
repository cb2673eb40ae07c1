package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"worldquery/internal/client/explore"
	"worldquery/internal/client/models"
)

// compare fills the comparison slots from up to three country codes and
// renders the comparison table. Fewer than three codes leave the trailing
// slots empty.
func (a *App) compare(ctx context.Context, codes []string) {
	if a.requireLogin() {
		return
	}
	if !a.ensureData(ctx) {
		return
	}
	if len(codes) > explore.Slots {
		fmt.Fprintf(a.out, "Compare takes at most %d countries.\n", explore.Slots)
		return
	}

	var slots [explore.Slots]*models.Country
	for i, code := range codes {
		country, err := a.countries.ByCode(code)
		if err != nil {
			fmt.Fprintln(a.out, "Unknown country code:", code)
			return
		}
		slots[i] = country
	}

	a.slots = slots
	a.renderComparison()
}

// expand toggles a comparison category open or closed and re-renders.
func (a *App) expand(ctx context.Context, key string) {
	if a.requireLogin() {
		return
	}
	if a.slots == ([explore.Slots]*models.Country{}) {
		fmt.Fprintln(a.out, "Nothing to expand, run 'compare' first.")
		return
	}

	switch key {
	case explore.CategoryBasic, explore.CategoryGeography, explore.CategoryPopulation,
		explore.CategoryEconomy, explore.CategoryCulture:
	default:
		fmt.Fprintln(a.out, "Unknown category:", key)
		return
	}

	a.expanded.Toggle(key)
	a.renderComparison()
}

func (a *App) renderComparison() {
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)

	header := "CATEGORY"
	for _, c := range a.slots {
		if c != nil {
			header += "\t" + c.Name.Common
		} else {
			header += "\t-"
		}
	}
	fmt.Fprintln(w, header)

	for _, row := range explore.Compare(a.slots) {
		marker := "+"
		if a.expanded.Expanded(row.Key) {
			marker = "-"
		}
		fmt.Fprintf(w, "%s %s\t%s\t%s\t%s\n",
			marker, row.Label, row.Summary[0], row.Summary[1], row.Summary[2])

		if !a.expanded.Expanded(row.Key) {
			continue
		}
		for _, d := range row.Details {
			fmt.Fprintf(w, "    %s\t%s\t%s\t%s\n",
				d.Label, d.Values[0], d.Values[1], d.Values[2])
		}
	}
	w.Flush()

	fmt.Fprintln(a.out, "Toggle details with: expand basic|geography|population|economy|culture")
}
