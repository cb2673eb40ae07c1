package explore

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"worldquery/internal/client/models"
)

// NotAvailable is the literal rendered for an absent field.
const NotAvailable = "N/A"

// Slots is the number of side-by-side comparison columns.
const Slots = 3

// Category keys, one per comparison row group.
const (
	CategoryBasic      = "basic"
	CategoryGeography  = "geography"
	CategoryPopulation = "population"
	CategoryEconomy    = "economy"
	CategoryCulture    = "culture"
)

// CategoryRow is one collapsible group of the comparison table: a summary
// value per slot plus detail sub-rows revealed when the category is
// expanded.
type CategoryRow struct {
	Key     string
	Label   string
	Summary [Slots]string
	Details []DetailRow
}

// DetailRow is one property line inside an expanded category.
type DetailRow struct {
	Label  string
	Values [Slots]string
}

// ExpandSet tracks which comparison categories are expanded. Categories
// toggle independently; any number may be open at once.
type ExpandSet map[string]struct{}

func (s ExpandSet) Toggle(key string) {
	if _, ok := s[key]; ok {
		delete(s, key)
	} else {
		s[key] = struct{}{}
	}
}

func (s ExpandSet) Expanded(key string) bool {
	_, ok := s[key]
	return ok
}

// Compare projects up to three optional countries into the row groups of
// the comparison view. Empty slots produce empty summary cells and
// NotAvailable detail cells.
func Compare(slots [Slots]*models.Country) []CategoryRow {
	return []CategoryRow{
		{
			Key:     CategoryBasic,
			Label:   "Basic Information",
			Summary: summarize(slots, func(c *models.Country) string { return orNA(c.CapitalCity()) }),
			Details: []DetailRow{
				detail(slots, "Capital", func(c *models.Country) string { return orNA(c.CapitalCity()) }),
			},
		},
		{
			Key:     CategoryGeography,
			Label:   "Geography",
			Summary: summarize(slots, func(c *models.Country) string { return c.Region }),
			Details: []DetailRow{
				detail(slots, "Region", func(c *models.Country) string { return orNA(c.Region) }),
				detail(slots, "Subregion", func(c *models.Country) string { return orNA(c.Subregion) }),
				detail(slots, "Area (km²)", AreaInfo),
			},
		},
		{
			Key:     CategoryPopulation,
			Label:   "Population",
			Summary: summarize(slots, func(c *models.Country) string { return FormatPopulation(c.Population) }),
			Details: []DetailRow{
				detail(slots, "Total", func(c *models.Country) string { return FormatPopulation(c.Population) }),
				detail(slots, "Density", Density),
			},
		},
		{
			Key:     CategoryEconomy,
			Label:   "Economy",
			Summary: summarize(slots, CurrencyInfo),
			Details: []DetailRow{
				detail(slots, "Currencies", CurrencyInfo),
				detail(slots, "Gini Index", GiniInfo),
			},
		},
		{
			Key:     CategoryCulture,
			Label:   "Culture",
			Summary: summarize(slots, LanguageInfo),
			Details: []DetailRow{
				detail(slots, "Languages", LanguageInfo),
				detail(slots, "Time Zones", TimezoneInfo),
				detail(slots, "Driving Side", DrivingSide),
			},
		},
	}
}

func summarize(slots [Slots]*models.Country, f func(*models.Country) string) [Slots]string {
	var out [Slots]string
	for i, c := range slots {
		if c != nil {
			out[i] = f(c)
		}
	}
	return out
}

func detail(slots [Slots]*models.Country, label string, f func(*models.Country) string) DetailRow {
	row := DetailRow{Label: label}
	for i, c := range slots {
		if c == nil {
			row.Values[i] = NotAvailable
			continue
		}
		row.Values[i] = f(c)
	}
	return row
}

func orNA(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}

// english formats numbers with en-locale digit grouping, matching the
// original view's toLocaleString output.
var english = message.NewPrinter(language.English)

// FormatPopulation renders a population count with digit grouping.
func FormatPopulation(n int64) string {
	return english.Sprintf("%d", n)
}

// AreaInfo renders a country's area with digit grouping, or NotAvailable
// when the record carries none.
func AreaInfo(c *models.Country) string {
	if c.Area == 0 {
		return NotAvailable
	}
	if c.Area == math.Trunc(c.Area) {
		return english.Sprintf("%.0f", c.Area)
	}
	return english.Sprintf("%.1f", c.Area)
}

// Density derives population density as population/area rounded to two
// decimals, formatted "<value> people/km²". Absent population or area
// yields NotAvailable.
func Density(c *models.Country) string {
	if c.Area == 0 || c.Population == 0 {
		return NotAvailable
	}
	return fmt.Sprintf("%.2f people/km²", float64(c.Population)/c.Area)
}

// CurrencyInfo renders "Name (symbol)" per currency, comma-joined, using
// the currency code when no symbol is listed. Codes are sorted so output is
// deterministic.
func CurrencyInfo(c *models.Country) string {
	if len(c.Currencies) == 0 {
		return NotAvailable
	}
	codes := make([]string, 0, len(c.Currencies))
	for code := range c.Currencies {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	parts := make([]string, 0, len(codes))
	for _, code := range codes {
		cur := c.Currencies[code]
		symbol := cur.Symbol
		if symbol == "" {
			symbol = code
		}
		parts = append(parts, fmt.Sprintf("%s (%s)", cur.Name, symbol))
	}
	return strings.Join(parts, ", ")
}

// LanguageInfo comma-joins the country's language names, sorted by their
// language keys. Absent mapping yields NotAvailable.
func LanguageInfo(c *models.Country) string {
	if len(c.Languages) == 0 {
		return NotAvailable
	}
	keys := make([]string, 0, len(c.Languages))
	for k := range c.Languages {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := make([]string, 0, len(keys))
	for _, k := range keys {
		values = append(values, c.Languages[k])
	}
	return strings.Join(values, ", ")
}

// TimezoneInfo comma-joins the country's timezones.
func TimezoneInfo(c *models.Country) string {
	if len(c.Timezones) == 0 {
		return NotAvailable
	}
	return strings.Join(c.Timezones, ", ")
}

// GiniInfo renders the Gini index measurements as "year: value" pairs,
// sorted by year.
func GiniInfo(c *models.Country) string {
	if len(c.Gini) == 0 {
		return NotAvailable
	}
	years := make([]string, 0, len(c.Gini))
	for y := range c.Gini {
		years = append(years, y)
	}
	sort.Strings(years)

	parts := make([]string, 0, len(years))
	for _, y := range years {
		parts = append(parts, fmt.Sprintf("%s: %.1f", y, c.Gini[y]))
	}
	return strings.Join(parts, ", ")
}

// DrivingSide reports which side of the road traffic drives on.
func DrivingSide(c *models.Country) string {
	return orNA(c.Car.Side)
}
