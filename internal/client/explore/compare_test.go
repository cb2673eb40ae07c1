package explore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worldquery/internal/client/models"
)

func canada() *models.Country {
	return &models.Country{
		Name:       models.CountryName{Common: "Canada"},
		CCA3:       "CAN",
		Capital:    []string{"Ottawa"},
		Region:     "Americas",
		Subregion:  "North America",
		Population: 38005238,
		Area:       9984670,
		Languages:  map[string]string{"eng": "English", "fra": "French"},
		Currencies: map[string]models.Currency{"CAD": {Name: "Canadian dollar", Symbol: "$"}},
		Timezones:  []string{"UTC-08:00", "UTC-07:00"},
		Gini:       map[string]float64{"2017": 33.3},
		Car:        models.Car{Side: "right"},
	}
}

func TestDensity_TwoDecimalFormat(t *testing.T) {
	assert.Equal(t, "3.81 people/km²", Density(canada()))
}

func TestDensity_MissingInputs(t *testing.T) {
	assert.Equal(t, NotAvailable, Density(&models.Country{Population: 100}))
	assert.Equal(t, NotAvailable, Density(&models.Country{Area: 100}))
}

func TestCurrencyInfo(t *testing.T) {
	assert.Equal(t, "Canadian dollar ($)", CurrencyInfo(canada()))

	noSymbol := &models.Country{Currencies: map[string]models.Currency{
		"XOF": {Name: "West African CFA franc"},
	}}
	assert.Equal(t, "West African CFA franc (XOF)", CurrencyInfo(noSymbol))

	multi := &models.Country{Currencies: map[string]models.Currency{
		"USD": {Name: "United States dollar", Symbol: "$"},
		"EUR": {Name: "Euro", Symbol: "€"},
	}}
	assert.Equal(t, "Euro (€), United States dollar ($)", CurrencyInfo(multi))

	assert.Equal(t, NotAvailable, CurrencyInfo(&models.Country{}))
}

func TestLanguageAndTimezoneInfo(t *testing.T) {
	assert.Equal(t, "English, French", LanguageInfo(canada()))
	assert.Equal(t, NotAvailable, LanguageInfo(&models.Country{}))

	assert.Equal(t, "UTC-08:00, UTC-07:00", TimezoneInfo(canada()))
	assert.Equal(t, NotAvailable, TimezoneInfo(&models.Country{}))
}

func TestGiniAndDrivingSide(t *testing.T) {
	assert.Equal(t, "2017: 33.3", GiniInfo(canada()))
	assert.Equal(t, NotAvailable, GiniInfo(&models.Country{}))

	assert.Equal(t, "right", DrivingSide(canada()))
	assert.Equal(t, NotAvailable, DrivingSide(&models.Country{}))
}

func TestFormatPopulationAndArea(t *testing.T) {
	assert.Equal(t, "38,005,238", FormatPopulation(38005238))
	assert.Equal(t, "9,984,670", AreaInfo(canada()))
	assert.Equal(t, NotAvailable, AreaInfo(&models.Country{}))
}

func TestCompare_CategoryLayout(t *testing.T) {
	rows := Compare([Slots]*models.Country{canada(), nil, nil})
	require.Len(t, rows, 5)

	keys := make([]string, 0, len(rows))
	for _, r := range rows {
		keys = append(keys, r.Key)
	}
	assert.Equal(t, []string{
		CategoryBasic, CategoryGeography, CategoryPopulation, CategoryEconomy, CategoryCulture,
	}, keys)

	basic := rows[0]
	assert.Equal(t, "Basic Information", basic.Label)
	assert.Equal(t, "Ottawa", basic.Summary[0])
	// empty slot: blank summary cell, N/A detail cell
	assert.Equal(t, "", basic.Summary[1])
	require.Len(t, basic.Details, 1)
	assert.Equal(t, NotAvailable, basic.Details[0].Values[1])

	population := rows[2]
	assert.Equal(t, "38,005,238", population.Summary[0])
	require.Len(t, population.Details, 2)
	assert.Equal(t, "Density", population.Details[1].Label)
	assert.Equal(t, "3.81 people/km²", population.Details[1].Values[0])

	geography := rows[1]
	require.Len(t, geography.Details, 3)
	assert.Equal(t, "9,984,670", geography.Details[2].Values[0])

	culture := rows[4]
	require.Len(t, culture.Details, 3)
	assert.Equal(t, "right", culture.Details[2].Values[0])
}

func TestExpandSet_IndependentToggles(t *testing.T) {
	expanded := ExpandSet{}

	expanded.Toggle(CategoryBasic)
	expanded.Toggle(CategoryEconomy)
	assert.True(t, expanded.Expanded(CategoryBasic))
	assert.True(t, expanded.Expanded(CategoryEconomy))
	assert.False(t, expanded.Expanded(CategoryGeography))

	expanded.Toggle(CategoryBasic)
	assert.False(t, expanded.Expanded(CategoryBasic))
	assert.True(t, expanded.Expanded(CategoryEconomy))
}
