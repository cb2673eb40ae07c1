package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worldquery/internal/client/models"
	"worldquery/internal/common"
)

// fakeSource implements CountrySource for cache tests.
type fakeSource struct {
	countries []models.Country
	err       error
	calls     int
}

func (f *fakeSource) All(ctx context.Context) ([]models.Country, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.countries, nil
}

func unsortedFixture() []models.Country {
	return []models.Country{
		{Name: models.CountryName{Common: "france"}, CCA3: "FRA", CCA2: "FR",
			Languages: map[string]string{"fra": "French"}},
		{Name: models.CountryName{Common: "Canada"}, CCA3: "CAN", CCA2: "CA",
			Languages: map[string]string{"eng": "English", "fra": "French"}},
		{Name: models.CountryName{Common: "Austria"}, CCA3: "AUT", CCA2: "AT",
			Languages: map[string]string{"de": "German"}},
	}
}

func TestLoad_SortsByCommonName(t *testing.T) {
	src := &fakeSource{countries: unsortedFixture()}
	c := NewCountries(src, testLogger())

	require.NoError(t, c.Load(context.Background()))

	var names []string
	for _, country := range c.All() {
		names = append(names, country.Name.Common)
	}
	assert.Equal(t, []string{"Austria", "Canada", "france"}, names)
}

func TestLoad_FetchesOnlyOnce(t *testing.T) {
	src := &fakeSource{countries: unsortedFixture()}
	c := NewCountries(src, testLogger())
	ctx := context.Background()

	require.NoError(t, c.Load(ctx))
	require.NoError(t, c.Load(ctx))

	assert.Equal(t, 1, src.calls)
}

func TestRefresh_AlwaysFetches(t *testing.T) {
	src := &fakeSource{countries: unsortedFixture()}
	c := NewCountries(src, testLogger())
	ctx := context.Background()

	require.NoError(t, c.Load(ctx))
	require.NoError(t, c.Refresh(ctx))

	assert.Equal(t, 2, src.calls)
}

func TestRefresh_FailureKeepsPreviousData(t *testing.T) {
	src := &fakeSource{countries: unsortedFixture()}
	c := NewCountries(src, testLogger())
	ctx := context.Background()

	require.NoError(t, c.Load(ctx))
	src.err = errors.New("boom")

	require.Error(t, c.Refresh(ctx))
	assert.Len(t, c.All(), 3)
	assert.True(t, c.Loaded())
}

func TestLanguages_DistinctAndSorted(t *testing.T) {
	src := &fakeSource{countries: unsortedFixture()}
	c := NewCountries(src, testLogger())

	require.NoError(t, c.Load(context.Background()))

	assert.Equal(t, []string{"English", "French", "German"}, c.Languages())
}

func TestByCode_MatchesEitherCodeCaseInsensitively(t *testing.T) {
	src := &fakeSource{countries: unsortedFixture()}
	c := NewCountries(src, testLogger())
	require.NoError(t, c.Load(context.Background()))

	byCCA3, err := c.ByCode("can")
	require.NoError(t, err)
	assert.Equal(t, "Canada", byCCA3.Name.Common)

	byCCA2, err := c.ByCode("fr")
	require.NoError(t, err)
	assert.Equal(t, "france", byCCA2.Name.Common)

	_, err = c.ByCode("XXX")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestByCode_BeforeLoad(t *testing.T) {
	c := NewCountries(&fakeSource{}, testLogger())

	_, err := c.ByCode("CAN")
	assert.True(t, errors.Is(err, common.ErrNotLoaded))
}
