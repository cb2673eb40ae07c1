package models

// Country mirrors a REST Countries v3.1 record. Fields are optional on the
// wire; zero values stand in for absent ones. WorldQuery never mutates a
// fetched record.
type Country struct {
	Name       CountryName         `json:"name"`
	CCA2       string              `json:"cca2"`
	CCA3       string              `json:"cca3"`
	CIOC       string              `json:"cioc,omitempty"`
	Capital    []string            `json:"capital,omitempty"`
	Region     string              `json:"region"`
	Subregion  string              `json:"subregion,omitempty"`
	Population int64               `json:"population"`
	Area       float64             `json:"area"`
	Languages  map[string]string   `json:"languages,omitempty"`
	Currencies map[string]Currency `json:"currencies,omitempty"`
	Borders    []string            `json:"borders,omitempty"`
	Timezones  []string            `json:"timezones,omitempty"`
	Continents []string            `json:"continents,omitempty"`
	LatLng     []float64           `json:"latlng,omitempty"`
	Flags      ImageSet            `json:"flags"`
	CoatOfArms ImageSet            `json:"coatOfArms"`
	Maps       MapLinks            `json:"maps"`
	Gini       map[string]float64  `json:"gini,omitempty"`
	Car        Car                 `json:"car"`
	TLD        []string            `json:"tld,omitempty"`
	Independent bool               `json:"independent,omitempty"`
	UNMember    bool               `json:"unMember,omitempty"`
	Landlocked  bool               `json:"landlocked,omitempty"`
	StartOfWeek string             `json:"startOfWeek,omitempty"`
}

type CountryName struct {
	Common   string `json:"common"`
	Official string `json:"official"`
}

type Currency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol,omitempty"`
}

type ImageSet struct {
	PNG string `json:"png,omitempty"`
	SVG string `json:"svg,omitempty"`
	Alt string `json:"alt,omitempty"`
}

type MapLinks struct {
	GoogleMaps     string `json:"googleMaps,omitempty"`
	OpenStreetMaps string `json:"openStreetMaps,omitempty"`
}

type Car struct {
	Side  string   `json:"side,omitempty"`
	Signs []string `json:"signs,omitempty"`
}

// CapitalCity returns the first capital or "" when none is listed.
func (c *Country) CapitalCity() string {
	if len(c.Capital) == 0 {
		return ""
	}
	return c.Capital[0]
}

// Coordinates reports the record's latlng pair. ok is false when the field
// is absent or malformed.
func (c *Country) Coordinates() (lat, lng float64, ok bool) {
	if len(c.LatLng) < 2 {
		return 0, 0, false
	}
	return c.LatLng[0], c.LatLng[1], true
}
