package explore

import (
	"fmt"
	"strconv"
)

// Default map framing used when a deep link is absent or unparseable.
var defaultCenter = Coordinates{Lat: 6.914245, Lng: 79.973918}

const (
	defaultZoom  = 17
	deepLinkZoom = 5
)

type Coordinates struct {
	Lat float64
	Lng float64
}

// Marker is a labelled point dropped on the map by a deep link.
type Marker struct {
	Position Coordinates
	Label    string
}

// MapView describes the initial framing of the map page: center, zoom, and
// an optional marker.
type MapView struct {
	Center Coordinates
	Zoom   int
	Marker *Marker
}

// DefaultMapView is the framing used when no deep link is given.
func DefaultMapView() MapView {
	return MapView{Center: defaultCenter, Zoom: defaultZoom}
}

// ParseDeepLink resolves a (latitude, longitude, display name) route triple
// into a map view centered on the point with a marker. Missing or
// unparseable coordinates fall back to the default framing.
func ParseDeepLink(lat, lng, name string) MapView {
	if lat == "" || lng == "" {
		return DefaultMapView()
	}
	latV, err1 := strconv.ParseFloat(lat, 64)
	lngV, err2 := strconv.ParseFloat(lng, 64)
	if err1 != nil || err2 != nil {
		return DefaultMapView()
	}

	center := Coordinates{Lat: latV, Lng: lngV}
	return MapView{
		Center: center,
		Zoom:   deepLinkZoom,
		Marker: &Marker{Position: center, Label: name},
	}
}

// URL renders the view as an OpenStreetMap link, including marker
// parameters when a marker is set.
func (v MapView) URL() string {
	base := fmt.Sprintf("https://www.openstreetmap.org/#map=%d/%.6f/%.6f", v.Zoom, v.Center.Lat, v.Center.Lng)
	if v.Marker == nil {
		return base
	}
	return fmt.Sprintf("https://www.openstreetmap.org/?mlat=%.6f&mlon=%.6f#map=%d/%.6f/%.6f",
		v.Marker.Position.Lat, v.Marker.Position.Lng, v.Zoom, v.Center.Lat, v.Center.Lng)
}
