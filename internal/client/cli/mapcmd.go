package cli

import (
	"context"
	"fmt"
	"strings"

	"worldquery/internal/client/explore"
)

// showMap resolves a map view and prints the OpenStreetMap link for it.
// With no arguments it shows the default framing; with "lat lng [name]" it
// centers on the point and drops a marker there.
func (a *App) showMap(ctx context.Context, args []string) {
	if a.requireLogin() {
		return
	}

	var view explore.MapView
	switch {
	case len(args) == 0:
		view = explore.DefaultMapView()
	case len(args) >= 2:
		view = explore.ParseDeepLink(args[0], args[1], strings.Join(args[2:], " "))
	default:
		fmt.Fprintln(a.out, "Usage: map [lat lng [name]]")
		return
	}

	if view.Marker != nil && view.Marker.Label != "" {
		fmt.Fprintf(a.out, "Map centered on %s (zoom %d):\n", view.Marker.Label, view.Zoom)
	} else {
		fmt.Fprintf(a.out, "Map view (zoom %d):\n", view.Zoom)
	}
	fmt.Fprintln(a.out, "  "+view.URL())
}
