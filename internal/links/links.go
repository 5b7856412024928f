// Package links renders destination map URLs from a resolution result.
package links

import (
	"net/url"
	"strconv"

	"github.com/jonathan/naver2maps/internal/resolve"
)

// Links holds the ready-to-open destination URLs. Built once per result;
// building is deterministic, so identical results yield identical links.
type Links struct {
	GoogleURL string `json:"google_url"`
	AppleURL  string `json:"apple_url"`
}

// Build renders Google and Apple Maps URLs for a result. Coordinates become
// pin links; a query-only result becomes a text search on both providers.
// Never fails.
func Build(result *resolve.Result) Links {
	if !result.HasCoords {
		query := url.QueryEscape(result.Query)
		return Links{
			GoogleURL: "https://www.google.com/maps?q=" + query,
			AppleURL:  "https://maps.apple.com/?q=" + query,
		}
	}

	// Coordinates only contain digits, dots, minus signs and a comma; they
	// need no escaping and stay readable in the rendered URL.
	coords := formatCoord(result.Lat) + "," + formatCoord(result.Lng)
	label := coords
	if result.Name != "" {
		label = url.QueryEscape(result.Name)
	}
	return Links{
		GoogleURL: "https://www.google.com/maps?q=" + coords,
		AppleURL:  "https://maps.apple.com/?ll=" + coords + "&q=" + label,
	}
}

// formatCoord renders a coordinate with the shortest representation that
// round-trips, independent of locale.
func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
