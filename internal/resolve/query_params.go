package resolve

import (
	"context"
	"math"
	"net/url"
	"strconv"
)

// queryParams reads coordinates directly off the URL query string. This is
// the cheapest strategy: full map links and nmap:// deep links both carry
// lat/lng parameters.
type queryParams struct{}

func (s *queryParams) Name() string { return "query-params" }

func (s *queryParams) Resolve(_ context.Context, c Candidate) (*Result, error) {
	u, err := url.Parse(c.URL)
	if err != nil {
		return nil, nil
	}

	params := u.Query()
	lat, okLat := parseCoord(params.Get("lat"))
	lng, okLng := parseCoord(params.Get("lng"))
	if !okLat || !okLng {
		return nil, nil
	}

	name := params.Get("place")
	if name == "" {
		name = params.Get("name")
	}
	return CoordsResult(lat, lng, name), nil
}

// parseCoord parses a coordinate, rejecting anything non-finite.
func parseCoord(value string) (float64, bool) {
	if value == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
