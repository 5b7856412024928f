package resolve

import (
	"context"
	"regexp"
	"strconv"
)

// Map deep links often encode a center point as @lat,lng in the path.
var atPattern = regexp.MustCompile(`@(-?\d+(?:\.\d+)?),(-?\d+(?:\.\d+)?)`)

// embeddedCoords scans the URL text itself for an @lat,lng pattern.
// No network, no name.
type embeddedCoords struct{}

func (s *embeddedCoords) Name() string { return "embedded-coords" }

func (s *embeddedCoords) Resolve(_ context.Context, c Candidate) (*Result, error) {
	m := atPattern.FindStringSubmatch(c.URL)
	if m == nil {
		return nil, nil
	}
	lat, err1 := strconv.ParseFloat(m[1], 64)
	lng, err2 := strconv.ParseFloat(m[2], 64)
	if err1 != nil || err2 != nil {
		return nil, nil
	}
	return CoordsResult(lat, lng, ""), nil
}
