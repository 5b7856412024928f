package resolve

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/naver2maps/internal/fetch"
	"github.com/jonathan/naver2maps/internal/schemas"
)

var placeIDPattern = regexp.MustCompile(`/place/(\d+)`)

// placeLookup queries the Naver place-summary endpoint for URLs carrying a
// /place/{id} path segment. The endpoint is unauthenticated but wants
// browser-like headers.
type placeLookup struct {
	apiBase  string
	pageBase string
	opts     *fetch.Options
}

func (s *placeLookup) Name() string { return "place-lookup" }

// coordValue accepts a coordinate serialized either as a JSON number or as a
// numeric string; the summary endpoint uses both.
type coordValue float64

func (v *coordValue) UnmarshalJSON(data []byte) error {
	text := strings.Trim(string(data), `"`)
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return fmt.Errorf("invalid coordinate %q: %w", text, err)
	}
	*v = coordValue(f)
	return nil
}

type placeSummary struct {
	Data struct {
		PlaceDetail *struct {
			Name       string `json:"name"`
			Coordinate *struct {
				Latitude  *coordValue `json:"latitude"`
				Longitude *coordValue `json:"longitude"`
			} `json:"coordinate"`
		} `json:"placeDetail"`
	} `json:"data"`
}

func (s *placeLookup) Resolve(ctx context.Context, c Candidate) (*Result, error) {
	m := placeIDPattern.FindStringSubmatch(c.URL)
	if m == nil {
		return nil, nil
	}
	placeID := m[1]

	endpoint := strings.TrimRight(s.apiBase, "/") + "/" + placeID
	result, err := fetch.Get(ctx, endpoint, s.opts)
	if err != nil {
		return nil, err
	}

	// A 404 is a definitive "no such place", not an upstream failure.
	if result.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if result.StatusCode != http.StatusOK {
		return nil, &UpstreamError{
			Strategy: s.Name(),
			URL:      endpoint,
			Message:  fmt.Sprintf("HTTP status %d", result.StatusCode),
		}
	}

	if err := schemas.ValidatePlaceSummary([]byte(result.Body)); err != nil {
		return nil, &UpstreamError{
			Strategy: s.Name(),
			URL:      endpoint,
			Message:  "malformed summary payload",
			Cause:    err,
		}
	}

	var summary placeSummary
	if err := json.Unmarshal([]byte(result.Body), &summary); err != nil {
		return nil, &UpstreamError{
			Strategy: s.Name(),
			URL:      endpoint,
			Message:  "failed to decode summary payload",
			Cause:    err,
		}
	}

	detail := summary.Data.PlaceDetail
	if detail == nil || detail.Coordinate == nil ||
		detail.Coordinate.Latitude == nil || detail.Coordinate.Longitude == nil {
		// Well-formed payload without coordinates: the place is gone or
		// unlisted, fall through to the next strategy.
		return nil, nil
	}

	name := detail.Name
	if name == "" && s.pageBase != "" {
		name = s.scrapeName(ctx, placeID)
	}

	return CoordsResult(
		float64(*detail.Coordinate.Latitude),
		float64(*detail.Coordinate.Longitude),
		name,
	), nil
}

// scrapeName pulls og:title off the mobile place page when the summary has
// coordinates but no name. Best effort only.
func (s *placeLookup) scrapeName(ctx context.Context, placeID string) string {
	pageURL := strings.TrimRight(s.pageBase, "/") + "/" + placeID + "/home"
	result, err := fetch.Get(ctx, pageURL, s.opts)
	if err != nil || result.StatusCode != http.StatusOK {
		return ""
	}
	title, err := fetch.ExtractMetaContent(result.Body, "og:title")
	if err != nil {
		return ""
	}
	return title
}
