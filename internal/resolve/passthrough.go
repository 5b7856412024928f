package resolve

import (
	"context"
	"net/url"
)

// passthrough never fails: when nothing could derive coordinates, the
// original candidate becomes a text search on the destination providers.
type passthrough struct{}

func (s *passthrough) Name() string { return "passthrough" }

func (s *passthrough) Resolve(_ context.Context, c Candidate) (*Result, error) {
	query := c.Original
	// PathUnescape decodes %-sequences without treating "+" as a space,
	// so already-readable addresses pass through untouched.
	if decoded, err := url.PathUnescape(query); err == nil {
		query = decoded
	}
	return QueryResult(query), nil
}
