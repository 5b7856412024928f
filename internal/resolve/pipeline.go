// Package resolve turns a candidate string (Naver map link, nmap:// deep
// link, or raw address) into coordinates via an ordered chain of strategies,
// short-circuiting on the first one that produces a result.
package resolve

import (
	"context"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/jonathan/naver2maps/internal/fetch"
)

// Strategy is one resolution attempt. A nil result with a nil error means
// "not applicable, try the next one". Errors never abort the pipeline.
type Strategy interface {
	Name() string
	Resolve(ctx context.Context, c Candidate) (*Result, error)
}

// Options configures the pipeline's upstream endpoints and HTTP behavior.
type Options struct {
	PlaceAPIBase  string // place-summary endpoint, place ID appended
	PlacePageBase string // mobile place page, used only for name enrichment
	ShortLinkHost string // host treated as a short link (naver.me)
	UserAgent     string
	Referer       string
	Timeout       time.Duration // per external request
}

func (o Options) withDefaults() Options {
	if o.PlaceAPIBase == "" {
		o.PlaceAPIBase = "https://map.naver.com/p/api/place/summary"
	}
	if o.ShortLinkHost == "" {
		o.ShortLinkHost = "naver.me"
	}
	if o.UserAgent == "" {
		o.UserAgent = fetch.DefaultUserAgent
	}
	if o.Timeout <= 0 {
		o.Timeout = fetch.DefaultTimeout
	}
	return o
}

func (o Options) fetchOptions() *fetch.Options {
	opts := fetch.DefaultOptions()
	opts.Timeout = o.Timeout
	opts.UserAgent = o.UserAgent
	if o.Referer != "" {
		opts.Headers = map[string]string{"Referer": o.Referer}
	}
	return opts
}

// Pipeline runs the resolution in two phases: expand-if-short-link, then an
// ordered strategy scan. The expansion is a separate phase rather than a
// recursive re-entry, so an expanded URL can never loop back into expansion.
type Pipeline struct {
	shortLinkHost string
	fetchOpts     *fetch.Options
	strategies    []Strategy
}

// NewPipeline builds the standard strategy chain: query parameters, place
// lookup, embedded coordinates, passthrough.
func NewPipeline(opts Options) *Pipeline {
	opts = opts.withDefaults()
	fetchOpts := opts.fetchOptions()
	return &Pipeline{
		shortLinkHost: opts.ShortLinkHost,
		fetchOpts:     fetchOpts,
		strategies: []Strategy{
			&queryParams{},
			&placeLookup{apiBase: opts.PlaceAPIBase, pageBase: opts.PlacePageBase, opts: fetchOpts},
			&embeddedCoords{},
			&passthrough{},
		},
	}
}

// Resolve runs the pipeline on one candidate. It fails only for empty input;
// every other path terminates with a usable result because the passthrough
// strategy always succeeds.
func (p *Pipeline) Resolve(ctx context.Context, input string) (*Result, error) {
	candidate := strings.TrimSpace(input)
	if candidate == "" {
		return nil, ErrEmptyInput
	}

	c := Candidate{Original: candidate, URL: candidate}

	// Phase 1: short links are opaque and must be expanded before anything
	// can be read off them. A failed expansion is logged, not fatal; the
	// remaining strategies see the unexpanded URL.
	if p.isShortLink(candidate) {
		expanded, err := fetch.Head(ctx, candidate, p.fetchOpts)
		if err != nil {
			log.Printf("[resolve] short-link expansion failed for %s: %v", candidate, err)
		} else {
			c.URL = expanded
		}
	}

	// Phase 2: ordered strategy scan, first result wins.
	for _, s := range p.strategies {
		result, err := s.Resolve(ctx, c)
		if err != nil {
			if fetch.IsTimeout(err) {
				log.Printf("[resolve] %s timed out: %v", s.Name(), err)
			} else {
				log.Printf("[resolve] %s failed: %v", s.Name(), err)
			}
			continue
		}
		if result != nil {
			return result, nil
		}
	}

	// Unreachable: passthrough never returns nil. Kept as a safety net.
	return QueryResult(c.Original), nil
}

func (p *Pipeline) isShortLink(candidate string) bool {
	u, err := url.Parse(candidate)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Hostname(), p.shortLinkHost)
}
