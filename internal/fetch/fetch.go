// Package fetch provides generic HTTP fetching for the resolver strategies.
// This package centralizes HTTP client logic used by short-link expansion
// and place lookups.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 10 * time.Second

// DefaultUserAgent mimics a desktop browser; the Naver endpoints reject
// bare clients.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// DefaultMaxRedirects caps redirect following during short-link expansion.
const DefaultMaxRedirects = 5

// Result holds the response from a fetch.
type Result struct {
	URL        string // requested URL
	FinalURL   string // URL after redirects
	Body       string
	StatusCode int
}

// Error represents an error during fetching.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// IsTimeout reports whether err was caused by a deadline, either the
// request context's or the client's own timeout.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// Options configures the fetch behavior.
type Options struct {
	Timeout      time.Duration
	UserAgent    string
	Headers      map[string]string
	MaxRedirects int
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:      DefaultTimeout,
		UserAgent:    DefaultUserAgent,
		MaxRedirects: DefaultMaxRedirects,
	}
}

func (o *Options) client() *http.Client {
	maxRedirects := o.MaxRedirects
	if maxRedirects <= 0 {
		maxRedirects = DefaultMaxRedirects
	}
	return &http.Client{
		Timeout: o.Timeout,
		CheckRedirect: func(_ *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return errors.New("too many redirects")
			}
			return nil
		},
	}
}

func (o *Options) do(ctx context.Context, method, urlStr string, readBody bool) (*Result, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, &Error{
			URL:     urlStr,
			Message: "invalid URL",
			Cause:   err,
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, urlStr, nil)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "failed to create request",
			Cause:   err,
		}
	}

	req.Header.Set("User-Agent", o.UserAgent)
	for key, value := range o.Headers {
		req.Header.Set(key, value)
	}

	resp, err := o.client().Do(req)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "HTTP request failed",
			Cause:   err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	result := &Result{
		URL:        urlStr,
		FinalURL:   urlStr,
		StatusCode: resp.StatusCode,
	}
	if resp.Request != nil && resp.Request.URL != nil {
		result.FinalURL = resp.Request.URL.String()
	}

	if readBody {
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, &Error{
				URL:     urlStr,
				Message: "failed to read response body",
				Cause:   err,
			}
		}
		result.Body = string(bodyBytes)
	}

	return result, nil
}

// Get retrieves the content at a URL. Non-2xx statuses are not treated as
// errors here; callers inspect StatusCode.
func Get(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	return opts.do(ctx, http.MethodGet, urlStr, true)
}

// Head issues a HEAD request and returns the final URL after redirects,
// without fetching a body. If the target does not redirect, the original
// URL is returned.
func Head(ctx context.Context, urlStr string, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	result, err := opts.do(ctx, http.MethodHead, urlStr, false)
	if err != nil {
		return "", err
	}
	return result.FinalURL, nil
}

// ExtractMetaContent parses HTML and returns the content attribute of the
// first <meta> tag whose property or name matches the given key
// (e.g. "og:title"). Returns "" when the tag is absent.
func ExtractMetaContent(html, key string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	selector := fmt.Sprintf(`meta[property=%q], meta[name=%q]`, key, key)
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content), nil
}
