package resolve

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPipeline(t *testing.T, opts Options) *Pipeline {
	t.Helper()
	if opts.PlaceAPIBase == "" {
		// Point the place API somewhere unroutable so accidental lookups
		// fail fast instead of hitting the real endpoint.
		opts.PlaceAPIBase = "http://127.0.0.1:0/summary"
	}
	return NewPipeline(opts)
}

func TestResolve_EmptyInput(t *testing.T) {
	p := testPipeline(t, Options{})
	_, err := p.Resolve(context.Background(), "   \n ")
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestResolve_QueryParams(t *testing.T) {
	var placeCalls atomic.Int64
	placeAPI := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		placeCalls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer placeAPI.Close()

	p := testPipeline(t, Options{PlaceAPIBase: placeAPI.URL})
	result, err := p.Resolve(context.Background(),
		"https://map.naver.com/p/entry/place/123?lat=37.5665&lng=126.9780&name=CityHall")
	require.NoError(t, err)
	require.NoError(t, result.Valid())

	assert.True(t, result.HasCoords)
	assert.Equal(t, 37.5665, result.Lat)
	assert.Equal(t, 126.978, result.Lng)
	assert.Equal(t, "CityHall", result.Name)

	// Query parameters short-circuit the chain: the place API is never hit.
	assert.Equal(t, int64(0), placeCalls.Load())
}

func TestResolve_NmapDeepLink(t *testing.T) {
	p := testPipeline(t, Options{})
	result, err := p.Resolve(context.Background(), "nmap://place?lat=37.1&lng=127.2")
	require.NoError(t, err)
	require.NoError(t, result.Valid())

	assert.Equal(t, 37.1, result.Lat)
	assert.Equal(t, 127.2, result.Lng)
	assert.Empty(t, result.Name)
}

func TestResolve_ShortLinkToEmbeddedCoords(t *testing.T) {
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer target.Close()

	short := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target.URL+"/p/@37.5,127.0,15z", http.StatusFound)
	}))
	defer short.Close()

	shortHost := mustHost(t, short.URL)
	p := testPipeline(t, Options{ShortLinkHost: shortHost})

	result, err := p.Resolve(context.Background(), short.URL+"/abc123")
	require.NoError(t, err)
	require.NoError(t, result.Valid())

	assert.Equal(t, 37.5, result.Lat)
	assert.Equal(t, 127.0, result.Lng)
}

func TestResolve_ShortLinkExpansionFailureFallsThrough(t *testing.T) {
	// Unreachable shortener: expansion fails, the raw candidate carries no
	// coordinates, so the passthrough takes over.
	p := testPipeline(t, Options{ShortLinkHost: "127.0.0.1"})
	result, err := p.Resolve(context.Background(), "http://127.0.0.1:9/abc123")
	require.NoError(t, err)
	require.NoError(t, result.Valid())

	assert.False(t, result.HasCoords)
	assert.Equal(t, "http://127.0.0.1:9/abc123", result.Query)
}

func TestResolve_KoreanAddressPassthrough(t *testing.T) {
	p := testPipeline(t, Options{})
	input := "서울특별시 중구 세종대로 110"
	result, err := p.Resolve(context.Background(), input)
	require.NoError(t, err)
	require.NoError(t, result.Valid())

	assert.False(t, result.HasCoords)
	assert.Equal(t, input, result.Query)
}

func TestResolve_PlaceAPIErrorFallsThroughToEmbedded(t *testing.T) {
	placeAPI := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer placeAPI.Close()

	p := testPipeline(t, Options{PlaceAPIBase: placeAPI.URL})
	result, err := p.Resolve(context.Background(),
		"https://map.naver.com/p/entry/place/999?c=@35.1,129.0")
	require.NoError(t, err)
	require.NoError(t, result.Valid())

	assert.Equal(t, 35.1, result.Lat)
	assert.Equal(t, 129.0, result.Lng)
}

func TestResolve_AlwaysSatisfiesInvariant(t *testing.T) {
	p := testPipeline(t, Options{})
	inputs := []string{
		"hello world",
		"https://map.naver.com/p/entry?lat=1&lng=2",
		"https://map.naver.com/p/@3.3,4.4",
		"nmap://route?slat=1&slng=2",
		"%EC%84%9C%EC%9A%B8",
	}
	for _, input := range inputs {
		result, err := p.Resolve(context.Background(), input)
		require.NoError(t, err, "input %q", input)
		assert.NoError(t, result.Valid(), "input %q", input)
	}
}

func mustHost(t *testing.T, rawURL string) string {
	t.Helper()
	u, err := url.Parse(rawURL)
	require.NoError(t, err)
	return u.Hostname()
}
