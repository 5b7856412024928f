package resolve

import "fmt"

// Candidate is the input to the resolver strategies: the string extracted
// from shared text, plus the URL it expanded to when it was a short link.
// The two are equal when no expansion happened.
type Candidate struct {
	Original string
	URL      string
}

// Result is the outcome of a resolution. Either both coordinates are set
// (HasCoords true, Name optional) or Query carries the text to hand to the
// destination providers as a search, never both.
type Result struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Name      string  `json:"name,omitempty"`
	Query     string  `json:"query,omitempty"`
	HasCoords bool    `json:"-"`
}

// CoordsResult builds a coordinate result.
func CoordsResult(lat, lng float64, name string) *Result {
	return &Result{Lat: lat, Lng: lng, Name: name, HasCoords: true}
}

// QueryResult builds a text-search fallback result.
func QueryResult(query string) *Result {
	return &Result{Query: query}
}

// Valid reports whether the result satisfies the coordinates-xor-query
// invariant.
func (r *Result) Valid() error {
	if r.HasCoords && r.Query != "" {
		return fmt.Errorf("result has both coordinates and query text")
	}
	if !r.HasCoords && r.Query == "" {
		return fmt.Errorf("result has neither coordinates nor query text")
	}
	return nil
}
