package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jonathan/naver2maps/internal/links"
	"github.com/jonathan/naver2maps/internal/normalize"
	"github.com/jonathan/naver2maps/internal/resolve"
)

// ConvertResponse represents the response for /convert. Lat/Lng are null
// when the input degraded to a text search; Name then carries the search
// text.
type ConvertResponse struct {
	Lat       *float64 `json:"lat"`
	Lng       *float64 `json:"lng"`
	Name      string   `json:"name"`
	GoogleURL string   `json:"google_url"`
	AppleURL  string   `json:"apple_url"`
}

// handleConvert resolves a Naver link or address into destination URLs.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSpace(r.URL.Query().Get("url"))
	if raw == "" {
		s.errorResponse(w, http.StatusBadRequest, "missing url parameter")
		return
	}

	result, err := s.resolveInput(r, raw)
	if err != nil {
		if errors.Is(err, resolve.ErrEmptyInput) {
			s.errorResponse(w, http.StatusBadRequest, "empty input")
			return
		}
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}

	destinations := links.Build(result)
	resp := ConvertResponse{
		Name:      result.Name,
		GoogleURL: destinations.GoogleURL,
		AppleURL:  destinations.AppleURL,
	}
	if result.HasCoords {
		resp.Lat = &result.Lat
		resp.Lng = &result.Lng
	} else {
		resp.Name = result.Query
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleGo resolves the input and redirects straight to the chosen map
// provider (google by default).
func (s *Server) handleGo(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSpace(r.URL.Query().Get("url"))
	if raw == "" {
		s.errorResponse(w, http.StatusBadRequest, "missing url parameter")
		return
	}

	target := r.URL.Query().Get("target")
	if target != "" && target != "google" && target != "apple" {
		s.errorResponse(w, http.StatusBadRequest, "target must be google or apple")
		return
	}

	result, err := s.resolveInput(r, raw)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}

	destinations := links.Build(result)
	destination := destinations.GoogleURL
	if target == "apple" {
		destination = destinations.AppleURL
	}
	http.Redirect(w, r, destination, http.StatusFound)
}

func (s *Server) resolveInput(r *http.Request, raw string) (*resolve.Result, error) {
	candidate := normalize.Extract(raw)
	return s.pipeline.Resolve(r.Context(), candidate)
}
