package model

import (
	"fmt"
	"time"

	"film_library/constants"
)

type GenreResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type CountryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// FilmResponse is the read-model shape consumed by both the JSON API and
// the page templates. Tag lists keep the join rows' insertion order.
type FilmResponse struct {
	ID          uint              `json:"id"`
	Title       string            `json:"title"`
	Type        string            `json:"type"`
	Year        int               `json:"year"`
	Description *string           `json:"description"`
	Rating      float64           `json:"rating"`
	Photo       string            `json:"photo"`
	Slug        string            `json:"slug"`
	Genres      []GenreResponse   `json:"genres"`
	Countries   []CountryResponse `json:"countries"`
}

type FilmSearchResult struct {
	ID     uint    `json:"id"`
	Title  string  `json:"title"`
	Year   int     `json:"year"`
	Rating float64 `json:"rating"`
}

// NewFilmResponse validates the read-model bounds while shaping the row.
// The year floor here is 1888, looser than the creation-side floor of 1895;
// both rules are intentional and enforced at their own layers.
func NewFilmResponse(f *Film) (*FilmResponse, error) {
	if f.Rating < 0 || f.Rating > 10 {
		return nil, fmt.Errorf("rating must be between 0 and 10, got %v", f.Rating)
	}
	currentYear := time.Now().Year()
	if f.Year < constants.MIN_FILM_YEAR_READ {
		return nil, fmt.Errorf("year must not be before %d, got %d", constants.MIN_FILM_YEAR_READ, f.Year)
	}
	if f.Year > currentYear {
		return nil, fmt.Errorf("year must not be after %d, got %d", currentYear, f.Year)
	}

	resp := &FilmResponse{
		ID:          f.ID,
		Title:       f.Title,
		Type:        f.Type,
		Year:        f.Year,
		Description: f.Description,
		Rating:      f.Rating,
		Photo:       f.Photo,
		Slug:        f.Slug,
		Genres:      make([]GenreResponse, 0, len(f.Genres)),
		Countries:   make([]CountryResponse, 0, len(f.Countries)),
	}
	for _, fg := range f.Genres {
		resp.Genres = append(resp.Genres, GenreResponse{ID: fg.Genre.ID, Name: fg.Genre.Name})
	}
	for _, fc := range f.Countries {
		resp.Countries = append(resp.Countries, CountryResponse{ID: fc.Country.ID, Name: fc.Country.Name})
	}
	return resp, nil
}

// NewFilmResponses drops rows that fail the read-model bounds instead of
// failing the whole listing.
func NewFilmResponses(films []Film) []FilmResponse {
	out := make([]FilmResponse, 0, len(films))
	for i := range films {
		resp, err := NewFilmResponse(&films[i])
		if err != nil {
			continue
		}
		out = append(out, *resp)
	}
	return out
}
