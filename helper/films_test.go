package helper

import (
	"fmt"
	"testing"

	"film_library/constants"
	"film_library/model"

	"gorm.io/gorm"
)

func filmInput(title string, year int, rating float64, genre model.Genre, country model.Country) model.CreateFilmInput {
	return model.CreateFilmInput{
		Title:      title,
		Type:       constants.MEDIA_TYPE_MOVIE,
		Year:       year,
		Rating:     rating,
		Code:       "1111",
		GenreIds:   []uint{genre.ID},
		CountryIds: []uint{country.ID},
	}
}

func countRows(t *testing.T, db *gorm.DB, value any) int64 {
	t.Helper()
	var count int64
	if err := db.Model(value).Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return count
}

func TestCreateFilm(t *testing.T) {
	db := testDB(t)
	genre, country := seedTags(t, db)

	input := filmInput("Dune", 2021, 8.0, genre, country)
	input.Description = "Spice and sandworms."
	film := mustCreateFilm(t, db, input)

	if film.Title != "Dune" {
		t.Errorf("title = %q", film.Title)
	}
	if film.Slug != "dune" {
		t.Errorf("slug = %q", film.Slug)
	}
	if film.Description == nil || *film.Description != "Spice and sandworms." {
		t.Errorf("description = %v", film.Description)
	}
	if len(film.Genres) != 1 || film.Genres[0].Genre.Name != "Sci-Fi" {
		t.Errorf("genres not loaded: %+v", film.Genres)
	}
	if len(film.Countries) != 1 || film.Countries[0].Country.Name != "USA" {
		t.Errorf("countries not loaded: %+v", film.Countries)
	}
	if n := countRows(t, db, &model.FilmGenre{}); n != 1 {
		t.Errorf("film_genres rows = %d, want 1", n)
	}
	if n := countRows(t, db, &model.FilmCountry{}); n != 1 {
		t.Errorf("film_countries rows = %d, want 1", n)
	}
}

func TestCreateFilmEmptyDescription(t *testing.T) {
	db := testDB(t)
	genre, country := seedTags(t, db)

	film := mustCreateFilm(t, db, filmInput("Dune", 2021, 8.0, genre, country))
	if film.Description != nil {
		t.Errorf("empty description should store NULL, got %q", *film.Description)
	}
}

func TestCreateFilmSeriesSuffix(t *testing.T) {
	db := testDB(t)
	genre, country := seedTags(t, db)

	input := filmInput("Dark", 2017, 8.7, genre, country)
	input.Type = constants.MEDIA_TYPE_SERIES
	film := mustCreateFilm(t, db, input)

	if film.Title != "Dark (Series)" {
		t.Errorf("title = %q, want %q", film.Title, "Dark (Series)")
	}
}

func TestCreateFilmTagOrder(t *testing.T) {
	db := testDB(t)
	scifi, usa := seedTags(t, db)
	drama := model.Genre{Name: "Drama"}
	if err := db.Create(&drama).Error; err != nil {
		t.Fatalf("seed genre: %v", err)
	}
	uk := model.Country{Name: "UK"}
	if err := db.Create(&uk).Error; err != nil {
		t.Fatalf("seed country: %v", err)
	}

	// Tags submitted in descending id order must read back in that order.
	input := filmInput("Dune", 2021, 8.0, scifi, usa)
	input.GenreIds = []uint{drama.ID, scifi.ID}
	input.CountryIds = []uint{uk.ID, usa.ID}
	created := mustCreateFilm(t, db, input)

	film, err := GetFilm(db, created.ID)
	if err != nil {
		t.Fatalf("GetFilm: %v", err)
	}
	if len(film.Genres) != 2 || film.Genres[0].Genre.Name != "Drama" || film.Genres[1].Genre.Name != "Sci-Fi" {
		t.Errorf("genre order = %+v, want [Drama, Sci-Fi]", film.Genres)
	}
	if len(film.Countries) != 2 || film.Countries[0].Country.Name != "UK" || film.Countries[1].Country.Name != "USA" {
		t.Errorf("country order = %+v, want [UK, USA]", film.Countries)
	}
}

func TestCreateFilmSlugCollision(t *testing.T) {
	db := testDB(t)
	genre, country := seedTags(t, db)

	first := mustCreateFilm(t, db, filmInput("Dune", 2021, 8.0, genre, country))
	second := mustCreateFilm(t, db, filmInput("Dune", 1984, 6.3, genre, country))

	if first.Slug != "dune" {
		t.Errorf("first slug = %q", first.Slug)
	}
	if second.Slug != "dune-1" {
		t.Errorf("second slug = %q, want dune-1", second.Slug)
	}
}

func TestCreateFilmRollsBackOnJoinFailure(t *testing.T) {
	db := testDB(t)
	genre, country := seedTags(t, db)

	// A duplicate genre id violates the join table's composite primary key
	// on the second insert, after the film row is already in the tx.
	input := filmInput("Dune", 2021, 8.0, genre, country)
	input.GenreIds = []uint{genre.ID, genre.ID}

	if _, err := CreateFilm(db, input); err == nil {
		t.Fatal("expected create to fail on duplicate join row")
	}
	if n := countRows(t, db, &model.Film{}); n != 0 {
		t.Errorf("films rows after rollback = %d, want 0", n)
	}
	if n := countRows(t, db, &model.FilmGenre{}); n != 0 {
		t.Errorf("film_genres rows after rollback = %d, want 0", n)
	}
	if n := countRows(t, db, &model.FilmCountry{}); n != 0 {
		t.Errorf("film_countries rows after rollback = %d, want 0", n)
	}
}

func TestSearchFilmsShortQuery(t *testing.T) {
	db := testDB(t)
	genre, country := seedTags(t, db)
	mustCreateFilm(t, db, filmInput("It", 2017, 7.3, genre, country))

	for _, q := range []string{"", "it", "ab"} {
		films, total, err := SearchFilms(db, q, 1, 5)
		if err != nil {
			t.Fatalf("SearchFilms(%q): %v", q, err)
		}
		if len(films) != 0 || total != 0 {
			t.Errorf("SearchFilms(%q) = %d rows, total %d; want empty", q, len(films), total)
		}
	}
}

func TestSearchFilmsWhitespaceCounts(t *testing.T) {
	db := testDB(t)
	genre, country := seedTags(t, db)
	mustCreateFilm(t, db, filmInput("The It", 2017, 7.3, genre, country))

	// " it" is three characters, so it reaches the store and the leading
	// space matches literally.
	films, total, err := SearchFilms(db, " it", 1, 5)
	if err != nil {
		t.Fatalf("SearchFilms: %v", err)
	}
	if total != 1 || len(films) != 1 || films[0].Title != "The It" {
		t.Errorf("got %d rows, total %d", len(films), total)
	}

	// Padding does not rescue a short query into an empty result: it is
	// part of the pattern instead.
	films, total, err = SearchFilms(db, "  it  ", 1, 5)
	if err != nil {
		t.Fatalf("SearchFilms: %v", err)
	}
	if total != 0 || len(films) != 0 {
		t.Errorf("padded query matched %d rows, want 0", len(films))
	}
}

func TestSearchFilmsCaseInsensitive(t *testing.T) {
	db := testDB(t)
	genre, country := seedTags(t, db)
	mustCreateFilm(t, db, filmInput("Dune", 2021, 8.0, genre, country))
	mustCreateFilm(t, db, filmInput("Dune: Part Two", 2024, 8.5, genre, country))
	mustCreateFilm(t, db, filmInput("Alien", 1979, 8.5, genre, country))

	films, total, err := SearchFilms(db, "DUNE", 1, 5)
	if err != nil {
		t.Fatalf("SearchFilms: %v", err)
	}
	if total != 2 || len(films) != 2 {
		t.Fatalf("got %d rows, total %d; want 2", len(films), total)
	}
	// Matches come back best rated first.
	if films[0].Title != "Dune: Part Two" || films[1].Title != "Dune" {
		t.Errorf("order = [%q, %q]", films[0].Title, films[1].Title)
	}
}

func TestListFilmsPagination(t *testing.T) {
	db := testDB(t)
	genre, country := seedTags(t, db)
	for i := 1; i <= 7; i++ {
		mustCreateFilm(t, db, filmInput(fmt.Sprintf("Film %d", i), 2000+i, 5.0, genre, country))
	}

	films, total, err := ListFilms(db, 1, 5)
	if err != nil {
		t.Fatalf("ListFilms page 1: %v", err)
	}
	if total != 7 || len(films) != 5 {
		t.Fatalf("page 1: got %d rows, total %d", len(films), total)
	}
	// Newest first.
	if films[0].Title != "Film 7" {
		t.Errorf("first row = %q, want Film 7", films[0].Title)
	}

	films, total, err = ListFilms(db, 2, 5)
	if err != nil {
		t.Fatalf("ListFilms page 2: %v", err)
	}
	if total != 7 || len(films) != 2 {
		t.Errorf("page 2: got %d rows, total %d", len(films), total)
	}

	// A page past the end is empty but keeps the exact total.
	films, total, err = ListFilms(db, 3, 5)
	if err != nil {
		t.Fatalf("ListFilms page 3: %v", err)
	}
	if total != 7 || len(films) != 0 {
		t.Errorf("page 3: got %d rows, total %d", len(films), total)
	}
}

func TestLatestFilms(t *testing.T) {
	db := testDB(t)
	genre, country := seedTags(t, db)
	for i := 1; i <= 6; i++ {
		mustCreateFilm(t, db, filmInput(fmt.Sprintf("Film %d", i), 2000+i, 5.0, genre, country))
	}

	films, err := LatestFilms(db, 5)
	if err != nil {
		t.Fatalf("LatestFilms: %v", err)
	}
	if len(films) != 5 {
		t.Fatalf("got %d rows, want 5", len(films))
	}
	if films[0].Title != "Film 6" || films[4].Title != "Film 2" {
		t.Errorf("order = [%q .. %q]", films[0].Title, films[4].Title)
	}
}

func TestFilmsByGenre(t *testing.T) {
	db := testDB(t)
	genre, country := seedTags(t, db)
	other := model.Genre{Name: "Drama"}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("seed genre: %v", err)
	}

	mustCreateFilm(t, db, filmInput("Dune", 2021, 8.0, genre, country))
	dramaInput := filmInput("Her", 2013, 8.0, other, country)
	mustCreateFilm(t, db, dramaInput)

	films, total, err := FilmsByGenre(db, "Sci-Fi", 1, 5)
	if err != nil {
		t.Fatalf("FilmsByGenre: %v", err)
	}
	if total != 1 || len(films) != 1 || films[0].Title != "Dune" {
		t.Errorf("got %d rows, total %d", len(films), total)
	}

	films, total, err = FilmsByGenre(db, "Western", 1, 5)
	if err != nil {
		t.Fatalf("FilmsByGenre unknown: %v", err)
	}
	if total != 0 || len(films) != 0 {
		t.Errorf("unknown genre must match nothing, got %d rows", len(films))
	}
}

func TestFilmsByCountry(t *testing.T) {
	db := testDB(t)
	genre, country := seedTags(t, db)
	mustCreateFilm(t, db, filmInput("Dune", 2021, 8.0, genre, country))

	films, total, err := FilmsByCountry(db, "USA", 1, 5)
	if err != nil {
		t.Fatalf("FilmsByCountry: %v", err)
	}
	if total != 1 || len(films) != 1 {
		t.Errorf("got %d rows, total %d", len(films), total)
	}

	films, total, err = FilmsByCountry(db, "France", 1, 5)
	if err != nil {
		t.Fatalf("FilmsByCountry unknown: %v", err)
	}
	if total != 0 || len(films) != 0 {
		t.Errorf("unknown country must match nothing, got %d rows", len(films))
	}
}

func TestFilmsByYearAndType(t *testing.T) {
	db := testDB(t)
	genre, country := seedTags(t, db)
	mustCreateFilm(t, db, filmInput("Dune", 2021, 8.0, genre, country))
	seriesInput := filmInput("Foundation", 2021, 7.4, genre, country)
	seriesInput.Type = constants.MEDIA_TYPE_SERIES
	mustCreateFilm(t, db, seriesInput)

	films, total, err := FilmsByYear(db, 2021, 1, 5)
	if err != nil {
		t.Fatalf("FilmsByYear: %v", err)
	}
	if total != 2 || len(films) != 2 {
		t.Errorf("by year: got %d rows, total %d", len(films), total)
	}

	films, total, err = FilmsByType(db, constants.MEDIA_TYPE_SERIES, 1, 5)
	if err != nil {
		t.Fatalf("FilmsByType: %v", err)
	}
	if total != 1 || len(films) != 1 || films[0].Title != "Foundation (Series)" {
		t.Errorf("by type: got %d rows, total %d", len(films), total)
	}
}

func TestGetFilmUnknown(t *testing.T) {
	db := testDB(t)

	film, err := GetFilm(db, 42)
	if err != nil {
		t.Fatalf("GetFilm: %v", err)
	}
	if film != nil {
		t.Errorf("expected nil film, got %+v", film)
	}

	film, err = GetFilmBySlug(db, "nope")
	if err != nil {
		t.Fatalf("GetFilmBySlug: %v", err)
	}
	if film != nil {
		t.Errorf("expected nil film, got %+v", film)
	}
}

func TestGetFilmBySlug(t *testing.T) {
	db := testDB(t)
	genre, country := seedTags(t, db)
	created := mustCreateFilm(t, db, filmInput("Dune", 2021, 8.0, genre, country))

	film, err := GetFilmBySlug(db, "dune")
	if err != nil {
		t.Fatalf("GetFilmBySlug: %v", err)
	}
	if film == nil || film.ID != created.ID {
		t.Fatalf("wrong film: %+v", film)
	}
	if len(film.Genres) != 1 || len(film.Countries) != 1 {
		t.Errorf("tags not loaded: %+v", film)
	}
}

func TestDeleteFilm(t *testing.T) {
	db := testDB(t)
	genre, country := seedTags(t, db)
	film := mustCreateFilm(t, db, filmInput("Dune", 2021, 8.0, genre, country))

	found, err := DeleteFilm(db, film.ID)
	if err != nil {
		t.Fatalf("DeleteFilm: %v", err)
	}
	if !found {
		t.Fatal("expected found = true")
	}
	if n := countRows(t, db, &model.Film{}); n != 0 {
		t.Errorf("films rows = %d, want 0", n)
	}
	if n := countRows(t, db, &model.FilmGenre{}); n != 0 {
		t.Errorf("film_genres rows = %d, want 0", n)
	}
	if n := countRows(t, db, &model.FilmCountry{}); n != 0 {
		t.Errorf("film_countries rows = %d, want 0", n)
	}

	found, err = DeleteFilm(db, film.ID)
	if err != nil {
		t.Fatalf("DeleteFilm unknown: %v", err)
	}
	if found {
		t.Error("deleting an unknown id must report found = false")
	}
}

func TestStatistics(t *testing.T) {
	db := testDB(t)

	stats, err := Statistics(db)
	if err != nil {
		t.Fatalf("Statistics empty: %v", err)
	}
	if stats.TotalFilms != 0 || stats.AverageRating != 0 {
		t.Errorf("empty catalog: %+v", stats)
	}

	genre, country := seedTags(t, db)
	mustCreateFilm(t, db, filmInput("A", 2001, 8.0, genre, country))
	mustCreateFilm(t, db, filmInput("B", 2002, 7.0, genre, country))
	mustCreateFilm(t, db, filmInput("C", 2003, 6.5, genre, country))

	stats, err = Statistics(db)
	if err != nil {
		t.Fatalf("Statistics: %v", err)
	}
	if stats.TotalFilms != 3 {
		t.Errorf("total = %d, want 3", stats.TotalFilms)
	}
	// (8.0 + 7.0 + 6.5) / 3 rounded to two decimals.
	if stats.AverageRating != 7.17 {
		t.Errorf("average = %v, want 7.17", stats.AverageRating)
	}
}

func TestTagLists(t *testing.T) {
	db := testDB(t)
	seedTags(t, db)
	if err := db.Create(&model.Genre{Name: "Drama"}).Error; err != nil {
		t.Fatalf("seed genre: %v", err)
	}

	names, err := GenreNames(db)
	if err != nil {
		t.Fatalf("GenreNames: %v", err)
	}
	if len(names) != 2 || names[0] != "Sci-Fi" || names[1] != "Drama" {
		t.Errorf("genre names = %v", names)
	}

	countries, err := CountryNames(db)
	if err != nil {
		t.Fatalf("CountryNames: %v", err)
	}
	if len(countries) != 1 || countries[0] != "USA" {
		t.Errorf("country names = %v", countries)
	}

	genres, err := AllGenres(db)
	if err != nil {
		t.Fatalf("AllGenres: %v", err)
	}
	if len(genres) != 2 {
		t.Errorf("AllGenres = %+v", genres)
	}
}
