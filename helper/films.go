package helper

import (
	"errors"
	"strings"
	"unicode/utf8"

	"film_library/constants"
	"film_library/model"
	"film_library/utils"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// filmPreloads attaches both tag relations so no listing or detail fetch
// ever needs a per-row follow-up query. Join rows come back in the order
// they were submitted at creation, not in tag-id order.
func filmPreloads(query *gorm.DB) *gorm.DB {
	byPosition := func(tx *gorm.DB) *gorm.DB {
		return tx.Order("position ASC")
	}
	return query.
		Preload("Genres", byPosition).
		Preload("Genres.Genre").
		Preload("Countries", byPosition).
		Preload("Countries.Country")
}

func normalizePaging(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = constants.DEFAULT_PAGE_SIZE
	}
	return page, pageSize
}

// findPage counts the full match independently of the limited page, so
// total pages stay exact even when the requested page is out of range.
func findPage(condition *gorm.DB, order string, page, pageSize int) ([]model.Film, int64, error) {
	var total int64
	if err := condition.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var films []model.Film
	err := filmPreloads(utils.ApplyPagination(condition, page, pageSize)).
		Order(order).
		Find(&films).Error
	return films, total, err
}

func ListFilms(db *gorm.DB, page, pageSize int) ([]model.Film, int64, error) {
	page, pageSize = normalizePaging(page, pageSize)
	condition := db.Model(&model.Film{})
	return findPage(condition, "id DESC", page, pageSize)
}

// LatestFilms returns the n newest films, used by the home page.
func LatestFilms(db *gorm.DB, n int) ([]model.Film, error) {
	var films []model.Film
	err := filmPreloads(db).Order("id DESC").Limit(n).Find(&films).Error
	return films, err
}

// SearchFilms matches the title substring case-insensitively. Queries
// shorter than three characters return an empty result without touching
// the store. The query is used as submitted: whitespace counts toward the
// length and matches literally.
func SearchFilms(db *gorm.DB, q string, page, pageSize int) ([]model.Film, int64, error) {
	if utf8.RuneCountInString(q) < constants.MIN_SEARCH_LENGTH {
		return nil, 0, nil
	}

	page, pageSize = normalizePaging(page, pageSize)
	condition := db.Model(&model.Film{}).
		Where("LOWER(title) LIKE ?", "%"+strings.ToLower(q)+"%")
	return findPage(condition, "rating DESC", page, pageSize)
}

func FilmsByGenre(db *gorm.DB, name string, page, pageSize int) ([]model.Film, int64, error) {
	page, pageSize = normalizePaging(page, pageSize)
	condition := db.Model(&model.Film{}).
		Joins("JOIN film_genres ON film_genres.film_id = films.id").
		Joins("JOIN genres ON genres.id = film_genres.genre_id").
		Where("genres.name = ?", name)
	return findPage(condition, "rating DESC", page, pageSize)
}

func FilmsByCountry(db *gorm.DB, name string, page, pageSize int) ([]model.Film, int64, error) {
	page, pageSize = normalizePaging(page, pageSize)
	condition := db.Model(&model.Film{}).
		Joins("JOIN film_countries ON film_countries.film_id = films.id").
		Joins("JOIN countries ON countries.id = film_countries.country_id").
		Where("countries.name = ?", name)
	return findPage(condition, "rating DESC", page, pageSize)
}

func FilmsByYear(db *gorm.DB, year int, page, pageSize int) ([]model.Film, int64, error) {
	page, pageSize = normalizePaging(page, pageSize)
	condition := db.Model(&model.Film{}).Where("year = ?", year)
	return findPage(condition, "rating DESC", page, pageSize)
}

func FilmsByType(db *gorm.DB, mediaType string, page, pageSize int) ([]model.Film, int64, error) {
	page, pageSize = normalizePaging(page, pageSize)
	condition := db.Model(&model.Film{}).Where("type = ?", mediaType)
	return findPage(condition, "rating DESC", page, pageSize)
}

// GetFilm returns nil without error when the id is unknown; callers turn
// that into a not-found response.
func GetFilm(db *gorm.DB, id uint) (*model.Film, error) {
	var film model.Film
	if err := filmPreloads(db).First(&film, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &film, nil
}

func GetFilmBySlug(db *gorm.DB, slugValue string) (*model.Film, error) {
	var film model.Film
	if err := filmPreloads(db).Where("slug = ?", slugValue).First(&film).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &film, nil
}

// CreateFilm persists the film row and every join row as one transaction.
// Any failure rolls the whole unit back, so concurrent readers observe the
// film either fully tagged or not at all.
func CreateFilm(db *gorm.DB, input model.CreateFilmInput) (*model.Film, error) {
	film := new(model.Film)
	copier.Copy(film, &input)
	film.Title = strings.TrimSpace(input.Title)
	if input.Type == constants.MEDIA_TYPE_SERIES {
		film.Title += " (Series)"
	}
	film.Description = utils.StringPtr(input.Description)

	tx := db.Begin()
	film.Slug = GenerateUniqueFilmSlug(tx, film.Title)
	if err := tx.Create(film).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	for i, genreId := range input.GenreIds {
		if err := tx.Create(&model.FilmGenre{FilmId: film.ID, GenreId: genreId, Position: i}).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	for i, countryId := range input.CountryIds {
		if err := tx.Create(&model.FilmCountry{FilmId: film.ID, CountryId: countryId, Position: i}).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	var created model.Film
	if err := filmPreloads(db).First(&created, film.ID).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteFilm removes the join rows and the film inside one transaction.
// Returns false when the id is unknown.
func DeleteFilm(db *gorm.DB, id uint) (bool, error) {
	tx := db.Begin()
	var film model.Film
	if err := tx.First(&film, id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := tx.Where("film_id = ?", id).Delete(&model.FilmGenre{}).Error; err != nil {
		tx.Rollback()
		return false, err
	}
	if err := tx.Where("film_id = ?", id).Delete(&model.FilmCountry{}).Error; err != nil {
		tx.Rollback()
		return false, err
	}
	if err := tx.Delete(&film).Error; err != nil {
		tx.Rollback()
		return false, err
	}
	return true, tx.Commit().Error
}

// Statistics reports the catalog size and the mean rating rounded to two
// decimals; an empty catalog yields 0.0 instead of dividing by zero.
func Statistics(db *gorm.DB) (model.CatalogStats, error) {
	var stats model.CatalogStats
	if err := db.Model(&model.Film{}).Count(&stats.TotalFilms).Error; err != nil {
		return stats, err
	}
	if stats.TotalFilms == 0 {
		return stats, nil
	}

	var avg float64
	if err := db.Model(&model.Film{}).Select("COALESCE(AVG(rating), 0)").Scan(&avg).Error; err != nil {
		return stats, err
	}
	stats.AverageRating = utils.Round2(avg)
	return stats, nil
}

func AllGenres(db *gorm.DB) ([]model.Genre, error) {
	var genres []model.Genre
	err := db.Order("id ASC").Find(&genres).Error
	return genres, err
}

func AllCountries(db *gorm.DB) ([]model.Country, error) {
	var countries []model.Country
	err := db.Order("id ASC").Find(&countries).Error
	return countries, err
}

func GenreNames(db *gorm.DB) ([]string, error) {
	var names []string
	err := db.Model(&model.Genre{}).Order("id ASC").Pluck("name", &names).Error
	return names, err
}

func CountryNames(db *gorm.DB) ([]string, error) {
	var names []string
	err := db.Model(&model.Country{}).Order("id ASC").Pluck("name", &names).Error
	return names, err
}
