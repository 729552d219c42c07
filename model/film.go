package model

type Film struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"not null;index" validate:"required" json:"title"`
	Type        string  `gorm:"not null;default:movie" validate:"required,oneof=movie series" json:"type"`
	Year        int     `gorm:"not null" validate:"required" json:"year"`
	Description *string `gorm:"type:text" json:"description"`
	Rating      float64 `gorm:"not null" validate:"gte=0,lte=10" json:"rating"`
	Photo       string  `json:"photo"`
	Slug        string  `gorm:"uniqueIndex" json:"slug"`

	// Tag lists live only in the join rows; the slices below are read back
	// through Preload("Genres.Genre") / Preload("Countries.Country").
	Genres    []FilmGenre   `gorm:"foreignKey:FilmId" json:"genres"`
	Countries []FilmCountry `gorm:"foreignKey:FilmId" json:"countries"`
}

type Genre struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null;uniqueIndex" validate:"required" json:"name"`
}

type Country struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null;uniqueIndex" validate:"required" json:"name"`
}

// Position records the order the tag was submitted in; tag lists always
// read back in that order, not in id order.
type FilmGenre struct {
	FilmId   uint  `gorm:"primaryKey" json:"filmId"`
	GenreId  uint  `gorm:"primaryKey" json:"genreId"`
	Position int   `gorm:"not null" json:"-"`
	Genre    Genre `gorm:"foreignKey:GenreId" json:"genre"`
}

type FilmCountry struct {
	FilmId    uint    `gorm:"primaryKey" json:"filmId"`
	CountryId uint    `gorm:"primaryKey" json:"countryId"`
	Position  int     `gorm:"not null" json:"-"`
	Country   Country `gorm:"foreignKey:CountryId" json:"country"`
}

type CreateFilmInput struct {
	Title       string  `json:"title" form:"title" validate:"required,min=1"`
	Type        string  `json:"type" form:"type" validate:"required,oneof=movie series"`
	Year        int     `json:"year" form:"year" validate:"required"`
	Rating      float64 `json:"rating" form:"rating" validate:"gte=0,lte=10"`
	Description string  `json:"description" form:"description"`
	Photo       string  `json:"photo" form:"photo"`
	Code        string  `json:"code" form:"code" validate:"required"`
	GenreIds    []uint  `json:"genreIds" form:"genres"`
	CountryIds  []uint  `json:"countryIds" form:"countries"`
}

type CatalogStats struct {
	TotalFilms    int64   `json:"totalFilms"`
	AverageRating float64 `json:"averageRating"`
}
