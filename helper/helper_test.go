package helper

import (
	"fmt"
	"testing"

	"film_library/database"
	"film_library/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens a named in-memory database so every test gets its own
// store while gorm's pooled connections still see the same data.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func seedTags(t *testing.T, db *gorm.DB) (model.Genre, model.Country) {
	t.Helper()
	genre := model.Genre{Name: "Sci-Fi"}
	if err := db.Create(&genre).Error; err != nil {
		t.Fatalf("seed genre: %v", err)
	}
	country := model.Country{Name: "USA"}
	if err := db.Create(&country).Error; err != nil {
		t.Fatalf("seed country: %v", err)
	}
	return genre, country
}

func mustCreateFilm(t *testing.T, db *gorm.DB, input model.CreateFilmInput) *model.Film {
	t.Helper()
	film, err := CreateFilm(db, input)
	if err != nil {
		t.Fatalf("create film %q: %v", input.Title, err)
	}
	return film
}
