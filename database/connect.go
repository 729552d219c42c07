package database

import (
	"fmt"
	"log"

	"film_library/config"
	"film_library/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	log.Println("Connection Opened to Database")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	SeedData(db)
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Film{},
		&model.Genre{},
		&model.Country{},
		&model.FilmGenre{},
		&model.FilmCountry{},
	)
}
