package database

import (
	"log"

	"film_library/model"

	"gorm.io/gorm"
)

// SeedData fills the fixed genre/country reference set. There is no create
// endpoint for tags; films only reference what is seeded here.
func SeedData(db *gorm.DB) {
	genres := []model.Genre{
		{Name: "Drama"},
		{Name: "Comedy"},
		{Name: "Action"},
		{Name: "Thriller"},
		{Name: "Horror"},
		{Name: "Sci-Fi"},
		{Name: "Fantasy"},
		{Name: "Romance"},
		{Name: "Documentary"},
		{Name: "Animation"},
	}
	for _, genre := range genres {
		if err := db.Where(model.Genre{Name: genre.Name}).FirstOrCreate(&genre).Error; err != nil {
			log.Println("failed to seed genre:", genre.Name, "error:", err)
		}
	}

	countries := []model.Country{
		{Name: "USA"},
		{Name: "UK"},
		{Name: "France"},
		{Name: "Germany"},
		{Name: "Italy"},
		{Name: "Spain"},
		{Name: "Russia"},
		{Name: "Japan"},
		{Name: "South Korea"},
		{Name: "India"},
	}
	for _, country := range countries {
		if err := db.Where(model.Country{Name: country.Name}).FirstOrCreate(&country).Error; err != nil {
			log.Println("failed to seed country:", country.Name, "error:", err)
		}
	}
}
