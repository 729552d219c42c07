package router

import (
	"film_library/config"
	"film_library/handler"
	"film_library/middleware"
	"film_library/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	film := handler.NewFilmHandler(db, cfg)
	filter := handler.NewFilterHandler(db)
	statistic := handler.NewStatisticHandler(db)
	auth := handler.NewAuthHandler(db, cfg)
	page := handler.NewPageHandler(db, cfg)

	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1")

	films := v1.Group("/films")
	films.Get("/", film.GetFilms)
	films.Get("/search", film.SearchFilms)
	films.Get("/:filmId", validate.GetById("filmId"), film.GetFilmById)
	films.Post("/", middleware.Protected(db, cfg), validate.CreateFilm(db, cfg), film.CreateFilm)
	films.Delete("/:filmId", middleware.Protected(db, cfg), validate.GetById("filmId"), film.DeleteFilm)

	filters := v1.Group("/filters")
	filters.Get("/genres", filter.GetGenres)
	filters.Get("/countries", filter.GetCountries)
	filters.Get("/genres/:name", filter.FilmsByGenre)
	filters.Get("/countries/:name", filter.FilmsByCountry)
	filters.Get("/years/:year", filter.FilmsByYear)
	filters.Get("/types/:type", filter.FilmsByType)

	v1.Get("/statistics", statistic.GetStatistics)

	authGroup := v1.Group("/auth")
	authGroup.Post("/register", validate.Register(db), auth.Register)
	authGroup.Post("/login", validate.Login(), auth.Login)
	authGroup.Get("/logout", auth.Logout)
	authGroup.Get("/me", middleware.Protected(db, cfg), auth.Me)
	authGroup.Post("/change-password", middleware.Protected(db, cfg), validate.ChangePassword(), auth.ChangePassword)

	// server-rendered pages
	optional := middleware.OptionalAuth(db, cfg)
	protected := middleware.Protected(db, cfg)

	app.Get("/", optional, page.Home)
	app.Get("/search", optional, page.Search)
	app.Get("/series", optional, page.Series)
	app.Get("/genres/:name", optional, page.ByGenre)
	app.Get("/countries/:name", optional, page.ByCountry)
	app.Get("/years/:year", optional, page.ByYear)
	app.Get("/film/:filmId", optional, validate.GetById("filmId"), page.FilmDetail)
	app.Get("/f/:slug", optional, page.FilmDetailBySlug)

	app.Get("/register", page.RegisterForm)
	app.Post("/register", validate.Register(db), page.Register)
	app.Get("/login", page.LoginForm)
	app.Post("/login", validate.Login(), page.Login)
	app.Get("/logout", auth.Logout)
	app.Get("/account", optional, page.Account)
	app.Post("/account/change_password", protected, validate.ChangePassword(), page.ChangePassword)
	app.Get("/create", protected, page.CreateForm)
	app.Post("/create", protected, validate.CreateFilm(db, cfg), page.Create)
}
