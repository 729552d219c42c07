package handler

import (
	"errors"
	"strconv"

	"film_library/config"
	"film_library/constants"
	"film_library/helper"
	"film_library/middleware"
	"film_library/model"
	"film_library/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PageHandler is the server-rendered twin of the JSON API. It only shapes
// helper output into template bindings.
type PageHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewPageHandler(db *gorm.DB, cfg *config.Config) *PageHandler {
	return &PageHandler{DB: db, Cfg: cfg}
}

func (h *PageHandler) userEmail(c *fiber.Ctx) string {
	if user := middleware.CurrentUser(c); user != nil {
		return user.Email
	}
	return ""
}

func (h *PageHandler) renderFilmList(c *fiber.Ctx, films []model.Film, page, totalPages int) error {
	genres, err := helper.GenreNames(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return c.Render("index", fiber.Map{
		"Films":      model.NewFilmResponses(films),
		"Genres":     genres,
		"Page":       page,
		"TotalPages": totalPages,
		"UserEmail":  h.userEmail(c),
	})
}

func pageQuery(c *fiber.Ctx) (int, int) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.Query("page_size", strconv.Itoa(constants.DEFAULT_PAGE_SIZE)))
	if err != nil || pageSize < 1 {
		pageSize = constants.DEFAULT_PAGE_SIZE
	}
	return page, pageSize
}

// Home shows the five newest films without pagination.
func (h *PageHandler) Home(c *fiber.Ctx) error {
	films, err := helper.LatestFilms(h.DB, constants.DEFAULT_PAGE_SIZE)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return h.renderFilmList(c, films, 1, 1)
}

func (h *PageHandler) Search(c *fiber.Ctx) error {
	page, pageSize := pageQuery(c)
	films, total, err := helper.SearchFilms(h.DB, c.Query("q"), page, pageSize)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return h.renderFilmList(c, films, page, utils.TotalPages(total, pageSize))
}

func (h *PageHandler) ByGenre(c *fiber.Ctx) error {
	page, pageSize := pageQuery(c)
	films, total, err := helper.FilmsByGenre(h.DB, c.Params("name"), page, pageSize)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return h.renderFilmList(c, films, page, utils.TotalPages(total, pageSize))
}

func (h *PageHandler) ByCountry(c *fiber.Ctx) error {
	page, pageSize := pageQuery(c)
	films, total, err := helper.FilmsByCountry(h.DB, c.Params("name"), page, pageSize)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return h.renderFilmList(c, films, page, utils.TotalPages(total, pageSize))
}

func (h *PageHandler) ByYear(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}
	page, pageSize := pageQuery(c)
	films, total, err := helper.FilmsByYear(h.DB, year, page, pageSize)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return h.renderFilmList(c, films, page, utils.TotalPages(total, pageSize))
}

func (h *PageHandler) Series(c *fiber.Ctx) error {
	page, pageSize := pageQuery(c)
	films, total, err := helper.FilmsByType(h.DB, constants.MEDIA_TYPE_SERIES, page, pageSize)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return h.renderFilmList(c, films, page, utils.TotalPages(total, pageSize))
}

func (h *PageHandler) renderFilmDetail(c *fiber.Ctx, film *model.Film) error {
	if film == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.FILM_NOT_FOUND, errors.New("unknown film"))
	}
	resp, err := model.NewFilmResponse(film)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	genres, err := helper.GenreNames(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return c.Render("film_details", fiber.Map{
		"Film":      resp,
		"Genres":    genres,
		"PageTitle": resp.Title,
		"UserEmail": h.userEmail(c),
	})
}

func (h *PageHandler) FilmDetail(c *fiber.Ctx) error {
	filmId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	film, err := helper.GetFilm(h.DB, filmId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return h.renderFilmDetail(c, film)
}

func (h *PageHandler) FilmDetailBySlug(c *fiber.Ctx) error {
	film, err := helper.GetFilmBySlug(h.DB, c.Params("slug"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return h.renderFilmDetail(c, film)
}

func (h *PageHandler) LoginForm(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{"UserEmail": h.userEmail(c)})
}

func (h *PageHandler) RegisterForm(c *fiber.Ctx) error {
	return c.Render("register", fiber.Map{"UserEmail": h.userEmail(c)})
}

func (h *PageHandler) Account(c *fiber.Ctx) error {
	return c.Render("account", fiber.Map{"UserEmail": h.userEmail(c)})
}

// CreateForm needs the full tag reference set for the form's selects.
func (h *PageHandler) CreateForm(c *fiber.Ctx) error {
	genreList, err := helper.AllGenres(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	countryList, err := helper.AllCountries(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return c.Render("create", fiber.Map{
		"GenreList":   genreList,
		"CountryList": countryList,
		"UserEmail":   h.userEmail(c),
	})
}

// Form-post twins of the JSON handlers: same validate middlewares run
// before them, they just redirect instead of returning JSON.

func (h *PageHandler) Register(c *fiber.Ctx) error {
	input, ok := c.Locals("inputRegister").(model.RegisterInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	user, err := helper.RegisterUser(h.DB, input.Email, input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return h.issueCookieAndRedirect(c, user.Email)
}

func (h *PageHandler) Login(c *fiber.Ctx) error {
	input, ok := c.Locals("inputLogin").(model.LoginInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	user, err := helper.AuthenticateUser(h.DB, input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, helper.ErrEmailNotFound):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_EMAIL, err)
		case errors.Is(err, helper.ErrWrongPassword):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_PASSWORD, err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}
	return h.issueCookieAndRedirect(c, user.Email)
}

func (h *PageHandler) issueCookieAndRedirect(c *fiber.Ctx, email string) error {
	token, err := helper.GenerateAccessToken(h.Cfg, email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		MaxAge:   h.Cfg.AccessTokenExpireMinutes * 60,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
	return c.Redirect("/", fiber.StatusFound)
}

func (h *PageHandler) ChangePassword(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, errors.New("no user"))
	}
	input, ok := c.Locals("inputChangePassword").(model.ChangePasswordInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	if err := helper.ChangePassword(h.DB, user, input.OldPassword, input.NewPassword); err != nil {
		if errors.Is(err, helper.ErrWrongPassword) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_OLD_PASSWORD, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return c.Render("account", fiber.Map{
		"UserEmail": user.Email,
		"Message":   "Password changed",
	})
}

func (h *PageHandler) Create(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateFilm").(model.CreateFilmInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	film, err := helper.CreateFilm(h.DB, input)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CREATE_FILM_FAILED, nil)
	}
	utils.SendNewFilmEmail(h.Cfg, film.Title)
	return c.Redirect("/", fiber.StatusFound)
}
