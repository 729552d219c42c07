package handler

import (
	"errors"

	"film_library/config"
	"film_library/constants"
	"film_library/helper"
	"film_library/model"
	"film_library/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type FilmHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewFilmHandler(db *gorm.DB, cfg *config.Config) *FilmHandler {
	return &FilmHandler{DB: db, Cfg: cfg}
}

func filmListResponse(c *fiber.Ctx, rows any, total int64, page, pageSize int) error {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = constants.DEFAULT_PAGE_SIZE
	}
	return utils.SuccessResponse(c, fiber.StatusOK, &model.FilmList{
		Rows:       rows,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
		TotalPages: utils.TotalPages(total, pageSize),
	})
}

func (h *FilmHandler) GetFilms(c *fiber.Ctx) error {
	paging := new(model.Pagination)
	if err := c.QueryParser(paging); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	films, total, err := helper.ListFilms(h.DB, paging.Page, paging.PageSize)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return filmListResponse(c, model.NewFilmResponses(films), total, paging.Page, paging.PageSize)
}

func (h *FilmHandler) SearchFilms(c *fiber.Ctx) error {
	paging := new(model.Pagination)
	if err := c.QueryParser(paging); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	films, total, err := helper.SearchFilms(h.DB, c.Query("q"), paging.Page, paging.PageSize)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	results := make([]model.FilmSearchResult, 0, len(films))
	for _, film := range films {
		results = append(results, model.FilmSearchResult{
			ID:     film.ID,
			Title:  film.Title,
			Year:   film.Year,
			Rating: film.Rating,
		})
	}
	return filmListResponse(c, results, total, paging.Page, paging.PageSize)
}

func (h *FilmHandler) GetFilmById(c *fiber.Ctx) error {
	filmId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	film, err := helper.GetFilm(h.DB, filmId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if film == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.FILM_NOT_FOUND, errors.New("unknown film id"))
	}

	resp, err := model.NewFilmResponse(film)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, resp)
}

func (h *FilmHandler) CreateFilm(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateFilm").(model.CreateFilmInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	film, err := helper.CreateFilm(h.DB, input)
	if err != nil {
		// store detail stays internal
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CREATE_FILM_FAILED, nil)
	}

	utils.SendNewFilmEmail(h.Cfg, film.Title)

	resp, err := model.NewFilmResponse(film)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, resp)
}

func (h *FilmHandler) DeleteFilm(c *fiber.Ctx) error {
	filmId, ok := c.Locals("inputId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	found, err := helper.DeleteFilm(h.DB, filmId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if !found {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.FILM_NOT_FOUND, errors.New("unknown film id"))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"id": filmId})
}
