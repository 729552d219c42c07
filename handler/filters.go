package handler

import (
	"errors"
	"strconv"

	"film_library/constants"
	"film_library/helper"
	"film_library/model"
	"film_library/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type FilterHandler struct {
	DB *gorm.DB
}

func NewFilterHandler(db *gorm.DB) *FilterHandler {
	return &FilterHandler{DB: db}
}

func (h *FilterHandler) GetGenres(c *fiber.Ctx) error {
	names, err := helper.GenreNames(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, names)
}

func (h *FilterHandler) GetCountries(c *fiber.Ctx) error {
	names, err := helper.CountryNames(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, names)
}

func (h *FilterHandler) FilmsByGenre(c *fiber.Ctx) error {
	paging := new(model.Pagination)
	if err := c.QueryParser(paging); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	// unknown genre simply matches nothing
	films, total, err := helper.FilmsByGenre(h.DB, c.Params("name"), paging.Page, paging.PageSize)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return filmListResponse(c, model.NewFilmResponses(films), total, paging.Page, paging.PageSize)
}

func (h *FilterHandler) FilmsByCountry(c *fiber.Ctx) error {
	paging := new(model.Pagination)
	if err := c.QueryParser(paging); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	films, total, err := helper.FilmsByCountry(h.DB, c.Params("name"), paging.Page, paging.PageSize)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return filmListResponse(c, model.NewFilmResponses(films), total, paging.Page, paging.PageSize)
}

func (h *FilterHandler) FilmsByYear(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	paging := new(model.Pagination)
	if err := c.QueryParser(paging); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	films, total, err := helper.FilmsByYear(h.DB, year, paging.Page, paging.PageSize)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return filmListResponse(c, model.NewFilmResponses(films), total, paging.Page, paging.PageSize)
}

func (h *FilterHandler) FilmsByType(c *fiber.Ctx) error {
	mediaType := c.Params("type")
	if mediaType != constants.MEDIA_TYPE_MOVIE && mediaType != constants.MEDIA_TYPE_SERIES {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_MEDIA_TYPE, errors.New("type must be movie or series"))
	}

	paging := new(model.Pagination)
	if err := c.QueryParser(paging); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	films, total, err := helper.FilmsByType(h.DB, mediaType, paging.Page, paging.PageSize)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return filmListResponse(c, model.NewFilmResponses(films), total, paging.Page, paging.PageSize)
}
