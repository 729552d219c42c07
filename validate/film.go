package validate

import (
	"errors"
	"fmt"
	"time"

	"film_library/config"
	"film_library/constants"
	"film_library/model"
	"film_library/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateFilm validates the submitted film before the handler runs. The
// access code is compared by exact string equality and a mismatch is a 403,
// distinct from the 401 the auth middleware produces.
func CreateFilm(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateFilmInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if input.Code != cfg.ValidCode {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.INVALID_ACCESS_CODE, errors.New("access code mismatch"))
		}

		currentYear := time.Now().Year()
		if input.Year < constants.MIN_FILM_YEAR_CREATE || input.Year > currentYear {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT,
				fmt.Errorf("year must be between %d and %d", constants.MIN_FILM_YEAR_CREATE, currentYear))
		}

		if len(input.GenreIds) > 0 {
			var count int64
			if err := db.Model(&model.Genre{}).Where("id IN ?", input.GenreIds).Count(&count).Error; err != nil {
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
			}
			if count != int64(len(input.GenreIds)) {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("one or more genres do not exist"))
			}
		}
		if len(input.CountryIds) > 0 {
			var count int64
			if err := db.Model(&model.Country{}).Where("id IN ?", input.CountryIds).Count(&count).Error; err != nil {
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
			}
			if count != int64(len(input.CountryIds)) {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("one or more countries do not exist"))
			}
		}

		c.Locals("inputCreateFilm", input)
		return c.Next()
	}
}
