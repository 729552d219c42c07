package validate

import (
	"errors"

	"film_library/constants"
	"film_library/helper"
	"film_library/model"
	"film_library/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Register rejects duplicate emails before anything is hashed or stored.
// The lookup is a case-sensitive exact match.
func Register(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RegisterInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if input.Password != input.ConfirmPassword {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.PASSWORDS_DO_NOT_MATCH, errors.New("confirmation mismatch"))
		}

		existing, err := helper.GetUserByEmail(db, input.Email)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if existing != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.EMAIL_ALREADY_EXISTS, errors.New("email taken"))
		}

		c.Locals("inputRegister", input)
		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.LoginInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
		}

		c.Locals("inputLogin", input)
		return c.Next()
	}
}

func ChangePassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ChangePasswordInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if input.NewPassword != input.ConfirmPassword {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.PASSWORDS_DO_NOT_MATCH, errors.New("confirmation mismatch"))
		}

		c.Locals("inputChangePassword", input)
		return c.Next()
	}
}
