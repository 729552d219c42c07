package handler

import (
	"errors"
	"time"

	"film_library/config"
	"film_library/constants"
	"film_library/helper"
	"film_library/middleware"
	"film_library/model"
	"film_library/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type AuthHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{DB: db, Cfg: cfg}
}

func (h *AuthHandler) setAccessCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		MaxAge:   h.Cfg.AccessTokenExpireMinutes * 60,
		HTTPOnly: true,
		SameSite: "Lax",
		Secure:   false,
		Path:     "/",
	})
}

func (h *AuthHandler) clearAccessCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}

func userResponse(user *model.User) *model.UserResponse {
	resp := new(model.UserResponse)
	copier.Copy(resp, user)
	return resp
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	input, ok := c.Locals("inputRegister").(model.RegisterInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	user, err := helper.RegisterUser(h.DB, input.Email, input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	token, err := helper.GenerateAccessToken(h.Cfg, user.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	h.setAccessCookie(c, token)

	return utils.SuccessResponse(c, fiber.StatusCreated, userResponse(user))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
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

	token, err := helper.GenerateAccessToken(h.Cfg, user.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	h.setAccessCookie(c, token)

	return utils.SuccessResponse(c, fiber.StatusOK, userResponse(user))
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.clearAccessCookie(c)
	return c.Redirect("/", fiber.StatusFound)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, errors.New("no user"))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, userResponse(user))
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
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
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "password changed"})
}
