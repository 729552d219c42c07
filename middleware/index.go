package middleware

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

// OptionalAuth resolves the request's token into a user when possible and
// continues as guest otherwise. It never fails the request.
func OptionalAuth(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if user := helper.ResolveUser(c, db, cfg); user != nil {
			c.Locals("user", user)
		}
		return c.Next()
	}
}

// Protected is the same resolution with absence turned into a 401.
func Protected(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := helper.ResolveUser(c, db, cfg)
		if user == nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, errors.New("missing or invalid token"))
		}
		c.Locals("user", user)
		return c.Next()
	}
}

// CurrentUser reads the user a middleware stored, nil for guests.
func CurrentUser(c *fiber.Ctx) *model.User {
	user, _ := c.Locals("user").(*model.User)
	return user
}
