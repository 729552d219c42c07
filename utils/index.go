package utils

import (
	"math"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	} else {
		errMsg = nil
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   errMsg,
	})
}

func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

// ApplyPagination clamps page to >= 1 and applies limit/offset. pageSize
// must be positive; callers are expected to have defaulted it already.
func ApplyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	if page < 1 {
		page = 1
	}
	return query.Limit(pageSize).Offset(pageSize * (page - 1))
}

// TotalPages is an exact ceil(total / pageSize).
func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

func Round2(val float64) float64 {
	return math.Round(val*100) / 100
}

func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
