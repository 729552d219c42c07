package handler

import (
	"film_library/constants"
	"film_library/helper"
	"film_library/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type StatisticHandler struct {
	DB *gorm.DB
}

func NewStatisticHandler(db *gorm.DB) *StatisticHandler {
	return &StatisticHandler{DB: db}
}

func (h *StatisticHandler) GetStatistics(c *fiber.Ctx) error {
	stats, err := helper.Statistics(h.DB)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}
