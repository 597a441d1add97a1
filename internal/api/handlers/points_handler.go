package handlers

import (
	"Privilege-Backend/domain"
	"Privilege-Backend/internal/api/presenters"
	"Privilege-Backend/pkg/points"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type (
	PointsHandler interface {
		GetTransactions(c *fiber.Ctx) error
		GetTotalPoints(c *fiber.Ctx) error
	}

	pointsHandler struct {
		pointsService points.PointsService
	}
)

func NewPointsHandler(pointsService points.PointsService) PointsHandler {
	return &pointsHandler{pointsService: pointsService}
}

func (h *pointsHandler) GetTransactions(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = points.DefaultHistoryLimit
	}

	transactions, err := h.pointsService.GetUserTransactions(c.Context(), userID, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTransactions, err)
	}

	return presenters.SuccessResponse(c, transactions, fiber.StatusOK, domain.MessageSuccessGetTransactions)
}

func (h *pointsHandler) GetTotalPoints(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	total, err := h.pointsService.GetUserTotalPoints(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTotalPoints, err)
	}

	return presenters.SuccessResponse(c, domain.TotalPointsResponse{
		UserID:      userID,
		TotalPoints: total,
	}, fiber.StatusOK, domain.MessageSuccessGetTotalPoints)
}
