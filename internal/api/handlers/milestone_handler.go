package handlers

import (
	"Privilege-Backend/domain"
	"Privilege-Backend/internal/api/presenters"
	"Privilege-Backend/pkg/milestone"
	"Privilege-Backend/pkg/user"

	"github.com/gofiber/fiber/v2"
)

type (
	MilestoneHandler interface {
		GetActiveMilestones(c *fiber.Ctx) error
		CheckUserMilestones(c *fiber.Ctx) error
	}

	milestoneHandler struct {
		milestoneService milestone.MilestoneService
		userService      user.UserService
	}
)

func NewMilestoneHandler(milestoneService milestone.MilestoneService, userService user.UserService) MilestoneHandler {
	return &milestoneHandler{
		milestoneService: milestoneService,
		userService:      userService,
	}
}

func (h *milestoneHandler) GetActiveMilestones(c *fiber.Ctx) error {
	milestones, err := h.milestoneService.GetActiveMilestones(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMilestones, err)
	}

	return presenters.SuccessResponse(c, milestones, fiber.StatusOK, domain.MessageSuccessGetMilestones)
}

func (h *milestoneHandler) CheckUserMilestones(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	profile, err := h.userService.Me(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCheckMilestones, err)
	}

	achieved, err := h.milestoneService.CheckUserMilestones(c.Context(), userID, profile.Points)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCheckMilestones, err)
	}

	return presenters.SuccessResponse(c, achieved, fiber.StatusOK, domain.MessageSuccessCheckMilestones)
}
