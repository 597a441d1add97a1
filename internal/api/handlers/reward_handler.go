package handlers

import (
	"Privilege-Backend/domain"
	"Privilege-Backend/internal/api/presenters"
	"Privilege-Backend/pkg/reward"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type (
	RewardHandler interface {
		GetActiveRewards(c *fiber.Ctx) error
		GetReward(c *fiber.Ctx) error
	}

	rewardHandler struct {
		rewardService reward.RewardService
	}
)

func NewRewardHandler(rewardService reward.RewardService) RewardHandler {
	return &rewardHandler{rewardService: rewardService}
}

func (h *rewardHandler) GetActiveRewards(c *fiber.Ctx) error {
	rewards, err := h.rewardService.GetActiveRewards(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRewards, err)
	}

	return presenters.SuccessResponse(c, rewards, fiber.StatusOK, domain.MessageSuccessGetRewards)
}

func (h *rewardHandler) GetReward(c *fiber.Ctx) error {
	rewardID := c.Params("id")

	res, err := h.rewardService.GetReward(c.Context(), rewardID)
	if err != nil {
		if errors.Is(err, domain.ErrRewardNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetReward, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReward, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReward)
}
