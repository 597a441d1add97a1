package handlers

import (
	"Privilege-Backend/domain"
	"Privilege-Backend/internal/api/presenters"
	"Privilege-Backend/pkg/redemption"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RedemptionHandler interface {
		CreateRedemption(c *fiber.Ctx) error
		GetUserRedemptions(c *fiber.Ctx) error
	}

	redemptionHandler struct {
		redemptionService redemption.RedemptionService
		validator         *validator.Validate
	}
)

func NewRedemptionHandler(redemptionService redemption.RedemptionService, validator *validator.Validate) RedemptionHandler {
	return &redemptionHandler{
		redemptionService: redemptionService,
		validator:         validator,
	}
}

func (h *redemptionHandler) CreateRedemption(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.RedeemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRedemption, err)
	}

	res, err := h.redemptionService.RequestRedemption(c.Context(), userID, *req)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientPoints) || errors.Is(err, domain.ErrRewardNotActive) {
			return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedCreateRedemption, err)
		}
		if errors.Is(err, domain.ErrRewardNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedCreateRedemption, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRedemption, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRedemption)
}

func (h *redemptionHandler) GetUserRedemptions(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	redemptions, err := h.redemptionService.GetUserRedemptions(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRedemptions, err)
	}

	return presenters.SuccessResponse(c, redemptions, fiber.StatusOK, domain.MessageSuccessGetRedemptions)
}
