package handlers

import (
	"Privilege-Backend/domain"
	"Privilege-Backend/internal/api/presenters"
	"Privilege-Backend/pkg/admin"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AdminHandler interface {
		GetUsers(c *fiber.Ctx) error
		UpdateUser(c *fiber.Ctx) error
		DeleteUser(c *fiber.Ctx) error

		GetRewards(c *fiber.Ctx) error
		CreateReward(c *fiber.Ctx) error
		UpdateReward(c *fiber.Ctx) error
		DeleteReward(c *fiber.Ctx) error
		UploadRewardImage(c *fiber.Ctx) error

		GetMilestones(c *fiber.Ctx) error
		CreateMilestone(c *fiber.Ctx) error
		UpdateMilestone(c *fiber.Ctx) error
		DeleteMilestone(c *fiber.Ctx) error

		GetAllTransactions(c *fiber.Ctx) error
		GetAllRedemptions(c *fiber.Ctx) error
		UpdateRedemptionStatus(c *fiber.Ctx) error

		AddPointsToUser(c *fiber.Ctx) error
		GetDashboardStats(c *fiber.Ctx) error
	}

	adminHandler struct {
		adminService admin.AdminService
		validator    *validator.Validate
	}
)

func NewAdminHandler(adminService admin.AdminService, validator *validator.Validate) AdminHandler {
	return &adminHandler{
		adminService: adminService,
		validator:    validator,
	}
}

func parsePagination(c *fiber.Ctx) (int, int) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	return page, limit
}

func paginated(items any, page, limit int, count int64) fiber.Map {
	return fiber.Map{
		"items": items,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}
}

func (h *adminHandler) GetUsers(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	users, count, err := h.adminService.GetUsers(c.Context(), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetUsers, err)
	}

	return presenters.SuccessResponse(c, paginated(users, page, limit, count), fiber.StatusOK, domain.MessageSuccessGetUsers)
}

func (h *adminHandler) UpdateUser(c *fiber.Ctx) error {
	userID := c.Params("id")

	req := new(domain.AdminUpdateUserRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateUserAdmin, err)
	}

	res, err := h.adminService.UpdateUser(c.Context(), userID, *req)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateUserAdmin, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateUserAdmin, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateUserAdmin)
}

func (h *adminHandler) DeleteUser(c *fiber.Ctx) error {
	userID := c.Params("id")

	if err := h.adminService.DeleteUser(c.Context(), userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteUser, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteUser)
}

func (h *adminHandler) GetRewards(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	rewards, count, err := h.adminService.GetRewards(c.Context(), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRewards, err)
	}

	return presenters.SuccessResponse(c, paginated(rewards, page, limit, count), fiber.StatusOK, domain.MessageSuccessGetRewards)
}

func (h *adminHandler) CreateReward(c *fiber.Ctx) error {
	req := new(domain.CreateRewardRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateReward, err)
	}

	res, err := h.adminService.CreateReward(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateReward, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateReward)
}

func (h *adminHandler) UpdateReward(c *fiber.Ctx) error {
	rewardID := c.Params("id")

	req := new(domain.UpdateRewardRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateReward, err)
	}

	res, err := h.adminService.UpdateReward(c.Context(), rewardID, *req)
	if err != nil {
		if errors.Is(err, domain.ErrRewardNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateReward, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateReward, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateReward)
}

func (h *adminHandler) DeleteReward(c *fiber.Ctx) error {
	rewardID := c.Params("id")

	if err := h.adminService.DeleteReward(c.Context(), rewardID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteReward, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteReward)
}

func (h *adminHandler) UploadRewardImage(c *fiber.Ctx) error {
	rewardID := c.Params("id")

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.adminService.UploadRewardImage(c.Context(), rewardID, file)
	if err != nil {
		if errors.Is(err, domain.ErrRewardNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUploadRewardImage, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadRewardImage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadRewardImage)
}

func (h *adminHandler) GetMilestones(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	milestones, count, err := h.adminService.GetMilestones(c.Context(), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMilestones, err)
	}

	return presenters.SuccessResponse(c, paginated(milestones, page, limit, count), fiber.StatusOK, domain.MessageSuccessGetMilestones)
}

func (h *adminHandler) CreateMilestone(c *fiber.Ctx) error {
	req := new(domain.CreateMilestoneRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMilestone, err)
	}

	res, err := h.adminService.CreateMilestone(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMilestone, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateMilestone)
}

func (h *adminHandler) UpdateMilestone(c *fiber.Ctx) error {
	milestoneID := c.Params("id")

	req := new(domain.UpdateMilestoneRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMilestone, err)
	}

	res, err := h.adminService.UpdateMilestone(c.Context(), milestoneID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMilestone, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateMilestone)
}

func (h *adminHandler) DeleteMilestone(c *fiber.Ctx) error {
	milestoneID := c.Params("id")

	if err := h.adminService.DeleteMilestone(c.Context(), milestoneID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteMilestone, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMilestone)
}

func (h *adminHandler) GetAllTransactions(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	transactions, count, err := h.adminService.GetAllTransactions(c.Context(), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetAllTx, err)
	}

	return presenters.SuccessResponse(c, paginated(transactions, page, limit, count), fiber.StatusOK, domain.MessageSuccessGetAllTx)
}

func (h *adminHandler) GetAllRedemptions(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	redemptions, count, err := h.adminService.GetAllRedemptions(c.Context(), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetAllRedemptions, err)
	}

	return presenters.SuccessResponse(c, paginated(redemptions, page, limit, count), fiber.StatusOK, domain.MessageSuccessGetAllRedemptions)
}

func (h *adminHandler) UpdateRedemptionStatus(c *fiber.Ctx) error {
	redemptionID := c.Params("id")

	req := new(domain.UpdateRedemptionStatusRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRedemption, err)
	}

	if err := h.adminService.UpdateRedemptionStatus(c.Context(), redemptionID, req.Status); err != nil {
		if errors.Is(err, domain.ErrInvalidStatusTransition) {
			return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedUpdateRedemption, err)
		}
		if errors.Is(err, domain.ErrRedemptionNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateRedemption, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRedemption, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateRedemption)
}

func (h *adminHandler) AddPointsToUser(c *fiber.Ctx) error {
	req := new(domain.AddPointsRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddPoints, err)
	}

	res, err := h.adminService.AddPointsToUser(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddPoints, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddPoints)
}

func (h *adminHandler) GetDashboardStats(c *fiber.Ctx) error {
	stats := h.adminService.GetDashboardStats(c.Context())
	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetStats)
}
