package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateRedemption = "redemption requested successfully"
	MessageSuccessGetRedemptions   = "redemption history retrieved successfully"
	MessageSuccessUpdateRedemption = "redemption status updated successfully"
	MessageFailedCreateRedemption  = "failed to request redemption"
	MessageFailedGetRedemptions    = "failed to retrieve redemption history"
	MessageFailedUpdateRedemption  = "failed to update redemption status"

	ErrInsufficientPoints      = errors.New("insufficient points")
	ErrRewardNotActive         = errors.New("reward is not active")
	ErrRedemptionNotFound      = errors.New("redemption not found")
	ErrInvalidStatusTransition = errors.New("invalid redemption status transition")
)

type (
	RedeemRequest struct {
		RewardID string `json:"reward_id" validate:"required,uuid"`
	}

	UpdateRedemptionStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=pending approved completed cancelled"`
	}

	RedemptionResponse struct {
		ID                string     `json:"id"`
		UserID            string     `json:"user_id"`
		RewardID          string     `json:"reward_id"`
		RewardName        string     `json:"reward_name"`
		RewardDescription string     `json:"reward_description"`
		RewardCategory    string     `json:"reward_category"`
		PointsUsed        int        `json:"points_used"`
		Status            string     `json:"status"`
		CreatedAt         time.Time  `json:"created_at"`
		CompletedAt       *time.Time `json:"completed_at,omitempty"`
	}
)
