package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRewards = "rewards retrieved successfully"
	MessageSuccessGetReward  = "reward retrieved successfully"
	MessageFailedGetRewards  = "failed to retrieve rewards"
	MessageFailedGetReward   = "failed to retrieve reward"

	ErrRewardNotFound = errors.New("reward not found")
)

type RewardResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	PointsRequired int       `json:"points_required"`
	Category       string    `json:"category"`
	ImageURL       string    `json:"image_url,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}
