package domain

import (
	"time"
)

var (
	MessageSuccessGetMilestones   = "milestones retrieved successfully"
	MessageSuccessCheckMilestones = "achieved milestones retrieved successfully"
	MessageFailedGetMilestones    = "failed to retrieve milestones"
	MessageFailedCheckMilestones  = "failed to check milestones"
)

type MilestoneResponse struct {
	ID                string    `json:"id"`
	PointsRequired    int       `json:"points_required"`
	RewardTitle       string    `json:"reward_title"`
	RewardDescription string    `json:"reward_description"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
}
