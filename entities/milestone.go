package entities

import (
	"time"

	"github.com/google/uuid"
)

type Milestone struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	PointsRequired    int       `json:"points_required"`
	RewardTitle       string    `json:"reward_title"`
	RewardDescription string    `json:"reward_description"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
}

func (Milestone) TableName() string {
	return "milestones"
}
