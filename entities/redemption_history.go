package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	RedemptionStatusPending   = "pending"
	RedemptionStatusApproved  = "approved"
	RedemptionStatusCompleted = "completed"
	RedemptionStatusCancelled = "cancelled"
)

type RedemptionHistory struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID  `gorm:"index" json:"user_id"`
	RewardID    uuid.UUID  `json:"reward_id"`
	PointsUsed  int        `json:"points_used"`
	Status      string     `json:"status"` // pending, approved, completed, cancelled
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Reward *Reward `gorm:"foreignKey:RewardID;constraint:OnDelete:CASCADE" json:"-"`
}

func (RedemptionHistory) TableName() string {
	return "redemption_history"
}

// ValidRedemptionTransition reports whether a redemption may move from
// one status to another. Completed and cancelled are terminal.
func ValidRedemptionTransition(from, to string) bool {
	switch from {
	case RedemptionStatusPending:
		return to == RedemptionStatusApproved || to == RedemptionStatusCancelled
	case RedemptionStatusApproved:
		return to == RedemptionStatusCompleted || to == RedemptionStatusCancelled
	default:
		return false
	}
}
