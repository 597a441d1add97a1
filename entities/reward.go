package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	RewardCategoryDiscount = "discount"
	RewardCategoryProduct  = "product"
	RewardCategoryVoucher  = "voucher"
)

type Reward struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	PointsRequired int       `json:"points_required"`
	Category       string    `json:"category"` // discount, product, voucher
	ImageURL       string    `json:"image_url,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Reward) TableName() string {
	return "rewards"
}
