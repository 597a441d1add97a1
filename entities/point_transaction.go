package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	TransactionTypeEarn   = "earn"
	TransactionTypeRedeem = "redeem"
	TransactionTypeBonus  = "bonus"
)

type PointTransaction struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID `gorm:"index" json:"user_id"`
	Points          int       `json:"points"` // signed delta, negative for redeem
	TransactionType string    `json:"transaction_type"` // earn, redeem, bonus
	Description     string    `json:"description"`
	ReferenceID     *string   `json:"reference_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (PointTransaction) TableName() string {
	return "point_transactions"
}
