package entities

import (
	"github.com/google/uuid"
)

const (
	MemberLevelBronze   = "bronze"
	MemberLevelSilver   = "silver"
	MemberLevelGold     = "gold"
	MemberLevelPlatinum = "platinum"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email        string    `gorm:"uniqueIndex" json:"email"`
	Phone        string    `json:"phone,omitempty"`
	FullName     string    `json:"full_name"`
	PasswordHash string    `json:"-"`
	Points       int       `json:"points"`
	MemberLevel  string    `json:"member_level"` // bronze, silver, gold, platinum
	Role         string    `json:"role"`

	Timestamp
}

func (User) TableName() string {
	return "users"
}
