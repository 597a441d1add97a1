package user

import (
	"Privilege-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateWithWelcomeBonus(ctx context.Context, user *entities.User, bonus *entities.PointTransaction) error
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		GetUserByEmailOrPhone(ctx context.Context, value string) (*entities.User, error)
		UpdatePoints(ctx context.Context, id string, newPoints int) error
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateWithWelcomeBonus inserts the profile and its welcome bonus
// ledger entry atomically. The user's denormalized balance must already
// equal the bonus amount.
func (r *userRepository) CreateWithWelcomeBonus(ctx context.Context, user *entities.User, bonus *entities.PointTransaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Create(bonus).Error
	})
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmailOrPhone(ctx context.Context, value string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).
		Where("email = ? OR phone = ?", value, value).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdatePoints(ctx context.Context, id string, newPoints int) error {
	return r.db.WithContext(ctx).Model(&entities.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"points":     newPoints,
			"updated_at": time.Now(),
		}).Error
}
