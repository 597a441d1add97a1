package reward

import (
	"Privilege-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	RewardRepository interface {
		GetActiveRewards(ctx context.Context) ([]*entities.Reward, error)
		GetRewardByID(ctx context.Context, id string) (*entities.Reward, error)
	}

	rewardRepository struct {
		db *gorm.DB
	}
)

func NewRewardRepository(db *gorm.DB) RewardRepository {
	return &rewardRepository{db: db}
}

func (r *rewardRepository) GetActiveRewards(ctx context.Context) ([]*entities.Reward, error) {
	var rewards []*entities.Reward
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("points_required ASC").
		Find(&rewards).Error; err != nil {
		return nil, err
	}
	return rewards, nil
}

func (r *rewardRepository) GetRewardByID(ctx context.Context, id string) (*entities.Reward, error) {
	var reward entities.Reward
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&reward).Error; err != nil {
		return nil, err
	}
	return &reward, nil
}
