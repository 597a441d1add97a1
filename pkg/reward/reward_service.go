package reward

import (
	"Privilege-Backend/domain"
	"Privilege-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	RewardService interface {
		GetActiveRewards(ctx context.Context) ([]domain.RewardResponse, error)
		GetReward(ctx context.Context, id string) (domain.RewardResponse, error)
	}

	rewardService struct {
		rewardRepository RewardRepository
	}
)

func NewRewardService(rewardRepository RewardRepository) RewardService {
	return &rewardService{rewardRepository: rewardRepository}
}

func (s *rewardService) GetActiveRewards(ctx context.Context) ([]domain.RewardResponse, error) {
	rewards, err := s.rewardRepository.GetActiveRewards(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.RewardResponse, 0, len(rewards))
	for _, rw := range rewards {
		result = append(result, ToRewardResponse(rw))
	}
	return result, nil
}

func (s *rewardService) GetReward(ctx context.Context, id string) (domain.RewardResponse, error) {
	reward, err := s.rewardRepository.GetRewardByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RewardResponse{}, domain.ErrRewardNotFound
		}
		return domain.RewardResponse{}, err
	}
	return ToRewardResponse(reward), nil
}

func ToRewardResponse(reward *entities.Reward) domain.RewardResponse {
	return domain.RewardResponse{
		ID:             reward.ID.String(),
		Name:           reward.Name,
		Description:    reward.Description,
		PointsRequired: reward.PointsRequired,
		Category:       reward.Category,
		ImageURL:       reward.ImageURL,
		IsActive:       reward.IsActive,
		CreatedAt:      reward.CreatedAt,
	}
}
