package milestone

import (
	"Privilege-Backend/domain"
	"Privilege-Backend/entities"
	"context"
)

type (
	MilestoneService interface {
		GetActiveMilestones(ctx context.Context) ([]domain.MilestoneResponse, error)
		CheckUserMilestones(ctx context.Context, userID string, currentPoints int) ([]domain.MilestoneResponse, error)
	}

	milestoneService struct {
		milestoneRepository MilestoneRepository
	}
)

func NewMilestoneService(milestoneRepository MilestoneRepository) MilestoneService {
	return &milestoneService{milestoneRepository: milestoneRepository}
}

func (s *milestoneService) GetActiveMilestones(ctx context.Context) ([]domain.MilestoneResponse, error) {
	milestones, err := s.milestoneRepository.GetActiveMilestones(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.MilestoneResponse, 0, len(milestones))
	for _, ms := range milestones {
		result = append(result, ToMilestoneResponse(ms))
	}
	return result, nil
}

// CheckUserMilestones recomputes the achieved set from scratch on every
// call. It keeps no memory of what was previously shown, so callers
// must deduplicate "newly achieved" notifications themselves.
func (s *milestoneService) CheckUserMilestones(ctx context.Context, userID string, currentPoints int) ([]domain.MilestoneResponse, error) {
	milestones, err := s.milestoneRepository.GetActiveMilestones(ctx)
	if err != nil {
		return nil, err
	}

	achieved := make([]domain.MilestoneResponse, 0, len(milestones))
	for _, ms := range milestones {
		if ms.PointsRequired <= currentPoints {
			achieved = append(achieved, ToMilestoneResponse(ms))
		}
	}
	return achieved, nil
}

func ToMilestoneResponse(ms *entities.Milestone) domain.MilestoneResponse {
	return domain.MilestoneResponse{
		ID:                ms.ID.String(),
		PointsRequired:    ms.PointsRequired,
		RewardTitle:       ms.RewardTitle,
		RewardDescription: ms.RewardDescription,
		IsActive:          ms.IsActive,
		CreatedAt:         ms.CreatedAt,
	}
}
