package redemption

import (
	"Privilege-Backend/domain"
	"Privilege-Backend/entities"
	"Privilege-Backend/internal/utils/mailing"
	"Privilege-Backend/pkg/reward"
	"Privilege-Backend/pkg/user"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RedemptionService interface {
		RequestRedemption(ctx context.Context, userID string, req domain.RedeemRequest) (domain.RedemptionResponse, error)
		GetUserRedemptions(ctx context.Context, userID string) ([]domain.RedemptionResponse, error)
		UpdateStatus(ctx context.Context, id string, status string) error
	}

	redemptionService struct {
		redemptionRepository RedemptionRepository
		rewardRepository     reward.RewardRepository
		userRepository       user.UserRepository
	}
)

func NewRedemptionService(
	redemptionRepository RedemptionRepository,
	rewardRepository reward.RewardRepository,
	userRepository user.UserRepository,
) RedemptionService {
	return &redemptionService{
		redemptionRepository: redemptionRepository,
		rewardRepository:     rewardRepository,
		userRepository:       userRepository,
	}
}

func (s *redemptionService) RequestRedemption(ctx context.Context, userID string, req domain.RedeemRequest) (domain.RedemptionResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RedemptionResponse{}, domain.ErrParseUUID
	}

	rw, err := s.rewardRepository.GetRewardByID(ctx, req.RewardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RedemptionResponse{}, domain.ErrRewardNotFound
		}
		return domain.RedemptionResponse{}, err
	}
	if !rw.IsActive {
		return domain.RedemptionResponse{}, domain.ErrRewardNotActive
	}

	member, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RedemptionResponse{}, domain.ErrUserNotFound
		}
		return domain.RedemptionResponse{}, err
	}
	if member.Points < rw.PointsRequired {
		return domain.RedemptionResponse{}, domain.ErrInsufficientPoints
	}

	now := time.Now()
	redemption := &entities.RedemptionHistory{
		ID:         uuid.New(),
		UserID:     userUUID,
		RewardID:   rw.ID,
		PointsUsed: rw.PointsRequired,
		Status:     entities.RedemptionStatusPending,
		CreatedAt:  now,
	}

	referenceID := redemption.ID.String()
	ledger := &entities.PointTransaction{
		ID:              uuid.New(),
		UserID:          userUUID,
		Points:          -rw.PointsRequired,
		TransactionType: entities.TransactionTypeRedeem,
		Description:     fmt.Sprintf("Redeemed %s", rw.Name),
		ReferenceID:     &referenceID,
		CreatedAt:       now,
	}

	if err := s.redemptionRepository.CreateWithLedger(ctx, redemption, ledger); err != nil {
		return domain.RedemptionResponse{}, err
	}

	redemption.Reward = rw
	return toRedemptionResponse(redemption), nil
}

func (s *redemptionService) GetUserRedemptions(ctx context.Context, userID string) ([]domain.RedemptionResponse, error) {
	redemptions, err := s.redemptionRepository.GetUserRedemptions(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.RedemptionResponse, 0, len(redemptions))
	for _, rd := range redemptions {
		result = append(result, toRedemptionResponse(rd))
	}
	return result, nil
}

// UpdateStatus applies a guarded transition: pending may move to
// approved or cancelled, approved to completed or cancelled, and the
// terminal states accept nothing. completed_at is stamped only on the
// transition into completed. Cancelling refunds the deducted points
// through a compensating ledger entry.
func (s *redemptionService) UpdateStatus(ctx context.Context, id string, status string) error {
	redemption, err := s.redemptionRepository.GetRedemptionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRedemptionNotFound
		}
		return err
	}

	if !entities.ValidRedemptionTransition(redemption.Status, status) {
		return domain.ErrInvalidStatusTransition
	}

	if status == entities.RedemptionStatusCancelled {
		description := "Refund for cancelled redemption"
		if redemption.Reward != nil {
			description = fmt.Sprintf("Refund for cancelled redemption of %s", redemption.Reward.Name)
		}
		referenceID := redemption.ID.String()
		refund := &entities.PointTransaction{
			ID:              uuid.New(),
			UserID:          redemption.UserID,
			Points:          redemption.PointsUsed,
			TransactionType: entities.TransactionTypeEarn,
			Description:     description,
			ReferenceID:     &referenceID,
			CreatedAt:       time.Now(),
		}
		if err := s.redemptionRepository.CancelWithRefund(ctx, id, refund); err != nil {
			return err
		}
	} else {
		var completedAt *time.Time
		if status == entities.RedemptionStatusCompleted {
			now := time.Now()
			completedAt = &now
		}

		if err := s.redemptionRepository.UpdateStatus(ctx, id, status, completedAt); err != nil {
			return err
		}
	}

	if redemption.User != nil && redemption.Reward != nil {
		if mailErr := mailing.SendRedemptionStatusMail(redemption.User.Email, redemption.Reward.Name, status); mailErr != nil {
			log.Printf("Error sending redemption status mail for %s: %v", id, mailErr)
		}
	}

	return nil
}

func toRedemptionResponse(rd *entities.RedemptionHistory) domain.RedemptionResponse {
	res := domain.RedemptionResponse{
		ID:          rd.ID.String(),
		UserID:      rd.UserID.String(),
		RewardID:    rd.RewardID.String(),
		PointsUsed:  rd.PointsUsed,
		Status:      rd.Status,
		CreatedAt:   rd.CreatedAt,
		CompletedAt: rd.CompletedAt,
	}
	if rd.Reward != nil {
		res.RewardName = rd.Reward.Name
		res.RewardDescription = rd.Reward.Description
		res.RewardCategory = rd.Reward.Category
	}
	return res
}
