package admin

import (
	"Privilege-Backend/domain"
	"Privilege-Backend/entities"
	"Privilege-Backend/internal/utils/storage"
	"Privilege-Backend/pkg/milestone"
	"Privilege-Backend/pkg/points"
	"Privilege-Backend/pkg/redemption"
	"Privilege-Backend/pkg/reward"
	"context"
	"errors"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	AdminService interface {
		GetUsers(ctx context.Context, page, limit int) ([]domain.UserResponse, int64, error)
		UpdateUser(ctx context.Context, id string, req domain.AdminUpdateUserRequest) (domain.UserResponse, error)
		DeleteUser(ctx context.Context, id string) error

		GetRewards(ctx context.Context, page, limit int) ([]domain.RewardResponse, int64, error)
		CreateReward(ctx context.Context, req domain.CreateRewardRequest) (domain.RewardResponse, error)
		UpdateReward(ctx context.Context, id string, req domain.UpdateRewardRequest) (domain.RewardResponse, error)
		DeleteReward(ctx context.Context, id string) error
		UploadRewardImage(ctx context.Context, id string, image *multipart.FileHeader) (domain.RewardResponse, error)

		GetMilestones(ctx context.Context, page, limit int) ([]domain.MilestoneResponse, int64, error)
		CreateMilestone(ctx context.Context, req domain.CreateMilestoneRequest) (domain.MilestoneResponse, error)
		UpdateMilestone(ctx context.Context, id string, req domain.UpdateMilestoneRequest) (domain.MilestoneResponse, error)
		DeleteMilestone(ctx context.Context, id string) error

		GetAllTransactions(ctx context.Context, page, limit int) ([]domain.AdminTransactionResponse, int64, error)
		GetAllRedemptions(ctx context.Context, page, limit int) ([]domain.AdminRedemptionResponse, int64, error)
		UpdateRedemptionStatus(ctx context.Context, id string, status string) error

		AddPointsToUser(ctx context.Context, req domain.AddPointsRequest) (domain.TransactionResponse, error)
		GetDashboardStats(ctx context.Context) domain.DashboardStatsResponse
	}

	adminService struct {
		adminRepository   AdminRepository
		pointsService     points.PointsService
		redemptionService redemption.RedemptionService
		s3                storage.AwsS3
	}
)

func NewAdminService(
	adminRepository AdminRepository,
	pointsService points.PointsService,
	redemptionService redemption.RedemptionService,
	s3 storage.AwsS3,
) AdminService {
	return &adminService{
		adminRepository:   adminRepository,
		pointsService:     pointsService,
		redemptionService: redemptionService,
		s3:                s3,
	}
}

func (s *adminService) GetUsers(ctx context.Context, page, limit int) ([]domain.UserResponse, int64, error) {
	users, count, err := s.adminRepository.GetUsers(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, domain.UserResponse{
			ID:          u.ID.String(),
			Email:       u.Email,
			Phone:       u.Phone,
			FullName:    u.FullName,
			Points:      u.Points,
			MemberLevel: u.MemberLevel,
			CreatedAt:   u.CreatedAt,
			UpdatedAt:   u.UpdatedAt,
		})
	}
	return result, count, nil
}

func (s *adminService) UpdateUser(ctx context.Context, id string, req domain.AdminUpdateUserRequest) (domain.UserResponse, error) {
	user, err := s.adminRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	if req.Email != "" {
		user.Email = req.Email
	}
	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Points != nil {
		user.Points = *req.Points
	}
	if req.MemberLevel != "" {
		user.MemberLevel = req.MemberLevel
	}
	user.UpdatedAt = time.Now()

	if err := s.adminRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}

	return domain.UserResponse{
		ID:          user.ID.String(),
		Email:       user.Email,
		Phone:       user.Phone,
		FullName:    user.FullName,
		Points:      user.Points,
		MemberLevel: user.MemberLevel,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}, nil
}

func (s *adminService) DeleteUser(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}
	return s.adminRepository.DeleteUser(ctx, id)
}

func (s *adminService) GetRewards(ctx context.Context, page, limit int) ([]domain.RewardResponse, int64, error) {
	rewards, count, err := s.adminRepository.GetRewards(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.RewardResponse, 0, len(rewards))
	for _, rw := range rewards {
		result = append(result, reward.ToRewardResponse(rw))
	}
	return result, count, nil
}

func (s *adminService) CreateReward(ctx context.Context, req domain.CreateRewardRequest) (domain.RewardResponse, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	rw := &entities.Reward{
		ID:             uuid.New(),
		Name:           req.Name,
		Description:    req.Description,
		PointsRequired: req.PointsRequired,
		Category:       req.Category,
		IsActive:       isActive,
		CreatedAt:      time.Now(),
	}

	if err := s.adminRepository.CreateReward(ctx, rw); err != nil {
		return domain.RewardResponse{}, err
	}
	return reward.ToRewardResponse(rw), nil
}

func (s *adminService) UpdateReward(ctx context.Context, id string, req domain.UpdateRewardRequest) (domain.RewardResponse, error) {
	rw, err := s.adminRepository.GetRewardByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RewardResponse{}, domain.ErrRewardNotFound
		}
		return domain.RewardResponse{}, err
	}

	if req.Name != "" {
		rw.Name = req.Name
	}
	if req.Description != "" {
		rw.Description = req.Description
	}
	if req.PointsRequired != nil {
		rw.PointsRequired = *req.PointsRequired
	}
	if req.Category != "" {
		rw.Category = req.Category
	}
	if req.IsActive != nil {
		rw.IsActive = *req.IsActive
	}

	if err := s.adminRepository.UpdateReward(ctx, rw); err != nil {
		return domain.RewardResponse{}, err
	}
	return reward.ToRewardResponse(rw), nil
}

func (s *adminService) DeleteReward(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}
	return s.adminRepository.DeleteReward(ctx, id)
}

func (s *adminService) UploadRewardImage(ctx context.Context, id string, image *multipart.FileHeader) (domain.RewardResponse, error) {
	rw, err := s.adminRepository.GetRewardByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RewardResponse{}, domain.ErrRewardNotFound
		}
		return domain.RewardResponse{}, err
	}

	if rw.ImageURL != "" {
		existingKey := s.s3.ObjectKey(rw.ImageURL)
		if filepath.Ext(existingKey) == strings.ToLower(filepath.Ext(image.Filename)) {
			if _, err := s.s3.UpdateFile(existingKey, image, storage.AllowImage...); err != nil {
				return domain.RewardResponse{}, err
			}
			return reward.ToRewardResponse(rw), nil
		}
		if err := s.s3.DeleteFile(existingKey); err != nil {
			return domain.RewardResponse{}, err
		}
	}

	objectKey, err := s.s3.UploadFile(rw.ID.String(), image, "rewards", storage.AllowImage...)
	if err != nil {
		return domain.RewardResponse{}, err
	}

	rw.ImageURL = s.s3.PublicURL(objectKey)
	if err := s.adminRepository.UpdateReward(ctx, rw); err != nil {
		return domain.RewardResponse{}, err
	}
	return reward.ToRewardResponse(rw), nil
}

func (s *adminService) GetMilestones(ctx context.Context, page, limit int) ([]domain.MilestoneResponse, int64, error) {
	milestones, count, err := s.adminRepository.GetMilestones(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.MilestoneResponse, 0, len(milestones))
	for _, ms := range milestones {
		result = append(result, milestone.ToMilestoneResponse(ms))
	}
	return result, count, nil
}

func (s *adminService) CreateMilestone(ctx context.Context, req domain.CreateMilestoneRequest) (domain.MilestoneResponse, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	ms := &entities.Milestone{
		ID:                uuid.New(),
		PointsRequired:    req.PointsRequired,
		RewardTitle:       req.RewardTitle,
		RewardDescription: req.RewardDescription,
		IsActive:          isActive,
		CreatedAt:         time.Now(),
	}

	if err := s.adminRepository.CreateMilestone(ctx, ms); err != nil {
		return domain.MilestoneResponse{}, err
	}
	return milestone.ToMilestoneResponse(ms), nil
}

func (s *adminService) UpdateMilestone(ctx context.Context, id string, req domain.UpdateMilestoneRequest) (domain.MilestoneResponse, error) {
	ms, err := s.adminRepository.GetMilestoneByID(ctx, id)
	if err != nil {
		return domain.MilestoneResponse{}, err
	}

	if req.PointsRequired != nil {
		ms.PointsRequired = *req.PointsRequired
	}
	if req.RewardTitle != "" {
		ms.RewardTitle = req.RewardTitle
	}
	if req.RewardDescription != "" {
		ms.RewardDescription = req.RewardDescription
	}
	if req.IsActive != nil {
		ms.IsActive = *req.IsActive
	}

	if err := s.adminRepository.UpdateMilestone(ctx, ms); err != nil {
		return domain.MilestoneResponse{}, err
	}
	return milestone.ToMilestoneResponse(ms), nil
}

func (s *adminService) DeleteMilestone(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}
	return s.adminRepository.DeleteMilestone(ctx, id)
}

func (s *adminService) GetAllTransactions(ctx context.Context, page, limit int) ([]domain.AdminTransactionResponse, int64, error) {
	transactions, count, err := s.adminRepository.GetAllTransactions(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.AdminTransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		res := domain.AdminTransactionResponse{
			TransactionResponse: domain.TransactionResponse{
				ID:              tx.ID.String(),
				UserID:          tx.UserID.String(),
				Points:          tx.Points,
				TransactionType: tx.TransactionType,
				Description:     tx.Description,
				ReferenceID:     tx.ReferenceID,
				CreatedAt:       tx.CreatedAt,
			},
		}
		if tx.User != nil {
			res.UserEmail = tx.User.Email
			res.UserFullName = tx.User.FullName
		}
		result = append(result, res)
	}
	return result, count, nil
}

func (s *adminService) GetAllRedemptions(ctx context.Context, page, limit int) ([]domain.AdminRedemptionResponse, int64, error) {
	redemptions, count, err := s.adminRepository.GetAllRedemptions(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.AdminRedemptionResponse, 0, len(redemptions))
	for _, rd := range redemptions {
		res := domain.AdminRedemptionResponse{
			RedemptionResponse: domain.RedemptionResponse{
				ID:          rd.ID.String(),
				UserID:      rd.UserID.String(),
				RewardID:    rd.RewardID.String(),
				PointsUsed:  rd.PointsUsed,
				Status:      rd.Status,
				CreatedAt:   rd.CreatedAt,
				CompletedAt: rd.CompletedAt,
			},
		}
		if rd.Reward != nil {
			res.RewardName = rd.Reward.Name
			res.RewardDescription = rd.Reward.Description
			res.RewardCategory = rd.Reward.Category
		}
		if rd.User != nil {
			res.UserEmail = rd.User.Email
			res.UserFullName = rd.User.FullName
		}
		result = append(result, res)
	}
	return result, count, nil
}

func (s *adminService) UpdateRedemptionStatus(ctx context.Context, id string, status string) error {
	return s.redemptionService.UpdateStatus(ctx, id, status)
}

// AddPointsToUser records a signed ledger entry, inferring earn for
// positive amounts and redeem otherwise. The balance moves in the same
// database transaction as the ledger append.
func (s *adminService) AddPointsToUser(ctx context.Context, req domain.AddPointsRequest) (domain.TransactionResponse, error) {
	points := *req.Points
	transactionType := entities.TransactionTypeEarn
	if points <= 0 {
		transactionType = entities.TransactionTypeRedeem
	}
	return s.pointsService.AddTransaction(ctx, req.UserID, points, transactionType, req.Description, nil)
}

// GetDashboardStats degrades to an all-zero aggregate when any
// sub-query fails; the cause is logged, not propagated.
func (s *adminService) GetDashboardStats(ctx context.Context) domain.DashboardStatsResponse {
	stats, err := s.adminRepository.GetDashboardStats(ctx)
	if err != nil {
		log.Printf("Error computing dashboard stats: %v", err)
		return domain.DashboardStatsResponse{}
	}

	return domain.DashboardStatsResponse{
		TotalUsers:        stats["total_users"],
		TotalPoints:       stats["total_points"],
		TotalRedemptions:  stats["total_redemptions"],
		ActiveRewards:     stats["active_rewards"],
		NewUsersToday:     stats["new_users_today"],
		PointsIssuedToday: stats["points_issued_today"],
	}
}
