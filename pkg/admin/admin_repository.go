package admin

import (
	"Privilege-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

// The dashboard's "today" window follows the program's home timezone
// regardless of where the server runs.
var StatsTimezone = time.FixedZone("ICT", 7*60*60)

type (
	AdminRepository interface {
		// Users
		GetUsers(ctx context.Context, page, limit int) ([]*entities.User, int64, error)
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		UpdateUser(ctx context.Context, user *entities.User) error
		DeleteUser(ctx context.Context, id string) error

		// Rewards
		GetRewards(ctx context.Context, page, limit int) ([]*entities.Reward, int64, error)
		GetRewardByID(ctx context.Context, id string) (*entities.Reward, error)
		CreateReward(ctx context.Context, reward *entities.Reward) error
		UpdateReward(ctx context.Context, reward *entities.Reward) error
		DeleteReward(ctx context.Context, id string) error

		// Milestones
		GetMilestones(ctx context.Context, page, limit int) ([]*entities.Milestone, int64, error)
		GetMilestoneByID(ctx context.Context, id string) (*entities.Milestone, error)
		CreateMilestone(ctx context.Context, milestone *entities.Milestone) error
		UpdateMilestone(ctx context.Context, milestone *entities.Milestone) error
		DeleteMilestone(ctx context.Context, id string) error

		// Cross-entity listings
		GetAllTransactions(ctx context.Context, page, limit int) ([]*entities.PointTransaction, int64, error)
		GetAllRedemptions(ctx context.Context, page, limit int) ([]*entities.RedemptionHistory, int64, error)

		// Dashboard
		GetDashboardStats(ctx context.Context) (map[string]int64, error)
	}

	adminRepository struct {
		db *gorm.DB
	}
)

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) GetUsers(ctx context.Context, page, limit int) ([]*entities.User, int64, error) {
	var users []*entities.User
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.User{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, count, nil
}

func (r *adminRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *adminRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *adminRepository) DeleteUser(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.User{}).Error
}

func (r *adminRepository) GetRewards(ctx context.Context, page, limit int) ([]*entities.Reward, int64, error) {
	var rewards []*entities.Reward
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.Reward{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Order("points_required ASC").
		Offset(offset).
		Limit(limit).
		Find(&rewards).Error; err != nil {
		return nil, 0, err
	}

	return rewards, count, nil
}

func (r *adminRepository) GetRewardByID(ctx context.Context, id string) (*entities.Reward, error) {
	var reward entities.Reward
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&reward).Error; err != nil {
		return nil, err
	}
	return &reward, nil
}

func (r *adminRepository) CreateReward(ctx context.Context, reward *entities.Reward) error {
	return r.db.WithContext(ctx).Create(reward).Error
}

func (r *adminRepository) UpdateReward(ctx context.Context, reward *entities.Reward) error {
	return r.db.WithContext(ctx).Save(reward).Error
}

func (r *adminRepository) DeleteReward(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Reward{}).Error
}

func (r *adminRepository) GetMilestones(ctx context.Context, page, limit int) ([]*entities.Milestone, int64, error) {
	var milestones []*entities.Milestone
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.Milestone{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Order("points_required ASC").
		Offset(offset).
		Limit(limit).
		Find(&milestones).Error; err != nil {
		return nil, 0, err
	}

	return milestones, count, nil
}

func (r *adminRepository) GetMilestoneByID(ctx context.Context, id string) (*entities.Milestone, error) {
	var milestone entities.Milestone
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&milestone).Error; err != nil {
		return nil, err
	}
	return &milestone, nil
}

func (r *adminRepository) CreateMilestone(ctx context.Context, milestone *entities.Milestone) error {
	return r.db.WithContext(ctx).Create(milestone).Error
}

func (r *adminRepository) UpdateMilestone(ctx context.Context, milestone *entities.Milestone) error {
	return r.db.WithContext(ctx).Save(milestone).Error
}

func (r *adminRepository) DeleteMilestone(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Milestone{}).Error
}

func (r *adminRepository) GetAllTransactions(ctx context.Context, page, limit int) ([]*entities.PointTransaction, int64, error) {
	var transactions []*entities.PointTransaction
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.PointTransaction{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, 0, err
	}

	return transactions, count, nil
}

func (r *adminRepository) GetAllRedemptions(ctx context.Context, page, limit int) ([]*entities.RedemptionHistory, int64, error) {
	var redemptions []*entities.RedemptionHistory
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.RedemptionHistory{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Reward").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&redemptions).Error; err != nil {
		return nil, 0, err
	}

	return redemptions, count, nil
}

func (r *adminRepository) GetDashboardStats(ctx context.Context) (map[string]int64, error) {
	var totalUsers, totalRedemptions, activeRewards, newUsersToday int64
	var totalPoints, pointsIssuedToday int64

	now := time.Now().In(StatsTimezone)
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, StatsTimezone)
	endOfDay := startOfDay.Add(24 * time.Hour)

	if err := r.db.WithContext(ctx).Model(&entities.User{}).
		Count(&totalUsers).Error; err != nil {
		return nil, err
	}

	pointsQuery := r.db.WithContext(ctx).Model(&entities.User{}).
		Select("COALESCE(SUM(points), 0) as total")
	if err := pointsQuery.Row().Scan(&totalPoints); err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.RedemptionHistory{}).
		Count(&totalRedemptions).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.Reward{}).
		Where("is_active = ?", true).
		Count(&activeRewards).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.User{}).
		Where("created_at >= ? AND created_at < ?", startOfDay, endOfDay).
		Count(&newUsersToday).Error; err != nil {
		return nil, err
	}

	issuedQuery := r.db.WithContext(ctx).Model(&entities.PointTransaction{}).
		Where("points > 0 AND created_at >= ? AND created_at < ?", startOfDay, endOfDay).
		Select("COALESCE(SUM(points), 0) as total")
	if err := issuedQuery.Row().Scan(&pointsIssuedToday); err != nil {
		return nil, err
	}

	return map[string]int64{
		"total_users":         totalUsers,
		"total_points":        totalPoints,
		"total_redemptions":   totalRedemptions,
		"active_rewards":      activeRewards,
		"new_users_today":     newUsersToday,
		"points_issued_today": pointsIssuedToday,
	}, nil
}
