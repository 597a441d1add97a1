package admin

import (
	"Privilege-Backend/domain"
	"Privilege-Backend/entities"
	"Privilege-Backend/internal/utils/storage"
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeAdminRepository struct {
	users      map[string]*entities.User
	rewards    map[string]*entities.Reward
	milestones map[string]*entities.Milestone

	stats    map[string]int64
	statsErr error
}

func newFakeAdminRepository() *fakeAdminRepository {
	return &fakeAdminRepository{
		users:      make(map[string]*entities.User),
		rewards:    make(map[string]*entities.Reward),
		milestones: make(map[string]*entities.Milestone),
	}
}

func (f *fakeAdminRepository) GetUsers(ctx context.Context, page, limit int) ([]*entities.User, int64, error) {
	var result []*entities.User
	for _, u := range f.users {
		result = append(result, u)
	}
	return result, int64(len(result)), nil
}

func (f *fakeAdminRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeAdminRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	f.users[user.ID.String()] = user
	return nil
}

func (f *fakeAdminRepository) DeleteUser(ctx context.Context, id string) error {
	delete(f.users, id)
	return nil
}

func (f *fakeAdminRepository) GetRewards(ctx context.Context, page, limit int) ([]*entities.Reward, int64, error) {
	var result []*entities.Reward
	for _, rw := range f.rewards {
		result = append(result, rw)
	}
	return result, int64(len(result)), nil
}

func (f *fakeAdminRepository) GetRewardByID(ctx context.Context, id string) (*entities.Reward, error) {
	rw, ok := f.rewards[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return rw, nil
}

func (f *fakeAdminRepository) CreateReward(ctx context.Context, reward *entities.Reward) error {
	f.rewards[reward.ID.String()] = reward
	return nil
}

func (f *fakeAdminRepository) UpdateReward(ctx context.Context, reward *entities.Reward) error {
	f.rewards[reward.ID.String()] = reward
	return nil
}

func (f *fakeAdminRepository) DeleteReward(ctx context.Context, id string) error {
	delete(f.rewards, id)
	return nil
}

func (f *fakeAdminRepository) GetMilestones(ctx context.Context, page, limit int) ([]*entities.Milestone, int64, error) {
	var result []*entities.Milestone
	for _, ms := range f.milestones {
		result = append(result, ms)
	}
	return result, int64(len(result)), nil
}

func (f *fakeAdminRepository) GetMilestoneByID(ctx context.Context, id string) (*entities.Milestone, error) {
	ms, ok := f.milestones[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return ms, nil
}

func (f *fakeAdminRepository) CreateMilestone(ctx context.Context, milestone *entities.Milestone) error {
	f.milestones[milestone.ID.String()] = milestone
	return nil
}

func (f *fakeAdminRepository) UpdateMilestone(ctx context.Context, milestone *entities.Milestone) error {
	f.milestones[milestone.ID.String()] = milestone
	return nil
}

func (f *fakeAdminRepository) DeleteMilestone(ctx context.Context, id string) error {
	delete(f.milestones, id)
	return nil
}

func (f *fakeAdminRepository) GetAllTransactions(ctx context.Context, page, limit int) ([]*entities.PointTransaction, int64, error) {
	return nil, 0, nil
}

func (f *fakeAdminRepository) GetAllRedemptions(ctx context.Context, page, limit int) ([]*entities.RedemptionHistory, int64, error) {
	return nil, 0, nil
}

func (f *fakeAdminRepository) GetDashboardStats(ctx context.Context) (map[string]int64, error) {
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	return f.stats, nil
}

type fakePointsService struct {
	lastUserID string
	lastPoints int
	lastType   string
}

func (f *fakePointsService) GetUserTransactions(ctx context.Context, userID string, limit int) ([]domain.TransactionResponse, error) {
	return nil, nil
}

func (f *fakePointsService) AddTransaction(ctx context.Context, userID string, points int, transactionType, description string, referenceID *string) (domain.TransactionResponse, error) {
	f.lastUserID = userID
	f.lastPoints = points
	f.lastType = transactionType
	return domain.TransactionResponse{
		UserID:          userID,
		Points:          points,
		TransactionType: transactionType,
		Description:     description,
	}, nil
}

func (f *fakePointsService) GetUserTotalPoints(ctx context.Context, userID string) (int, error) {
	return 0, nil
}

type fakeRedemptionService struct {
	lastID     string
	lastStatus string
	err        error
}

func (f *fakeRedemptionService) RequestRedemption(ctx context.Context, userID string, req domain.RedeemRequest) (domain.RedemptionResponse, error) {
	return domain.RedemptionResponse{}, nil
}

func (f *fakeRedemptionService) GetUserRedemptions(ctx context.Context, userID string) ([]domain.RedemptionResponse, error) {
	return nil, nil
}

func (f *fakeRedemptionService) UpdateStatus(ctx context.Context, id string, status string) error {
	f.lastID = id
	f.lastStatus = status
	return f.err
}

func newTestAdminService(repo *fakeAdminRepository, points *fakePointsService, redemptions *fakeRedemptionService) AdminService {
	return NewAdminService(repo, points, redemptions, storage.AwsS3{})
}

func addPointsRequest(userID string, points int, description string) domain.AddPointsRequest {
	return domain.AddPointsRequest{
		UserID:      userID,
		Points:      &points,
		Description: description,
	}
}

func TestAddPointsToUserInfersTransactionType(t *testing.T) {
	pointsService := &fakePointsService{}
	service := newTestAdminService(newFakeAdminRepository(), pointsService, &fakeRedemptionService{})
	userID := uuid.NewString()

	_, err := service.AddPointsToUser(context.Background(), addPointsRequest(userID, 250, "Store event"))
	require.NoError(t, err)
	assert.Equal(t, entities.TransactionTypeEarn, pointsService.lastType)
	assert.Equal(t, 250, pointsService.lastPoints)

	_, err = service.AddPointsToUser(context.Background(), addPointsRequest(userID, -100, "Manual correction"))
	require.NoError(t, err)
	assert.Equal(t, entities.TransactionTypeRedeem, pointsService.lastType)
	assert.Equal(t, -100, pointsService.lastPoints)

	_, err = service.AddPointsToUser(context.Background(), addPointsRequest(userID, 0, "Zero adjustment"))
	require.NoError(t, err)
	assert.Equal(t, entities.TransactionTypeRedeem, pointsService.lastType)
	assert.Equal(t, 0, pointsService.lastPoints)
}

func TestAddPointsRequestValidation(t *testing.T) {
	validate := validator.New()

	zero := 0
	assert.NoError(t, validate.Struct(domain.AddPointsRequest{
		UserID:      uuid.NewString(),
		Points:      &zero,
		Description: "Zero adjustment",
	}))

	assert.Error(t, validate.Struct(domain.AddPointsRequest{
		UserID:      uuid.NewString(),
		Description: "Missing points",
	}))
}

func TestGetDashboardStatsMapsCounters(t *testing.T) {
	repo := newFakeAdminRepository()
	repo.stats = map[string]int64{
		"total_users":         42,
		"total_points":        12500,
		"total_redemptions":   7,
		"active_rewards":      5,
		"new_users_today":     3,
		"points_issued_today": 800,
	}
	service := newTestAdminService(repo, &fakePointsService{}, &fakeRedemptionService{})

	stats := service.GetDashboardStats(context.Background())
	assert.Equal(t, int64(42), stats.TotalUsers)
	assert.Equal(t, int64(12500), stats.TotalPoints)
	assert.Equal(t, int64(7), stats.TotalRedemptions)
	assert.Equal(t, int64(5), stats.ActiveRewards)
	assert.Equal(t, int64(3), stats.NewUsersToday)
	assert.Equal(t, int64(800), stats.PointsIssuedToday)
}

func TestGetDashboardStatsFallsBackToZero(t *testing.T) {
	repo := newFakeAdminRepository()
	repo.statsErr = errors.New("connection refused")
	service := newTestAdminService(repo, &fakePointsService{}, &fakeRedemptionService{})

	stats := service.GetDashboardStats(context.Background())
	assert.Equal(t, domain.DashboardStatsResponse{}, stats)
}

func TestUpdateRewardNotFound(t *testing.T) {
	service := newTestAdminService(newFakeAdminRepository(), &fakePointsService{}, &fakeRedemptionService{})

	_, err := service.UpdateReward(context.Background(), uuid.NewString(), domain.UpdateRewardRequest{Name: "New Name"})
	assert.ErrorIs(t, err, domain.ErrRewardNotFound)
}

func TestUpdateUserAppliesPartialPatch(t *testing.T) {
	repo := newFakeAdminRepository()
	member := &entities.User{
		ID:          uuid.New(),
		Email:       "member@example.com",
		FullName:    "Test Member",
		Points:      650,
		MemberLevel: entities.MemberLevelBronze,
	}
	repo.users[member.ID.String()] = member
	service := newTestAdminService(repo, &fakePointsService{}, &fakeRedemptionService{})

	newPoints := 2000
	res, err := service.UpdateUser(context.Background(), member.ID.String(), domain.AdminUpdateUserRequest{
		Points:      &newPoints,
		MemberLevel: entities.MemberLevelSilver,
	})
	require.NoError(t, err)

	assert.Equal(t, 2000, res.Points)
	assert.Equal(t, entities.MemberLevelSilver, res.MemberLevel)
	assert.Equal(t, "member@example.com", res.Email)
	assert.Equal(t, "Test Member", res.FullName)
}

func TestUpdateRedemptionStatusDelegates(t *testing.T) {
	redemptionService := &fakeRedemptionService{err: domain.ErrInvalidStatusTransition}
	service := newTestAdminService(newFakeAdminRepository(), &fakePointsService{}, redemptionService)
	id := uuid.NewString()

	err := service.UpdateRedemptionStatus(context.Background(), id, entities.RedemptionStatusApproved)
	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
	assert.Equal(t, id, redemptionService.lastID)
	assert.Equal(t, entities.RedemptionStatusApproved, redemptionService.lastStatus)
}

func TestCreateRewardDefaultsActive(t *testing.T) {
	repo := newFakeAdminRepository()
	service := newTestAdminService(repo, &fakePointsService{}, &fakeRedemptionService{})

	res, err := service.CreateReward(context.Background(), domain.CreateRewardRequest{
		Name:           "Coffee Voucher",
		Description:    "One free coffee",
		PointsRequired: 500,
		Category:       entities.RewardCategoryVoucher,
	})
	require.NoError(t, err)
	assert.True(t, res.IsActive)

	inactive := false
	res, err = service.CreateReward(context.Background(), domain.CreateRewardRequest{
		Name:           "Hidden Reward",
		Description:    "Not yet launched",
		PointsRequired: 900,
		Category:       entities.RewardCategoryProduct,
		IsActive:       &inactive,
	})
	require.NoError(t, err)
	assert.False(t, res.IsActive)
}
