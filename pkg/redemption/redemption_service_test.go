package redemption

import (
	"Privilege-Backend/domain"
	"Privilege-Backend/entities"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRedemptionRepository struct {
	redemptions map[string]*entities.RedemptionHistory
	created     []*entities.RedemptionHistory
	ledgers     []*entities.PointTransaction

	updatedID          string
	updatedStatus      string
	updatedCompletedAt *time.Time
	refunds            []*entities.PointTransaction
}

func newFakeRedemptionRepository() *fakeRedemptionRepository {
	return &fakeRedemptionRepository{redemptions: make(map[string]*entities.RedemptionHistory)}
}

func (f *fakeRedemptionRepository) CreateWithLedger(ctx context.Context, redemption *entities.RedemptionHistory, ledger *entities.PointTransaction) error {
	f.created = append(f.created, redemption)
	f.ledgers = append(f.ledgers, ledger)
	f.redemptions[redemption.ID.String()] = redemption
	return nil
}

func (f *fakeRedemptionRepository) GetUserRedemptions(ctx context.Context, userID string) ([]*entities.RedemptionHistory, error) {
	var result []*entities.RedemptionHistory
	for _, rd := range f.redemptions {
		if rd.UserID.String() == userID {
			result = append(result, rd)
		}
	}
	return result, nil
}

func (f *fakeRedemptionRepository) GetRedemptionByID(ctx context.Context, id string) (*entities.RedemptionHistory, error) {
	rd, ok := f.redemptions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return rd, nil
}

func (f *fakeRedemptionRepository) CancelWithRefund(ctx context.Context, id string, refund *entities.PointTransaction) error {
	f.refunds = append(f.refunds, refund)
	if rd, ok := f.redemptions[id]; ok {
		rd.Status = entities.RedemptionStatusCancelled
	}
	return nil
}

func (f *fakeRedemptionRepository) UpdateStatus(ctx context.Context, id string, status string, completedAt *time.Time) error {
	f.updatedID = id
	f.updatedStatus = status
	f.updatedCompletedAt = completedAt
	if rd, ok := f.redemptions[id]; ok {
		rd.Status = status
		rd.CompletedAt = completedAt
	}
	return nil
}

type fakeRewardRepository struct {
	rewards map[string]*entities.Reward
}

func (f *fakeRewardRepository) GetActiveRewards(ctx context.Context) ([]*entities.Reward, error) {
	var result []*entities.Reward
	for _, rw := range f.rewards {
		if rw.IsActive {
			result = append(result, rw)
		}
	}
	return result, nil
}

func (f *fakeRewardRepository) GetRewardByID(ctx context.Context, id string) (*entities.Reward, error) {
	rw, ok := f.rewards[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return rw, nil
}

type fakeUserRepository struct {
	users map[string]*entities.User
}

func (f *fakeUserRepository) CreateWithWelcomeBonus(ctx context.Context, user *entities.User, bonus *entities.PointTransaction) error {
	f.users[user.ID.String()] = user
	return nil
}

func (f *fakeUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByEmailOrPhone(ctx context.Context, value string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Email == value || u.Phone == value {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) UpdatePoints(ctx context.Context, id string, newPoints int) error {
	if u, ok := f.users[id]; ok {
		u.Points = newPoints
	}
	return nil
}

type redemptionFixture struct {
	service        RedemptionService
	redemptionRepo *fakeRedemptionRepository
	member         *entities.User
	reward         *entities.Reward
}

func newRedemptionFixture(t *testing.T, balance int, rewardCost int, rewardActive bool) redemptionFixture {
	t.Helper()

	member := &entities.User{
		ID:          uuid.New(),
		Email:       "member@example.com",
		FullName:    "Test Member",
		Points:      balance,
		MemberLevel: entities.MemberLevelBronze,
		Role:        domain.RoleUser,
	}
	reward := &entities.Reward{
		ID:             uuid.New(),
		Name:           "Coffee Voucher",
		Description:    "One free coffee",
		PointsRequired: rewardCost,
		Category:       entities.RewardCategoryVoucher,
		IsActive:       rewardActive,
	}

	redemptionRepo := newFakeRedemptionRepository()
	service := NewRedemptionService(
		redemptionRepo,
		&fakeRewardRepository{rewards: map[string]*entities.Reward{reward.ID.String(): reward}},
		&fakeUserRepository{users: map[string]*entities.User{member.ID.String(): member}},
	)

	return redemptionFixture{
		service:        service,
		redemptionRepo: redemptionRepo,
		member:         member,
		reward:         reward,
	}
}

func TestRequestRedemptionCreatesPendingWithLedger(t *testing.T) {
	fx := newRedemptionFixture(t, 650, 500, true)

	res, err := fx.service.RequestRedemption(context.Background(), fx.member.ID.String(), domain.RedeemRequest{
		RewardID: fx.reward.ID.String(),
	})
	require.NoError(t, err)

	assert.Equal(t, entities.RedemptionStatusPending, res.Status)
	assert.Equal(t, 500, res.PointsUsed)
	assert.Equal(t, "Coffee Voucher", res.RewardName)
	assert.Nil(t, res.CompletedAt)

	require.Len(t, fx.redemptionRepo.ledgers, 1)
	ledger := fx.redemptionRepo.ledgers[0]
	assert.Equal(t, -500, ledger.Points)
	assert.Equal(t, entities.TransactionTypeRedeem, ledger.TransactionType)
	assert.Equal(t, "Redeemed Coffee Voucher", ledger.Description)
	require.NotNil(t, ledger.ReferenceID)
	assert.Equal(t, res.ID, *ledger.ReferenceID)
}

func TestRequestRedemptionInsufficientPoints(t *testing.T) {
	fx := newRedemptionFixture(t, 100, 500, true)

	_, err := fx.service.RequestRedemption(context.Background(), fx.member.ID.String(), domain.RedeemRequest{
		RewardID: fx.reward.ID.String(),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientPoints)
	assert.Empty(t, fx.redemptionRepo.created)
}

func TestRequestRedemptionExactBalanceSucceeds(t *testing.T) {
	fx := newRedemptionFixture(t, 500, 500, true)

	_, err := fx.service.RequestRedemption(context.Background(), fx.member.ID.String(), domain.RedeemRequest{
		RewardID: fx.reward.ID.String(),
	})
	assert.NoError(t, err)
}

func TestRequestRedemptionInactiveReward(t *testing.T) {
	fx := newRedemptionFixture(t, 650, 500, false)

	_, err := fx.service.RequestRedemption(context.Background(), fx.member.ID.String(), domain.RedeemRequest{
		RewardID: fx.reward.ID.String(),
	})
	assert.ErrorIs(t, err, domain.ErrRewardNotActive)
}

func TestRequestRedemptionUnknownReward(t *testing.T) {
	fx := newRedemptionFixture(t, 650, 500, true)

	_, err := fx.service.RequestRedemption(context.Background(), fx.member.ID.String(), domain.RedeemRequest{
		RewardID: uuid.NewString(),
	})
	assert.ErrorIs(t, err, domain.ErrRewardNotFound)
}

func TestUpdateStatusGuardsTransitions(t *testing.T) {
	fx := newRedemptionFixture(t, 650, 500, true)

	res, err := fx.service.RequestRedemption(context.Background(), fx.member.ID.String(), domain.RedeemRequest{
		RewardID: fx.reward.ID.String(),
	})
	require.NoError(t, err)

	err = fx.service.UpdateStatus(context.Background(), res.ID, entities.RedemptionStatusCompleted)
	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)

	require.NoError(t, fx.service.UpdateStatus(context.Background(), res.ID, entities.RedemptionStatusApproved))
	assert.Nil(t, fx.redemptionRepo.updatedCompletedAt)

	require.NoError(t, fx.service.UpdateStatus(context.Background(), res.ID, entities.RedemptionStatusCompleted))
	assert.NotNil(t, fx.redemptionRepo.updatedCompletedAt)

	err = fx.service.UpdateStatus(context.Background(), res.ID, entities.RedemptionStatusCancelled)
	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
}

func TestCancelledRedemptionRefundsPoints(t *testing.T) {
	fx := newRedemptionFixture(t, 650, 500, true)

	res, err := fx.service.RequestRedemption(context.Background(), fx.member.ID.String(), domain.RedeemRequest{
		RewardID: fx.reward.ID.String(),
	})
	require.NoError(t, err)

	require.NoError(t, fx.service.UpdateStatus(context.Background(), res.ID, entities.RedemptionStatusCancelled))

	require.Len(t, fx.redemptionRepo.refunds, 1)
	refund := fx.redemptionRepo.refunds[0]
	assert.Equal(t, 500, refund.Points)
	assert.Equal(t, entities.TransactionTypeEarn, refund.TransactionType)
	assert.Equal(t, fx.member.ID, refund.UserID)
	require.NotNil(t, refund.ReferenceID)
	assert.Equal(t, res.ID, *refund.ReferenceID)
	assert.Equal(t, entities.RedemptionStatusCancelled, fx.redemptionRepo.redemptions[res.ID].Status)
}

func TestCancellingApprovedRedemptionAlsoRefunds(t *testing.T) {
	fx := newRedemptionFixture(t, 650, 500, true)

	res, err := fx.service.RequestRedemption(context.Background(), fx.member.ID.String(), domain.RedeemRequest{
		RewardID: fx.reward.ID.String(),
	})
	require.NoError(t, err)

	require.NoError(t, fx.service.UpdateStatus(context.Background(), res.ID, entities.RedemptionStatusApproved))
	require.NoError(t, fx.service.UpdateStatus(context.Background(), res.ID, entities.RedemptionStatusCancelled))

	require.Len(t, fx.redemptionRepo.refunds, 1)
	assert.Equal(t, 500, fx.redemptionRepo.refunds[0].Points)
}

func TestUpdateStatusUnknownRedemption(t *testing.T) {
	fx := newRedemptionFixture(t, 650, 500, true)

	err := fx.service.UpdateStatus(context.Background(), uuid.NewString(), entities.RedemptionStatusApproved)
	assert.ErrorIs(t, err, domain.ErrRedemptionNotFound)
}
