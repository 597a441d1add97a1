package points

import (
	"Privilege-Backend/domain"
	"Privilege-Backend/entities"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePointsRepository struct {
	transactions   []*entities.PointTransaction
	appended       []*entities.PointTransaction
	requestedLimit int
	total          int
}

func (f *fakePointsRepository) GetUserTransactions(ctx context.Context, userID string, limit int) ([]*entities.PointTransaction, error) {
	f.requestedLimit = limit
	return f.transactions, nil
}

func (f *fakePointsRepository) AppendTransaction(ctx context.Context, transaction *entities.PointTransaction) error {
	f.appended = append(f.appended, transaction)
	f.total += transaction.Points
	return nil
}

func (f *fakePointsRepository) GetUserTotalPoints(ctx context.Context, userID string) (int, error) {
	return f.total, nil
}

func TestAddTransactionRejectsBadUserID(t *testing.T) {
	repo := &fakePointsRepository{}
	service := NewPointsService(repo)

	_, err := service.AddTransaction(context.Background(), "not-a-uuid", 100, entities.TransactionTypeEarn, "purchase", nil)
	assert.ErrorIs(t, err, domain.ErrParseUUID)
	assert.Empty(t, repo.appended)
}

func TestAddTransactionRecordsSignedEntry(t *testing.T) {
	repo := &fakePointsRepository{}
	service := NewPointsService(repo)
	userID := uuid.NewString()
	reference := uuid.NewString()

	res, err := service.AddTransaction(context.Background(), userID, -500, entities.TransactionTypeRedeem, "Redeemed Coffee Voucher", &reference)
	require.NoError(t, err)

	require.Len(t, repo.appended, 1)
	stored := repo.appended[0]
	assert.Equal(t, userID, stored.UserID.String())
	assert.Equal(t, -500, stored.Points)
	assert.Equal(t, entities.TransactionTypeRedeem, stored.TransactionType)
	require.NotNil(t, stored.ReferenceID)
	assert.Equal(t, reference, *stored.ReferenceID)

	assert.Equal(t, stored.ID.String(), res.ID)
	assert.Equal(t, -500, res.Points)
}

func TestLedgerSumMatchesSignedDeltas(t *testing.T) {
	repo := &fakePointsRepository{}
	service := NewPointsService(repo)
	userID := uuid.NewString()

	for _, entry := range []struct {
		points int
		txType string
	}{
		{1000, entities.TransactionTypeBonus},
		{150, entities.TransactionTypeEarn},
		{-500, entities.TransactionTypeRedeem},
	} {
		_, err := service.AddTransaction(context.Background(), userID, entry.points, entry.txType, "entry", nil)
		require.NoError(t, err)
	}

	total, err := service.GetUserTotalPoints(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 650, total)
}

func TestGetUserTransactionsDefaultsLimit(t *testing.T) {
	repo := &fakePointsRepository{}
	service := NewPointsService(repo)

	_, err := service.GetUserTransactions(context.Background(), uuid.NewString(), 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultHistoryLimit, repo.requestedLimit)

	_, err = service.GetUserTransactions(context.Background(), uuid.NewString(), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, repo.requestedLimit)
}
