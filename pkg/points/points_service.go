package points

import (
	"Privilege-Backend/domain"
	"Privilege-Backend/entities"
	"context"
	"time"

	"github.com/google/uuid"
)

const DefaultHistoryLimit = 20

type (
	PointsService interface {
		GetUserTransactions(ctx context.Context, userID string, limit int) ([]domain.TransactionResponse, error)
		AddTransaction(ctx context.Context, userID string, points int, transactionType, description string, referenceID *string) (domain.TransactionResponse, error)
		GetUserTotalPoints(ctx context.Context, userID string) (int, error)
	}

	pointsService struct {
		pointsRepository PointsRepository
	}
)

func NewPointsService(pointsRepository PointsRepository) PointsService {
	return &pointsService{pointsRepository: pointsRepository}
}

func (s *pointsService) GetUserTransactions(ctx context.Context, userID string, limit int) ([]domain.TransactionResponse, error) {
	if limit < 1 {
		limit = DefaultHistoryLimit
	}

	transactions, err := s.pointsRepository.GetUserTransactions(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	result := make([]domain.TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		result = append(result, toTransactionResponse(tx))
	}
	return result, nil
}

func (s *pointsService) AddTransaction(ctx context.Context, userID string, points int, transactionType, description string, referenceID *string) (domain.TransactionResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.TransactionResponse{}, domain.ErrParseUUID
	}

	transaction := &entities.PointTransaction{
		ID:              uuid.New(),
		UserID:          userUUID,
		Points:          points,
		TransactionType: transactionType,
		Description:     description,
		ReferenceID:     referenceID,
		CreatedAt:       time.Now(),
	}

	if err := s.pointsRepository.AppendTransaction(ctx, transaction); err != nil {
		return domain.TransactionResponse{}, err
	}

	return toTransactionResponse(transaction), nil
}

// GetUserTotalPoints sums the ledger independently of the cached
// balance on the user row, so the two can be compared for audits.
func (s *pointsService) GetUserTotalPoints(ctx context.Context, userID string) (int, error) {
	return s.pointsRepository.GetUserTotalPoints(ctx, userID)
}

func toTransactionResponse(tx *entities.PointTransaction) domain.TransactionResponse {
	return domain.TransactionResponse{
		ID:              tx.ID.String(),
		UserID:          tx.UserID.String(),
		Points:          tx.Points,
		TransactionType: tx.TransactionType,
		Description:     tx.Description,
		ReferenceID:     tx.ReferenceID,
		CreatedAt:       tx.CreatedAt,
	}
}
