package points

import (
	"Privilege-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	PointsRepository interface {
		GetUserTransactions(ctx context.Context, userID string, limit int) ([]*entities.PointTransaction, error)
		AppendTransaction(ctx context.Context, transaction *entities.PointTransaction) error
		GetUserTotalPoints(ctx context.Context, userID string) (int, error)
	}

	pointsRepository struct {
		db *gorm.DB
	}
)

func NewPointsRepository(db *gorm.DB) PointsRepository {
	return &pointsRepository{db: db}
}

func (r *pointsRepository) GetUserTransactions(ctx context.Context, userID string, limit int) ([]*entities.PointTransaction, error) {
	var transactions []*entities.PointTransaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

// AppendTransaction writes the ledger entry and moves the user's
// denormalized balance by the same delta in a single database
// transaction. The ledger is the source of truth; the balance column is
// a cache that must never be updated through any other write path.
func (r *pointsRepository) AppendTransaction(ctx context.Context, transaction *entities.PointTransaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transaction).Error; err != nil {
			return err
		}
		return tx.Model(&entities.User{}).
			Where("id = ?", transaction.UserID).
			Updates(map[string]interface{}{
				"points":     gorm.Expr("points + ?", transaction.Points),
				"updated_at": time.Now(),
			}).Error
	})
}

func (r *pointsRepository) GetUserTotalPoints(ctx context.Context, userID string) (int, error) {
	var total int
	query := r.db.WithContext(ctx).
		Model(&entities.PointTransaction{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(points), 0) as total")
	if err := query.Row().Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
