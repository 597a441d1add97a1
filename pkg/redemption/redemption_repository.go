package redemption

import (
	"Privilege-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	RedemptionRepository interface {
		CreateWithLedger(ctx context.Context, redemption *entities.RedemptionHistory, ledger *entities.PointTransaction) error
		GetUserRedemptions(ctx context.Context, userID string) ([]*entities.RedemptionHistory, error)
		GetRedemptionByID(ctx context.Context, id string) (*entities.RedemptionHistory, error)
		UpdateStatus(ctx context.Context, id string, status string, completedAt *time.Time) error
		CancelWithRefund(ctx context.Context, id string, refund *entities.PointTransaction) error
	}

	redemptionRepository struct {
		db *gorm.DB
	}
)

func NewRedemptionRepository(db *gorm.DB) RedemptionRepository {
	return &redemptionRepository{db: db}
}

// CreateWithLedger stores the redemption request, its redeem ledger
// entry and the balance deduction in one database transaction.
func (r *redemptionRepository) CreateWithLedger(ctx context.Context, redemption *entities.RedemptionHistory, ledger *entities.PointTransaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(redemption).Error; err != nil {
			return err
		}
		if err := tx.Create(ledger).Error; err != nil {
			return err
		}
		return tx.Model(&entities.User{}).
			Where("id = ?", redemption.UserID).
			Updates(map[string]interface{}{
				"points":     gorm.Expr("points + ?", ledger.Points),
				"updated_at": time.Now(),
			}).Error
	})
}

func (r *redemptionRepository) GetUserRedemptions(ctx context.Context, userID string) ([]*entities.RedemptionHistory, error) {
	var redemptions []*entities.RedemptionHistory
	if err := r.db.WithContext(ctx).
		Preload("Reward").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&redemptions).Error; err != nil {
		return nil, err
	}
	return redemptions, nil
}

func (r *redemptionRepository) GetRedemptionByID(ctx context.Context, id string) (*entities.RedemptionHistory, error) {
	var redemption entities.RedemptionHistory
	if err := r.db.WithContext(ctx).
		Preload("Reward").
		Preload("User").
		Where("id = ?", id).
		First(&redemption).Error; err != nil {
		return nil, err
	}
	return &redemption, nil
}

// CancelWithRefund flips the redemption to cancelled and returns the
// deducted points through a compensating ledger entry, all in one
// database transaction.
func (r *redemptionRepository) CancelWithRefund(ctx context.Context, id string, refund *entities.PointTransaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.RedemptionHistory{}).
			Where("id = ?", id).
			Update("status", entities.RedemptionStatusCancelled).Error; err != nil {
			return err
		}
		if err := tx.Create(refund).Error; err != nil {
			return err
		}
		return tx.Model(&entities.User{}).
			Where("id = ?", refund.UserID).
			Updates(map[string]interface{}{
				"points":     gorm.Expr("points + ?", refund.Points),
				"updated_at": time.Now(),
			}).Error
	})
}

func (r *redemptionRepository) UpdateStatus(ctx context.Context, id string, status string, completedAt *time.Time) error {
	updates := map[string]interface{}{"status": status}
	if completedAt != nil {
		updates["completed_at"] = *completedAt
	}
	return r.db.WithContext(ctx).Model(&entities.RedemptionHistory{}).
		Where("id = ?", id).
		Updates(updates).Error
}
