package milestone

import (
	"Privilege-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	MilestoneRepository interface {
		GetActiveMilestones(ctx context.Context) ([]*entities.Milestone, error)
	}

	milestoneRepository struct {
		db *gorm.DB
	}
)

func NewMilestoneRepository(db *gorm.DB) MilestoneRepository {
	return &milestoneRepository{db: db}
}

func (r *milestoneRepository) GetActiveMilestones(ctx context.Context) ([]*entities.Milestone, error) {
	var milestones []*entities.Milestone
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("points_required ASC").
		Find(&milestones).Error; err != nil {
		return nil, err
	}
	return milestones, nil
}
