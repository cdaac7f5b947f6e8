package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"clean/internal/models/db_models"
)

type CarePlanRepository interface {
	Create(ctx context.Context, plan *db_models.CarePlan) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.CarePlan, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.CarePlan, error)
	AddContent(ctx context.Context, content *db_models.CarePlanContent) error
	UpsertRating(ctx context.Context, rating *db_models.CarePlanRating) error
}

type carePlanRepository struct {
	db *gorm.DB
}

func NewCarePlanRepository(db *gorm.DB) CarePlanRepository {
	return &carePlanRepository{db: db}
}

func (r *carePlanRepository) Create(ctx context.Context, plan *db_models.CarePlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *carePlanRepository) withDetails(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Contents", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Contents.Cosmetic").
		Preload("Ratings")
}

func (r *carePlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.CarePlan, error) {
	var plan db_models.CarePlan
	err := r.withDetails(ctx).First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *carePlanRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.CarePlan, error) {
	var plans []db_models.CarePlan
	err := r.withDetails(ctx).
		Where("account_id = ?", accountID).
		Order("start_date DESC").
		Find(&plans).Error
	return plans, err
}

func (r *carePlanRepository) AddContent(ctx context.Context, content *db_models.CarePlanContent) error {
	return r.db.WithContext(ctx).Create(content).Error
}

func (r *carePlanRepository) UpsertRating(ctx context.Context, rating *db_models.CarePlanRating) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "plan_id"}, {Name: "account_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_at"}),
	}).Create(rating).Error
}
