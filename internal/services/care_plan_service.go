package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"clean/internal/models/db_models"
	"clean/internal/models/request_models"
	"clean/internal/models/response_models"
	"clean/internal/repositories"
	"clean/pkg/utils"
)

type CarePlanServiceInterface interface {
	Create(ctx context.Context, accountID string, request request_models.CreateCarePlanRequest) (response_models.CarePlanResponse, error)
	List(ctx context.Context, accountID string) ([]response_models.CarePlanResponse, error)
	AddContent(ctx context.Context, accountID, planID string, request request_models.CarePlanContentRequest) (response_models.CarePlanResponse, error)
	Rate(ctx context.Context, accountID, planID string, liked bool) (response_models.CarePlanResponse, error)
}

type CarePlanService struct {
	planRepo     repositories.CarePlanRepository
	cosmeticRepo repositories.CosmeticRepository
}

func NewCarePlanService(planRepo repositories.CarePlanRepository, cosmeticRepo repositories.CosmeticRepository) CarePlanServiceInterface {
	return &CarePlanService{planRepo: planRepo, cosmeticRepo: cosmeticRepo}
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be YYYY-MM-DD", utils.ErrInvalidInput, field)
	}
	return t, nil
}

func (s *CarePlanService) Create(ctx context.Context, accountID string, request request_models.CreateCarePlanRequest) (response_models.CarePlanResponse, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return response_models.CarePlanResponse{}, utils.ErrAccountNotFound
	}

	start, err := parseDate("start_date", request.StartDate)
	if err != nil {
		return response_models.CarePlanResponse{}, err
	}
	plan := &db_models.CarePlan{
		AccountID:   id,
		PlanName:    strings.TrimSpace(request.PlanName),
		Description: request.Description,
		StartDate:   start,
	}
	if request.EndDate != "" {
		end, err := parseDate("end_date", request.EndDate)
		if err != nil {
			return response_models.CarePlanResponse{}, err
		}
		if end.Before(start) {
			return response_models.CarePlanResponse{}, fmt.Errorf("%w: end_date is before start_date", utils.ErrInvalidInput)
		}
		plan.EndDate = &end
	}

	if err := s.planRepo.Create(ctx, plan); err != nil {
		return response_models.CarePlanResponse{}, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return toCarePlanResponse(plan), nil
}

func (s *CarePlanService) List(ctx context.Context, accountID string) ([]response_models.CarePlanResponse, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrAccountNotFound
	}
	plans, err := s.planRepo.ListByAccount(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	resp := make([]response_models.CarePlanResponse, 0, len(plans))
	for i := range plans {
		resp = append(resp, toCarePlanResponse(&plans[i]))
	}
	return resp, nil
}

func (s *CarePlanService) AddContent(ctx context.Context, accountID, planID string, request request_models.CarePlanContentRequest) (response_models.CarePlanResponse, error) {
	plan, err := s.findPlan(ctx, planID)
	if err != nil {
		return response_models.CarePlanResponse{}, err
	}
	if plan.AccountID.String() != accountID {
		return response_models.CarePlanResponse{}, utils.ErrForbidden
	}
	if err := ensureCosmetic(ctx, s.cosmeticRepo, request.Cosmetic); err != nil {
		return response_models.CarePlanResponse{}, err
	}

	content := &db_models.CarePlanContent{
		PlanID:          plan.ID,
		CosmeticBarcode: request.Cosmetic,
		Frequency:       strings.TrimSpace(request.Frequency),
		TimeOfDay:       strings.TrimSpace(request.TimeOfDay),
		Notes:           request.Notes,
	}
	if err := s.planRepo.AddContent(ctx, content); err != nil {
		return response_models.CarePlanResponse{}, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return s.reload(ctx, plan.ID)
}

func (s *CarePlanService) Rate(ctx context.Context, accountID, planID string, liked bool) (response_models.CarePlanResponse, error) {
	raterID, err := uuid.Parse(accountID)
	if err != nil {
		return response_models.CarePlanResponse{}, utils.ErrAccountNotFound
	}
	plan, err := s.findPlan(ctx, planID)
	if err != nil {
		return response_models.CarePlanResponse{}, err
	}

	rating := &db_models.CarePlanRating{PlanID: plan.ID, AccountID: raterID, Rating: liked}
	if err := s.planRepo.UpsertRating(ctx, rating); err != nil {
		return response_models.CarePlanResponse{}, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return s.reload(ctx, plan.ID)
}

func (s *CarePlanService) findPlan(ctx context.Context, planID string) (*db_models.CarePlan, error) {
	id, err := uuid.Parse(planID)
	if err != nil {
		return nil, utils.ErrCarePlanNotFound
	}
	plan, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if plan == nil {
		return nil, utils.ErrCarePlanNotFound
	}
	return plan, nil
}

func (s *CarePlanService) reload(ctx context.Context, id uuid.UUID) (response_models.CarePlanResponse, error) {
	plan, err := s.findPlan(ctx, id.String())
	if err != nil {
		return response_models.CarePlanResponse{}, err
	}
	return toCarePlanResponse(plan), nil
}
