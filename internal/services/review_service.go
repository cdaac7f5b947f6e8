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
	"clean/internal/skinprofile"
	"clean/pkg/utils"
)

const (
	minRating = 1
	maxRating = 5
)

type ReviewServiceInterface interface {
	AddReview(ctx context.Context, accountID, barcode string, request request_models.ReviewRequest) (response_models.ReviewResponse, error)
	ListReviews(ctx context.Context, barcode string, page, pageSize int) ([]response_models.ReviewResponse, error)
	AddExpertOpinion(ctx context.Context, accountID, barcode string, request request_models.ExpertOpinionRequest) (response_models.ExpertOpinionResponse, error)
	ListExpertOpinions(ctx context.Context, barcode string) ([]response_models.ExpertOpinionResponse, error)
}

type ReviewService struct {
	reviewRepo   repositories.ReviewRepository
	opinionRepo  repositories.ExpertOpinionRepository
	cosmeticRepo repositories.CosmeticRepository
	accountRepo  repositories.AccountRepository
	now          func() time.Time
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	opinionRepo repositories.ExpertOpinionRepository,
	cosmeticRepo repositories.CosmeticRepository,
	accountRepo repositories.AccountRepository,
) ReviewServiceInterface {
	return &ReviewService{
		reviewRepo:   reviewRepo,
		opinionRepo:  opinionRepo,
		cosmeticRepo: cosmeticRepo,
		accountRepo:  accountRepo,
		now:          time.Now,
	}
}

func (s *ReviewService) AddReview(ctx context.Context, accountID, barcode string, request request_models.ReviewRequest) (response_models.ReviewResponse, error) {
	if request.Rating < minRating || request.Rating > maxRating {
		return response_models.ReviewResponse{}, utils.ErrInvalidRating
	}
	account, err := s.prepare(ctx, accountID, barcode)
	if err != nil {
		return response_models.ReviewResponse{}, err
	}

	review := &db_models.Review{
		CosmeticBarcode: barcode,
		AccountID:       account.ID,
		Title:           strings.TrimSpace(request.Title),
		Content:         request.Content,
		Rating:          request.Rating,
		ReviewDate:      s.now().UTC().Truncate(24 * time.Hour),
		Account:         *account,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return response_models.ReviewResponse{}, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return toReviewResponse(review), nil
}

func (s *ReviewService) ListReviews(ctx context.Context, barcode string, page, pageSize int) ([]response_models.ReviewResponse, error) {
	if err := s.ensureCosmetic(ctx, barcode); err != nil {
		return nil, err
	}
	reviews, err := s.reviewRepo.ListByCosmetic(ctx, barcode, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	resp := make([]response_models.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		resp = append(resp, toReviewResponse(&reviews[i]))
	}
	return resp, nil
}

func (s *ReviewService) AddExpertOpinion(ctx context.Context, accountID, barcode string, request request_models.ExpertOpinionRequest) (response_models.ExpertOpinionResponse, error) {
	if request.Rating < minRating || request.Rating > maxRating {
		return response_models.ExpertOpinionResponse{}, utils.ErrInvalidRating
	}
	for _, t := range request.SkinTypes {
		if _, ok := skinprofile.ParseSkinType(t); !ok {
			return response_models.ExpertOpinionResponse{}, fmt.Errorf("%w: %q", utils.ErrInvalidSkinType, t)
		}
	}
	account, err := s.prepare(ctx, accountID, barcode)
	if err != nil {
		return response_models.ExpertOpinionResponse{}, err
	}

	opinion := &db_models.ExpertOpinion{
		CosmeticBarcode: barcode,
		AccountID:       account.ID,
		ExpertTitle:     strings.TrimSpace(request.ExpertTitle),
		Rating:          request.Rating,
		Content:         request.Content,
		Recommendation:  request.Recommendation,
		SkinTypes:       request.SkinTypes,
		Account:         *account,
	}
	if err := s.opinionRepo.Create(ctx, opinion); err != nil {
		return response_models.ExpertOpinionResponse{}, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return toExpertOpinionResponse(opinion), nil
}

func (s *ReviewService) ListExpertOpinions(ctx context.Context, barcode string) ([]response_models.ExpertOpinionResponse, error) {
	if err := s.ensureCosmetic(ctx, barcode); err != nil {
		return nil, err
	}
	opinions, err := s.opinionRepo.ListByCosmetic(ctx, barcode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	resp := make([]response_models.ExpertOpinionResponse, 0, len(opinions))
	for i := range opinions {
		resp = append(resp, toExpertOpinionResponse(&opinions[i]))
	}
	return resp, nil
}

// prepare resolves the author and checks the product exists.
func (s *ReviewService) prepare(ctx context.Context, accountID, barcode string) (*db_models.Account, error) {
	if err := s.ensureCosmetic(ctx, barcode); err != nil {
		return nil, err
	}
	id, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrAccountNotFound
	}
	account, err := s.accountRepo.FindById(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return account, nil
}

func (s *ReviewService) ensureCosmetic(ctx context.Context, barcode string) error {
	return ensureCosmetic(ctx, s.cosmeticRepo, barcode)
}

func ensureCosmetic(ctx context.Context, repo repositories.CosmeticRepository, barcode string) error {
	cosmetic, err := repo.FindByBarcode(ctx, barcode)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if cosmetic == nil {
		return utils.ErrCosmeticNotFound
	}
	return nil
}
