package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"clean/internal/cleanscore"
	"clean/internal/models/db_models"
	"clean/internal/models/request_models"
	"clean/internal/models/response_models"
	"clean/internal/repositories"
	"clean/pkg/utils"
)

const (
	minBarcodeLength = 8
	maxBarcodeLength = 13
)

type CosmeticServiceInterface interface {
	Search(ctx context.Context, request request_models.SearchCosmeticsRequest) ([]response_models.CosmeticResponse, error)
	Get(ctx context.Context, barcode string) (response_models.CosmeticResponse, error)
	Create(ctx context.Context, request request_models.CosmeticRequest, role string) (response_models.CosmeticResponse, error)
	Update(ctx context.Context, barcode string, request request_models.UpdateCosmeticRequest) (response_models.CosmeticResponse, error)
	Delete(ctx context.Context, barcode string) error
	Verify(ctx context.Context, barcode string, verified bool) error

	GetComposition(ctx context.Context, barcode string) ([]response_models.CompositionItemResponse, error)
	AddComposition(ctx context.Context, request request_models.CompositionRequest) (response_models.CompositionItemResponse, error)
	ClearComposition(ctx context.Context, barcode string) (int64, error)

	CleanScore(ctx context.Context, barcode string) (cleanscore.Breakdown, error)
	Summary(ctx context.Context, barcode string) (response_models.CosmeticSummaryResponse, error)
}

type CosmeticService struct {
	cosmeticRepo    repositories.CosmeticRepository
	compositionRepo repositories.CompositionRepository
	ingredientRepo  repositories.IngredientRepository
}

func NewCosmeticService(
	cosmeticRepo repositories.CosmeticRepository,
	compositionRepo repositories.CompositionRepository,
	ingredientRepo repositories.IngredientRepository,
) CosmeticServiceInterface {
	return &CosmeticService{
		cosmeticRepo:    cosmeticRepo,
		compositionRepo: compositionRepo,
		ingredientRepo:  ingredientRepo,
	}
}

// ValidBarcode reports whether barcode is an EAN-8 to EAN-13 style digit string.
func ValidBarcode(barcode string) bool {
	if len(barcode) < minBarcodeLength || len(barcode) > maxBarcodeLength {
		return false
	}
	for _, r := range barcode {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (s *CosmeticService) Search(ctx context.Context, request request_models.SearchCosmeticsRequest) ([]response_models.CosmeticResponse, error) {
	if barcode := strings.TrimSpace(request.Barcode); barcode != "" {
		cosmetic, err := s.cosmeticRepo.FindByBarcode(ctx, barcode)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
		if cosmetic == nil {
			return []response_models.CosmeticResponse{}, nil
		}
		return []response_models.CosmeticResponse{toCosmeticResponse(cosmetic)}, nil
	}

	cosmetics, err := s.cosmeticRepo.Search(ctx, strings.TrimSpace(request.Query), request.Page, request.PageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	resp := make([]response_models.CosmeticResponse, 0, len(cosmetics))
	for i := range cosmetics {
		resp = append(resp, toCosmeticResponse(&cosmetics[i]))
	}
	return resp, nil
}

func (s *CosmeticService) Get(ctx context.Context, barcode string) (response_models.CosmeticResponse, error) {
	cosmetic, err := s.findCosmetic(ctx, barcode)
	if err != nil {
		return response_models.CosmeticResponse{}, err
	}
	return toCosmeticResponse(cosmetic), nil
}

func (s *CosmeticService) Create(ctx context.Context, request request_models.CosmeticRequest, role string) (response_models.CosmeticResponse, error) {
	barcode := strings.TrimSpace(request.Barcode)
	if !ValidBarcode(barcode) {
		return response_models.CosmeticResponse{}, utils.ErrInvalidBarcode
	}

	cosmetic := &db_models.Cosmetic{
		Barcode:      barcode,
		ProductName:  strings.TrimSpace(request.ProductName),
		Manufacturer: strings.TrimSpace(request.Manufacturer),
		Description:  request.Description,
		Category:     strings.TrimSpace(request.Category),
		PurchaseLink: request.PurchaseLink,
		IsVerified:   role == db_models.RoleAdmin,
	}

	if err := s.cosmeticRepo.Create(ctx, cosmetic); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response_models.CosmeticResponse{}, utils.ErrCosmeticAlreadyExists
		}
		return response_models.CosmeticResponse{}, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	zap.L().Info("cosmetic created",
		zap.String("barcode", cosmetic.Barcode),
		zap.Bool("verified", cosmetic.IsVerified))
	return toCosmeticResponse(cosmetic), nil
}

func (s *CosmeticService) Update(ctx context.Context, barcode string, request request_models.UpdateCosmeticRequest) (response_models.CosmeticResponse, error) {
	cosmetic, err := s.findCosmetic(ctx, barcode)
	if err != nil {
		return response_models.CosmeticResponse{}, err
	}

	cosmetic.ProductName = strings.TrimSpace(request.ProductName)
	cosmetic.Manufacturer = strings.TrimSpace(request.Manufacturer)
	cosmetic.Description = request.Description
	cosmetic.Category = strings.TrimSpace(request.Category)
	cosmetic.PurchaseLink = request.PurchaseLink

	if err := s.cosmeticRepo.Update(ctx, cosmetic); err != nil {
		return response_models.CosmeticResponse{}, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return toCosmeticResponse(cosmetic), nil
}

func (s *CosmeticService) Delete(ctx context.Context, barcode string) error {
	rows, err := s.cosmeticRepo.Delete(ctx, barcode)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if rows == 0 {
		return utils.ErrCosmeticNotFound
	}
	zap.L().Info("cosmetic deleted", zap.String("barcode", barcode))
	return nil
}

func (s *CosmeticService) Verify(ctx context.Context, barcode string, verified bool) error {
	rows, err := s.cosmeticRepo.SetVerified(ctx, barcode, verified)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if rows == 0 {
		return utils.ErrCosmeticNotFound
	}
	return nil
}

func (s *CosmeticService) GetComposition(ctx context.Context, barcode string) ([]response_models.CompositionItemResponse, error) {
	if _, err := s.findCosmetic(ctx, barcode); err != nil {
		return nil, err
	}
	return s.listComposition(ctx, barcode)
}

func (s *CosmeticService) listComposition(ctx context.Context, barcode string) ([]response_models.CompositionItemResponse, error) {
	items, err := s.compositionRepo.ListByCosmetic(ctx, barcode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	resp := make([]response_models.CompositionItemResponse, 0, len(items))
	for i := range items {
		resp = append(resp, toCompositionResponse(&items[i]))
	}
	return resp, nil
}

func (s *CosmeticService) AddComposition(ctx context.Context, request request_models.CompositionRequest) (response_models.CompositionItemResponse, error) {
	if _, err := s.findCosmetic(ctx, request.Cosmetic); err != nil {
		return response_models.CompositionItemResponse{}, err
	}
	ingredient, err := s.ingredientRepo.FindByRefNo(ctx, request.Ingredient)
	if err != nil {
		return response_models.CompositionItemResponse{}, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if ingredient == nil {
		return response_models.CompositionItemResponse{}, utils.ErrIngredientNotFound
	}

	composition := &db_models.CosmeticComposition{
		CosmeticBarcode: request.Cosmetic,
		IngredientRefNo: ingredient.CosingRefNo,
	}
	if request.OrderInComposition != nil {
		composition.OrderInComposition = *request.OrderInComposition
	}

	if err := s.compositionRepo.Add(ctx, composition); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response_models.CompositionItemResponse{}, utils.ErrCompositionConflict
		}
		return response_models.CompositionItemResponse{}, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	composition.Ingredient = *ingredient

	return toCompositionResponse(composition), nil
}

func (s *CosmeticService) ClearComposition(ctx context.Context, barcode string) (int64, error) {
	if _, err := s.findCosmetic(ctx, barcode); err != nil {
		return 0, err
	}
	rows, err := s.compositionRepo.DeleteByCosmetic(ctx, barcode)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return rows, nil
}

func (s *CosmeticService) CleanScore(ctx context.Context, barcode string) (cleanscore.Breakdown, error) {
	items, err := s.GetComposition(ctx, barcode)
	if err != nil {
		return cleanscore.Breakdown{}, err
	}
	return scoreComposition(items), nil
}

// Summary loads the product, its composition and the clean score in parallel.
func (s *CosmeticService) Summary(ctx context.Context, barcode string) (response_models.CosmeticSummaryResponse, error) {
	var (
		summary     response_models.CosmeticSummaryResponse
		composition []response_models.CompositionItemResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cosmetic, err := s.Get(gctx, barcode)
		if err != nil {
			return err
		}
		summary.Cosmetic = cosmetic
		return nil
	})
	g.Go(func() error {
		items, err := s.listComposition(gctx, barcode)
		if err != nil {
			return err
		}
		composition = items
		return nil
	})
	if err := g.Wait(); err != nil {
		return response_models.CosmeticSummaryResponse{}, err
	}

	summary.Composition = composition
	summary.CleanScore = scoreComposition(composition)
	return summary, nil
}

func (s *CosmeticService) findCosmetic(ctx context.Context, barcode string) (*db_models.Cosmetic, error) {
	cosmetic, err := s.cosmeticRepo.FindByBarcode(ctx, barcode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if cosmetic == nil {
		return nil, utils.ErrCosmeticNotFound
	}
	return cosmetic, nil
}

func scoreComposition(items []response_models.CompositionItemResponse) cleanscore.Breakdown {
	ratings := make([]string, 0, len(items))
	for _, item := range items {
		ratings = append(ratings, item.Ingredient.SafetyRating)
	}
	return cleanscore.Compute(ratings)
}
