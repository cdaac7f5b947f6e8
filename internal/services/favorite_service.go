package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clean/internal/models/db_models"
	"clean/internal/models/response_models"
	"clean/internal/repositories"
	"clean/pkg/utils"
)

type FavoriteServiceInterface interface {
	Add(ctx context.Context, accountID, barcode string) (response_models.FavoriteResponse, error)
	Remove(ctx context.Context, accountID, barcode string) error
	List(ctx context.Context, accountID string) ([]response_models.FavoriteResponse, error)
}

type FavoriteService struct {
	favoriteRepo repositories.FavoriteRepository
	cosmeticRepo repositories.CosmeticRepository
}

func NewFavoriteService(favoriteRepo repositories.FavoriteRepository, cosmeticRepo repositories.CosmeticRepository) FavoriteServiceInterface {
	return &FavoriteService{favoriteRepo: favoriteRepo, cosmeticRepo: cosmeticRepo}
}

func (s *FavoriteService) Add(ctx context.Context, accountID, barcode string) (response_models.FavoriteResponse, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return response_models.FavoriteResponse{}, utils.ErrAccountNotFound
	}
	cosmetic, err := s.cosmeticRepo.FindByBarcode(ctx, barcode)
	if err != nil {
		return response_models.FavoriteResponse{}, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if cosmetic == nil {
		return response_models.FavoriteResponse{}, utils.ErrCosmeticNotFound
	}

	favorite := &db_models.FavoriteProduct{AccountID: id, CosmeticBarcode: barcode, Cosmetic: *cosmetic}
	if err := s.favoriteRepo.Create(ctx, favorite); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response_models.FavoriteResponse{}, utils.ErrAlreadyFavorite
		}
		return response_models.FavoriteResponse{}, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return response_models.FavoriteResponse{ID: favorite.ID.String(), Cosmetic: toCosmeticResponse(cosmetic)}, nil
}

func (s *FavoriteService) Remove(ctx context.Context, accountID, barcode string) error {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return utils.ErrAccountNotFound
	}
	rows, err := s.favoriteRepo.Delete(ctx, id, barcode)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if rows == 0 {
		return utils.ErrFavoriteNotFound
	}
	return nil
}

func (s *FavoriteService) List(ctx context.Context, accountID string) ([]response_models.FavoriteResponse, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrAccountNotFound
	}
	favorites, err := s.favoriteRepo.ListByAccount(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	resp := make([]response_models.FavoriteResponse, 0, len(favorites))
	for i := range favorites {
		resp = append(resp, response_models.FavoriteResponse{
			ID:       favorites[i].ID.String(),
			Cosmetic: toCosmeticResponse(&favorites[i].Cosmetic),
		})
	}
	return resp, nil
}
