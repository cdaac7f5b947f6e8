package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"clean/internal/cleanscore"
	"clean/internal/models/db_models"
	"clean/internal/models/request_models"
	"clean/internal/models/response_models"
	"clean/internal/repositories"
	"clean/pkg/embedding"
	"clean/pkg/utils"
)

const (
	DefaultIngredientLimit = 10
	MaxIngredientLimit     = 100

	DefaultSimilarLimit = 5
	MaxSimilarLimit     = 50
	minSimilarity       = 0.5
)

type IngredientServiceInterface interface {
	Search(ctx context.Context, query string, limit int) ([]response_models.IngredientResponse, error)
	Get(ctx context.Context, refNo int) (response_models.IngredientResponse, error)
	Similar(ctx context.Context, refNo int, limit int) ([]response_models.SimilarIngredientResponse, error)
	Curate(ctx context.Context, refNo int, req request_models.CurateIngredientRequest) (response_models.IngredientResponse, error)
}

type IngredientService struct {
	ingredientRepo repositories.IngredientRepository
	embeddingRepo  repositories.IngredientEmbeddingRepository
	embedder       embedding.Client
}

func NewIngredientService(
	ingredientRepo repositories.IngredientRepository,
	embeddingRepo repositories.IngredientEmbeddingRepository,
	embedder embedding.Client,
) IngredientServiceInterface {
	return &IngredientService{
		ingredientRepo: ingredientRepo,
		embeddingRepo:  embeddingRepo,
		embedder:       embedder,
	}
}

func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

func (s *IngredientService) Search(ctx context.Context, query string, limit int) ([]response_models.IngredientResponse, error) {
	limit = clampLimit(limit, DefaultIngredientLimit, MaxIngredientLimit)

	ingredients, err := s.ingredientRepo.Search(ctx, strings.TrimSpace(query), limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	resp := make([]response_models.IngredientResponse, 0, len(ingredients))
	for i := range ingredients {
		resp = append(resp, toIngredientResponse(&ingredients[i]))
	}
	return resp, nil
}

func (s *IngredientService) Get(ctx context.Context, refNo int) (response_models.IngredientResponse, error) {
	ingredient, err := s.findIngredient(ctx, refNo)
	if err != nil {
		return response_models.IngredientResponse{}, err
	}
	return toIngredientResponse(ingredient), nil
}

// Similar embeds the ingredient on first use and returns its nearest
// neighbours among the ingredients that already have an embedding.
func (s *IngredientService) Similar(ctx context.Context, refNo int, limit int) ([]response_models.SimilarIngredientResponse, error) {
	limit = clampLimit(limit, DefaultSimilarLimit, MaxSimilarLimit)

	ingredient, err := s.findIngredient(ctx, refNo)
	if err != nil {
		return nil, err
	}

	stored, err := s.embeddingRepo.FindByRefNo(ctx, refNo)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if stored == nil || stored.Model != s.embedder.Model() {
		stored, err = s.embed(ctx, ingredient)
		if err != nil {
			return nil, err
		}
	}

	neighbours, err := s.embeddingRepo.Nearest(ctx, stored.Embedding, stored.Model, refNo, minSimilarity, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	resp := make([]response_models.SimilarIngredientResponse, 0, len(neighbours))
	for i := range neighbours {
		resp = append(resp, response_models.SimilarIngredientResponse{
			IngredientResponse: toIngredientResponse(&neighbours[i].Ingredient),
			Similarity:         neighbours[i].Similarity,
		})
	}
	return resp, nil
}

// Curate sets the fields the clean score is computed from. COSING imports
// never overwrite them.
func (s *IngredientService) Curate(ctx context.Context, refNo int, req request_models.CurateIngredientRequest) (response_models.IngredientResponse, error) {
	rating := strings.ToLower(strings.TrimSpace(req.SafetyRating))
	if !cleanscore.IsValidRating(rating) {
		return response_models.IngredientResponse{}, fmt.Errorf("%w: unknown safety rating %q", utils.ErrInvalidInput, req.SafetyRating)
	}

	rows, err := s.ingredientRepo.UpdateCuration(ctx, refNo, rating, req.RestrictionDescription)
	if err != nil {
		return response_models.IngredientResponse{}, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if rows == 0 {
		return response_models.IngredientResponse{}, utils.ErrIngredientNotFound
	}

	zap.L().Info("ingredient curated", zap.Int("ref_no", refNo), zap.String("safety_rating", rating))
	return s.Get(ctx, refNo)
}

func (s *IngredientService) embed(ctx context.Context, ingredient *db_models.Ingredient) (*db_models.IngredientEmbedding, error) {
	text := EmbeddingText(ingredient)
	vectors, err := s.embedder.Embed(ctx, []string{text})
	if err != nil {
		if errors.Is(err, embedding.ErrDisabled) {
			return nil, utils.ErrEmbeddingUnavailable
		}
		zap.L().Error("embedding ingredient failed", zap.Int("ref_no", ingredient.CosingRefNo), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", utils.ErrEmbeddingUnavailable, err)
	}

	record := &db_models.IngredientEmbedding{
		IngredientRefNo: ingredient.CosingRefNo,
		SourceText:      text,
		Model:           s.embedder.Model(),
		Embedding:       vectors[0],
	}
	if err := s.embeddingRepo.Upsert(ctx, record); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	zap.L().Debug("ingredient embedded", zap.Int("ref_no", ingredient.CosingRefNo), zap.String("model", record.Model))
	return record, nil
}

func (s *IngredientService) findIngredient(ctx context.Context, refNo int) (*db_models.Ingredient, error) {
	ingredient, err := s.ingredientRepo.FindByRefNo(ctx, refNo)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if ingredient == nil {
		return nil, utils.ErrIngredientNotFound
	}
	return ingredient, nil
}

// EmbeddingText builds the text an ingredient is embedded from.
func EmbeddingText(i *db_models.Ingredient) string {
	var b strings.Builder
	b.WriteString(i.INCIName)
	if i.CommonName != "" {
		b.WriteString(" (")
		b.WriteString(i.CommonName)
		b.WriteString(")")
	}
	if i.Function != "" {
		b.WriteString(". Function: ")
		b.WriteString(i.Function)
	}
	if i.ActionDescription != "" {
		b.WriteString(". ")
		b.WriteString(i.ActionDescription)
	}
	return b.String()
}
