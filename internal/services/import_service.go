package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"clean/internal/cosing"
	"clean/internal/models/db_models"
	"clean/internal/models/response_models"
	"clean/internal/repositories"
	"clean/pkg/utils"
)

type ImportServiceInterface interface {
	ImportCosing(ctx context.Context, r io.Reader, opts cosing.Options) (response_models.ImportResultResponse, error)
}

type ImportService struct {
	ingredientRepo repositories.IngredientRepository
	batchSize      int
}

func NewImportService(ingredientRepo repositories.IngredientRepository, batchSize int) ImportServiceInterface {
	if batchSize < 1 {
		batchSize = 500
	}
	return &ImportService{ingredientRepo: ingredientRepo, batchSize: batchSize}
}

// ImportCosing upserts every valid row of a COSING export. Batches already
// written stay written when a later batch fails.
func (s *ImportService) ImportCosing(ctx context.Context, r io.Reader, opts cosing.Options) (response_models.ImportResultResponse, error) {
	startTime := time.Now()

	// Postgres rejects an upsert touching the same key twice, so duplicates
	// inside one batch collapse to the last row.
	batch := make([]db_models.Ingredient, 0, s.batchSize)
	positions := make(map[int]int, s.batchSize)
	imported := 0

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := s.ingredientRepo.UpsertBatch(ctx, batch); err != nil {
			return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
		imported += len(batch)
		batch = batch[:0]
		clear(positions)
		return nil
	}

	var sinkErr error
	stats, err := cosing.Parse(r, opts, func(rec cosing.Record) error {
		if sinkErr = ctx.Err(); sinkErr != nil {
			return sinkErr
		}
		ingredient := db_models.Ingredient{
			CosingRefNo:       rec.RefNo,
			INCIName:          rec.INCIName,
			CommonName:        rec.CommonName,
			ActionDescription: rec.Description,
			Function:          rec.Function,
			Restrictions:      rec.Restriction,
			UpdateDate:        rec.UpdateDate,
		}
		if pos, ok := positions[rec.RefNo]; ok {
			batch[pos] = ingredient
			return nil
		}
		positions[rec.RefNo] = len(batch)
		batch = append(batch, ingredient)
		if len(batch) >= s.batchSize {
			sinkErr = flush()
		}
		return sinkErr
	})
	if err == nil {
		sinkErr = flush()
		err = sinkErr
	}
	if err != nil {
		if sinkErr == nil {
			return response_models.ImportResultResponse{}, fmt.Errorf("%w: %v", utils.ErrInvalidImportFile, err)
		}
		zap.L().Error("cosing import aborted", zap.Int("imported", imported), zap.Error(err))
		return response_models.ImportResultResponse{}, err
	}

	zap.L().Info("cosing import finished",
		zap.Int("imported", imported),
		zap.Int("skipped", stats.Skipped),
		zap.Duration("took", time.Since(startTime)))
	return response_models.ImportResultResponse{Imported: imported, Skipped: stats.Skipped}, nil
}
