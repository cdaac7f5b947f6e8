package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clean/internal/cosing"
	"clean/internal/models/db_models"
	"clean/internal/models/request_models"
	"clean/pkg/utils"
)

const testBarcode = "5900000000001"

type cosmeticFixture struct {
	svc          CosmeticServiceInterface
	cosmetics    *fakeCosmeticRepo
	compositions *fakeCompositionRepo
	ingredients  *fakeIngredientRepo
}

func newCosmeticFixture() cosmeticFixture {
	ingredients := newFakeIngredientRepo(
		db_models.Ingredient{CosingRefNo: 1, INCIName: "AQUA", SafetyRating: "neutral"},
		db_models.Ingredient{CosingRefNo: 2, INCIName: "NIACINAMIDE", SafetyRating: "beneficial"},
		db_models.Ingredient{CosingRefNo: 3, INCIName: "BHA", SafetyRating: "harmful"},
	)
	compositions := &fakeCompositionRepo{lookup: func(refNo int) db_models.Ingredient {
		return ingredients.ingredients[refNo]
	}}
	cosmetics := newFakeCosmeticRepo(db_models.Cosmetic{
		Barcode:      testBarcode,
		ProductName:  "Gentle Cleanser",
		Manufacturer: "Clean Labs",
		Category:     "Cleanser",
	})
	return cosmeticFixture{
		svc:          NewCosmeticService(cosmetics, compositions, ingredients),
		cosmetics:    cosmetics,
		compositions: compositions,
		ingredients:  ingredients,
	}
}

func TestValidBarcode(t *testing.T) {
	for _, ok := range []string{"12345678", "5900000000001"} {
		assert.True(t, ValidBarcode(ok), ok)
	}
	for _, bad := range []string{"", "1234567", "59000000000012", "59000000000a1"} {
		assert.False(t, ValidBarcode(bad), bad)
	}
}

func TestCosmeticService_CreateVerificationByRole(t *testing.T) {
	f := newCosmeticFixture()
	ctx := context.Background()
	req := request_models.CosmeticRequest{Barcode: "12345678", ProductName: "Serum", Manufacturer: "Acme", Category: "Serum"}

	created, err := f.svc.Create(ctx, req, db_models.RoleUser)
	require.NoError(t, err)
	assert.False(t, created.IsVerified)

	_, err = f.svc.Create(ctx, req, db_models.RoleAdmin)
	assert.ErrorIs(t, err, utils.ErrCosmeticAlreadyExists)

	req.Barcode = "87654321"
	created, err = f.svc.Create(ctx, req, db_models.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, created.IsVerified)

	req.Barcode = "12ab"
	_, err = f.svc.Create(ctx, req, db_models.RoleAdmin)
	assert.ErrorIs(t, err, utils.ErrInvalidBarcode)
}

func TestCosmeticService_SearchByBarcode(t *testing.T) {
	f := newCosmeticFixture()
	ctx := context.Background()

	found, err := f.svc.Search(ctx, request_models.SearchCosmeticsRequest{Barcode: testBarcode})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Gentle Cleanser", found[0].ProductName)

	none, err := f.svc.Search(ctx, request_models.SearchCosmeticsRequest{Barcode: "00000000"})
	require.NoError(t, err)
	assert.Empty(t, none)

	byName, err := f.svc.Search(ctx, request_models.SearchCosmeticsRequest{Query: "cleanser", Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, byName, 1)
}

func TestCosmeticService_NotFound(t *testing.T) {
	f := newCosmeticFixture()
	ctx := context.Background()

	_, err := f.svc.Get(ctx, "00000000")
	assert.ErrorIs(t, err, utils.ErrCosmeticNotFound)
	assert.ErrorIs(t, f.svc.Delete(ctx, "00000000"), utils.ErrCosmeticNotFound)
	assert.ErrorIs(t, f.svc.Verify(ctx, "00000000", true), utils.ErrCosmeticNotFound)
	_, err = f.svc.GetComposition(ctx, "00000000")
	assert.ErrorIs(t, err, utils.ErrCosmeticNotFound)
	_, err = f.svc.Summary(ctx, "00000000")
	assert.ErrorIs(t, err, utils.ErrCosmeticNotFound)
}

func TestCosmeticService_CompositionAndScore(t *testing.T) {
	f := newCosmeticFixture()
	ctx := context.Background()

	empty, err := f.svc.CleanScore(ctx, testBarcode)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Score)

	for _, refNo := range []int{1, 2, 3} {
		_, err := f.svc.AddComposition(ctx, request_models.CompositionRequest{Cosmetic: testBarcode, Ingredient: refNo})
		require.NoError(t, err)
	}

	_, err = f.svc.AddComposition(ctx, request_models.CompositionRequest{Cosmetic: testBarcode, Ingredient: 2})
	assert.ErrorIs(t, err, utils.ErrCompositionConflict)
	_, err = f.svc.AddComposition(ctx, request_models.CompositionRequest{Cosmetic: testBarcode, Ingredient: 99})
	assert.ErrorIs(t, err, utils.ErrIngredientNotFound)

	items, err := f.svc.GetComposition(ctx, testBarcode)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "AQUA", items[0].Ingredient.INCIName)
	assert.Equal(t, 3, items[2].OrderInComposition)

	score, err := f.svc.CleanScore(ctx, testBarcode)
	require.NoError(t, err)
	assert.Equal(t, 50, score.Score)
	assert.Equal(t, 3, score.Total)

	summary, err := f.svc.Summary(ctx, testBarcode)
	require.NoError(t, err)
	assert.Equal(t, testBarcode, summary.Cosmetic.Barcode)
	assert.Len(t, summary.Composition, 3)
	assert.Equal(t, score, summary.CleanScore)

	removed, err := f.svc.ClearComposition(ctx, testBarcode)
	require.NoError(t, err)
	assert.EqualValues(t, 3, removed)
}

func TestCleanScore_UsesCuratedRatingsAcrossReimport(t *testing.T) {
	ctx := context.Background()
	ingredients := newFakeIngredientRepo()
	importer := NewImportService(ingredients, 10)
	csv := cosingHeader + "1;AQUA;;;SOLVENT;;\n" + "2;NIACINAMIDE;;;SKIN CONDITIONING;;\n" + "3;PANTHENOL;;;HUMECTANT;;\n"

	_, err := importer.ImportCosing(ctx, strings.NewReader(csv), cosing.Options{})
	require.NoError(t, err)

	curator := NewIngredientService(ingredients, &fakeEmbeddingRepo{}, &fakeEmbedder{model: "m"})
	for _, refNo := range []int{2, 3} {
		_, err := curator.Curate(ctx, refNo, request_models.CurateIngredientRequest{SafetyRating: "beneficial"})
		require.NoError(t, err)
	}

	_, err = importer.ImportCosing(ctx, strings.NewReader(csv), cosing.Options{})
	require.NoError(t, err)

	compositions := &fakeCompositionRepo{lookup: func(refNo int) db_models.Ingredient {
		return ingredients.ingredients[refNo]
	}}
	cosmetics := newFakeCosmeticRepo(db_models.Cosmetic{Barcode: testBarcode, ProductName: "Calming Serum"})
	svc := NewCosmeticService(cosmetics, compositions, ingredients)
	for _, refNo := range []int{1, 2, 3} {
		_, err := svc.AddComposition(ctx, request_models.CompositionRequest{Cosmetic: testBarcode, Ingredient: refNo})
		require.NoError(t, err)
	}

	score, err := svc.CleanScore(ctx, testBarcode)
	require.NoError(t, err)
	assert.Equal(t, 2, score.Beneficial)
	assert.Equal(t, 1, score.Neutral)
	assert.Equal(t, 83, score.Score)
	assert.Equal(t, "Very good", score.Label)
}

func TestCosmeticService_UpdateAndVerify(t *testing.T) {
	f := newCosmeticFixture()
	ctx := context.Background()

	updated, err := f.svc.Update(ctx, testBarcode, request_models.UpdateCosmeticRequest{
		ProductName:  "Gentle Cleanser 2",
		Manufacturer: "Clean Labs",
		Category:     "Cleanser",
	})
	require.NoError(t, err)
	assert.Equal(t, "Gentle Cleanser 2", updated.ProductName)

	require.NoError(t, f.svc.Verify(ctx, testBarcode, true))
	got, err := f.svc.Get(ctx, testBarcode)
	require.NoError(t, err)
	assert.True(t, got.IsVerified)

	require.NoError(t, f.svc.Delete(ctx, testBarcode))
	_, err = f.svc.Get(ctx, testBarcode)
	assert.ErrorIs(t, err, utils.ErrCosmeticNotFound)
}
