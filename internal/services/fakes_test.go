package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"clean/internal/models/db_models"
)

type fakeAccountRepo struct {
	mu          sync.Mutex
	accounts    map[uuid.UUID]*db_models.Account
	updateErr   error
	updateCalls int
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[uuid.UUID]*db_models.Account{}}
}

func (f *fakeAccountRepo) InsertTx(account *db_models.Account, _ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.accounts {
		if strings.EqualFold(a.Email, account.Email) {
			return gorm.ErrDuplicatedKey
		}
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	stored := *account
	f.accounts[account.ID] = &stored
	return nil
}

func (f *fakeAccountRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.accounts[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.accounts {
		if strings.EqualFold(a.Email, email) {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) UpdateSkinProfile(_ context.Context, id uuid.UUID, skinType string, problems []string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	if f.updateErr != nil {
		return 0, f.updateErr
	}
	a, ok := f.accounts[id]
	if !ok {
		return 0, nil
	}
	a.SkinType = skinType
	a.SkinProblems = problems
	return 1, nil
}

type fakeCosmeticRepo struct {
	cosmetics map[string]*db_models.Cosmetic
}

func newFakeCosmeticRepo(cosmetics ...db_models.Cosmetic) *fakeCosmeticRepo {
	f := &fakeCosmeticRepo{cosmetics: map[string]*db_models.Cosmetic{}}
	for i := range cosmetics {
		c := cosmetics[i]
		f.cosmetics[c.Barcode] = &c
	}
	return f
}

func (f *fakeCosmeticRepo) Create(_ context.Context, cosmetic *db_models.Cosmetic) error {
	if _, ok := f.cosmetics[cosmetic.Barcode]; ok {
		return gorm.ErrDuplicatedKey
	}
	stored := *cosmetic
	f.cosmetics[cosmetic.Barcode] = &stored
	return nil
}

func (f *fakeCosmeticRepo) FindByBarcode(_ context.Context, barcode string) (*db_models.Cosmetic, error) {
	if c, ok := f.cosmetics[barcode]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeCosmeticRepo) Search(_ context.Context, query string, _, _ int) ([]db_models.Cosmetic, error) {
	var out []db_models.Cosmetic
	for _, c := range f.cosmetics {
		if query == "" || strings.Contains(strings.ToLower(c.ProductName), strings.ToLower(query)) {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Barcode < out[j].Barcode })
	return out, nil
}

func (f *fakeCosmeticRepo) Update(_ context.Context, cosmetic *db_models.Cosmetic) error {
	stored := *cosmetic
	f.cosmetics[cosmetic.Barcode] = &stored
	return nil
}

func (f *fakeCosmeticRepo) Delete(_ context.Context, barcode string) (int64, error) {
	if _, ok := f.cosmetics[barcode]; !ok {
		return 0, nil
	}
	delete(f.cosmetics, barcode)
	return 1, nil
}

func (f *fakeCosmeticRepo) SetVerified(_ context.Context, barcode string, verified bool) (int64, error) {
	c, ok := f.cosmetics[barcode]
	if !ok {
		return 0, nil
	}
	c.IsVerified = verified
	return 1, nil
}

type fakeIngredientRepo struct {
	mu          sync.Mutex
	ingredients map[int]db_models.Ingredient
	batches     [][]db_models.Ingredient
	upsertErr   error
}

func newFakeIngredientRepo(ingredients ...db_models.Ingredient) *fakeIngredientRepo {
	f := &fakeIngredientRepo{ingredients: map[int]db_models.Ingredient{}}
	for _, i := range ingredients {
		f.ingredients[i.CosingRefNo] = i
	}
	return f
}

func (f *fakeIngredientRepo) FindByRefNo(_ context.Context, refNo int) (*db_models.Ingredient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i, ok := f.ingredients[refNo]; ok {
		return &i, nil
	}
	return nil, nil
}

func (f *fakeIngredientRepo) Search(_ context.Context, query string, limit int) ([]db_models.Ingredient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db_models.Ingredient
	for _, i := range f.ingredients {
		if strings.Contains(strings.ToLower(i.INCIName), strings.ToLower(query)) {
			out = append(out, i)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].INCIName < out[b].INCIName })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeIngredientRepo) UpsertBatch(_ context.Context, ingredients []db_models.Ingredient) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.batches = append(f.batches, append([]db_models.Ingredient(nil), ingredients...))
	for _, i := range ingredients {
		if existing, ok := f.ingredients[i.CosingRefNo]; ok {
			i.SafetyRating = existing.SafetyRating
			i.RestrictionDescription = existing.RestrictionDescription
		}
		f.ingredients[i.CosingRefNo] = i
	}
	return nil
}

func (f *fakeIngredientRepo) UpdateCuration(_ context.Context, refNo int, safetyRating string, restrictionDescription *string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i, ok := f.ingredients[refNo]
	if !ok {
		return 0, nil
	}
	i.SafetyRating = safetyRating
	if restrictionDescription != nil {
		i.RestrictionDescription = *restrictionDescription
	}
	f.ingredients[refNo] = i
	return 1, nil
}

type fakeCompositionRepo struct {
	mu     sync.Mutex
	items  []db_models.CosmeticComposition
	lookup func(refNo int) db_models.Ingredient
	nextID uint
}

func (f *fakeCompositionRepo) ListByCosmetic(_ context.Context, barcode string) ([]db_models.CosmeticComposition, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db_models.CosmeticComposition
	for _, c := range f.items {
		if c.CosmeticBarcode == barcode {
			if f.lookup != nil {
				c.Ingredient = f.lookup(c.IngredientRefNo)
			}
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].OrderInComposition < out[j].OrderInComposition })
	return out, nil
}

func (f *fakeCompositionRepo) Add(_ context.Context, composition *db_models.CosmeticComposition) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	maxOrder := 0
	for _, c := range f.items {
		if c.CosmeticBarcode != composition.CosmeticBarcode {
			continue
		}
		if c.IngredientRefNo == composition.IngredientRefNo {
			return gorm.ErrDuplicatedKey
		}
		if c.OrderInComposition > maxOrder {
			maxOrder = c.OrderInComposition
		}
	}
	if composition.OrderInComposition == 0 {
		composition.OrderInComposition = maxOrder + 1
	}
	f.nextID++
	composition.ID = f.nextID
	f.items = append(f.items, *composition)
	return nil
}

func (f *fakeCompositionRepo) DeleteByCosmetic(_ context.Context, barcode string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.items[:0]
	var removed int64
	for _, c := range f.items {
		if c.CosmeticBarcode == barcode {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	f.items = kept
	return removed, nil
}

type fakeEmbeddingRepo struct {
	stored    map[int]*db_models.IngredientEmbedding
	neighbors []db_models.SimilarIngredient
	upserts   int
}

func (f *fakeEmbeddingRepo) FindByRefNo(_ context.Context, refNo int) (*db_models.IngredientEmbedding, error) {
	if e, ok := f.stored[refNo]; ok {
		return e, nil
	}
	return nil, nil
}

func (f *fakeEmbeddingRepo) Upsert(_ context.Context, embedding *db_models.IngredientEmbedding) error {
	if f.stored == nil {
		f.stored = map[int]*db_models.IngredientEmbedding{}
	}
	f.upserts++
	f.stored[embedding.IngredientRefNo] = embedding
	return nil
}

// Nearest only returns neighbours whose stored embedding came from model.
func (f *fakeEmbeddingRepo) Nearest(_ context.Context, _ pgvector.Vector, model string, excludeRefNo int, _ float64, limit int) ([]db_models.SimilarIngredient, error) {
	var out []db_models.SimilarIngredient
	for _, n := range f.neighbors {
		if n.CosingRefNo == excludeRefNo {
			continue
		}
		if e, ok := f.stored[n.CosingRefNo]; !ok || e.Model != model {
			continue
		}
		out = append(out, n)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeEmbedder struct {
	model string
	err   error
	calls int
}

func (f *fakeEmbedder) Embed(_ context.Context, texts []string) ([]pgvector.Vector, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]pgvector.Vector, len(texts))
	for i := range texts {
		out[i] = pgvector.NewVector([]float32{1, 0, 0})
	}
	return out, nil
}

func (f *fakeEmbedder) Model() string { return f.model }

func (f *fakeEmbedder) Close() error { return nil }

type fakeFavoriteRepo struct {
	favorites []db_models.FavoriteProduct
}

func (f *fakeFavoriteRepo) Create(_ context.Context, favorite *db_models.FavoriteProduct) error {
	for _, fav := range f.favorites {
		if fav.AccountID == favorite.AccountID && fav.CosmeticBarcode == favorite.CosmeticBarcode {
			return gorm.ErrDuplicatedKey
		}
	}
	favorite.ID = uuid.New()
	f.favorites = append(f.favorites, *favorite)
	return nil
}

func (f *fakeFavoriteRepo) Delete(_ context.Context, accountID uuid.UUID, barcode string) (int64, error) {
	for i, fav := range f.favorites {
		if fav.AccountID == accountID && fav.CosmeticBarcode == barcode {
			f.favorites = append(f.favorites[:i], f.favorites[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeFavoriteRepo) ListByAccount(_ context.Context, accountID uuid.UUID) ([]db_models.FavoriteProduct, error) {
	var out []db_models.FavoriteProduct
	for _, fav := range f.favorites {
		if fav.AccountID == accountID {
			out = append(out, fav)
		}
	}
	return out, nil
}

type fakeCarePlanRepo struct {
	plans map[uuid.UUID]*db_models.CarePlan
}

func newFakeCarePlanRepo() *fakeCarePlanRepo {
	return &fakeCarePlanRepo{plans: map[uuid.UUID]*db_models.CarePlan{}}
}

func (f *fakeCarePlanRepo) Create(_ context.Context, plan *db_models.CarePlan) error {
	plan.ID = uuid.New()
	stored := *plan
	f.plans[plan.ID] = &stored
	return nil
}

func (f *fakeCarePlanRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.CarePlan, error) {
	if p, ok := f.plans[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeCarePlanRepo) ListByAccount(_ context.Context, accountID uuid.UUID) ([]db_models.CarePlan, error) {
	var out []db_models.CarePlan
	for _, p := range f.plans {
		if p.AccountID == accountID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeCarePlanRepo) AddContent(_ context.Context, content *db_models.CarePlanContent) error {
	p := f.plans[content.PlanID]
	content.ID = uuid.New()
	p.Contents = append(p.Contents, *content)
	return nil
}

func (f *fakeCarePlanRepo) UpsertRating(_ context.Context, rating *db_models.CarePlanRating) error {
	p := f.plans[rating.PlanID]
	for i := range p.Ratings {
		if p.Ratings[i].AccountID == rating.AccountID {
			p.Ratings[i].Rating = rating.Rating
			return nil
		}
	}
	p.Ratings = append(p.Ratings, *rating)
	return nil
}

type fakeReviewRepo struct {
	reviews []db_models.Review
}

func (f *fakeReviewRepo) Create(_ context.Context, review *db_models.Review) error {
	review.ID = uuid.New()
	f.reviews = append(f.reviews, *review)
	return nil
}

func (f *fakeReviewRepo) ListByCosmetic(_ context.Context, barcode string, _, _ int) ([]db_models.Review, error) {
	var out []db_models.Review
	for _, r := range f.reviews {
		if r.CosmeticBarcode == barcode {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeOpinionRepo struct {
	opinions []db_models.ExpertOpinion
}

func (f *fakeOpinionRepo) Create(_ context.Context, opinion *db_models.ExpertOpinion) error {
	opinion.ID = uuid.New()
	f.opinions = append(f.opinions, *opinion)
	return nil
}

func (f *fakeOpinionRepo) ListByCosmetic(_ context.Context, barcode string) ([]db_models.ExpertOpinion, error) {
	var out []db_models.ExpertOpinion
	for _, o := range f.opinions {
		if o.CosmeticBarcode == barcode {
			out = append(out, o)
		}
	}
	return out, nil
}
