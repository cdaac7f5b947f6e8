package repositories

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"

	"clean/internal/models/db_models"
)

func parseSchema(t *testing.T, model any) *schema.Schema {
	t.Helper()
	s, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)
	return s
}

func TestCosmeticDependents_CoverEveryBarcodeTable(t *testing.T) {
	removed := map[string]bool{}
	for _, model := range cosmeticDependents {
		removed[parseSchema(t, model).Table] = true
	}

	for _, model := range db_models.AllModels() {
		s := parseSchema(t, model)
		if _, ok := s.FieldsByDBName["cosmetic_barcode"]; ok {
			assert.True(t, removed[s.Table], "%s rows would outlive their cosmetic", s.Table)
		}
	}
}

func TestCosmeticForeignKeys_CascadeOnDelete(t *testing.T) {
	cosmetic := parseSchema(t, &db_models.Cosmetic{})
	_, softDelete := cosmetic.FieldsByDBName["deleted_at"]
	assert.False(t, softDelete, "cosmetics are hard-deleted")

	for _, name := range []string{"Compositions", "Reviews", "ExpertOpinions"} {
		rel, ok := cosmetic.Relationships.Relations[name]
		require.True(t, ok, name)
		constraint := rel.ParseConstraint()
		require.NotNil(t, constraint, name)
		assert.Equal(t, "CASCADE", constraint.OnDelete, name)
	}

	for _, model := range []any{&db_models.CarePlanContent{}, &db_models.FavoriteProduct{}} {
		s := parseSchema(t, model)
		rel, ok := s.Relationships.Relations["Cosmetic"]
		require.True(t, ok, s.Name)
		constraint := rel.ParseConstraint()
		require.NotNil(t, constraint, s.Name)
		assert.Equal(t, "CASCADE", constraint.OnDelete, s.Name)
	}
}
