package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"cookcal_backend/internal/domain/apperr"
	"cookcal_backend/internal/feature/recipes/domain/entity"
	userentity "cookcal_backend/internal/feature/users/domain/entity"
	"cookcal_backend/internal/platform/db"
)

func setupTestDB(t *testing.T) (*gorm.DB, *userentity.User) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	user := &userentity.User{
		Email:     "alice@example.com",
		Password:  "digest",
		FirstName: "Alice",
		LastName:  "Smith",
		Gender:    1,
		Age:       30,
	}
	require.NoError(t, gdb.Create(user).Error)
	return gdb, user
}

func seedRecipe(t *testing.T, repo *recipePG, userID uint, title string) *entity.Recipe {
	t.Helper()
	rec := &entity.Recipe{
		UserID:      userID,
		Title:       title,
		Ingredients: "flour, milk, eggs",
		Kcal100g:    220,
	}
	require.NoError(t, repo.Create(context.Background(), rec))
	return rec
}

func TestRecipePG_Create_CheckViolation(t *testing.T) {
	gdb, user := setupTestDB(t)
	repo := NewRecipePG(gdb)

	err := repo.Create(context.Background(), &entity.Recipe{
		UserID:      user.ID,
		Title:       "Pancakes",
		Ingredients: "flour",
		Kcal100g:    -1,
	})

	var violation *apperr.ConstraintViolation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, "kcal per 100g must not be negative", violation.Message)
}

func TestRecipePG_List(t *testing.T) {
	gdb, user := setupTestDB(t)
	repo := NewRecipePG(gdb)
	seedRecipe(t, repo, user.ID, "Blueberry Pancakes")
	seedRecipe(t, repo, user.ID, "Pancake Rolls")
	seedRecipe(t, repo, user.ID, "Omelette")

	tests := []struct {
		name       string
		filter     string
		wantTitles []string
	}{
		{name: "空フィルタは全件", filter: "", wantTitles: []string{"Blueberry Pancakes", "Pancake Rolls", "Omelette"}},
		{name: "部分一致（大文字小文字を区別しない）", filter: "PANCAKE", wantTitles: []string{"Blueberry Pancakes", "Pancake Rolls"}},
		{name: "一致なしは空リスト", filter: "soup", wantTitles: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipes, err := repo.List(context.Background(), tt.filter)
			require.NoError(t, err)
			titles := make([]string, 0, len(recipes))
			for _, r := range recipes {
				titles = append(titles, r.Title)
			}
			assert.Equal(t, tt.wantTitles, titles)
		})
	}
}

func TestRecipePG_Update(t *testing.T) {
	gdb, user := setupTestDB(t)
	repo := NewRecipePG(gdb)
	created := seedRecipe(t, repo, user.ID, "Pancakes")

	err := repo.Update(context.Background(), created.ID, map[string]any{
		"title":     "Crepes",
		"kcal_100g": 180.0,
	})
	require.NoError(t, err)

	got, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Crepes", got.Title)
	assert.InDelta(t, 180, got.Kcal100g, 0.001)
	// 指定しなかったフィールドは保持される
	assert.Equal(t, "flour, milk, eggs", got.Ingredients)
}

func TestRecipePG_Delete(t *testing.T) {
	gdb, user := setupTestDB(t)
	repo := NewRecipePG(gdb)
	created := seedRecipe(t, repo, user.ID, "Pancakes")

	require.NoError(t, repo.Delete(context.Background(), created.ID))

	_, err := repo.FindByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	err = repo.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
