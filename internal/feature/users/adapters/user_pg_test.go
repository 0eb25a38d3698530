package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"cookcal_backend/internal/domain/apperr"
	recipeentity "cookcal_backend/internal/feature/recipes/domain/entity"
	"cookcal_backend/internal/feature/users/domain/entity"
	weightentity "cookcal_backend/internal/feature/weights/domain/entity"
	"cookcal_backend/internal/platform/db"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	return gdb
}

func seedUser(t *testing.T, repo *userPG, email, first, last string) *entity.User {
	t.Helper()
	u := &entity.User{
		Email:     email,
		Password:  "digest",
		FirstName: first,
		LastName:  last,
		Gender:    1,
		Age:       30,
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestUserPG_Create_DuplicateEmail(t *testing.T) {
	repo := NewUserPG(setupTestDB(t))
	seedUser(t, repo, "alice@example.com", "Alice", "Smith")

	dup := &entity.User{
		Email:     "alice@example.com",
		Password:  "digest",
		FirstName: "Alicia",
		LastName:  "Jones",
		Gender:    1,
		Age:       25,
	}
	err := repo.Create(context.Background(), dup)
	assert.ErrorIs(t, err, apperr.ErrEmailTaken)
}

func TestUserPG_Create_CheckViolation(t *testing.T) {
	repo := NewUserPG(setupTestDB(t))

	u := &entity.User{
		Email:     "bob@example.com",
		Password:  "digest",
		FirstName: "B", // 2文字未満
		LastName:  "Brown",
		Gender:    1,
		Age:       40,
	}
	err := repo.Create(context.Background(), u)

	var violation *apperr.ConstraintViolation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, "first name must be at least 2 characters", violation.Message)
}

func TestUserPG_FindByID(t *testing.T) {
	repo := NewUserPG(setupTestDB(t))
	created := seedUser(t, repo, "alice@example.com", "Alice", "Smith")

	got, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got.Email)

	_, err = repo.FindByID(context.Background(), 9999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	// センチネル行は直接参照できない
	_, err = repo.FindByID(context.Background(), entity.SentinelID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUserPG_FindByEmail_ExcludesSentinel(t *testing.T) {
	repo := NewUserPG(setupTestDB(t))

	_, err := repo.FindByEmail(context.Background(), "deleted@cookcal.invalid")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUserPG_List(t *testing.T) {
	repo := NewUserPG(setupTestDB(t))
	seedUser(t, repo, "alice@example.com", "Alice", "Smith")
	seedUser(t, repo, "bob@example.com", "Bob", "Smithers")
	seedUser(t, repo, "carol@example.com", "Carol", "Jones")

	tests := []struct {
		name       string
		filter     string
		wantEmails []string
	}{
		{
			name:       "空フィルタはセンチネルを除く全件",
			filter:     "",
			wantEmails: []string{"alice@example.com", "bob@example.com", "carol@example.com"},
		},
		{
			name:       "姓の部分一致（大文字小文字を区別しない）",
			filter:     "SMITH",
			wantEmails: []string{"alice@example.com", "bob@example.com"},
		},
		{
			name:       "姓名をまたぐ一致",
			filter:     "alice sm",
			wantEmails: []string{"alice@example.com"},
		},
		{
			name:       "一致なしは空リスト",
			filter:     "nobody",
			wantEmails: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, err := repo.List(context.Background(), tt.filter)
			require.NoError(t, err)
			emails := make([]string, 0, len(users))
			for _, u := range users {
				emails = append(emails, u.Email)
			}
			assert.Equal(t, tt.wantEmails, emails)
		})
	}
}

func TestUserPG_Update(t *testing.T) {
	repo := NewUserPG(setupTestDB(t))
	created := seedUser(t, repo, "alice@example.com", "Alice", "Smith")

	err := repo.Update(context.Background(), created.ID, map[string]any{
		"goal_weight": 70.5,
		"state":       int16(2),
	})
	require.NoError(t, err)

	got, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.InDelta(t, 70.5, got.GoalWeight, 0.001)
	assert.Equal(t, int16(2), got.State)
	// 指定しなかったフィールドは保持される
	assert.Equal(t, "Alice", got.FirstName)
}

func TestUserPG_Update_CheckViolation(t *testing.T) {
	repo := NewUserPG(setupTestDB(t))
	created := seedUser(t, repo, "alice@example.com", "Alice", "Smith")

	err := repo.Update(context.Background(), created.ID, map[string]any{"goal_weight": -1.0})

	var violation *apperr.ConstraintViolation
	require.ErrorAs(t, err, &violation)
}

func TestUserPG_Delete_ReownsRecipes(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewUserPG(gdb)
	created := seedUser(t, repo, "alice@example.com", "Alice", "Smith")

	recipe := &recipeentity.Recipe{
		UserID:      created.ID,
		Title:       "Pancakes",
		Ingredients: "flour, milk, eggs",
		Kcal100g:    220,
	}
	require.NoError(t, gdb.Create(recipe).Error)
	measurement := &weightentity.Measurement{UserID: created.ID, Weight: 80}
	require.NoError(t, gdb.Create(measurement).Error)

	require.NoError(t, repo.Delete(context.Background(), created.ID))

	_, err := repo.FindByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	// レシピはセンチネル所有として残る
	var kept recipeentity.Recipe
	require.NoError(t, gdb.First(&kept, recipe.ID).Error)
	assert.Equal(t, entity.SentinelID, kept.UserID)

	// 体重記録は連鎖削除される
	var n int64
	require.NoError(t, gdb.Model(&weightentity.Measurement{}).Where("id_user = ?", created.ID).Count(&n).Error)
	assert.Zero(t, n)
}
