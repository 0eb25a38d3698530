// Package dto はrecipesフィーチャーのリクエスト/レスポンス型を定義します。
package dto

import (
	"time"

	"cookcal_backend/internal/feature/recipes/domain/entity"
	"cookcal_backend/internal/feature/recipes/usecase"
)

// CreateRecipeRequest はレシピ作成リクエストのボディです。
type CreateRecipeRequest struct {
	Title        string  `json:"title" binding:"required"`
	Ingredients  string  `json:"ingredients" binding:"required"`
	Instructions string  `json:"instructions" binding:"required"`
	Kcal100g     float64 `json:"kcal_100g"`
}

// Input はリクエストをユースケース入力に変換します。
func (r CreateRecipeRequest) Input() usecase.CreateInput {
	return usecase.CreateInput{
		Title:        r.Title,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		Kcal100g:     r.Kcal100g,
	}
}

// UpdateRecipeRequest はレシピの部分更新リクエストのボディです。
type UpdateRecipeRequest struct {
	Title        *string  `json:"title"`
	Ingredients  *string  `json:"ingredients"`
	Instructions *string  `json:"instructions"`
	Kcal100g     *float64 `json:"kcal_100g"`
}

// Input はリクエストをユースケースのパッチに変換します。
func (r UpdateRecipeRequest) Input() usecase.UpdateInput {
	return usecase.UpdateInput{
		Title:        r.Title,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		Kcal100g:     r.Kcal100g,
	}
}

// RecipeResponse はレシピ1件のレスポンス表現です。画像は専用
// エンドポイントで配信するため含めません。
type RecipeResponse struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"id_user"`
	Title        string    `json:"title"`
	Ingredients  string    `json:"ingredients"`
	Instructions string    `json:"instructions"`
	Kcal100g     float64   `json:"kcal_100g"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewRecipeResponse はエンティティをレスポンス表現に変換します。
func NewRecipeResponse(r *entity.Recipe) RecipeResponse {
	return RecipeResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		Title:        r.Title,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		Kcal100g:     r.Kcal100g,
		CreatedAt:    r.CreatedAt,
	}
}

// NewRecipeResponses はエンティティのスライスをレスポンス表現に変換します。
func NewRecipeResponses(recipes []entity.Recipe) []RecipeResponse {
	out := make([]RecipeResponse, 0, len(recipes))
	for i := range recipes {
		out = append(out, NewRecipeResponse(&recipes[i]))
	}
	return out
}
