// Package dto はfoodフィーチャーのリクエスト/レスポンス型を定義します。
package dto

import (
	"cookcal_backend/internal/feature/food/domain/entity"
	"cookcal_backend/internal/feature/food/usecase"
)

// CreateFoodRequest は食品登録リクエストのボディです。
type CreateFoodRequest struct {
	Title    string  `json:"title" binding:"required"`
	Kcal100g float64 `json:"kcal_100g" binding:"required"`
}

// Input はリクエストをユースケース入力に変換します。
func (r CreateFoodRequest) Input() usecase.CreateInput {
	return usecase.CreateInput{Title: r.Title, Kcal100g: r.Kcal100g}
}

// FoodResponse は食品1件のレスポンス表現です。
type FoodResponse struct {
	ID       uint    `json:"id"`
	Title    string  `json:"title"`
	Kcal100g float64 `json:"kcal_100g"`
}

// NewFoodResponse はエンティティをレスポンス表現に変換します。
func NewFoodResponse(f *entity.Food) FoodResponse {
	return FoodResponse{ID: f.ID, Title: f.Title, Kcal100g: f.Kcal100g}
}

// NewFoodResponses はエンティティのスライスをレスポンス表現に変換します。
func NewFoodResponses(foods []entity.Food) []FoodResponse {
	out := make([]FoodResponse, 0, len(foods))
	for i := range foods {
		out = append(out, NewFoodResponse(&foods[i]))
	}
	return out
}
