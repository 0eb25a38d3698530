// Package dto はfoodlistフィーチャーのリクエスト/レスポンス型を定義します。
package dto

import (
	"time"

	"cookcal_backend/internal/feature/foodlist/domain/entity"
	"cookcal_backend/internal/feature/foodlist/usecase"
)

// CreateEntryRequest は食事記録追加リクエストのボディです。
type CreateEntryRequest struct {
	FoodID uint    `json:"id_food" binding:"required"`
	Amount float64 `json:"amount" binding:"required"`
}

// Input はリクエストをユースケース入力に変換します。
func (r CreateEntryRequest) Input() usecase.CreateInput {
	return usecase.CreateInput{FoodID: r.FoodID, Amount: r.Amount}
}

// UpdateEntryRequest は食事記録の部分更新リクエストのボディです。
type UpdateEntryRequest struct {
	Amount *float64 `json:"amount"`
}

// Input はリクエストをユースケースのパッチに変換します。
func (r UpdateEntryRequest) Input() usecase.UpdateInput {
	return usecase.UpdateInput{Amount: r.Amount}
}

// EntryResponse は食事記録1件のレスポンス表現です。
type EntryResponse struct {
	ID     uint      `json:"id"`
	FoodID uint      `json:"id_food"`
	Amount float64   `json:"amount"`
	Time   time.Time `json:"time"`
}

// NewEntryResponse はエンティティをレスポンス表現に変換します。
func NewEntryResponse(e *entity.Entry) EntryResponse {
	return EntryResponse{ID: e.ID, FoodID: e.FoodID, Amount: e.Amount, Time: e.Time}
}
