// Package dto はweightsフィーチャーのリクエスト/レスポンス型を定義します。
package dto

import (
	"time"

	"cookcal_backend/internal/feature/weights/domain/entity"
	"cookcal_backend/internal/feature/weights/usecase"
)

// CreateMeasurementRequest は体重記録追加リクエストのボディです。
type CreateMeasurementRequest struct {
	Weight float64 `json:"weight" binding:"required"`
}

// Input はリクエストをユースケース入力に変換します。
func (r CreateMeasurementRequest) Input() usecase.CreateInput {
	return usecase.CreateInput{Weight: r.Weight}
}

// UpdateMeasurementRequest は体重記録の部分更新リクエストのボディです。
type UpdateMeasurementRequest struct {
	Weight *float64 `json:"weight"`
}

// Input はリクエストをユースケースのパッチに変換します。
func (r UpdateMeasurementRequest) Input() usecase.UpdateInput {
	return usecase.UpdateInput{Weight: r.Weight}
}

// MeasurementResponse は体重記録1件のレスポンス表現です。
type MeasurementResponse struct {
	ID          uint      `json:"id"`
	Weight      float64   `json:"weight"`
	MeasureTime time.Time `json:"measure_time"`
}

// NewMeasurementResponse はエンティティをレスポンス表現に変換します。
func NewMeasurementResponse(m *entity.Measurement) MeasurementResponse {
	return MeasurementResponse{ID: m.ID, Weight: m.Weight, MeasureTime: m.MeasureTime}
}

// NewMeasurementResponses はエンティティのスライスをレスポンス表現に変換します。
func NewMeasurementResponses(measurements []entity.Measurement) []MeasurementResponse {
	out := make([]MeasurementResponse, 0, len(measurements))
	for i := range measurements {
		out = append(out, NewMeasurementResponse(&measurements[i]))
	}
	return out
}
