// Package handler はweightsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"cookcal_backend/internal/api"
	"cookcal_backend/internal/feature/auth/transport/middleware"
	userentity "cookcal_backend/internal/feature/users/domain/entity"
	"cookcal_backend/internal/feature/weights/domain/entity"
	"cookcal_backend/internal/feature/weights/transport/http/dto"
	"cookcal_backend/internal/feature/weights/usecase"
	"cookcal_backend/internal/platform/ws"
)

// WeightsUsecase は体重記録のユースケースを定義します。
type WeightsUsecase interface {
	List(ctx context.Context, principal *userentity.User, date string) ([]entity.Measurement, error)
	Create(ctx context.Context, principal *userentity.User, in usecase.CreateInput) (*entity.Measurement, error)
	Update(ctx context.Context, principal *userentity.User, id uint, in usecase.UpdateInput) (*entity.Measurement, error)
	Delete(ctx context.Context, principal *userentity.User, id uint) error
}

// WeightsHandler は体重記録のHTTPリクエストを処理します。
type WeightsHandler struct {
	measurements WeightsUsecase
	resolver     ws.Resolver
}

// NewWeightsHandler はWeightsHandlerの新しいインスタンスを生成します。
func NewWeightsHandler(measurements WeightsUsecase, resolver ws.Resolver) *WeightsHandler {
	return &WeightsHandler{measurements: measurements, resolver: resolver}
}

// List は本人の体重記録一覧エンドポイントを処理します。
// dateクエリパラメータで日単位の絞り込みができます。
func (h *WeightsHandler) List(c *gin.Context) {
	measurements, err := h.measurements.List(c.Request.Context(), middleware.PrincipalFrom(c), c.Query("date"))
	if err != nil {
		api.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMeasurementResponses(measurements))
}

// Create は体重記録追加エンドポイントを処理します。
func (h *WeightsHandler) Create(c *gin.Context) {
	var req dto.CreateMeasurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "invalid request"})
		return
	}
	m, err := h.measurements.Create(c.Request.Context(), middleware.PrincipalFrom(c), req.Input())
	if err != nil {
		api.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewMeasurementResponse(m))
}

// Update は体重記録の部分更新エンドポイントを処理します。空パッチは304です。
func (h *WeightsHandler) Update(c *gin.Context) {
	id, err := api.ParamID(c)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	var req dto.UpdateMeasurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "invalid request"})
		return
	}

	m, err := h.measurements.Update(c.Request.Context(), middleware.PrincipalFrom(c), id, req.Input())
	if err != nil {
		api.WriteStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMeasurementResponse(m))
}

// Delete は体重記録削除エンドポイントを処理します。
func (h *WeightsHandler) Delete(c *gin.Context) {
	id, err := api.ParamID(c)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	if err := h.measurements.Delete(c.Request.Context(), middleware.PrincipalFrom(c), id); err != nil {
		api.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Stream は体重記録一覧のWebSocketストリーミングを処理します。
// 受信メッセージを日付フィルタとして扱います。
func (h *WeightsHandler) Stream(c *gin.Context) {
	ws.Serve(c, h.resolver, func(ctx context.Context, principal *userentity.User, filter string) (any, error) {
		measurements, err := h.measurements.List(ctx, principal, filter)
		if err != nil {
			return nil, err
		}
		return dto.NewMeasurementResponses(measurements), nil
	})
}
