// Package handler はfoodlistフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"cookcal_backend/internal/api"
	"cookcal_backend/internal/feature/auth/transport/middleware"
	"cookcal_backend/internal/feature/foodlist/domain/entity"
	"cookcal_backend/internal/feature/foodlist/transport/http/dto"
	"cookcal_backend/internal/feature/foodlist/usecase"
	userentity "cookcal_backend/internal/feature/users/domain/entity"
	"cookcal_backend/internal/platform/ws"
)

// FoodlistUsecase は食事記録のユースケースを定義します。
type FoodlistUsecase interface {
	List(ctx context.Context, principal *userentity.User, date string) ([]usecase.EntryRow, error)
	Create(ctx context.Context, principal *userentity.User, in usecase.CreateInput) (*entity.Entry, error)
	Update(ctx context.Context, principal *userentity.User, id uint, in usecase.UpdateInput) (*entity.Entry, error)
	Delete(ctx context.Context, principal *userentity.User, id uint) error
}

// FoodlistHandler は食事記録のHTTPリクエストを処理します。
type FoodlistHandler struct {
	entries  FoodlistUsecase
	resolver ws.Resolver
}

// NewFoodlistHandler はFoodlistHandlerの新しいインスタンスを生成します。
func NewFoodlistHandler(entries FoodlistUsecase, resolver ws.Resolver) *FoodlistHandler {
	return &FoodlistHandler{entries: entries, resolver: resolver}
}

// List は本人の食事記録一覧エンドポイントを処理します。
// dateクエリパラメータで日単位の絞り込みができます。
func (h *FoodlistHandler) List(c *gin.Context) {
	rows, err := h.entries.List(c.Request.Context(), middleware.PrincipalFrom(c), c.Query("date"))
	if err != nil {
		api.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Create は食事記録追加エンドポイントを処理します。
func (h *FoodlistHandler) Create(c *gin.Context) {
	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "invalid request"})
		return
	}
	entry, err := h.entries.Create(c.Request.Context(), middleware.PrincipalFrom(c), req.Input())
	if err != nil {
		api.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewEntryResponse(entry))
}

// Update は食事記録の部分更新エンドポイントを処理します。空パッチは304です。
func (h *FoodlistHandler) Update(c *gin.Context) {
	id, err := api.ParamID(c)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	var req dto.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "invalid request"})
		return
	}

	entry, err := h.entries.Update(c.Request.Context(), middleware.PrincipalFrom(c), id, req.Input())
	if err != nil {
		api.WriteStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewEntryResponse(entry))
}

// Delete は食事記録削除エンドポイントを処理します。
func (h *FoodlistHandler) Delete(c *gin.Context) {
	id, err := api.ParamID(c)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	if err := h.entries.Delete(c.Request.Context(), middleware.PrincipalFrom(c), id); err != nil {
		api.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Stream は食事記録一覧のWebSocketストリーミングを処理します。
// 受信メッセージを日付フィルタとして扱います。
func (h *FoodlistHandler) Stream(c *gin.Context) {
	ws.Serve(c, h.resolver, func(ctx context.Context, principal *userentity.User, filter string) (any, error) {
		return h.entries.List(ctx, principal, filter)
	})
}
