// Package handler はfoodフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"cookcal_backend/internal/api"
	"cookcal_backend/internal/feature/auth/transport/middleware"
	"cookcal_backend/internal/feature/food/domain/entity"
	"cookcal_backend/internal/feature/food/transport/http/dto"
	"cookcal_backend/internal/feature/food/usecase"
	userentity "cookcal_backend/internal/feature/users/domain/entity"
	"cookcal_backend/internal/platform/ws"
)

// FoodUsecase は食品参照データのユースケースを定義します。
type FoodUsecase interface {
	List(ctx context.Context, title string) ([]entity.Food, error)
	Get(ctx context.Context, id uint) (*entity.Food, error)
	Create(ctx context.Context, in usecase.CreateInput) (*entity.Food, error)
	Delete(ctx context.Context, principal *userentity.User, id uint) error
}

// FoodHandler は食品参照データのHTTPリクエストを処理します。
type FoodHandler struct {
	foods    FoodUsecase
	resolver ws.Resolver
}

// NewFoodHandler はFoodHandlerの新しいインスタンスを生成します。
func NewFoodHandler(foods FoodUsecase, resolver ws.Resolver) *FoodHandler {
	return &FoodHandler{foods: foods, resolver: resolver}
}

// List は名称の部分一致検索エンドポイントを処理します。
func (h *FoodHandler) List(c *gin.Context) {
	foods, err := h.foods.List(c.Request.Context(), c.Query("title"))
	if err != nil {
		api.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewFoodResponses(foods))
}

// Get は単一食品取得エンドポイントを処理します。
func (h *FoodHandler) Get(c *gin.Context) {
	id, err := api.ParamID(c)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	food, err := h.foods.Get(c.Request.Context(), id)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewFoodResponse(food))
}

// Create は食品登録エンドポイントを処理します。
func (h *FoodHandler) Create(c *gin.Context) {
	var req dto.CreateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "invalid request"})
		return
	}
	food, err := h.foods.Create(c.Request.Context(), req.Input())
	if err != nil {
		api.WriteError(c, err)
		return
	}
	slog.Info("food created", "food_id", food.ID)
	c.JSON(http.StatusCreated, dto.NewFoodResponse(food))
}

// Delete は食品削除エンドポイントを処理します。栄養アドバイザー限定です。
func (h *FoodHandler) Delete(c *gin.Context) {
	id, err := api.ParamID(c)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	if err := h.foods.Delete(c.Request.Context(), middleware.PrincipalFrom(c), id); err != nil {
		api.WriteError(c, err)
		return
	}
	slog.Info("food deleted", "food_id", id)
	c.Status(http.StatusNoContent)
}

// Stream は食品一覧のWebSocketストリーミングを処理します。
// 受信メッセージを名称フィルタとして扱います。
func (h *FoodHandler) Stream(c *gin.Context) {
	ws.Serve(c, h.resolver, func(ctx context.Context, _ *userentity.User, filter string) (any, error) {
		foods, err := h.foods.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		return dto.NewFoodResponses(foods), nil
	})
}
