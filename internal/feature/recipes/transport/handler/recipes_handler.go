// Package handler はrecipesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"cookcal_backend/internal/api"
	"cookcal_backend/internal/feature/auth/transport/middleware"
	"cookcal_backend/internal/feature/recipes/domain/entity"
	"cookcal_backend/internal/feature/recipes/transport/http/dto"
	"cookcal_backend/internal/feature/recipes/usecase"
	userentity "cookcal_backend/internal/feature/users/domain/entity"
	"cookcal_backend/internal/platform/imaging"
	"cookcal_backend/internal/platform/ws"
)

// RecipesUsecase はレシピのユースケースを定義します。
type RecipesUsecase interface {
	List(ctx context.Context, title string) ([]entity.Recipe, error)
	Get(ctx context.Context, id uint) (*entity.Recipe, error)
	Create(ctx context.Context, principal *userentity.User, in usecase.CreateInput) (*entity.Recipe, error)
	Update(ctx context.Context, principal *userentity.User, id uint, in usecase.UpdateInput) (*entity.Recipe, error)
	Delete(ctx context.Context, principal *userentity.User, id uint) error
	SetPicture(ctx context.Context, principal *userentity.User, id uint, data []byte) ([]byte, error)
	Picture(ctx context.Context, id uint) ([]byte, error)
}

// RecipesHandler はレシピのHTTPリクエストを処理します。
type RecipesHandler struct {
	recipes  RecipesUsecase
	resolver ws.Resolver
}

// NewRecipesHandler はRecipesHandlerの新しいインスタンスを生成します。
func NewRecipesHandler(recipes RecipesUsecase, resolver ws.Resolver) *RecipesHandler {
	return &RecipesHandler{recipes: recipes, resolver: resolver}
}

// List はタイトルの部分一致検索エンドポイントを処理します。
func (h *RecipesHandler) List(c *gin.Context) {
	recipes, err := h.recipes.List(c.Request.Context(), c.Query("title"))
	if err != nil {
		api.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewRecipeResponses(recipes))
}

// Get は単一レシピ取得エンドポイントを処理します。
func (h *RecipesHandler) Get(c *gin.Context) {
	id, err := api.ParamID(c)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	recipe, err := h.recipes.Get(c.Request.Context(), id)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewRecipeResponse(recipe))
}

// Create はレシピ作成エンドポイントを処理します。
func (h *RecipesHandler) Create(c *gin.Context) {
	var req dto.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "invalid request"})
		return
	}
	recipe, err := h.recipes.Create(c.Request.Context(), middleware.PrincipalFrom(c), req.Input())
	if err != nil {
		api.WriteError(c, err)
		return
	}
	slog.Info("recipe created", "recipe_id", recipe.ID, "user_id", recipe.UserID)
	c.JSON(http.StatusCreated, dto.NewRecipeResponse(recipe))
}

// Update はレシピの部分更新エンドポイントを処理します。空パッチは304です。
func (h *RecipesHandler) Update(c *gin.Context) {
	id, err := api.ParamID(c)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	var req dto.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "invalid request"})
		return
	}

	recipe, err := h.recipes.Update(c.Request.Context(), middleware.PrincipalFrom(c), id, req.Input())
	if err != nil {
		api.WriteStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewRecipeResponse(recipe))
}

// Delete はレシピ削除エンドポイントを処理します。
func (h *RecipesHandler) Delete(c *gin.Context) {
	id, err := api.ParamID(c)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	if err := h.recipes.Delete(c.Request.Context(), middleware.PrincipalFrom(c), id); err != nil {
		api.WriteError(c, err)
		return
	}
	slog.Info("recipe deleted", "recipe_id", id)
	c.Status(http.StatusNoContent)
}

// UploadImage はレシピ画像アップロードエンドポイントを処理します。
func (h *RecipesHandler) UploadImage(c *gin.Context) {
	id, err := api.ParamID(c)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	data, ok := readImageFile(c)
	if !ok {
		return
	}

	stored, err := h.recipes.SetPicture(c.Request.Context(), middleware.PrincipalFrom(c), id, data)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	c.Data(http.StatusOK, imaging.ContentType(stored), stored)
}

// GetImage はレシピ画像取得エンドポイントを処理します。
// 画像未設定は204、レシピ不存在は404です。
func (h *RecipesHandler) GetImage(c *gin.Context) {
	id, err := api.ParamID(c)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	data, err := h.recipes.Picture(c.Request.Context(), id)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	if len(data) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.Data(http.StatusOK, imaging.ContentType(data), data)
}

// Stream はレシピ一覧のWebSocketストリーミングを処理します。
// 受信メッセージをタイトルフィルタとして扱います。
func (h *RecipesHandler) Stream(c *gin.Context) {
	ws.Serve(c, h.resolver, func(ctx context.Context, _ *userentity.User, filter string) (any, error) {
		recipes, err := h.recipes.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		return dto.NewRecipeResponses(recipes), nil
	})
}

// readImageFile はmultipartフィールド"image"のバイト列を読み取ります。
func readImageFile(c *gin.Context) ([]byte, bool) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "image file is required"})
		return nil, false
	}
	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "failed to read image"})
		return nil, false
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close uploaded image", "error", err)
		}
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "failed to read image"})
		return nil, false
	}
	return data, true
}
