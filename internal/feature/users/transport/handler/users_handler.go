// Package handler はusersフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"cookcal_backend/internal/api"
	"cookcal_backend/internal/feature/auth/transport/middleware"
	"cookcal_backend/internal/feature/users/domain/entity"
	"cookcal_backend/internal/feature/users/transport/http/dto"
	"cookcal_backend/internal/feature/users/usecase"
	"cookcal_backend/internal/platform/imaging"
	"cookcal_backend/internal/platform/ws"
)

// UsersUsecase はユーザー管理のユースケースを定義します。
type UsersUsecase interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*entity.User, error)
	List(ctx context.Context, name string) ([]entity.User, error)
	Get(ctx context.Context, id uint) (*entity.User, error)
	Update(ctx context.Context, principal *entity.User, id uint, in usecase.UpdateInput) (*entity.User, error)
	Delete(ctx context.Context, principal *entity.User, id uint) error
	SetPicture(ctx context.Context, principal *entity.User, id uint, data []byte) ([]byte, error)
	Picture(ctx context.Context, id uint) ([]byte, error)
}

// UsersHandler はユーザー管理のHTTPリクエストを処理します。
type UsersHandler struct {
	users    UsersUsecase
	resolver ws.Resolver
}

// NewUsersHandler はUsersHandlerの新しいインスタンスを生成します。
func NewUsersHandler(users UsersUsecase, resolver ws.Resolver) *UsersHandler {
	return &UsersHandler{users: users, resolver: resolver}
}

// Register はユーザー登録エンドポイントを処理します。
// メールアドレス重複は400（専用メッセージ）、その他の制約違反は403です。
func (h *UsersHandler) Register(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "invalid request"})
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Input())
	if err != nil {
		slog.Warn("register failed", "error", err, "remote_addr", c.ClientIP())
		api.WriteError(c, err)
		return
	}

	slog.Info("user registered", "user_id", user.ID)
	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// List は氏名の部分一致検索エンドポイントを処理します。
func (h *UsersHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context(), c.Query("name"))
	if err != nil {
		api.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponses(users))
}

// Get は単一ユーザー取得エンドポイントを処理します。
func (h *UsersHandler) Get(c *gin.Context) {
	id, err := api.ParamID(c)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// Update はプロフィールの部分更新エンドポイントを処理します。
// 空パッチは304で応答します。
func (h *UsersHandler) Update(c *gin.Context) {
	id, err := api.ParamID(c)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "invalid request"})
		return
	}

	user, err := h.users.Update(c.Request.Context(), middleware.PrincipalFrom(c), id, req.Input())
	if err != nil {
		api.WriteStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserDetailResponse(user))
}

// Delete はアカウント削除エンドポイントを処理します。
func (h *UsersHandler) Delete(c *gin.Context) {
	id, err := api.ParamID(c)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	if err := h.users.Delete(c.Request.Context(), middleware.PrincipalFrom(c), id); err != nil {
		api.WriteError(c, err)
		return
	}
	slog.Info("user deleted", "user_id", id)
	c.Status(http.StatusNoContent)
}

// UploadImage はプロフィール画像アップロードエンドポイントを処理します。
// 検証・正規化後のバイト列をそのまま応答ボディとして返します。
func (h *UsersHandler) UploadImage(c *gin.Context) {
	id, err := api.ParamID(c)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	data, ok := readImageFile(c)
	if !ok {
		return
	}

	stored, err := h.users.SetPicture(c.Request.Context(), middleware.PrincipalFrom(c), id, data)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	c.Data(http.StatusOK, imaging.ContentType(stored), stored)
}

// GetImage はプロフィール画像取得エンドポイントを処理します。
// 画像未設定は204、ユーザー不存在は404です。
func (h *UsersHandler) GetImage(c *gin.Context) {
	id, err := api.ParamID(c)
	if err != nil {
		api.WriteError(c, err)
		return
	}
	data, err := h.users.Picture(c.Request.Context(), id)
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

// Stream はユーザー一覧のWebSocketストリーミングを処理します。
// 受信メッセージを氏名フィルタとして扱います。
func (h *UsersHandler) Stream(c *gin.Context) {
	ws.Serve(c, h.resolver, func(ctx context.Context, _ *entity.User, filter string) (any, error) {
		users, err := h.users.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		return dto.NewUserResponses(users), nil
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
