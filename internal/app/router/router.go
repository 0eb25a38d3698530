// Package router はHTTPルートとミドルウェアを構成します。
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cookcal_backend/internal/api"
	authhandler "cookcal_backend/internal/feature/auth/transport/handler"
	authmiddleware "cookcal_backend/internal/feature/auth/transport/middleware"
	foodhandler "cookcal_backend/internal/feature/food/transport/handler"
	foodlisthandler "cookcal_backend/internal/feature/foodlist/transport/handler"
	recipeshandler "cookcal_backend/internal/feature/recipes/transport/handler"
	usershandler "cookcal_backend/internal/feature/users/transport/handler"
	weightshandler "cookcal_backend/internal/feature/weights/transport/handler"
	"cookcal_backend/internal/platform/middleware"
)

// Handlers はルーターが配線するハンドラー一式です。
type Handlers struct {
	Auth     *authhandler.AuthHandler
	Users    *usershandler.UsersHandler
	Food     *foodhandler.FoodHandler
	Foodlist *foodlisthandler.FoodlistHandler
	Recipes  *recipeshandler.RecipesHandler
	Weights  *weightshandler.WeightsHandler
}

// New は全エンドポイントを登録したginエンジンを返します。
// ログイン・ユーザー登録・ルート以外はBearer認証必須です。
// 部分更新はPUT、画像は/{id}/imageサブリソースです。
// WebSocketは各ファミリーの/wsで、トークンは接続時のクエリパラメータで渡します。
func New(h Handlers, resolver authmiddleware.Resolver) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, api.MessageResponse{Message: "MTAA - CooKcal Project"})
	})
	r.POST("/login", h.Auth.Login)
	r.POST("/users/", h.Users.Register)

	authed := r.Group("/", authmiddleware.AuthRequired(resolver))
	{
		users := authed.Group("/users")
		{
			users.GET("/", h.Users.List)
			users.GET("/:id", h.Users.Get)
			users.PUT("/:id", h.Users.Update)
			users.DELETE("/:id", h.Users.Delete)
			users.PUT("/:id/image", h.Users.UploadImage)
			users.GET("/:id/image", h.Users.GetImage)
		}

		food := authed.Group("/food")
		{
			food.GET("/", h.Food.List)
			food.GET("/:id", h.Food.Get)
			food.POST("/", h.Food.Create)
			food.DELETE("/:id", h.Food.Delete)
		}

		foodlist := authed.Group("/foodlist")
		{
			foodlist.GET("/", h.Foodlist.List)
			foodlist.POST("/", h.Foodlist.Create)
			foodlist.PUT("/:id", h.Foodlist.Update)
			foodlist.DELETE("/:id", h.Foodlist.Delete)
		}

		recipes := authed.Group("/recipes")
		{
			recipes.GET("/", h.Recipes.List)
			recipes.GET("/:id", h.Recipes.Get)
			recipes.POST("/", h.Recipes.Create)
			recipes.PUT("/:id", h.Recipes.Update)
			recipes.DELETE("/:id", h.Recipes.Delete)
			recipes.PUT("/:id/image", h.Recipes.UploadImage)
			recipes.GET("/:id/image", h.Recipes.GetImage)
		}

		weights := authed.Group("/weight_measurement")
		{
			weights.GET("/", h.Weights.List)
			weights.POST("/", h.Weights.Create)
			weights.PUT("/:id", h.Weights.Update)
			weights.DELETE("/:id", h.Weights.Delete)
		}
	}

	// WebSocketは接続時にクエリトークンで自前認証するため認証グループ外
	r.GET("/users/ws", h.Users.Stream)
	r.GET("/food/ws", h.Food.Stream)
	r.GET("/foodlist/ws", h.Foodlist.Stream)
	r.GET("/recipes/ws", h.Recipes.Stream)
	r.GET("/weight_measurement/ws", h.Weights.Stream)

	return r
}
