// Package ws は一覧系エンドポイントのWebSocketストリーミングを提供します。
//
// クライアントは接続時にtokenクエリパラメータで認証し、以降はフィルタ文字列を
// 1メッセージずつ送信します。サーバーは各メッセージに対して1つの
// StreamResponseフレームで応答します。
package ws

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"cookcal_backend/internal/api"
	"cookcal_backend/internal/feature/users/domain/entity"
)

// Resolver はトークンを認証済みユーザーに解決します。
type Resolver interface {
	Resolve(ctx context.Context, token string) (*entity.User, error)
}

// Query は1件のフィルタ文字列に対する一覧クエリです。
// 戻り値はそのままStreamResponseのdetailになります。
type Query func(ctx context.Context, principal *entity.User, filter string) (any, error)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// トークン認証で保護されるためOriginは検査しない
	CheckOrigin: func(*http.Request) bool { return true },
}

// Serve は接続をWebSocketにアップグレードし、クエリループを実行します。
// 認証は接続時に1回だけ行い、失敗時は401フレームを書いて切断します。
func Serve(c *gin.Context, resolver Resolver, query Query) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err, "remote_addr", c.ClientIP())
		return
	}
	defer func() {
		if err := conn.Close(); err != nil {
			slog.Warn("websocket close failed", "error", err)
		}
	}()

	ctx := c.Request.Context()
	principal, err := resolver.Resolve(ctx, c.Query("token"))
	if err != nil {
		writeFrame(conn, api.StreamResponse{
			StatusCode: api.StatusFor(err),
			Detail:     api.DetailFor(err),
		})
		return
	}

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}

		detail, err := query(ctx, principal, string(msg))
		if err != nil {
			writeFrame(conn, api.StreamResponse{
				StatusCode: api.StatusFor(err),
				Detail:     api.DetailFor(err),
			})
			continue
		}
		if !writeFrame(conn, api.StreamResponse{StatusCode: http.StatusOK, Detail: detail}) {
			return
		}
	}
}

func writeFrame(conn *websocket.Conn, resp api.StreamResponse) bool {
	if err := conn.WriteJSON(resp); err != nil {
		slog.Warn("websocket write failed", "error", err)
		return false
	}
	return true
}
