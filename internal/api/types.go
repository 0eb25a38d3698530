// Package api はトランスポート層で共有されるリクエスト/レスポンス型を定義します。
package api

// ErrorResponse は全エンドポイント共通のエラーレスポンスです。
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse は単純な成功メッセージのレスポンスです。
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse はログイン成功時のアクセストークン払い出しレスポンスです。
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// StreamResponse はWebSocketチャネル上の1メッセージ分のレスポンスです。
// Detailには検索結果のリスト、またはエラーメッセージ文字列が入ります。
type StreamResponse struct {
	StatusCode int `json:"status_code"`
	Detail     any `json:"detail"`
}
