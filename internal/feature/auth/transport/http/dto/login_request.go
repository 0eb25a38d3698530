// Package dto defines transport-level request types for the auth feature.
package dto

// LoginRequest is the form-encoded login payload. The field names follow the
// OAuth2 password-grant form contract: the username carries the account email.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}
