package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"cookcal_backend/internal/domain/apperr"
)

// WriteError はapperrのエラー分類をHTTPステータスと{detail}ボディに変換します。
// 分類外のエラー（想定外のストアエラー等）は内部情報を漏らさず403の汎用メッセージで返します。
func WriteError(c *gin.Context, err error) {
	c.JSON(StatusFor(err), ErrorResponse{Detail: DetailFor(err)})
}

// WriteStatus はボディを持たないエラー（304等）も含めて変換します。
func WriteStatus(c *gin.Context, err error) {
	if errors.Is(err, apperr.ErrNothingToUpdate) {
		c.Status(http.StatusNotModified)
		return
	}
	WriteError(c, err)
}

// StatusFor はエラー分類に対応するHTTPステータスコードを返します。
func StatusFor(err error) int {
	var cv *apperr.ConstraintViolation
	switch {
	case errors.Is(err, apperr.ErrUnauthenticated), errors.Is(err, apperr.ErrForbidden):
		return http.StatusUnauthorized
	case errors.Is(err, apperr.ErrInvalidCredentials):
		return http.StatusForbidden
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrNothingToUpdate):
		return http.StatusNotModified
	case errors.Is(err, apperr.ErrEmailTaken):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrUnsupportedMedia):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, apperr.ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &cv):
		return http.StatusForbidden
	default:
		return http.StatusForbidden
	}
}

// DetailFor はエラー分類に対応するユーザー向けメッセージを返します。
func DetailFor(err error) string {
	var cv *apperr.ConstraintViolation
	switch {
	case errors.Is(err, apperr.ErrUnauthenticated):
		return apperr.ErrUnauthenticated.Error()
	case errors.Is(err, apperr.ErrForbidden):
		return apperr.ErrForbidden.Error()
	case errors.Is(err, apperr.ErrInvalidCredentials):
		return apperr.ErrInvalidCredentials.Error()
	case errors.Is(err, apperr.ErrNotFound):
		return apperr.ErrNotFound.Error()
	case errors.Is(err, apperr.ErrEmailTaken):
		return apperr.ErrEmailTaken.Error()
	case errors.Is(err, apperr.ErrUnsupportedMedia):
		return apperr.ErrUnsupportedMedia.Error()
	case errors.Is(err, apperr.ErrPayloadTooLarge):
		// 上限値込みのメッセージでラップされている
		return err.Error()
	case errors.As(err, &cv):
		return cv.Error()
	default:
		slog.Error("unexpected error reached the boundary", "error", err)
		return "Request could not be processed"
	}
}
