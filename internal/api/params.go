package api

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"cookcal_backend/internal/domain/apperr"
)

// ParamID はパスパラメータ:idを数値IDとして解釈します。
// 数値でないIDはリソース不存在として扱います。
func ParamID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperr.ErrNotFound
	}
	return uint(id), nil
}
