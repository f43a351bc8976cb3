package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "course-cms/pkg/errors"
	"course-cms/pkg/response"
)

// ParseIDParam 解析路径中的正整数 ID。
// 非法时写入 404 响应（与不存在的资源一致），调用方应在 ok=false 时直接 return。
func ParseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, strconv.IntSize)
	if err != nil || id == 0 {
		response.NotFound(c, "Resource not found")
		return 0, false
	}
	return uint(id), true
}

// bindJSON 解析 JSON 请求体，失败时写入 400（超出 BodyLimit 时 413）
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		if isBodyTooLarge(err) {
			response.Error(c, http.StatusRequestEntityTooLarge, "Request body too large")
			return false
		}
		_ = c.Error(err)
		response.BadRequest(c, "Invalid request body")
		return false
	}
	return true
}

// handleServiceError 按错误类别映射 HTTP 状态码。
// 响应体只携带业务错误自身的提示，包装的底层原因（存储驱动报错等）仅进入日志
func handleServiceError(c *gin.Context, err error) {
	switch apperrors.KindOf(err) {
	case apperrors.ErrValidation:
		response.BadRequest(c, publicMessage(err))
	case apperrors.ErrNotFound:
		response.NotFound(c, publicMessage(err))
	case apperrors.ErrConflict:
		response.Conflict(c, publicMessage(err))
	case apperrors.ErrForbidden:
		response.Forbidden(c, publicMessage(err))
	case apperrors.ErrUpstream:
		_ = c.Error(err)
		response.BadGateway(c, publicMessage(err))
	default:
		_ = c.Error(err)
		response.InternalError(c)
	}
}

func publicMessage(err error) string {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		return appErr.Error()
	}
	return err.Error()
}

func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
