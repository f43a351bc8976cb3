package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"course-cms/pkg/response"
)

// BodyLimit 全局请求体大小限制中间件
// maxBytes: 允许的最大请求体字节数，<=0 表示不限制
// Content-Length 已声明超限时直接拒绝；其余情况由 MaxBytesReader 在读取时截断，
// 读取方（JSON 绑定、multipart 解析）负责将截断错误映射为 413
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes <= 0 {
			c.Next()
			return
		}

		if c.Request.ContentLength > maxBytes {
			response.Error(c, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()
	}
}
