package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SystemHandler 首页与健康检查
type SystemHandler struct {
	operator string
}

// NewSystemHandler 创建 SystemHandler；operator 为首页问候语中的运营者名称
func NewSystemHandler(operator string) *SystemHandler {
	return &SystemHandler{operator: operator}
}

// Greeting 首页
// GET /
func (h *SystemHandler) Greeting(c *gin.Context) {
	name := h.operator
	if name == "" {
		name = "the course staff"
	}
	c.String(http.StatusOK, "Hello, this CMS is run by %s.", name)
}

// Health 健康检查
// GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
