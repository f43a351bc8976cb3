package handler

import (
	"github.com/gin-gonic/gin"

	"course-cms/internal/service"
	"course-cms/pkg/response"
)

// MaintenanceHandler 运维诊断 HTTP 处理器，路由仅在 feature.maintenance_enabled 时挂载
type MaintenanceHandler struct {
	maintenanceSvc service.MaintenanceService
}

// NewMaintenanceHandler 创建 MaintenanceHandler
func NewMaintenanceHandler(maintenanceSvc service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenanceSvc: maintenanceSvc}
}

// TableSchema 查看表结构
// GET /api/schema/:table/
func (h *MaintenanceHandler) TableSchema(c *gin.Context) {
	schema, err := h.maintenanceSvc.TableSchema(c.Request.Context(), c.Param("table"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, schema)
}
