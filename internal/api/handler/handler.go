package handler

import (
	"course-cms/config"
	"course-cms/internal/service"
	"course-cms/pkg/storage"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Course      *CourseHandler
	User        *UserHandler
	Assignment  *AssignmentHandler
	Export      *ExportHandler
	Maintenance *MaintenanceHandler
	System      *SystemHandler
	// File 仅当存储驱动支持回读（local）时非 nil
	File *FileHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(cfg *config.Config, svc *service.Service, store storage.Storage) *Handler {
	h := &Handler{
		Course:      NewCourseHandler(svc.Course),
		User:        NewUserHandler(svc.User),
		Assignment:  NewAssignmentHandler(svc.Assignment, cfg.Server.MaxUploadMB<<20),
		Export:      NewExportHandler(svc.Export),
		Maintenance: NewMaintenanceHandler(svc.Maintenance),
		System:      NewSystemHandler(cfg.Server.Name),
	}
	if files, ok := store.(storage.Reader); ok {
		h.File = NewFileHandler(files)
	}
	return h
}
