package service

import (
	"go.uber.org/zap"

	"course-cms/internal/repository"
	"course-cms/pkg/storage"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Course      CourseService
	User        UserService
	Assignment  AssignmentService
	Export      ExportService
	Maintenance MaintenanceService
}

// NewService 创建 Service 聚合
func NewService(
	repo *repository.Repository,
	store storage.Storage,
	logger *zap.Logger,
) *Service {
	return &Service{
		Course:      NewCourseService(repo, logger),
		User:        NewUserService(repo, logger),
		Assignment:  NewAssignmentService(repo, store, logger),
		Export:      NewExportService(repo, logger),
		Maintenance: NewMaintenanceService(repo, logger),
	}
}
