package service

import (
	"context"

	"go.uber.org/zap"

	"course-cms/internal/dto"
	"course-cms/internal/repository"
	apperrors "course-cms/pkg/errors"
)

var ErrTableNotFound = apperrors.New(apperrors.ErrNotFound, "Table not found")

// 允许查看结构的业务表
var inspectableTables = map[string]bool{
	"courses":           true,
	"users":             true,
	"assignments":       true,
	"submissions":       true,
	"instructor_course": true,
	"student_course":    true,
}

// MaintenanceService 运维诊断接口，仅在 feature.maintenance_enabled 时挂载路由
type MaintenanceService interface {
	TableSchema(ctx context.Context, table string) (*dto.TableSchemaResponse, error)
}

type maintenanceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMaintenanceService 创建 MaintenanceService 实例
func NewMaintenanceService(repo *repository.Repository, logger *zap.Logger) MaintenanceService {
	return &maintenanceService{repo: repo, logger: logger}
}

func (s *maintenanceService) TableSchema(ctx context.Context, table string) (*dto.TableSchemaResponse, error) {
	if !inspectableTables[table] || !s.repo.Schema.HasTable(ctx, table) {
		return nil, ErrTableNotFound
	}

	columns, err := s.repo.Schema.Columns(ctx, table)
	if err != nil {
		s.logger.Error("读取表结构失败", zap.String("table", table), zap.Error(err))
		return nil, err
	}

	resp := &dto.TableSchemaResponse{
		Table:   table,
		Columns: make([]dto.ColumnResponse, 0, len(columns)),
	}
	for _, c := range columns {
		resp.Columns = append(resp.Columns, dto.ColumnResponse{Name: c.Name, Type: c.Type, Nullable: c.Nullable})
	}
	return resp, nil
}
