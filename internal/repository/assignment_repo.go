package repository

import (
	"context"

	"gorm.io/gorm"

	"course-cms/internal/model"
)

// AssignmentRepository 作业数据访问接口
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *model.Assignment) error
	// GetByID 返回作业及所属课程、全部提交（含提交者）
	GetByID(ctx context.Context, id uint) (*model.Assignment, error)
	// ListByCourse 按 ID 升序返回课程下的作业及其提交
	ListByCourse(ctx context.Context, courseID uint) ([]model.Assignment, error)
	Exists(ctx context.Context, id uint) (bool, error)
	// Update 仅写回 title 与 due_date
	Update(ctx context.Context, assignment *model.Assignment) error
}

// assignmentRepo AssignmentRepository 的 GORM 实现
type assignmentRepo struct {
	db *gorm.DB
}

// NewAssignmentRepo 创建 AssignmentRepository 实例
func NewAssignmentRepo(db *gorm.DB) AssignmentRepository {
	return &assignmentRepo{db: db}
}

func (r *assignmentRepo) Create(ctx context.Context, assignment *model.Assignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

func (r *assignmentRepo) GetByID(ctx context.Context, id uint) (*model.Assignment, error) {
	var assignment model.Assignment
	err := preloadAssignmentGraph(r.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepo) ListByCourse(ctx context.Context, courseID uint) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.db.WithContext(ctx).
		Preload("Submissions", orderByID).
		Where("course_id = ?", courseID).
		Order("id ASC").
		Find(&assignments).Error
	return assignments, err
}

func (r *assignmentRepo) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Assignment{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *assignmentRepo) Update(ctx context.Context, assignment *model.Assignment) error {
	res := r.db.WithContext(ctx).
		Model(&model.Assignment{}).
		Where("id = ?", assignment.ID).
		Updates(map[string]interface{}{
			"title":    assignment.Title,
			"due_date": assignment.DueDate,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
