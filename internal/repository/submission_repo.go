package repository

import (
	"context"

	"gorm.io/gorm"

	"course-cms/internal/model"
)

// SubmissionRepository 作业提交数据访问接口
type SubmissionRepository interface {
	Create(ctx context.Context, submission *model.Submission) error
	// GetByID 返回提交及所属作业（含其全部提交）与提交者
	GetByID(ctx context.Context, id uint) (*model.Submission, error)
	UpdateScore(ctx context.Context, id uint, score int) error
}

// submissionRepo SubmissionRepository 的 GORM 实现
type submissionRepo struct {
	db *gorm.DB
}

// NewSubmissionRepo 创建 SubmissionRepository 实例
func NewSubmissionRepo(db *gorm.DB) SubmissionRepository {
	return &submissionRepo{db: db}
}

func (r *submissionRepo) Create(ctx context.Context, submission *model.Submission) error {
	return r.db.WithContext(ctx).Create(submission).Error
}

func (r *submissionRepo) GetByID(ctx context.Context, id uint) (*model.Submission, error) {
	var submission model.Submission
	err := preloadSubmissionGraph(r.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&submission).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepo) UpdateScore(ctx context.Context, id uint, score int) error {
	res := r.db.WithContext(ctx).
		Model(&model.Submission{}).
		Where("id = ?", id).
		Update("score", score)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
