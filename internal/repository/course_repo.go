package repository

import (
	"context"

	"gorm.io/gorm"

	"course-cms/internal/model"
)

// CourseRepository 课程数据访问接口
type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	// GetByID 返回课程及其作业（含提交）、教师与学生名单
	GetByID(ctx context.Context, id uint) (*model.Course, error)
	List(ctx context.Context) ([]model.Course, error)
	Exists(ctx context.Context, id uint) (bool, error)
	// Delete 级联删除课程下的作业、提交与名单关联
	Delete(ctx context.Context, id uint) error
}

// courseRepo CourseRepository 的 GORM 实现
type courseRepo struct {
	db *gorm.DB
}

// NewCourseRepo 创建 CourseRepository 实例
func NewCourseRepo(db *gorm.DB) CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) Create(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *courseRepo) GetByID(ctx context.Context, id uint) (*model.Course, error) {
	var course model.Course
	err := preloadCourseGraph(r.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&course).Error
	if err != nil {
		return nil, err
	}
	sortCourseRosters(&course)
	return &course, nil
}

func (r *courseRepo) List(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	err := preloadCourseGraph(r.db.WithContext(ctx)).
		Order("id ASC").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	for i := range courses {
		sortCourseRosters(&courses[i])
	}
	return courses, nil
}

func (r *courseRepo) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Course{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *courseRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		assignmentIDs := tx.Model(&model.Assignment{}).Select("id").Where("course_id = ?", id)
		if err := tx.Where("assignment_id IN (?)", assignmentIDs).Delete(&model.Submission{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", id).Delete(&model.Assignment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", id).Delete(&model.CourseInstructor{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", id).Delete(&model.CourseStudent{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&model.Course{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
