package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"course-cms/internal/model"
)

// RosterRepository 课程名单（多对多关联表）数据访问接口
type RosterRepository interface {
	IsMember(ctx context.Context, courseID, userID uint, role model.RosterRole) (bool, error)
	Add(ctx context.Context, courseID, userID uint, role model.RosterRole) error
	Remove(ctx context.Context, courseID, userID uint, role model.RosterRole) error
	// ListMembers 按用户 ID 升序返回课程中指定角色的成员
	ListMembers(ctx context.Context, courseID uint, role model.RosterRole) ([]model.User, error)
}

// rosterRepo RosterRepository 的 GORM 实现
type rosterRepo struct {
	db *gorm.DB
}

// NewRosterRepo 创建 RosterRepository 实例
func NewRosterRepo(db *gorm.DB) RosterRepository {
	return &rosterRepo{db: db}
}

// rosterTable 返回角色对应的关联表名与成员列名
func rosterTable(role model.RosterRole) (table, memberColumn string, err error) {
	switch role {
	case model.RoleStudent:
		return model.CourseStudent{}.TableName(), "student_id", nil
	case model.RoleInstructor:
		return model.CourseInstructor{}.TableName(), "instructor_id", nil
	default:
		return "", "", fmt.Errorf("未知的名单角色: %q", role)
	}
}

func (r *rosterRepo) IsMember(ctx context.Context, courseID, userID uint, role model.RosterRole) (bool, error) {
	table, col, err := rosterTable(role)
	if err != nil {
		return false, err
	}
	var count int64
	err = r.db.WithContext(ctx).
		Table(table).
		Where("course_id = ? AND "+col+" = ?", courseID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *rosterRepo) Add(ctx context.Context, courseID, userID uint, role model.RosterRole) error {
	switch role {
	case model.RoleStudent:
		return r.db.WithContext(ctx).Create(&model.CourseStudent{CourseID: courseID, StudentID: userID}).Error
	case model.RoleInstructor:
		return r.db.WithContext(ctx).Create(&model.CourseInstructor{CourseID: courseID, InstructorID: userID}).Error
	default:
		return fmt.Errorf("未知的名单角色: %q", role)
	}
}

func (r *rosterRepo) Remove(ctx context.Context, courseID, userID uint, role model.RosterRole) error {
	switch role {
	case model.RoleStudent:
		return r.db.WithContext(ctx).
			Where("course_id = ? AND student_id = ?", courseID, userID).
			Delete(&model.CourseStudent{}).Error
	case model.RoleInstructor:
		return r.db.WithContext(ctx).
			Where("course_id = ? AND instructor_id = ?", courseID, userID).
			Delete(&model.CourseInstructor{}).Error
	default:
		return fmt.Errorf("未知的名单角色: %q", role)
	}
}

func (r *rosterRepo) ListMembers(ctx context.Context, courseID uint, role model.RosterRole) ([]model.User, error) {
	table, col, err := rosterTable(role)
	if err != nil {
		return nil, err
	}
	var users []model.User
	err = r.db.WithContext(ctx).
		Joins(fmt.Sprintf("JOIN %s ON %s.%s = users.id", table, table, col)).
		Where(table+".course_id = ?", courseID).
		Order("users.id ASC").
		Find(&users).Error
	return users, err
}
