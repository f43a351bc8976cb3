package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Course     CourseRepository
	User       UserRepository
	Roster     RosterRepository
	Assignment AssignmentRepository
	Submission SubmissionRepository
	Schema     SchemaRepository

	db *gorm.DB
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Course:     NewCourseRepo(db),
		User:       NewUserRepo(db),
		Roster:     NewRosterRepo(db),
		Assignment: NewAssignmentRepo(db),
		Submission: NewSubmissionRepo(db),
		Schema:     NewSchemaRepo(db),
		db:         db,
	}
}

// Transaction 在单个数据库事务中执行 fn，fn 收到的 Repository 全部绑定到该事务。
// fn 返回错误时回滚。未绑定数据库的聚合（如测试桩）直接执行 fn。
func (r *Repository) Transaction(ctx context.Context, fn func(tx *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}
