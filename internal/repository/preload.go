package repository

import (
	"sort"

	"gorm.io/gorm"

	"course-cms/internal/model"
)

// 各实体完整序列化所需的关联深度在此集中声明，渲染层只读取已加载的字段。

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

func preloadCourseGraph(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Assignments", orderByID).
		Preload("Assignments.Submissions", orderByID).
		Preload("Instructors").
		Preload("Students")
}

func preloadUserGraph(db *gorm.DB) *gorm.DB {
	return db.
		Preload("InstructingCourses").
		Preload("StudentCourses").
		Preload("Submissions", orderByID).
		Preload("Submissions.Assignment").
		Preload("Submissions.Assignment.Submissions", orderByID).
		Preload("Submissions.User")
}

func preloadAssignmentGraph(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Course").
		Preload("Submissions", orderByID).
		Preload("Submissions.Assignment").
		Preload("Submissions.Assignment.Submissions", orderByID).
		Preload("Submissions.User")
}

func preloadSubmissionGraph(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Assignment").
		Preload("Assignment.Submissions", orderByID).
		Preload("User")
}

// 多对多关联的加载顺序由驱动决定，统一按主键排序

func sortUsers(users []model.User) {
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
}

func sortCourses(courses []model.Course) {
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
}

func sortCourseRosters(c *model.Course) {
	sortUsers(c.Instructors)
	sortUsers(c.Students)
}

func sortUserCourses(u *model.User) {
	sortCourses(u.InstructingCourses)
	sortCourses(u.StudentCourses)
}
