package model

// CourseInstructor 课程-教师关联表 — 对应 instructor_course（复合主键）
type CourseInstructor struct {
	CourseID     uint `gorm:"primaryKey"`
	InstructorID uint `gorm:"primaryKey;index"`
}

// TableName 指定表名
func (CourseInstructor) TableName() string { return "instructor_course" }

// CourseStudent 课程-学生关联表 — 对应 student_course（复合主键）
type CourseStudent struct {
	CourseID  uint `gorm:"primaryKey"`
	StudentID uint `gorm:"primaryKey;index"`
}

// TableName 指定表名
func (CourseStudent) TableName() string { return "student_course" }
