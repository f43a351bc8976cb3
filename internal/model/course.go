package model

// Course 课程表 — 对应 courses
type Course struct {
	ID   uint   `gorm:"primaryKey;autoIncrement"  json:"id"`
	Code string `gorm:"type:varchar(64);not null" json:"code"`
	Name string `gorm:"type:text;not null"        json:"name"`
	BaseModel

	// 关联
	Assignments []Assignment `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"                              json:"assignments,omitempty"`
	Instructors []User       `gorm:"many2many:instructor_course;joinForeignKey:CourseID;joinReferences:InstructorID" json:"instructors,omitempty"`
	Students    []User       `gorm:"many2many:student_course;joinForeignKey:CourseID;joinReferences:StudentID"       json:"students,omitempty"`
}

// TableName 指定表名
func (Course) TableName() string { return "courses" }
