package model

// User 用户表 — 对应 users（学生与教师共用）
type User struct {
	ID    uint   `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name  string `gorm:"type:text;not null"        json:"name"`
	NetID string `gorm:"column:netid;type:varchar(64);not null" json:"netid"`
	BaseModel

	// 关联
	InstructingCourses []Course     `gorm:"many2many:instructor_course;joinForeignKey:InstructorID;joinReferences:CourseID" json:"instructing_courses,omitempty"`
	StudentCourses     []Course     `gorm:"many2many:student_course;joinForeignKey:StudentID;joinReferences:CourseID"       json:"student_courses,omitempty"`
	Submissions        []Submission `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"                                   json:"submissions,omitempty"`
}

// TableName 指定表名
func (User) TableName() string { return "users" }
