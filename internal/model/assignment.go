package model

// Assignment 作业表 — 对应 assignments
type Assignment struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title    string `gorm:"type:text;not null"       json:"title"`
	DueDate  int64  `gorm:"not null"                 json:"due_date"` // Unix 时间戳（秒）
	CourseID uint   `gorm:"not null;index"           json:"course_id"`
	BaseModel

	// 关联
	Course      *Course      `gorm:"foreignKey:CourseID"                                json:"course,omitempty"`
	Submissions []Submission `gorm:"foreignKey:AssignmentID;constraint:OnDelete:CASCADE" json:"submissions,omitempty"`
}

// TableName 指定表名
func (Assignment) TableName() string { return "assignments" }
