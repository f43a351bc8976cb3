package model

// Submission 作业提交表 — 对应 submissions
type Submission struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Content      string `gorm:"type:text;not null"       json:"content"` // 对象存储中的文件 URL
	Score        *int   `gorm:"column:score"             json:"score"`   // 未评分时为 NULL
	UserID       uint   `gorm:"not null;index"           json:"user_id"`
	AssignmentID uint   `gorm:"not null;index"           json:"assignment_id"`
	BaseModel

	// 关联
	User       *User       `gorm:"foreignKey:UserID"       json:"user,omitempty"`
	Assignment *Assignment `gorm:"foreignKey:AssignmentID" json:"assignment,omitempty"`
}

// TableName 指定表名
func (Submission) TableName() string { return "submissions" }
