package model

import "time"

// BaseModel 通用时间戳字段（所有业务模型嵌入，不参与序列化）
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null" json:"-"`
	UpdatedAt time.Time `gorm:"not null" json:"-"`
}

// RosterRole 课程名单角色
type RosterRole string

const (
	RoleStudent    RosterRole = "student"
	RoleInstructor RosterRole = "instructor"
)

// ParseRosterRole 解析名单角色，未知取值返回 false
func ParseRosterRole(s string) (RosterRole, bool) {
	switch RosterRole(s) {
	case RoleStudent, RoleInstructor:
		return RosterRole(s), true
	default:
		return "", false
	}
}
