package dto

// ── 课程模块 DTO ──

// CreateCourseRequest 创建课程请求；字段缺失由 Service 层按业务提示校验
type CreateCourseRequest struct {
	Code *string `json:"code"`
	Name *string `json:"name"`
}

// AddRosterUserRequest 将用户加入课程名单
type AddRosterUserRequest struct {
	UserID *uint   `json:"user_id"`
	Type   *string `json:"type"` // student | instructor
}

// DropRosterUserRequest 将用户移出课程名单
type DropRosterUserRequest struct {
	UserID *uint `json:"user_id"`
}

// CourseResponse 课程完整序列化
type CourseResponse struct {
	ID          uint               `json:"id"`
	Code        string             `json:"code"`
	Name        string             `json:"name"`
	Assignments []AssignmentSimple `json:"assignments"`
	Instructors []UserSimple       `json:"instructors"`
	Students    []UserSimple       `json:"students"`
}

// CourseSimple 课程简要序列化
type CourseSimple struct {
	ID   uint   `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}
