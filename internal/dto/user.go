package dto

// ── 用户模块 DTO ──

// CreateUserRequest 创建用户请求
type CreateUserRequest struct {
	Name  *string `json:"name"`
	NetID *string `json:"netid"`
}

// UserResponse 用户完整序列化
type UserResponse struct {
	ID                 uint                 `json:"id"`
	Name               string               `json:"name"`
	NetID              string               `json:"netid"`
	InstructingCourses []CourseSimple       `json:"instructing_courses"`
	StudentCourses     []CourseSimple       `json:"student_courses"`
	Submissions        []SubmissionResponse `json:"submissions"`
}

// UserSimple 用户简要序列化
type UserSimple struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	NetID string `json:"netid"`
}
