package dto

// ── 作业模块 DTO ──

// CreateAssignmentRequest 创建作业请求；due_date 为 Unix 秒
type CreateAssignmentRequest struct {
	Title   *string `json:"title"`
	DueDate *int64  `json:"due_date"`
}

// UpdateAssignmentRequest 部分更新作业，未提供的字段保持不变
type UpdateAssignmentRequest struct {
	Title   *string `json:"title"`
	DueDate *int64  `json:"due_date"`
}

// AssignmentResponse 作业完整序列化；course 固定为单元素列表
type AssignmentResponse struct {
	ID          uint                 `json:"id"`
	Title       string               `json:"title"`
	DueDate     int64                `json:"due_date"`
	Course      []CourseSimple       `json:"course"`
	Submissions []SubmissionResponse `json:"submissions"`
}

// AssignmentSimple 作业简要序列化
type AssignmentSimple struct {
	ID          uint               `json:"id"`
	Title       string             `json:"title"`
	DueDate     int64              `json:"due_date"`
	CourseID    uint               `json:"course_id"`
	Submissions []SubmissionSimple `json:"submissions"`
}
