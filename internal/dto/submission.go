package dto

// ── 提交与评分 DTO ──

// GradeSubmissionRequest 评分请求
type GradeSubmissionRequest struct {
	SubmissionID *uint `json:"submission_id"`
	Score        *int  `json:"score"`
}

// SubmissionResponse 提交完整序列化；score 未评分时为 null
type SubmissionResponse struct {
	ID         uint             `json:"id"`
	Content    string           `json:"content"`
	Score      *int             `json:"score"`
	UserID     uint             `json:"user_id"`
	Assignment AssignmentSimple `json:"assignment"`
	User       UserSimple       `json:"user"`
}

// SubmissionSimple 提交简要序列化
type SubmissionSimple struct {
	ID      uint   `json:"id"`
	Content string `json:"content"`
	Score   *int   `json:"score"`
	UserID  uint   `json:"user_id"`
}
