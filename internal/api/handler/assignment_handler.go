package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"course-cms/internal/dto"
	"course-cms/internal/service"
	"course-cms/pkg/response"
)

// submitFileField 提交接口中文件所在的表单字段
const submitFileField = "content"

// AssignmentHandler 作业模块 HTTP 处理器（含提交与评分）
type AssignmentHandler struct {
	assignmentSvc service.AssignmentService
	maxUpload     int64
}

// NewAssignmentHandler 创建 AssignmentHandler；maxUpload 为提交文件的字节上限
func NewAssignmentHandler(assignmentSvc service.AssignmentService, maxUpload int64) *AssignmentHandler {
	return &AssignmentHandler{assignmentSvc: assignmentSvc, maxUpload: maxUpload}
}

// GetAssignment 作业详情
// GET /api/assignments/:id/
func (h *AssignmentHandler) GetAssignment(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	assignment, err := h.assignmentSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, assignment)
}

// UpdateAssignment 部分更新作业
// POST /api/assignments/:id/
func (h *AssignmentHandler) UpdateAssignment(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateAssignmentRequest
	if !bindJSON(c, &req) {
		return
	}

	assignment, err := h.assignmentSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, assignment)
}

// Submit 提交作业文件
// POST /api/assignments/:id/submit/  (multipart: user_id, content)
func (h *AssignmentHandler) Submit(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	if h.maxUpload > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload)
	}

	var file *service.SubmissionFile
	header, err := c.FormFile(submitFileField)
	switch {
	case err == nil:
		f, err := header.Open()
		if err != nil {
			_ = c.Error(err)
			response.BadRequest(c, "Invalid upload")
			return
		}
		defer f.Close()
		file = &service.SubmissionFile{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Body:        f,
		}
	case isBodyTooLarge(err):
		response.Error(c, http.StatusRequestEntityTooLarge, "Submission file too large")
		return
	}

	var userID *uint
	if raw := strings.TrimSpace(c.PostForm("user_id")); raw != "" {
		v, err := strconv.ParseUint(raw, 10, strconv.IntSize)
		if err != nil {
			response.BadRequest(c, "user_id must be a positive integer")
			return
		}
		u := uint(v)
		userID = &u
	}

	submission, err := h.assignmentSvc.Submit(c.Request.Context(), id, userID, file)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, submission)
}

// Grade 评分
// POST /api/assignments/:id/grade/
func (h *AssignmentHandler) Grade(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.GradeSubmissionRequest
	if !bindJSON(c, &req) {
		return
	}

	submission, err := h.assignmentSvc.Grade(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, submission)
}
