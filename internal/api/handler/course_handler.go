package handler

import (
	"github.com/gin-gonic/gin"

	"course-cms/internal/dto"
	"course-cms/internal/service"
	"course-cms/pkg/response"
)

// CourseHandler 课程模块 HTTP 处理器
type CourseHandler struct {
	courseSvc service.CourseService
}

// NewCourseHandler 创建 CourseHandler
func NewCourseHandler(courseSvc service.CourseService) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc}
}

// ListCourses 课程列表
// GET /api/courses/
func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.courseSvc.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Collection(c, "courses", courses)
}

// CreateCourse 创建课程
// POST /api/courses/
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req dto.CreateCourseRequest
	if !bindJSON(c, &req) {
		return
	}

	course, err := h.courseSvc.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, course)
}

// GetCourse 课程详情
// GET /api/courses/:id/
func (h *CourseHandler) GetCourse(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	course, err := h.courseSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, course)
}

// DeleteCourse 删除课程（级联删除作业与提交）
// DELETE /api/courses/:id/
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	course, err := h.courseSvc.Delete(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, course)
}

// AddUser 加入课程名单
// POST /api/courses/:id/add/
func (h *CourseHandler) AddUser(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.AddRosterUserRequest
	if !bindJSON(c, &req) {
		return
	}

	course, err := h.courseSvc.AddUser(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, course)
}

// DropUser 移出课程名单
// POST /api/courses/:id/drop/
func (h *CourseHandler) DropUser(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.DropRosterUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.courseSvc.DropUser(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, user)
}

// CreateAssignment 在课程下创建作业
// POST /api/courses/:id/assignment/
func (h *CourseHandler) CreateAssignment(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.CreateAssignmentRequest
	if !bindJSON(c, &req) {
		return
	}

	assignment, err := h.courseSvc.CreateAssignment(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, assignment)
}
