package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"course-cms/internal/dto"
	"course-cms/internal/model"
	"course-cms/internal/repository"
	apperrors "course-cms/pkg/errors"
)

// ── 课程模块业务错误 ──

var (
	ErrCourseNotFound      = apperrors.New(apperrors.ErrNotFound, "The course does not exist")
	ErrCourseFieldsMissing = apperrors.New(apperrors.ErrValidation, "Please provide the course code and/or name")
	ErrRosterFieldsMissing = apperrors.New(apperrors.ErrValidation, "Please enter a user to add and their type (instructor or student)")
	ErrRosterTypeInvalid   = apperrors.New(apperrors.ErrValidation, "User type must be either instructor or student")
	ErrDropFieldsMissing   = apperrors.New(apperrors.ErrValidation, "Please provide the user to drop")
	ErrAlreadyStudent      = apperrors.New(apperrors.ErrConflict, "User is already in course roster")
	ErrAlreadyInstructor   = apperrors.New(apperrors.ErrConflict, "User is already in instructor roster")
	ErrNotInCourse         = apperrors.New(apperrors.ErrNotFound, "User has not been added to this course")
)

// CourseService 课程业务接口（含名单维护与作业创建）
type CourseService interface {
	Create(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.CourseResponse, error)
	List(ctx context.Context) ([]dto.CourseResponse, error)
	// Delete 返回删除前的课程
	Delete(ctx context.Context, id uint) (*dto.CourseResponse, error)
	AddUser(ctx context.Context, courseID uint, req *dto.AddRosterUserRequest) (*dto.CourseResponse, error)
	// DropUser 返回被移出的用户
	DropUser(ctx context.Context, courseID uint, req *dto.DropRosterUserRequest) (*dto.UserResponse, error)
	CreateAssignment(ctx context.Context, courseID uint, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error)
}

type courseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCourseService 创建 CourseService 实例
func NewCourseService(repo *repository.Repository, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *courseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	if !present(req.Code) || !present(req.Name) {
		return nil, ErrCourseFieldsMissing
	}

	course := &model.Course{
		Code: strings.TrimSpace(*req.Code),
		Name: strings.TrimSpace(*req.Name),
	}
	if err := s.repo.Course.Create(ctx, course); err != nil {
		s.logger.Error("创建课程失败", zap.Error(err))
		return nil, err
	}

	resp := renderCourse(course)
	return &resp, nil
}

// ────────────────────── Query ──────────────────────

func (s *courseService) GetByID(ctx context.Context, id uint) (*dto.CourseResponse, error) {
	course, err := s.repo.Course.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrCourseNotFound)
	}
	resp := renderCourse(course)
	return &resp, nil
}

func (s *courseService) List(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.repo.Course.List(ctx)
	if err != nil {
		s.logger.Error("查询课程列表失败", zap.Error(err))
		return nil, err
	}
	list := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		list = append(list, renderCourse(&courses[i]))
	}
	return list, nil
}

// ────────────────────── Delete ──────────────────────

func (s *courseService) Delete(ctx context.Context, id uint) (*dto.CourseResponse, error) {
	var resp dto.CourseResponse
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		course, err := tx.Course.GetByID(ctx, id)
		if err != nil {
			return notFoundAs(err, ErrCourseNotFound)
		}
		resp = renderCourse(course)
		return notFoundAs(tx.Course.Delete(ctx, id), ErrCourseNotFound)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("课程已删除", zap.Uint("course_id", id), zap.Int("assignments", len(resp.Assignments)))
	return &resp, nil
}

// ────────────────────── Roster ──────────────────────

func (s *courseService) AddUser(ctx context.Context, courseID uint, req *dto.AddRosterUserRequest) (*dto.CourseResponse, error) {
	var resp dto.CourseResponse
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := s.ensureCourse(ctx, tx, courseID); err != nil {
			return err
		}
		if req.UserID == nil || !present(req.Type) {
			return ErrRosterFieldsMissing
		}
		role, ok := model.ParseRosterRole(strings.TrimSpace(*req.Type))
		if !ok {
			return ErrRosterTypeInvalid
		}
		if err := s.ensureUser(ctx, tx, *req.UserID); err != nil {
			return err
		}

		member, err := tx.Roster.IsMember(ctx, courseID, *req.UserID, role)
		if err != nil {
			return err
		}
		if member {
			if role == model.RoleInstructor {
				return ErrAlreadyInstructor
			}
			return ErrAlreadyStudent
		}
		if err := tx.Roster.Add(ctx, courseID, *req.UserID, role); err != nil {
			return err
		}

		course, err := tx.Course.GetByID(ctx, courseID)
		if err != nil {
			return err
		}
		resp = renderCourse(course)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// DropUser 同时是学生与教师时只移除学生身份
func (s *courseService) DropUser(ctx context.Context, courseID uint, req *dto.DropRosterUserRequest) (*dto.UserResponse, error) {
	var resp dto.UserResponse
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := s.ensureCourse(ctx, tx, courseID); err != nil {
			return err
		}
		if req.UserID == nil {
			return ErrDropFieldsMissing
		}
		userID := *req.UserID
		if err := s.ensureUser(ctx, tx, userID); err != nil {
			return err
		}

		role, err := s.droppableRole(ctx, tx, courseID, userID)
		if err != nil {
			return err
		}
		if err := tx.Roster.Remove(ctx, courseID, userID, role); err != nil {
			return err
		}

		user, err := tx.User.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		resp = renderUser(user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *courseService) droppableRole(ctx context.Context, tx *repository.Repository, courseID, userID uint) (model.RosterRole, error) {
	for _, role := range []model.RosterRole{model.RoleStudent, model.RoleInstructor} {
		member, err := tx.Roster.IsMember(ctx, courseID, userID, role)
		if err != nil {
			return "", err
		}
		if member {
			return role, nil
		}
	}
	return "", ErrNotInCourse
}

// ────────────────────── Assignment ──────────────────────

func (s *courseService) CreateAssignment(ctx context.Context, courseID uint, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error) {
	var resp dto.AssignmentResponse
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := s.ensureCourse(ctx, tx, courseID); err != nil {
			return err
		}
		if !present(req.Title) || req.DueDate == nil {
			return ErrAssignmentFieldsMissing
		}

		assignment := &model.Assignment{
			Title:    strings.TrimSpace(*req.Title),
			DueDate:  *req.DueDate,
			CourseID: courseID,
		}
		if err := tx.Assignment.Create(ctx, assignment); err != nil {
			return err
		}

		created, err := tx.Assignment.GetByID(ctx, assignment.ID)
		if err != nil {
			return err
		}
		resp = renderAssignment(created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ── 辅助函数 ──

func (s *courseService) ensureCourse(ctx context.Context, tx *repository.Repository, id uint) error {
	ok, err := tx.Course.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCourseNotFound
	}
	return nil
}

func (s *courseService) ensureUser(ctx context.Context, tx *repository.Repository, id uint) error {
	ok, err := tx.User.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUserNotFound
	}
	return nil
}
