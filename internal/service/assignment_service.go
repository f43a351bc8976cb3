package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"course-cms/internal/dto"
	"course-cms/internal/model"
	"course-cms/internal/repository"
	apperrors "course-cms/pkg/errors"
	"course-cms/pkg/storage"
)

// ── 作业与提交模块业务错误 ──

var (
	ErrAssignmentNotFound      = apperrors.New(apperrors.ErrNotFound, "Assignment not found")
	ErrAssignmentFieldsMissing = apperrors.New(apperrors.ErrValidation, "Please enter an assignment title and due date")
	ErrSubmissionNotFound      = apperrors.New(apperrors.ErrNotFound, "Submission not found")
	ErrSubmissionFileMissing   = apperrors.New(apperrors.ErrValidation, "Please provide a file to submit")
	ErrSubmissionUserMissing   = apperrors.New(apperrors.ErrValidation, "Please provide a user_id to submit")
	ErrNotStudent              = apperrors.New(apperrors.ErrForbidden, "This user is not a student in the course and can't submit")
	ErrUploadFailed            = apperrors.New(apperrors.ErrUpstream, "Failed to upload submission file")
	ErrGradeFieldsMissing      = apperrors.New(apperrors.ErrValidation, "Please enter a submission to grade and score")
)

// SubmissionFile 待转存的提交文件
type SubmissionFile struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// AssignmentService 作业业务接口（含提交与评分）
type AssignmentService interface {
	GetByID(ctx context.Context, id uint) (*dto.AssignmentResponse, error)
	// Update 部分更新：只覆盖请求中提供的字段
	Update(ctx context.Context, id uint, req *dto.UpdateAssignmentRequest) (*dto.AssignmentResponse, error)
	// Submit 校验通过后先上传文件，上传成功才写入提交记录
	Submit(ctx context.Context, assignmentID uint, userID *uint, file *SubmissionFile) (*dto.SubmissionResponse, error)
	// Grade 覆盖写入分数，允许重复评分
	Grade(ctx context.Context, assignmentID uint, req *dto.GradeSubmissionRequest) (*dto.SubmissionResponse, error)
}

type assignmentService struct {
	repo   *repository.Repository
	store  storage.Storage
	logger *zap.Logger
}

// NewAssignmentService 创建 AssignmentService 实例
func NewAssignmentService(repo *repository.Repository, store storage.Storage, logger *zap.Logger) AssignmentService {
	return &assignmentService{repo: repo, store: store, logger: logger}
}

func (s *assignmentService) GetByID(ctx context.Context, id uint) (*dto.AssignmentResponse, error) {
	assignment, err := s.repo.Assignment.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrAssignmentNotFound)
	}
	resp := renderAssignment(assignment)
	return &resp, nil
}

// ────────────────────── Update ──────────────────────

func (s *assignmentService) Update(ctx context.Context, id uint, req *dto.UpdateAssignmentRequest) (*dto.AssignmentResponse, error) {
	var resp dto.AssignmentResponse
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		assignment, err := tx.Assignment.GetByID(ctx, id)
		if err != nil {
			return notFoundAs(err, ErrAssignmentNotFound)
		}

		if present(req.Title) {
			assignment.Title = strings.TrimSpace(*req.Title)
		}
		if req.DueDate != nil {
			assignment.DueDate = *req.DueDate
		}
		if err := tx.Assignment.Update(ctx, assignment); err != nil {
			return notFoundAs(err, ErrAssignmentNotFound)
		}

		// 重新加载：提交记录内嵌的作业副本需反映本次更新
		updated, err := tx.Assignment.GetByID(ctx, id)
		if err != nil {
			return notFoundAs(err, ErrAssignmentNotFound)
		}
		resp = renderAssignment(updated)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ────────────────────── Submit ──────────────────────

func (s *assignmentService) Submit(ctx context.Context, assignmentID uint, userID *uint, file *SubmissionFile) (*dto.SubmissionResponse, error) {
	if file == nil || file.Body == nil {
		return nil, ErrSubmissionFileMissing
	}
	if userID == nil {
		return nil, ErrSubmissionUserMissing
	}

	// 1. 校验作业、用户与选课关系，失败时不产生任何上传
	assignment, err := s.repo.Assignment.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, notFoundAs(err, ErrAssignmentNotFound)
	}
	exists, err := s.repo.User.Exists(ctx, *userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}
	isStudent, err := s.repo.Roster.IsMember(ctx, assignment.CourseID, *userID, model.RoleStudent)
	if err != nil {
		return nil, err
	}
	if !isStudent {
		return nil, ErrNotStudent
	}

	// 2. 转存文件
	key := storage.NewObjectKey(file.Filename)
	url, err := s.store.Upload(ctx, key, file.Body, file.ContentType)
	if err != nil {
		s.logger.Error("提交文件上传失败",
			zap.Uint("assignment_id", assignmentID),
			zap.String("key", key),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	// 3. 上传成功后写入提交记录
	submission := &model.Submission{
		Content:      url,
		UserID:       *userID,
		AssignmentID: assignmentID,
	}
	if err := s.repo.Submission.Create(ctx, submission); err != nil {
		s.logger.Error("写入提交记录失败，对象已上传",
			zap.String("key", key),
			zap.Error(err),
		)
		return nil, err
	}

	created, err := s.repo.Submission.GetByID(ctx, submission.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("作业已提交",
		zap.Uint("assignment_id", assignmentID),
		zap.Uint("user_id", *userID),
		zap.Uint("submission_id", submission.ID),
	)
	resp := renderSubmission(created)
	return &resp, nil
}

// ────────────────────── Grade ──────────────────────

func (s *assignmentService) Grade(ctx context.Context, assignmentID uint, req *dto.GradeSubmissionRequest) (*dto.SubmissionResponse, error) {
	if req.SubmissionID == nil || req.Score == nil {
		return nil, ErrGradeFieldsMissing
	}

	var resp dto.SubmissionResponse
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		exists, err := tx.Assignment.Exists(ctx, assignmentID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrAssignmentNotFound
		}

		if err := tx.Submission.UpdateScore(ctx, *req.SubmissionID, *req.Score); err != nil {
			return notFoundAs(err, ErrSubmissionNotFound)
		}

		submission, err := tx.Submission.GetByID(ctx, *req.SubmissionID)
		if err != nil {
			return notFoundAs(err, ErrSubmissionNotFound)
		}
		resp = renderSubmission(submission)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
