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

// ── 用户模块业务错误 ──

var (
	ErrUserNotFound      = apperrors.New(apperrors.ErrNotFound, "The user does not exist")
	ErrUserFieldsMissing = apperrors.New(apperrors.ErrValidation, "User needs a name and netid")
)

// UserService 用户业务接口
type UserService interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.UserResponse, error)
	List(ctx context.Context) ([]dto.UserResponse, error)
	// Delete 返回删除前的用户；其提交与名单关联一并删除
	Delete(ctx context.Context, id uint) (*dto.UserResponse, error)
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService 创建 UserService 实例
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !present(req.Name) || !present(req.NetID) {
		return nil, ErrUserFieldsMissing
	}

	user := &model.User{
		Name:  strings.TrimSpace(*req.Name),
		NetID: strings.TrimSpace(*req.NetID),
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		s.logger.Error("创建用户失败", zap.Error(err))
		return nil, err
	}

	resp := renderUser(user)
	return &resp, nil
}

func (s *userService) GetByID(ctx context.Context, id uint) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}
	resp := renderUser(user)
	return &resp, nil
}

func (s *userService) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.User.List(ctx)
	if err != nil {
		s.logger.Error("查询用户列表失败", zap.Error(err))
		return nil, err
	}
	list := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		list = append(list, renderUser(&users[i]))
	}
	return list, nil
}

func (s *userService) Delete(ctx context.Context, id uint) (*dto.UserResponse, error) {
	var resp dto.UserResponse
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		user, err := tx.User.GetByID(ctx, id)
		if err != nil {
			return notFoundAs(err, ErrUserNotFound)
		}
		resp = renderUser(user)
		return notFoundAs(tx.User.Delete(ctx, id), ErrUserNotFound)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("用户已删除", zap.Uint("user_id", id))
	return &resp, nil
}
