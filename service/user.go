package service

import (
	"adboard/dao"
	"adboard/models"
	"adboard/pkg/encrypt"
	"adboard/pkg/snowflake"
	"adboard/types"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Register(ctx context.Context, opt *types.SignupRequest) (*models.Users, error)
	Login(ctx context.Context, username string, password string) (*models.Users, error)
	GetByID(ctx context.Context, userID uint64) (*models.Users, error)
}

type UserService struct {
	UsersRepo *dao.Users
}

// Register 注册用户
func (s *UserService) Register(ctx context.Context, opt *types.SignupRequest) (*models.Users, error) {
	if s.UsersRepo.IsUsernameExist(ctx, opt.Username) {
		return nil, errors.New("账号已存在! ")
	}

	nickname := opt.Nickname
	if nickname == "" {
		nickname = opt.Username
	}

	user := &models.Users{
		ID:        uint64(snowflake.GenID()),
		Username:  opt.Username,
		Nickname:  nickname,
		Password:  encrypt.HashPassword(opt.Password),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.UsersRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login 登录处理
func (s *UserService) Login(ctx context.Context, username string, password string) (*models.Users, error) {
	user, err := s.UsersRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("登录账号不存在! ")
		}
		return nil, err
	}

	if !encrypt.VerifyPassword(user.Password, password) {
		return nil, errors.New("登录密码填写错误! ")
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, userID uint64) (*models.Users, error) {
	return s.UsersRepo.FindById(ctx, userID)
}
