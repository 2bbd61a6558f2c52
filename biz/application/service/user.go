package service

import (
	"context"
	"time"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"golang.org/x/crypto/bcrypt"

	"github.com/mdtousif1712-create/prodigy-ai/biz/application/dto/prodigy/core"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/consts"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/user"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/util/log"

	"github.com/mdtousif1712-create/prodigy-ai/biz/adaptor"
)

type IUserService interface {
	SignUp(ctx context.Context, req *core.SignUpReq) (*core.AuthResp, error)
	SignIn(ctx context.Context, req *core.SignInReq) (*core.AuthResp, error)
	GetMe(ctx context.Context, req *core.GetMeReq) (*core.UserInfo, error)
	UpdateProfile(ctx context.Context, req *core.UpdateProfileReq) (*core.UserInfo, error)
}

type UserService struct {
	UserMapper user.Mapper
}

var UserServiceSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),
)

// SignUp 注册新用户, 邮箱和用户名都不允许重复
func (s *UserService) SignUp(ctx context.Context, req *core.SignUpReq) (*core.AuthResp, error) {
	role, ok := consts.ParseRole(req.Role)
	if !ok {
		return nil, consts.ErrInvalidParams
	}

	// 检查邮箱或用户名是否已被占用
	existing, err := s.UserMapper.FindOneByEmailOrUsername(ctx, req.Email, req.Username)
	if err == nil && existing != nil {
		return nil, consts.ErrRepeatedSignUp
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("密码加密失败: %v", err)
		return nil, consts.ErrSignUp
	}

	now := time.Now()
	u := &user.User{
		Username:   req.Username,
		Email:      req.Email,
		Password:   string(hashed),
		FullName:   req.FullName,
		Role:       role,
		CreateTime: now,
		UpdateTime: now,
	}
	if err = s.UserMapper.Insert(ctx, u); err != nil {
		log.Error("创建用户失败: %v", err)
		return nil, consts.ErrSignUp
	}

	token, _, err := adaptor.GenerateJwtToken(u.ID.Hex(), string(u.Role))
	if err != nil {
		log.Error("生成token失败: %v", err)
		return nil, consts.ErrSignUp
	}

	return &core.AuthResp{Token: token, User: userInfo(u)}, nil
}

// SignIn 登录, 错误信息不区分邮箱不存在和密码错误
func (s *UserService) SignIn(ctx context.Context, req *core.SignInReq) (*core.AuthResp, error) {
	u, err := s.UserMapper.FindOneByEmail(ctx, req.Email)
	if err != nil {
		return nil, consts.ErrSignIn
	}
	if err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return nil, consts.ErrSignIn
	}

	token, _, err := adaptor.GenerateJwtToken(u.ID.Hex(), string(u.Role))
	if err != nil {
		log.Error("生成token失败: %v", err)
		return nil, consts.ErrSignIn
	}

	return &core.AuthResp{Token: token, User: userInfo(u)}, nil
}

// GetMe 获取当前登录用户信息
func (s *UserService) GetMe(ctx context.Context, req *core.GetMeReq) (*core.UserInfo, error) {
	meta, err := requireUser(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	u, err := s.UserMapper.FindOne(ctx, meta.GetUserId())
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return userInfo(u), nil
}

// UpdateProfile 更新当前用户资料, 只允许改姓名和头像
func (s *UserService) UpdateProfile(ctx context.Context, req *core.UpdateProfileReq) (*core.UserInfo, error) {
	meta, err := requireUser(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	u, err := s.UserMapper.FindOne(ctx, meta.GetUserId())
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if req.FullName != nil {
		u.FullName = *req.FullName
	}
	if req.Avatar != nil {
		u.Avatar = req.Avatar
	}
	if err = s.UserMapper.Update(ctx, u); err != nil {
		log.Error("更新用户资料失败: %v", err)
		return nil, consts.ErrUpdate
	}
	return userInfo(u), nil
}

func userInfo(u *user.User) *core.UserInfo {
	info := &core.UserInfo{}
	_ = copier.Copy(info, u)
	info.Id = u.ID.Hex()
	info.Role = string(u.Role)
	info.CreateTime = u.CreateTime.Format(time.RFC3339)
	return info
}
