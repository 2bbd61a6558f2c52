package service

import (
	"context"

	"github.com/mdtousif1712-create/prodigy-ai/biz/adaptor"
	"github.com/mdtousif1712-create/prodigy-ai/biz/application/dto/basic"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/consts"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/user"
)

// requireUser 要求请求携带有效token, 且账号仍然存在
// token有效期内账号被注销时同样拒绝
func requireUser(ctx context.Context, users user.Mapper) (*basic.UserMeta, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if _, err := users.FindOne(ctx, meta.GetUserId()); err != nil {
		return nil, consts.ErrNotAuthentication
	}
	return meta, nil
}

// requireRole 要求请求方具备指定角色
func requireRole(ctx context.Context, users user.Mapper, role consts.Role) (*basic.UserMeta, error) {
	meta, err := requireUser(ctx, users)
	if err != nil {
		return nil, err
	}
	if meta.GetRole() != string(role) {
		return nil, consts.ErrForbidden
	}
	return meta, nil
}

func requireTeacher(ctx context.Context, users user.Mapper) (*basic.UserMeta, error) {
	return requireRole(ctx, users, consts.RoleTeacher)
}

func requireStudent(ctx context.Context, users user.Mapper) (*basic.UserMeta, error) {
	return requireRole(ctx, users, consts.RoleStudent)
}
