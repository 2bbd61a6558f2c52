package apigateway

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/mdtousif1712-create/prodigy-ai/biz/adaptor"
	"github.com/mdtousif1712-create/prodigy-ai/biz/application/dto/prodigy/core"
	"github.com/mdtousif1712-create/prodigy-ai/provider"
)

// SignUp 注册
func SignUp(ctx context.Context, c *app.RequestContext) {
	var req core.SignUpReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.UserService.SignUp(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// SignIn 登录
func SignIn(ctx context.Context, c *app.RequestContext) {
	var req core.SignInReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.UserService.SignIn(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetMe 获取当前用户信息
func GetMe(ctx context.Context, c *app.RequestContext) {
	var req core.GetMeReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.UserService.GetMe(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// UpdateProfile 更新个人资料
func UpdateProfile(ctx context.Context, c *app.RequestContext) {
	var req core.UpdateProfileReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.UserService.UpdateProfile(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
