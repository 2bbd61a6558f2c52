package apigateway

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/mdtousif1712-create/prodigy-ai/biz/adaptor"
	"github.com/mdtousif1712-create/prodigy-ai/biz/application/dto/prodigy/core"
	"github.com/mdtousif1712-create/prodigy-ai/provider"
)

// CreateClass 创建班级
func CreateClass(ctx context.Context, c *app.RequestContext) {
	var req core.CreateClassReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.ClassService.CreateClass(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListClasses 获取班级列表
func ListClasses(ctx context.Context, c *app.RequestContext) {
	var req core.ListClassesReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.ClassService.ListClasses(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetClass 获取班级详情
func GetClass(ctx context.Context, c *app.RequestContext) {
	var req core.GetClassReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.ClassService.GetClass(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// JoinClass 凭邀请码加入班级
func JoinClass(ctx context.Context, c *app.RequestContext) {
	var req core.JoinClassReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.ClassService.JoinClass(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// DeleteClass 删除班级
func DeleteClass(ctx context.Context, c *app.RequestContext) {
	var req core.DeleteClassReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.ClassService.DeleteClass(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetClassStudents 获取班级学生名单
func GetClassStudents(ctx context.Context, c *app.RequestContext) {
	var req core.GetClassStudentsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.ClassService.GetClassStudents(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// RemoveStudent 移除班级学生
func RemoveStudent(ctx context.Context, c *app.RequestContext) {
	var req core.RemoveStudentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.ClassService.RemoveStudent(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
