package apigateway

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/mdtousif1712-create/prodigy-ai/biz/adaptor"
	"github.com/mdtousif1712-create/prodigy-ai/biz/application/dto/prodigy/core"
	"github.com/mdtousif1712-create/prodigy-ai/provider"
)

// CreateAnnouncement 发布公告
func CreateAnnouncement(ctx context.Context, c *app.RequestContext) {
	var req core.CreateAnnouncementReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AnnouncementService.CreateAnnouncement(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListAnnouncements 获取公告列表
func ListAnnouncements(ctx context.Context, c *app.RequestContext) {
	var req core.ListAnnouncementsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AnnouncementService.ListAnnouncements(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// CreateAssignment 布置作业
func CreateAssignment(ctx context.Context, c *app.RequestContext) {
	var req core.CreateAssignmentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AssignmentService.CreateAssignment(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListAssignments 获取作业列表
func ListAssignments(ctx context.Context, c *app.RequestContext) {
	var req core.ListAssignmentsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AssignmentService.ListAssignments(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetAssignment 获取作业详情
func GetAssignment(ctx context.Context, c *app.RequestContext) {
	var req core.GetAssignmentReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AssignmentService.GetAssignment(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// CreateSubmission 提交作业
func CreateSubmission(ctx context.Context, c *app.RequestContext) {
	var req core.CreateSubmissionReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.SubmissionService.CreateSubmission(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListSubmissions 获取提交列表
func ListSubmissions(ctx context.Context, c *app.RequestContext) {
	var req core.ListSubmissionsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.SubmissionService.ListSubmissions(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GradeSubmission 批改作业
func GradeSubmission(ctx context.Context, c *app.RequestContext) {
	var req core.GradeSubmissionReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.SubmissionService.GradeSubmission(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
