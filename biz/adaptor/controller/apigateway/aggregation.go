package apigateway

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/mdtousif1712-create/prodigy-ai/biz/adaptor"
	"github.com/mdtousif1712-create/prodigy-ai/biz/application/dto/prodigy/core"
	"github.com/mdtousif1712-create/prodigy-ai/provider"
)

// GetStudentAnalytics 学生学习概览
func GetStudentAnalytics(ctx context.Context, c *app.RequestContext) {
	var req core.GetStudentAnalyticsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AggregationService.GetStudentAnalytics(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetClassAnalytics 班级统计
func GetClassAnalytics(ctx context.Context, c *app.RequestContext) {
	var req core.GetClassAnalyticsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AggregationService.GetClassAnalytics(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetLeaderboard 排行榜
func GetLeaderboard(ctx context.Context, c *app.RequestContext) {
	var req core.GetLeaderboardReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AggregationService.GetLeaderboard(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetCalendar 日历事件
func GetCalendar(ctx context.Context, c *app.RequestContext) {
	var req core.GetCalendarReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AggregationService.GetCalendar(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// Search 全局搜索
func Search(ctx context.Context, c *app.RequestContext) {
	var req core.SearchReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AggregationService.Search(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
