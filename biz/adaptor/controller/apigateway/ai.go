package apigateway

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/mdtousif1712-create/prodigy-ai/biz/adaptor"
	"github.com/mdtousif1712-create/prodigy-ai/biz/application/dto/prodigy/core"
	"github.com/mdtousif1712-create/prodigy-ai/provider"
)

// AIChat AI辅导问答
func AIChat(ctx context.Context, c *app.RequestContext) {
	var req core.AIChatReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AIService.Chat(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// AISummarize 文档摘要
func AISummarize(ctx context.Context, c *app.RequestContext) {
	var req core.AISummarizeReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AIService.Summarize(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListAIHistory 获取AI对话历史
func ListAIHistory(ctx context.Context, c *app.RequestContext) {
	var req core.ListAIHistoryReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.AIService.ListHistory(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
