package apigateway

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/mdtousif1712-create/prodigy-ai/biz/adaptor"
	"github.com/mdtousif1712-create/prodigy-ai/biz/application/dto/prodigy/core"
	"github.com/mdtousif1712-create/prodigy-ai/provider"
)

// SendMessage 发送消息
func SendMessage(ctx context.Context, c *app.RequestContext) {
	var req core.SendMessageReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.ChatService.SendMessage(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListMessages 获取消息列表
func ListMessages(ctx context.Context, c *app.RequestContext) {
	var req core.ListMessagesReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.ChatService.ListMessages(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListConversations 获取会话列表
func ListConversations(ctx context.Context, c *app.RequestContext) {
	var req core.ListConversationsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.ChatService.ListConversations(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListNotifications 获取通知列表
func ListNotifications(ctx context.Context, c *app.RequestContext) {
	var req core.ListNotificationsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.NotificationService.ListNotifications(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// MarkNotificationRead 标记通知已读
func MarkNotificationRead(ctx context.Context, c *app.RequestContext) {
	var req core.MarkNotificationReadReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.NotificationService.MarkNotificationRead(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// MarkAllNotificationsRead 全部标记已读
func MarkAllNotificationsRead(ctx context.Context, c *app.RequestContext) {
	var req core.MarkAllNotificationsReadReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	p := provider.Get()
	resp, err := p.NotificationService.MarkAllNotificationsRead(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
