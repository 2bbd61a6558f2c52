package service

import (
	"context"
	"time"

	"github.com/google/wire"
	"github.com/samber/lo"

	"github.com/mdtousif1712-create/prodigy-ai/biz/application/dto/basic"
	"github.com/mdtousif1712-create/prodigy-ai/biz/application/dto/prodigy/core"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/consts"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/notification"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/user"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/util"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/util/log"
)

type INotificationService interface {
	ListNotifications(ctx context.Context, req *core.ListNotificationsReq) (*core.ListNotificationsResp, error)
	MarkNotificationRead(ctx context.Context, req *core.MarkNotificationReadReq) (*basic.Response, error)
	MarkAllNotificationsRead(ctx context.Context, req *core.MarkAllNotificationsReadReq) (*basic.Response, error)
}

type NotificationService struct {
	NotificationMapper notification.Mapper
	UserMapper         user.Mapper
}

var NotificationServiceSet = wire.NewSet(
	wire.Struct(new(NotificationService), "*"),
	wire.Bind(new(INotificationService), new(*NotificationService)),
)

// ListNotifications 获取自己的通知, 最新的在前
func (s *NotificationService) ListNotifications(ctx context.Context, req *core.ListNotificationsReq) (*core.ListNotificationsResp, error) {
	meta, err := requireUser(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	notifications, err := s.NotificationMapper.FindByUserID(ctx, meta.GetUserId())
	if err != nil {
		log.Error("获取通知列表失败: %v", err)
		return nil, consts.ErrNotFound
	}
	return &core.ListNotificationsResp{
		Notifications: lo.Map(notifications, func(n *notification.Notification, _ int) *core.NotificationInfo {
			return notificationInfo(n)
		}),
	}, nil
}

// MarkNotificationRead 标记单条通知为已读, 只能操作自己的通知
func (s *NotificationService) MarkNotificationRead(ctx context.Context, req *core.MarkNotificationReadReq) (*basic.Response, error) {
	meta, err := requireUser(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	if err = s.NotificationMapper.MarkRead(ctx, req.NotificationId, meta.GetUserId()); err != nil {
		log.Error("标记通知已读失败: %v", err)
		return nil, consts.ErrNotFound
	}
	return util.Succeed("已读")
}

// MarkAllNotificationsRead 全部标记为已读
func (s *NotificationService) MarkAllNotificationsRead(ctx context.Context, req *core.MarkAllNotificationsReadReq) (*basic.Response, error) {
	meta, err := requireUser(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	if err = s.NotificationMapper.MarkAllRead(ctx, meta.GetUserId()); err != nil {
		log.Error("标记全部已读失败: %v", err)
		return nil, consts.ErrUpdate
	}
	return util.Succeed("已读")
}

func notificationInfo(n *notification.Notification) *core.NotificationInfo {
	return &core.NotificationInfo{
		Id:         n.ID.Hex(),
		Title:      n.Title,
		Content:    n.Content,
		Type:       n.Type,
		Read:       n.Read,
		CreateTime: n.CreateTime.Format(time.RFC3339),
	}
}
