package service

import (
	"context"
	"time"

	"github.com/google/wire"
	"github.com/samber/lo"

	"github.com/mdtousif1712-create/prodigy-ai/biz/application/dto/prodigy/core"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/consts"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/chat"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/class"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/user"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/util/log"
)

type IChatService interface {
	SendMessage(ctx context.Context, req *core.SendMessageReq) (*core.MessageInfo, error)
	ListMessages(ctx context.Context, req *core.ListMessagesReq) (*core.ListMessagesResp, error)
	ListConversations(ctx context.Context, req *core.ListConversationsReq) (*core.ListConversationsResp, error)
}

type ChatService struct {
	ChatMapper  chat.Mapper
	ClassMapper class.Mapper
	UserMapper  user.Mapper
}

var ChatServiceSet = wire.NewSet(
	wire.Struct(new(ChatService), "*"),
	wire.Bind(new(IChatService), new(*ChatService)),
)

// SendMessage 发送私聊或班级消息, 两者必须指定其一
func (s *ChatService) SendMessage(ctx context.Context, req *core.SendMessageReq) (*core.MessageInfo, error) {
	meta, err := requireUser(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	if req.Content == "" || (req.ReceiverId == nil) == (req.ClassId == nil) {
		return nil, consts.ErrInvalidParams
	}

	if req.ClassId != nil {
		c, err := s.ClassMapper.FindOne(ctx, *req.ClassId)
		if err != nil {
			return nil, consts.ErrNotFound
		}
		if c.TeacherID != meta.GetUserId() && !c.HasStudent(meta.GetUserId()) {
			return nil, consts.ErrForbidden
		}
	} else {
		if _, err := s.UserMapper.FindOne(ctx, *req.ReceiverId); err != nil {
			return nil, consts.ErrNotFound
		}
	}

	sender, err := s.UserMapper.FindOne(ctx, meta.GetUserId())
	if err != nil {
		return nil, consts.ErrNotFound
	}

	now := time.Now()
	m := &chat.Message{
		SenderID:   meta.GetUserId(),
		SenderName: sender.FullName,
		ReceiverID: req.ReceiverId,
		ClassID:    req.ClassId,
		Content:    req.Content,
		CreateTime: now,
	}
	if err = s.ChatMapper.Insert(ctx, m); err != nil {
		log.Error("发送消息失败: %v", err)
		return nil, consts.ErrSendMessage
	}
	return messageInfo(m), nil
}

// ListMessages 按班级或私聊对象拉取消息, 时间正序
func (s *ChatService) ListMessages(ctx context.Context, req *core.ListMessagesReq) (*core.ListMessagesResp, error) {
	meta, err := requireUser(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	if (req.ClassId == nil) == (req.UserId == nil) {
		return nil, consts.ErrInvalidParams
	}

	var messages []*chat.Message
	if req.ClassId != nil {
		c, err := s.ClassMapper.FindOne(ctx, *req.ClassId)
		if err != nil {
			return nil, consts.ErrNotFound
		}
		if c.TeacherID != meta.GetUserId() && !c.HasStudent(meta.GetUserId()) {
			return nil, consts.ErrForbidden
		}
		messages, err = s.ChatMapper.FindByClassID(ctx, *req.ClassId)
		if err != nil {
			log.Error("获取班级消息失败: %v", err)
			return nil, consts.ErrGetConversations
		}
	} else {
		messages, err = s.ChatMapper.FindDirect(ctx, meta.GetUserId(), *req.UserId)
		if err != nil {
			log.Error("获取私聊消息失败: %v", err)
			return nil, consts.ErrGetConversations
		}
	}

	return &core.ListMessagesResp{
		Messages: lo.Map(messages, func(m *chat.Message, _ int) *core.MessageInfo { return messageInfo(m) }),
	}, nil
}

// ListConversations 按对端聚合最近私聊会话
func (s *ChatService) ListConversations(ctx context.Context, req *core.ListConversationsReq) (*core.ListConversationsResp, error) {
	meta, err := requireUser(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}

	conversations, err := s.ChatMapper.FindConversations(ctx, meta.GetUserId())
	if err != nil {
		log.Error("获取会话列表失败: %v", err)
		return nil, consts.ErrGetConversations
	}

	partnerIDs := lo.Map(conversations, func(c *chat.Conversation, _ int) string { return c.PartnerID })
	partners, err := s.UserMapper.FindByIDs(ctx, partnerIDs)
	if err != nil {
		log.Error("获取会话用户失败: %v", err)
		return nil, consts.ErrGetConversations
	}
	byID := lo.KeyBy(partners, func(u *user.User) string { return u.ID.Hex() })

	result := make([]*core.ConversationInfo, 0, len(conversations))
	for _, c := range conversations {
		u, ok := byID[c.PartnerID]
		if !ok {
			// 对端账号已注销, 跳过
			continue
		}
		result = append(result, &core.ConversationInfo{
			User:        userInfo(u),
			LastMessage: c.LastMessage,
			LastTime:    c.LastTime.Format(time.RFC3339),
		})
	}
	return &core.ListConversationsResp{Conversations: result}, nil
}

func messageInfo(m *chat.Message) *core.MessageInfo {
	return &core.MessageInfo{
		Id:         m.ID.Hex(),
		SenderId:   m.SenderID,
		SenderName: m.SenderName,
		ReceiverId: m.ReceiverID,
		ClassId:    m.ClassID,
		Content:    m.Content,
		CreateTime: m.CreateTime.Format(time.RFC3339),
	}
}
