package core

type SendMessageReq struct {
	Content    string  `form:"content" json:"content" query:"content"`
	ReceiverId *string `form:"receiver_id" json:"receiver_id,omitempty" query:"receiver_id"`
	ClassId    *string `form:"class_id" json:"class_id,omitempty" query:"class_id"`
}

type MessageInfo struct {
	Id         string  `form:"id" json:"id" query:"id"`
	SenderId   string  `form:"sender_id" json:"sender_id" query:"sender_id"`
	SenderName string  `form:"sender_name" json:"sender_name" query:"sender_name"`
	ReceiverId *string `form:"receiver_id" json:"receiver_id,omitempty" query:"receiver_id"`
	ClassId    *string `form:"class_id" json:"class_id,omitempty" query:"class_id"`
	Content    string  `form:"content" json:"content" query:"content"`
	CreateTime string  `form:"created_at" json:"created_at" query:"created_at"`
}

type ListMessagesReq struct {
	ClassId *string `form:"class_id" json:"class_id,omitempty" query:"class_id"`
	UserId  *string `form:"user_id" json:"user_id,omitempty" query:"user_id"`
}

type ListMessagesResp struct {
	Messages []*MessageInfo `form:"messages" json:"messages" query:"messages"`
}

// ConversationInfo 会话摘要, 按对端用户聚合
type ConversationInfo struct {
	User        *UserInfo `form:"user" json:"user" query:"user"`
	LastMessage string    `form:"last_message" json:"last_message" query:"last_message"`
	LastTime    string    `form:"last_time" json:"last_time" query:"last_time"`
}

type ListConversationsReq struct {
}

type ListConversationsResp struct {
	Conversations []*ConversationInfo `form:"conversations" json:"conversations" query:"conversations"`
}

type NotificationInfo struct {
	Id         string `form:"id" json:"id" query:"id"`
	Title      string `form:"title" json:"title" query:"title"`
	Content    string `form:"content" json:"content" query:"content"`
	Type       string `form:"type" json:"type" query:"type"`
	Read       bool   `form:"read" json:"read" query:"read"`
	CreateTime string `form:"created_at" json:"created_at" query:"created_at"`
}

type ListNotificationsReq struct {
}

type ListNotificationsResp struct {
	Notifications []*NotificationInfo `form:"notifications" json:"notifications" query:"notifications"`
}

type MarkNotificationReadReq struct {
	NotificationId string `path:"notification_id" json:"notification_id"`
}

type MarkAllNotificationsReadReq struct {
}
