package chat

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Message struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SenderID   string             `bson:"sender_id" json:"senderId"`
	SenderName string             `bson:"sender_name" json:"senderName"`
	ReceiverID *string            `bson:"receiver_id,omitempty" json:"receiverId,omitempty"`
	ClassID    *string            `bson:"class_id,omitempty" json:"classId,omitempty"`
	Content    string             `bson:"content" json:"content"`
	CreateTime time.Time          `bson:"create_time" json:"createTime"`
}

// Conversation 会话视图中的一条记录: 对方用户id、最近一条消息及其时间
type Conversation struct {
	PartnerID   string    `bson:"_id" json:"partnerId"`
	LastMessage string    `bson:"last_message" json:"lastMessage"`
	LastTime    time.Time `bson:"last_time" json:"lastTime"`
}
