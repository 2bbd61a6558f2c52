package aichat

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Record 一次AI问答的历史记录, 仅在调用成功后写入
type Record struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"user_id" json:"userId"`
	Prompt     string             `bson:"prompt" json:"prompt"`
	Response   string             `bson:"response" json:"response"`
	CreateTime time.Time          `bson:"create_time" json:"createTime"`
}
