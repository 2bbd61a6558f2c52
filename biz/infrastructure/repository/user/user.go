package user

import (
	"time"

	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/consts"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username   string             `bson:"username" json:"username"`
	Email      string             `bson:"email" json:"email"`
	Password   string             `bson:"password" json:"-"`
	FullName   string             `bson:"full_name" json:"fullName"`
	Role       consts.Role        `bson:"role" json:"role"`
	Avatar     *string            `bson:"avatar,omitempty" json:"avatar,omitempty"`
	CreateTime time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime time.Time          `bson:"update_time" json:"updateTime"`
}
