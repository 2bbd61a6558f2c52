package folder

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Folder struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	ParentID   *string            `bson:"parent_id,omitempty" json:"parentId,omitempty"`
	ClassID    *string            `bson:"class_id,omitempty" json:"classId,omitempty"`
	OwnerID    string             `bson:"owner_id" json:"ownerId"`
	CreateTime time.Time          `bson:"create_time" json:"createTime"`
}
