package announcement

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Announcement struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClassID    string             `bson:"class_id" json:"classId"`
	ClassName  string             `bson:"class_name" json:"className"`
	Title      string             `bson:"title" json:"title"`
	Content    string             `bson:"content" json:"content"`
	AuthorID   string             `bson:"author_id" json:"authorId"`
	AuthorName string             `bson:"author_name" json:"authorName"`
	CreateTime time.Time          `bson:"create_time" json:"createTime"`
}
