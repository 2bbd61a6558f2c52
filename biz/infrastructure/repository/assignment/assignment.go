package assignment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Assignment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClassID     string             `bson:"class_id" json:"classId"`
	ClassName   string             `bson:"class_name" json:"className"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	DueDate     string             `bson:"due_date" json:"dueDate"` // RFC3339, 字符串排序即时间排序
	MaxPoints   int64              `bson:"max_points" json:"maxPoints"`
	TeacherID   string             `bson:"teacher_id" json:"teacherId"`
	CreateTime  time.Time          `bson:"create_time" json:"createTime"`
}
