package class

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Class struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Subject     string             `bson:"subject" json:"subject"`
	ClassCode   string             `bson:"class_code" json:"classCode"`
	TeacherID   string             `bson:"teacher_id" json:"teacherId"`
	TeacherName string             `bson:"teacher_name" json:"teacherName"`
	Students    []string           `bson:"students" json:"students"`
	CreateTime  time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime  time.Time          `bson:"update_time" json:"updateTime"`
}

// HasStudent 判断学生是否在班级中
func (c *Class) HasStudent(userID string) bool {
	for _, id := range c.Students {
		if id == userID {
			return true
		}
	}
	return false
}
