package submission

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Submission struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AssignmentID string             `bson:"assignment_id" json:"assignmentId"`
	StudentID    string             `bson:"student_id" json:"studentId"`
	StudentName  string             `bson:"student_name" json:"studentName"`
	Content      string             `bson:"content" json:"content"`
	FileIDs      []string           `bson:"file_ids" json:"fileIds"`
	Grade        *int64             `bson:"grade,omitempty" json:"grade,omitempty"`
	Remarks      *string            `bson:"remarks,omitempty" json:"remarks,omitempty"`
	SubmitTime   time.Time          `bson:"submit_time" json:"submitTime"`
	UpdateTime   time.Time          `bson:"update_time" json:"updateTime"`
}

// Graded 是否已批改
func (s *Submission) Graded() bool {
	return s.Grade != nil
}
