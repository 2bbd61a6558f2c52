package core

type CreateAnnouncementReq struct {
	ClassId string `form:"class_id" json:"class_id" query:"class_id"`
	Title   string `form:"title" json:"title" query:"title"`
	Content string `form:"content" json:"content" query:"content"`
}

type AnnouncementInfo struct {
	Id         string `form:"id" json:"id" query:"id"`
	ClassId    string `form:"class_id" json:"class_id" query:"class_id"`
	ClassName  string `form:"class_name" json:"class_name" query:"class_name"`
	Title      string `form:"title" json:"title" query:"title"`
	Content    string `form:"content" json:"content" query:"content"`
	AuthorId   string `form:"author_id" json:"author_id" query:"author_id"`
	AuthorName string `form:"author_name" json:"author_name" query:"author_name"`
	CreateTime string `form:"created_at" json:"created_at" query:"created_at"`
}

type ListAnnouncementsReq struct {
	ClassId *string `form:"class_id" json:"class_id,omitempty" query:"class_id"`
}

type ListAnnouncementsResp struct {
	Announcements []*AnnouncementInfo `form:"announcements" json:"announcements" query:"announcements"`
}

type CreateAssignmentReq struct {
	ClassId     string `form:"class_id" json:"class_id" query:"class_id"`
	Title       string `form:"title" json:"title" query:"title"`
	Description string `form:"description" json:"description" query:"description"`
	DueDate     string `form:"due_date" json:"due_date" query:"due_date"`
	MaxPoints   *int64 `form:"max_points" json:"max_points,omitempty" query:"max_points"`
}

type AssignmentInfo struct {
	Id          string `form:"id" json:"id" query:"id"`
	ClassId     string `form:"class_id" json:"class_id" query:"class_id"`
	ClassName   string `form:"class_name" json:"class_name" query:"class_name"`
	Title       string `form:"title" json:"title" query:"title"`
	Description string `form:"description" json:"description" query:"description"`
	DueDate     string `form:"due_date" json:"due_date" query:"due_date"`
	MaxPoints   int64  `form:"max_points" json:"max_points" query:"max_points"`
	TeacherId   string `form:"teacher_id" json:"teacher_id" query:"teacher_id"`
	CreateTime  string `form:"created_at" json:"created_at" query:"created_at"`
}

type ListAssignmentsReq struct {
	ClassId *string `form:"class_id" json:"class_id,omitempty" query:"class_id"`
}

type ListAssignmentsResp struct {
	Assignments []*AssignmentInfo `form:"assignments" json:"assignments" query:"assignments"`
}

type GetAssignmentReq struct {
	AssignmentId string `path:"assignment_id" json:"assignment_id"`
}

type CreateSubmissionReq struct {
	AssignmentId string   `form:"assignment_id" json:"assignment_id" query:"assignment_id"`
	Content      string   `form:"content" json:"content" query:"content"`
	FileIds      []string `form:"file_ids" json:"file_ids" query:"file_ids"`
}

type SubmissionInfo struct {
	Id           string   `form:"id" json:"id" query:"id"`
	AssignmentId string   `form:"assignment_id" json:"assignment_id" query:"assignment_id"`
	StudentId    string   `form:"student_id" json:"student_id" query:"student_id"`
	StudentName  string   `form:"student_name" json:"student_name" query:"student_name"`
	Content      string   `form:"content" json:"content" query:"content"`
	FileIds      []string `form:"file_ids" json:"file_ids" query:"file_ids"`
	Grade        *int64   `form:"grade" json:"grade,omitempty" query:"grade"`
	Remarks      *string  `form:"remarks" json:"remarks,omitempty" query:"remarks"`
	SubmitTime   string   `form:"submitted_at" json:"submitted_at" query:"submitted_at"`
}

type ListSubmissionsReq struct {
	AssignmentId *string `form:"assignment_id" json:"assignment_id,omitempty" query:"assignment_id"`
}

type ListSubmissionsResp struct {
	Submissions []*SubmissionInfo `form:"submissions" json:"submissions" query:"submissions"`
}

type GradeSubmissionReq struct {
	SubmissionId string `form:"submission_id" json:"submission_id" query:"submission_id"`
	Grade        int64  `form:"grade" json:"grade" query:"grade"`
	Remarks      string `form:"remarks" json:"remarks" query:"remarks"`
}
