package core

type CreateClassReq struct {
	Name        string `form:"name" json:"name" query:"name"`
	Description string `form:"description" json:"description" query:"description"`
	Subject     string `form:"subject" json:"subject" query:"subject"`
}

type ClassInfo struct {
	Id          string   `form:"id" json:"id" query:"id"`
	Name        string   `form:"name" json:"name" query:"name"`
	Description string   `form:"description" json:"description" query:"description"`
	Subject     string   `form:"subject" json:"subject" query:"subject"`
	ClassCode   string   `form:"class_code" json:"class_code" query:"class_code"`
	TeacherId   string   `form:"teacher_id" json:"teacher_id" query:"teacher_id"`
	TeacherName string   `form:"teacher_name" json:"teacher_name" query:"teacher_name"`
	Students    []string `form:"students" json:"students" query:"students"`
	CreateTime  string   `form:"created_at" json:"created_at" query:"created_at"`
}

type ListClassesReq struct {
}

type ListClassesResp struct {
	Classes []*ClassInfo `form:"classes" json:"classes" query:"classes"`
	Total   int64        `form:"total" json:"total" query:"total"`
}

type GetClassReq struct {
	ClassId string `path:"class_id" json:"class_id"`
}

type JoinClassReq struct {
	ClassCode string `form:"class_code" json:"class_code" query:"class_code"`
}

type JoinClassResp struct {
	Code      int64  `form:"code" json:"code" query:"code"`
	Msg       string `form:"msg" json:"msg" query:"msg"`
	ClassName string `form:"class_name" json:"class_name" query:"class_name"`
}

type DeleteClassReq struct {
	ClassId string `path:"class_id" json:"class_id"`
}

type GetClassStudentsReq struct {
	ClassId string `path:"class_id" json:"class_id"`
}

type GetClassStudentsResp struct {
	Students []*UserInfo `form:"students" json:"students" query:"students"`
}

type RemoveStudentReq struct {
	ClassId   string `path:"class_id" json:"class_id"`
	StudentId string `path:"student_id" json:"student_id"`
}
