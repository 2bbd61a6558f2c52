package core

type GetStudentAnalyticsReq struct {
}

// StudentAnalyticsResp 学生端的学习概览
type StudentAnalyticsResp struct {
	TotalClasses     int64   `form:"total_classes" json:"total_classes" query:"total_classes"`
	TotalAssignments int64   `form:"total_assignments" json:"total_assignments" query:"total_assignments"`
	Submitted        int64   `form:"submitted" json:"submitted" query:"submitted"`
	Graded           int64   `form:"graded" json:"graded" query:"graded"`
	AverageGrade     float64 `form:"average_grade" json:"average_grade" query:"average_grade"`
}

type GetClassAnalyticsReq struct {
	ClassId string `path:"class_id" json:"class_id"`
}

type StudentStat struct {
	StudentName string `form:"student_name" json:"student_name" query:"student_name"`
	Total       int64  `form:"total" json:"total" query:"total"`
	Graded      int64  `form:"graded" json:"graded" query:"graded"`
	Points      int64  `form:"points" json:"points" query:"points"`
}

type ClassAnalyticsResp struct {
	TotalStudents    int64                   `form:"total_students" json:"total_students" query:"total_students"`
	TotalAssignments int64                   `form:"total_assignments" json:"total_assignments" query:"total_assignments"`
	TotalSubmissions int64                   `form:"total_submissions" json:"total_submissions" query:"total_submissions"`
	StudentStats     map[string]*StudentStat `form:"student_stats" json:"student_stats" query:"student_stats"`
}

type GetLeaderboardReq struct {
	ClassId *string `form:"class_id" json:"class_id,omitempty" query:"class_id"`
}

type LeaderboardEntry struct {
	StudentId    string  `form:"student_id" json:"student_id" query:"student_id"`
	StudentName  string  `form:"student_name" json:"student_name" query:"student_name"`
	AverageGrade float64 `form:"average_grade" json:"average_grade" query:"average_grade"`
	GradedCount  int64   `form:"graded_count" json:"graded_count" query:"graded_count"`
}

type GetLeaderboardResp struct {
	Leaderboard []*LeaderboardEntry `form:"leaderboard" json:"leaderboard" query:"leaderboard"`
}

type GetCalendarReq struct {
}

type CalendarEvent struct {
	Id        string `form:"id" json:"id" query:"id"`
	Title     string `form:"title" json:"title" query:"title"`
	Date      string `form:"date" json:"date" query:"date"`
	Type      string `form:"type" json:"type" query:"type"`
	ClassName string `form:"class_name" json:"class_name" query:"class_name"`
}

type GetCalendarResp struct {
	Events []*CalendarEvent `form:"events" json:"events" query:"events"`
}

type SearchReq struct {
	Q string `form:"q" json:"q" query:"q"`
}

type SearchResp struct {
	Classes     []*ClassInfo      `form:"classes" json:"classes" query:"classes"`
	Assignments []*AssignmentInfo `form:"assignments" json:"assignments" query:"assignments"`
	Files       []*FileInfo       `form:"files" json:"files" query:"files"`
}
