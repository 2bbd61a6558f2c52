package service

import (
	"fmt"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mdtousif1712-create/prodigy-ai/biz/application/dto/prodigy/core"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/consts"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/assignment"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/class"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/file"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/submission"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/user"
)

func newSubmission(assignmentID, studentID, studentName string, grade *int64) *submission.Submission {
	return &submission.Submission{
		ID:           primitive.NewObjectID(),
		AssignmentID: assignmentID,
		StudentID:    studentID,
		StudentName:  studentName,
		Content:      "answer",
		FileIDs:      []string{},
		Grade:        grade,
		SubmitTime:   time.Now(),
		UpdateTime:   time.Now(),
	}
}

func gradePtr(g int64) *int64 { return &g }

func TestGetStudentAnalytics(t *testing.T) {
	teacher := newUser("t@test.com", "t", consts.RoleTeacher, "pwd")
	student := newUser("s@test.com", "Ada", consts.RoleStudent, "pwd")
	c := newClass(teacher.ID.Hex(), student.ID.Hex())
	a1 := newAssignment(c.ID.Hex(), c.Name, teacher.ID.Hex())
	a2 := newAssignment(c.ID.Hex(), c.Name, teacher.ID.Hex())

	submissions := &fakeSubmissionMapper{submissions: []*submission.Submission{
		newSubmission(a1.ID.Hex(), student.ID.Hex(), student.FullName, nil),
	}}
	svc := &AggregationService{
		UserMapper:       &fakeUserMapper{users: []*user.User{teacher, student}},
		ClassMapper:      &fakeClassMapper{classes: []*class.Class{c}},
		AssignmentMapper: &fakeAssignmentMapper{assignments: []*assignment.Assignment{a1, a2}},
		SubmissionMapper: submissions,
		FileMapper:       &fakeFileMapper{},
	}

	if _, err := svc.GetStudentAnalytics(metaCtx(teacher.ID.Hex(), consts.RoleTeacher), &core.GetStudentAnalyticsReq{}); err != consts.ErrForbidden {
		t.Fatalf("GetStudentAnalytics() by teacher error = %v, want %v", err, consts.ErrForbidden)
	}

	// 未批改时平均分为0
	resp, err := svc.GetStudentAnalytics(metaCtx(student.ID.Hex(), consts.RoleStudent), &core.GetStudentAnalyticsReq{})
	if err != nil {
		t.Fatalf("GetStudentAnalytics() error = %v", err)
	}
	if resp.TotalClasses != 1 || resp.TotalAssignments != 2 || resp.Submitted != 1 || resp.Graded != 0 || resp.AverageGrade != 0 {
		t.Errorf("GetStudentAnalytics() = %+v", resp)
	}

	// 批改85分后平均分变为85.0
	submissions.submissions[0].Grade = gradePtr(85)
	resp, err = svc.GetStudentAnalytics(metaCtx(student.ID.Hex(), consts.RoleStudent), &core.GetStudentAnalyticsReq{})
	if err != nil {
		t.Fatalf("GetStudentAnalytics() error = %v", err)
	}
	if resp.Graded != 1 || resp.AverageGrade != 85.0 {
		t.Errorf("GetStudentAnalytics() after grading = %+v", resp)
	}
}

func TestGetClassAnalytics(t *testing.T) {
	teacher := newUser("t@test.com", "t", consts.RoleTeacher, "pwd")
	other := newUser("o@test.com", "o", consts.RoleTeacher, "pwd")
	s1 := newUser("s1@test.com", "s1", consts.RoleStudent, "pwd")
	s2 := newUser("s2@test.com", "s2", consts.RoleStudent, "pwd")
	c := newClass(teacher.ID.Hex(), s1.ID.Hex(), s2.ID.Hex())
	a := newAssignment(c.ID.Hex(), c.Name, teacher.ID.Hex())

	svc := &AggregationService{
		UserMapper:       &fakeUserMapper{users: []*user.User{teacher, other, s1, s2}},
		ClassMapper:      &fakeClassMapper{classes: []*class.Class{c}},
		AssignmentMapper: &fakeAssignmentMapper{assignments: []*assignment.Assignment{a}},
		SubmissionMapper: &fakeSubmissionMapper{submissions: []*submission.Submission{
			newSubmission(a.ID.Hex(), s1.ID.Hex(), s1.FullName, gradePtr(90)),
			newSubmission(a.ID.Hex(), s2.ID.Hex(), s2.FullName, nil),
		}},
		FileMapper: &fakeFileMapper{},
	}

	if _, err := svc.GetClassAnalytics(metaCtx(other.ID.Hex(), consts.RoleTeacher), &core.GetClassAnalyticsReq{ClassId: c.ID.Hex()}); err != consts.ErrForbidden {
		t.Fatalf("GetClassAnalytics() by other teacher error = %v, want %v", err, consts.ErrForbidden)
	}

	resp, err := svc.GetClassAnalytics(metaCtx(teacher.ID.Hex(), consts.RoleTeacher), &core.GetClassAnalyticsReq{ClassId: c.ID.Hex()})
	if err != nil {
		t.Fatalf("GetClassAnalytics() error = %v", err)
	}
	if resp.TotalStudents != 2 || resp.TotalAssignments != 1 || resp.TotalSubmissions != 2 {
		t.Errorf("GetClassAnalytics() = %+v", resp)
	}
	st := resp.StudentStats[s1.ID.Hex()]
	if st == nil || st.Total != 1 || st.Graded != 1 || st.Points != 90 {
		t.Errorf("stats for s1 = %+v", st)
	}
	if st = resp.StudentStats[s2.ID.Hex()]; st == nil || st.Graded != 0 {
		t.Errorf("stats for s2 = %+v", st)
	}
}

func TestGetLeaderboard(t *testing.T) {
	teacher := newUser("t@test.com", "t", consts.RoleTeacher, "pwd")
	student := newUser("s@test.com", "s", consts.RoleStudent, "pwd")
	c := newClass(teacher.ID.Hex(), student.ID.Hex())
	a := newAssignment(c.ID.Hex(), c.Name, teacher.ID.Hex())

	subs := make([]*submission.Submission, 0)
	// 前两名同为90分, 先出现者排前
	subs = append(subs,
		newSubmission(a.ID.Hex(), "stu-first", "First", gradePtr(90)),
		newSubmission(a.ID.Hex(), "stu-second", "Second", gradePtr(90)),
	)
	for i := 0; i < consts.MaxLeaderboard+5; i++ {
		subs = append(subs, newSubmission(a.ID.Hex(), fmt.Sprintf("stu-%d", i), fmt.Sprintf("Student %d", i), gradePtr(50)))
	}
	// 未批改的提交不计入排行
	subs = append(subs, newSubmission(a.ID.Hex(), "stu-ungraded", "Ungraded", nil))

	outsider := newUser("x@test.com", "x", consts.RoleStudent, "pwd")
	userStore := &fakeUserMapper{users: []*user.User{teacher, student, outsider}}
	svc := &AggregationService{
		UserMapper:       userStore,
		ClassMapper:      &fakeClassMapper{classes: []*class.Class{c}},
		AssignmentMapper: &fakeAssignmentMapper{assignments: []*assignment.Assignment{a}},
		SubmissionMapper: &fakeSubmissionMapper{submissions: subs},
		FileMapper:       &fakeFileMapper{},
	}

	resp, err := svc.GetLeaderboard(metaCtx(student.ID.Hex(), consts.RoleStudent), &core.GetLeaderboardReq{})
	if err != nil {
		t.Fatalf("GetLeaderboard() error = %v", err)
	}
	if len(resp.Leaderboard) != consts.MaxLeaderboard {
		t.Fatalf("leaderboard size = %d, want %d", len(resp.Leaderboard), consts.MaxLeaderboard)
	}
	if resp.Leaderboard[0].StudentId != "stu-first" || resp.Leaderboard[1].StudentId != "stu-second" {
		t.Errorf("tie order = %s, %s", resp.Leaderboard[0].StudentId, resp.Leaderboard[1].StudentId)
	}
	if resp.Leaderboard[0].AverageGrade != 90.0 || resp.Leaderboard[2].AverageGrade != 50.0 {
		t.Errorf("averages = %v, %v", resp.Leaderboard[0].AverageGrade, resp.Leaderboard[2].AverageGrade)
	}

	// 指定班级时非成员拒绝
	classID := c.ID.Hex()
	if _, err = svc.GetLeaderboard(metaCtx(outsider.ID.Hex(), consts.RoleStudent), &core.GetLeaderboardReq{ClassId: &classID}); err != consts.ErrForbidden {
		t.Fatalf("GetLeaderboard() by outsider error = %v, want %v", err, consts.ErrForbidden)
	}
}

func TestGetCalendar(t *testing.T) {
	teacher := newUser("t@test.com", "t", consts.RoleTeacher, "pwd")
	student := newUser("s@test.com", "s", consts.RoleStudent, "pwd")
	c1 := newClass(teacher.ID.Hex(), student.ID.Hex())
	c2 := newClass(teacher.ID.Hex())
	a1 := newAssignment(c1.ID.Hex(), c1.Name, teacher.ID.Hex())
	a2 := newAssignment(c2.ID.Hex(), c2.Name, teacher.ID.Hex())

	svc := &AggregationService{
		UserMapper:       &fakeUserMapper{users: []*user.User{teacher, student}},
		ClassMapper:      &fakeClassMapper{classes: []*class.Class{c1, c2}},
		AssignmentMapper: &fakeAssignmentMapper{assignments: []*assignment.Assignment{a1, a2}},
		SubmissionMapper: &fakeSubmissionMapper{},
		FileMapper:       &fakeFileMapper{},
	}

	resp, err := svc.GetCalendar(metaCtx(student.ID.Hex(), consts.RoleStudent), &core.GetCalendarReq{})
	if err != nil {
		t.Fatalf("GetCalendar() error = %v", err)
	}
	if len(resp.Events) != 1 {
		t.Fatalf("student events = %d, want 1", len(resp.Events))
	}
	e := resp.Events[0]
	if e.Id != a1.ID.Hex() || e.Type != consts.NotificationAssignment || e.Date != a1.DueDate || e.ClassName != c1.Name {
		t.Errorf("event = %+v", e)
	}

	resp, err = svc.GetCalendar(metaCtx(teacher.ID.Hex(), consts.RoleTeacher), &core.GetCalendarReq{})
	if err != nil {
		t.Fatalf("GetCalendar() error = %v", err)
	}
	if len(resp.Events) != 2 {
		t.Errorf("teacher events = %d, want 2", len(resp.Events))
	}
}

func TestSearch(t *testing.T) {
	teacher := newUser("t@test.com", "t", consts.RoleTeacher, "pwd")
	student := newUser("s@test.com", "s", consts.RoleStudent, "pwd")

	matched := newClass(teacher.ID.Hex(), student.ID.Hex())
	matched.Name = "Algebra I"
	unmatched := newClass(teacher.ID.Hex(), student.ID.Hex())
	unmatched.Name = "Biology"

	inMatched := newAssignment(matched.ID.Hex(), matched.Name, teacher.ID.Hex())
	inMatched.Title = "Algebra worksheet"
	// 标题命中但所在班级未命中, 不应返回
	inUnmatched := newAssignment(unmatched.ID.Hex(), unmatched.Name, teacher.ID.Hex())
	inUnmatched.Title = "Algebra crossover"

	files := &fakeFileMapper{files: []*file.File{{
		ID:       primitive.NewObjectID(),
		OwnerID:  student.ID.Hex(),
		Filename: "algebra-notes.pdf",
	}}}

	svc := &AggregationService{
		UserMapper:       &fakeUserMapper{users: []*user.User{teacher, student}},
		ClassMapper:      &fakeClassMapper{classes: []*class.Class{matched, unmatched}},
		AssignmentMapper: &fakeAssignmentMapper{assignments: []*assignment.Assignment{inMatched, inUnmatched}},
		SubmissionMapper: &fakeSubmissionMapper{},
		FileMapper:       files,
	}

	if _, err := svc.Search(metaCtx(student.ID.Hex(), consts.RoleStudent), &core.SearchReq{Q: ""}); err != consts.ErrInvalidParams {
		t.Fatalf("Search() empty query error = %v, want %v", err, consts.ErrInvalidParams)
	}

	resp, err := svc.Search(metaCtx(student.ID.Hex(), consts.RoleStudent), &core.SearchReq{Q: "algebra"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(resp.Classes) != 1 || resp.Classes[0].Id != matched.ID.Hex() {
		t.Errorf("classes = %+v", resp.Classes)
	}
	if len(resp.Assignments) != 1 || resp.Assignments[0].Id != inMatched.ID.Hex() {
		t.Errorf("assignments = %+v", resp.Assignments)
	}
	if len(resp.Files) != 1 || resp.Files[0].Filename != "algebra-notes.pdf" {
		t.Errorf("files = %+v", resp.Files)
	}

	// 无命中班级时不搜作业
	resp, err = svc.Search(metaCtx(student.ID.Hex(), consts.RoleStudent), &core.SearchReq{Q: "chemistry"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(resp.Classes) != 0 || len(resp.Assignments) != 0 {
		t.Errorf("unexpected results = %+v", resp)
	}
}
