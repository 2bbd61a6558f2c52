package service

import (
	"testing"

	"github.com/mdtousif1712-create/prodigy-ai/biz/application/dto/prodigy/core"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/consts"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/assignment"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/class"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/user"
)

func TestCreateAssignment(t *testing.T) {
	teacher := newUser("t@test.com", "t", consts.RoleTeacher, "pwd")
	other := newUser("o@test.com", "o", consts.RoleTeacher, "pwd")
	s1 := newUser("s1@test.com", "s1", consts.RoleStudent, "pwd")
	s2 := newUser("s2@test.com", "s2", consts.RoleStudent, "pwd")
	c := newClass(teacher.ID.Hex(), s1.ID.Hex(), s2.ID.Hex())

	notifications := &fakeNotificationMapper{}
	svc := &AssignmentService{
		UserMapper:         &fakeUserMapper{users: []*user.User{teacher, other, s1, s2}},
		AssignmentMapper:   &fakeAssignmentMapper{},
		ClassMapper:        &fakeClassMapper{classes: []*class.Class{c}},
		NotificationMapper: notifications,
	}

	badPoints := int64(0)
	customPoints := int64(50)
	tests := []struct {
		name      string
		userID    string
		role      consts.Role
		maxPoints *int64
		wantErr   error
		want      int64
	}{
		{name: "student cannot assign", userID: s1.ID.Hex(), role: consts.RoleStudent, wantErr: consts.ErrForbidden},
		{name: "not the class owner", userID: other.ID.Hex(), role: consts.RoleTeacher, wantErr: consts.ErrForbidden},
		{name: "non-positive max points", userID: teacher.ID.Hex(), role: consts.RoleTeacher, maxPoints: &badPoints, wantErr: consts.ErrInvalidParams},
		{name: "default max points", userID: teacher.ID.Hex(), role: consts.RoleTeacher, want: consts.DefaultMaxPoints},
		{name: "custom max points", userID: teacher.ID.Hex(), role: consts.RoleTeacher, maxPoints: &customPoints, want: 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.CreateAssignment(metaCtx(tt.userID, tt.role), &core.CreateAssignmentReq{
				ClassId:   c.ID.Hex(),
				Title:     "Essay",
				DueDate:   "2026-09-15T00:00:00Z",
				MaxPoints: tt.maxPoints,
			})
			if err != tt.wantErr {
				t.Fatalf("CreateAssignment() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				if resp.MaxPoints != tt.want {
					t.Errorf("MaxPoints = %d, want %d", resp.MaxPoints, tt.want)
				}
				if resp.ClassName != c.Name {
					t.Errorf("ClassName = %q, want %q", resp.ClassName, c.Name)
				}
			}
		})
	}

	// 两次成功创建, 每个学生各收到两条作业通知
	for _, st := range []*user.User{s1, s2} {
		got, _ := notifications.FindByUserID(metaCtx(st.ID.Hex(), consts.RoleStudent), st.ID.Hex())
		if len(got) != 2 {
			t.Fatalf("student %s has %d notifications, want 2", st.Username, len(got))
		}
		if got[0].Type != consts.NotificationAssignment || got[0].Title != "New assignment in "+c.Name {
			t.Errorf("notification = %+v", got[0])
		}
	}
}

func TestListAssignmentsOrder(t *testing.T) {
	teacher := newUser("t@test.com", "t", consts.RoleTeacher, "pwd")
	student := newUser("s@test.com", "s", consts.RoleStudent, "pwd")
	c1 := newClass(teacher.ID.Hex(), student.ID.Hex())
	c2 := newClass(teacher.ID.Hex())

	a1 := newAssignment(c1.ID.Hex(), c1.Name, teacher.ID.Hex())
	a1.DueDate = "2026-09-20T00:00:00Z"
	a2 := newAssignment(c2.ID.Hex(), c2.Name, teacher.ID.Hex())
	a2.DueDate = "2026-09-10T00:00:00Z"

	svc := &AssignmentService{
		UserMapper:         &fakeUserMapper{users: []*user.User{teacher, student}},
		AssignmentMapper:   &fakeAssignmentMapper{assignments: []*assignment.Assignment{a1, a2}},
		ClassMapper:        &fakeClassMapper{classes: []*class.Class{c1, c2}},
		NotificationMapper: &fakeNotificationMapper{},
	}

	// 教师看到两个班级的作业, 按截止时间升序
	resp, err := svc.ListAssignments(metaCtx(teacher.ID.Hex(), consts.RoleTeacher), &core.ListAssignmentsReq{})
	if err != nil {
		t.Fatalf("ListAssignments() error = %v", err)
	}
	if len(resp.Assignments) != 2 || resp.Assignments[0].Id != a2.ID.Hex() {
		t.Errorf("teacher assignments = %+v", resp.Assignments)
	}

	// 学生只看到已加入班级的作业
	resp, err = svc.ListAssignments(metaCtx(student.ID.Hex(), consts.RoleStudent), &core.ListAssignmentsReq{})
	if err != nil {
		t.Fatalf("ListAssignments() error = %v", err)
	}
	if len(resp.Assignments) != 1 || resp.Assignments[0].Id != a1.ID.Hex() {
		t.Errorf("student assignments = %+v", resp.Assignments)
	}

	// 非成员指定班级时拒绝
	classID := c2.ID.Hex()
	if _, err = svc.ListAssignments(metaCtx(student.ID.Hex(), consts.RoleStudent), &core.ListAssignmentsReq{ClassId: &classID}); err != consts.ErrForbidden {
		t.Fatalf("ListAssignments() foreign class error = %v, want %v", err, consts.ErrForbidden)
	}
}

func TestGetAssignmentAccess(t *testing.T) {
	teacher := newUser("t@test.com", "t", consts.RoleTeacher, "pwd")
	student := newUser("s@test.com", "s", consts.RoleStudent, "pwd")
	outsider := newUser("o@test.com", "o", consts.RoleStudent, "pwd")
	c := newClass(teacher.ID.Hex(), student.ID.Hex())
	a := newAssignment(c.ID.Hex(), c.Name, teacher.ID.Hex())

	svc := &AssignmentService{
		UserMapper:         &fakeUserMapper{users: []*user.User{teacher, student, outsider}},
		AssignmentMapper:   &fakeAssignmentMapper{},
		ClassMapper:        &fakeClassMapper{classes: []*class.Class{c}},
		NotificationMapper: &fakeNotificationMapper{},
	}
	mapper := svc.AssignmentMapper.(*fakeAssignmentMapper)
	mapper.assignments = append(mapper.assignments, a)

	tests := []struct {
		name    string
		userID  string
		role    consts.Role
		id      string
		wantErr error
	}{
		{name: "owner", userID: teacher.ID.Hex(), role: consts.RoleTeacher, id: a.ID.Hex()},
		{name: "enrolled student", userID: student.ID.Hex(), role: consts.RoleStudent, id: a.ID.Hex()},
		{name: "outsider", userID: outsider.ID.Hex(), role: consts.RoleStudent, id: a.ID.Hex(), wantErr: consts.ErrForbidden},
		{name: "unknown assignment", userID: teacher.ID.Hex(), role: consts.RoleTeacher, id: "64b000000000000000000000", wantErr: consts.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.GetAssignment(metaCtx(tt.userID, tt.role), &core.GetAssignmentReq{AssignmentId: tt.id})
			if err != tt.wantErr {
				t.Fatalf("GetAssignment() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
