package service

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mdtousif1712-create/prodigy-ai/biz/application/dto/prodigy/core"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/consts"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/class"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/user"
)

func TestCreateAnnouncementFanout(t *testing.T) {
	teacher := newUser("t@test.com", "t", consts.RoleTeacher, "pwd")
	s1 := newUser("s1@test.com", "s1", consts.RoleStudent, "pwd")
	s2 := newUser("s2@test.com", "s2", consts.RoleStudent, "pwd")
	s3 := newUser("s3@test.com", "s3", consts.RoleStudent, "pwd")
	c := newClass(teacher.ID.Hex(), s1.ID.Hex(), s2.ID.Hex(), s3.ID.Hex())

	notifications := &fakeNotificationMapper{}
	svc := &AnnouncementService{
		AnnouncementMapper: &fakeAnnouncementMapper{},
		ClassMapper:        &fakeClassMapper{classes: []*class.Class{c}},
		UserMapper:         &fakeUserMapper{users: []*user.User{teacher, s1, s2, s3}},
		NotificationMapper: notifications,
	}

	resp, err := svc.CreateAnnouncement(metaCtx(teacher.ID.Hex(), consts.RoleTeacher), &core.CreateAnnouncementReq{
		ClassId: c.ID.Hex(),
		Title:   "Exam friday",
		Content: "Chapters 1-3",
	})
	if err != nil {
		t.Fatalf("CreateAnnouncement() error = %v", err)
	}
	if resp.ClassName != c.Name || resp.AuthorName != teacher.FullName {
		t.Errorf("CreateAnnouncement() = %+v", resp)
	}

	// 每个在读学生一条通知
	if len(notifications.notifications) != 3 {
		t.Fatalf("fanout produced %d notifications, want 3", len(notifications.notifications))
	}
	for _, n := range notifications.notifications {
		if n.Type != consts.NotificationAnnouncement {
			t.Errorf("notification type = %s", n.Type)
		}
		if n.Title != "New announcement in "+c.Name || n.Content != "Exam friday" {
			t.Errorf("notification = %+v", n)
		}
	}

	// 发布后才加入的学生收不到旧通知
	late := newUser("late@test.com", "late", consts.RoleStudent, "pwd")
	c.Students = append(c.Students, late.ID.Hex())
	got, _ := notifications.FindByUserID(metaCtx(late.ID.Hex(), consts.RoleStudent), late.ID.Hex())
	if len(got) != 0 {
		t.Errorf("late joiner has %d notifications, want 0", len(got))
	}
}

func TestCreateAnnouncementAuth(t *testing.T) {
	teacher := newUser("t@test.com", "t", consts.RoleTeacher, "pwd")
	other := newUser("o@test.com", "o", consts.RoleTeacher, "pwd")
	c := newClass(teacher.ID.Hex())

	svc := &AnnouncementService{
		AnnouncementMapper: &fakeAnnouncementMapper{},
		ClassMapper:        &fakeClassMapper{classes: []*class.Class{c}},
		UserMapper:         &fakeUserMapper{users: []*user.User{teacher, other}},
		NotificationMapper: &fakeNotificationMapper{},
	}

	tests := []struct {
		name    string
		userID  string
		role    consts.Role
		classID string
		wantErr error
	}{
		{name: "not the owner", userID: other.ID.Hex(), role: consts.RoleTeacher, classID: c.ID.Hex(), wantErr: consts.ErrForbidden},
		{name: "unknown class", userID: teacher.ID.Hex(), role: consts.RoleTeacher, classID: primitive.NewObjectID().Hex(), wantErr: consts.ErrNotFound},
		{name: "owner", userID: teacher.ID.Hex(), role: consts.RoleTeacher, classID: c.ID.Hex()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateAnnouncement(metaCtx(tt.userID, tt.role), &core.CreateAnnouncementReq{
				ClassId: tt.classID, Title: "T", Content: "C",
			})
			if err != tt.wantErr {
				t.Fatalf("CreateAnnouncement() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestListAnnouncementsScope(t *testing.T) {
	teacher := newUser("t@test.com", "t", consts.RoleTeacher, "pwd")
	student := newUser("s@test.com", "s", consts.RoleStudent, "pwd")
	mine := newClass(teacher.ID.Hex(), student.ID.Hex())
	foreign := newClass(primitive.NewObjectID().Hex())

	announcements := &fakeAnnouncementMapper{}
	svc := &AnnouncementService{
		AnnouncementMapper: announcements,
		ClassMapper:        &fakeClassMapper{classes: []*class.Class{mine, foreign}},
		UserMapper:         &fakeUserMapper{users: []*user.User{teacher, student}},
		NotificationMapper: &fakeNotificationMapper{},
	}

	if _, err := svc.CreateAnnouncement(metaCtx(teacher.ID.Hex(), consts.RoleTeacher), &core.CreateAnnouncementReq{
		ClassId: mine.ID.Hex(), Title: "visible", Content: "x",
	}); err != nil {
		t.Fatalf("CreateAnnouncement() error = %v", err)
	}

	resp, err := svc.ListAnnouncements(metaCtx(student.ID.Hex(), consts.RoleStudent), &core.ListAnnouncementsReq{})
	if err != nil {
		t.Fatalf("ListAnnouncements() error = %v", err)
	}
	if len(resp.Announcements) != 1 || resp.Announcements[0].Title != "visible" {
		t.Errorf("ListAnnouncements() = %+v", resp)
	}

	// 非成员按class_id查询被拒
	foreignID := foreign.ID.Hex()
	if _, err = svc.ListAnnouncements(metaCtx(student.ID.Hex(), consts.RoleStudent), &core.ListAnnouncementsReq{
		ClassId: &foreignID,
	}); err != consts.ErrForbidden {
		t.Fatalf("ListAnnouncements() foreign class error = %v, want %v", err, consts.ErrForbidden)
	}
}
