package service

import (
	"context"
	"time"

	"github.com/google/wire"
	"github.com/samber/lo"

	"github.com/mdtousif1712-create/prodigy-ai/biz/application/dto/prodigy/core"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/consts"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/announcement"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/class"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/notification"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/user"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/util/log"
)

type IAnnouncementService interface {
	CreateAnnouncement(ctx context.Context, req *core.CreateAnnouncementReq) (*core.AnnouncementInfo, error)
	ListAnnouncements(ctx context.Context, req *core.ListAnnouncementsReq) (*core.ListAnnouncementsResp, error)
}

type AnnouncementService struct {
	AnnouncementMapper announcement.Mapper
	ClassMapper        class.Mapper
	UserMapper         user.Mapper
	NotificationMapper notification.Mapper
}

var AnnouncementServiceSet = wire.NewSet(
	wire.Struct(new(AnnouncementService), "*"),
	wire.Bind(new(IAnnouncementService), new(*AnnouncementService)),
)

// CreateAnnouncement 发布公告并通知班级全体学生
func (s *AnnouncementService) CreateAnnouncement(ctx context.Context, req *core.CreateAnnouncementReq) (*core.AnnouncementInfo, error) {
	meta, err := requireTeacher(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	c, err := s.ClassMapper.FindOne(ctx, req.ClassId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if c.TeacherID != meta.GetUserId() {
		return nil, consts.ErrForbidden
	}
	author, err := s.UserMapper.FindOne(ctx, meta.GetUserId())
	if err != nil {
		return nil, consts.ErrNotFound
	}

	now := time.Now()
	a := &announcement.Announcement{
		ClassID:    req.ClassId,
		ClassName:  c.Name,
		Title:      req.Title,
		Content:    req.Content,
		AuthorID:   meta.GetUserId(),
		AuthorName: author.FullName,
		CreateTime: now,
	}
	if err = s.AnnouncementMapper.Insert(ctx, a); err != nil {
		log.Error("发布公告失败: %v", err)
		return nil, consts.ErrCreateAnnounce
	}

	// 通知失败不影响公告发布
	s.notifyStudents(ctx, c, "New announcement in "+c.Name, req.Title, consts.NotificationAnnouncement)

	return announcementInfo(a), nil
}

// ListAnnouncements 不指定班级时返回用户全部班级的公告
func (s *AnnouncementService) ListAnnouncements(ctx context.Context, req *core.ListAnnouncementsReq) (*core.ListAnnouncementsResp, error) {
	meta, err := requireUser(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}

	var classIDs []string
	if req.ClassId != nil {
		c, err := s.ClassMapper.FindOne(ctx, *req.ClassId)
		if err != nil {
			return nil, consts.ErrNotFound
		}
		if c.TeacherID != meta.GetUserId() && !c.HasStudent(meta.GetUserId()) {
			return nil, consts.ErrForbidden
		}
		classIDs = []string{*req.ClassId}
	} else {
		classes, err := s.accessibleClasses(ctx, meta.GetUserId(), meta.GetRole())
		if err != nil {
			log.Error("获取班级列表失败: %v", err)
			return nil, consts.ErrGetClassList
		}
		classIDs = lo.Map(classes, func(c *class.Class, _ int) string { return c.ID.Hex() })
	}

	announcements, err := s.AnnouncementMapper.FindByClassIDs(ctx, classIDs)
	if err != nil {
		log.Error("获取公告列表失败: %v", err)
		return nil, consts.ErrGetClassList
	}
	return &core.ListAnnouncementsResp{
		Announcements: lo.Map(announcements, func(a *announcement.Announcement, _ int) *core.AnnouncementInfo {
			return announcementInfo(a)
		}),
	}, nil
}

func (s *AnnouncementService) accessibleClasses(ctx context.Context, userID, role string) ([]*class.Class, error) {
	if role == string(consts.RoleTeacher) {
		return s.ClassMapper.FindByTeacher(ctx, userID)
	}
	return s.ClassMapper.FindByStudent(ctx, userID)
}

// notifyStudents 给班级全体学生逐条写入通知, 失败只记日志
func (s *AnnouncementService) notifyStudents(ctx context.Context, c *class.Class, title, content, typ string) {
	now := time.Now()
	for _, studentID := range c.Students {
		n := &notification.Notification{
			UserID:     studentID,
			Title:      title,
			Content:    content,
			Type:       typ,
			CreateTime: now,
		}
		if err := s.NotificationMapper.Insert(ctx, n); err != nil {
			log.Error("写入通知失败 student=%s: %v", studentID, err)
		}
	}
}

func announcementInfo(a *announcement.Announcement) *core.AnnouncementInfo {
	return &core.AnnouncementInfo{
		Id:         a.ID.Hex(),
		ClassId:    a.ClassID,
		ClassName:  a.ClassName,
		Title:      a.Title,
		Content:    a.Content,
		AuthorId:   a.AuthorID,
		AuthorName: a.AuthorName,
		CreateTime: a.CreateTime.Format(time.RFC3339),
	}
}
