package service

import (
	"context"
	"time"

	"github.com/google/wire"
	"github.com/samber/lo"

	"github.com/mdtousif1712-create/prodigy-ai/biz/application/dto/prodigy/core"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/consts"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/assignment"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/class"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/notification"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/user"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/util/log"
)

type IAssignmentService interface {
	CreateAssignment(ctx context.Context, req *core.CreateAssignmentReq) (*core.AssignmentInfo, error)
	ListAssignments(ctx context.Context, req *core.ListAssignmentsReq) (*core.ListAssignmentsResp, error)
	GetAssignment(ctx context.Context, req *core.GetAssignmentReq) (*core.AssignmentInfo, error)
}

type AssignmentService struct {
	AssignmentMapper   assignment.Mapper
	ClassMapper        class.Mapper
	NotificationMapper notification.Mapper
	UserMapper         user.Mapper
}

var AssignmentServiceSet = wire.NewSet(
	wire.Struct(new(AssignmentService), "*"),
	wire.Bind(new(IAssignmentService), new(*AssignmentService)),
)

// CreateAssignment 布置作业并通知班级全体学生
func (s *AssignmentService) CreateAssignment(ctx context.Context, req *core.CreateAssignmentReq) (*core.AssignmentInfo, error) {
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

	maxPoints := int64(consts.DefaultMaxPoints)
	if req.MaxPoints != nil {
		if *req.MaxPoints <= 0 {
			return nil, consts.ErrInvalidParams
		}
		maxPoints = *req.MaxPoints
	}

	now := time.Now()
	a := &assignment.Assignment{
		ClassID:     req.ClassId,
		ClassName:   c.Name,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		MaxPoints:   maxPoints,
		TeacherID:   meta.GetUserId(),
		CreateTime:  now,
	}
	if err = s.AssignmentMapper.Insert(ctx, a); err != nil {
		log.Error("创建作业失败: %v", err)
		return nil, consts.ErrCreateAssignment
	}

	// 通知失败不影响作业创建
	s.notifyStudents(ctx, c, "New assignment in "+c.Name, req.Title)

	return assignmentInfo(a), nil
}

// ListAssignments 不指定班级时返回用户全部班级的作业, 按截止时间排序
func (s *AssignmentService) ListAssignments(ctx context.Context, req *core.ListAssignmentsReq) (*core.ListAssignmentsResp, error) {
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
		var classes []*class.Class
		if meta.GetRole() == string(consts.RoleTeacher) {
			classes, err = s.ClassMapper.FindByTeacher(ctx, meta.GetUserId())
		} else {
			classes, err = s.ClassMapper.FindByStudent(ctx, meta.GetUserId())
		}
		if err != nil {
			log.Error("获取班级列表失败: %v", err)
			return nil, consts.ErrGetAssignmentList
		}
		classIDs = lo.Map(classes, func(c *class.Class, _ int) string { return c.ID.Hex() })
	}

	assignments, err := s.AssignmentMapper.FindByClassIDs(ctx, classIDs)
	if err != nil {
		log.Error("获取作业列表失败: %v", err)
		return nil, consts.ErrGetAssignmentList
	}
	return &core.ListAssignmentsResp{
		Assignments: lo.Map(assignments, func(a *assignment.Assignment, _ int) *core.AssignmentInfo {
			return assignmentInfo(a)
		}),
	}, nil
}

// GetAssignment 获取作业详情
func (s *AssignmentService) GetAssignment(ctx context.Context, req *core.GetAssignmentReq) (*core.AssignmentInfo, error) {
	meta, err := requireUser(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	a, err := s.AssignmentMapper.FindOne(ctx, req.AssignmentId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	c, err := s.ClassMapper.FindOne(ctx, a.ClassID)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if c.TeacherID != meta.GetUserId() && !c.HasStudent(meta.GetUserId()) {
		return nil, consts.ErrForbidden
	}
	return assignmentInfo(a), nil
}

func (s *AssignmentService) notifyStudents(ctx context.Context, c *class.Class, title, content string) {
	now := time.Now()
	for _, studentID := range c.Students {
		n := &notification.Notification{
			UserID:     studentID,
			Title:      title,
			Content:    content,
			Type:       consts.NotificationAssignment,
			CreateTime: now,
		}
		if err := s.NotificationMapper.Insert(ctx, n); err != nil {
			log.Error("写入通知失败 student=%s: %v", studentID, err)
		}
	}
}

func assignmentInfo(a *assignment.Assignment) *core.AssignmentInfo {
	return &core.AssignmentInfo{
		Id:          a.ID.Hex(),
		ClassId:     a.ClassID,
		ClassName:   a.ClassName,
		Title:       a.Title,
		Description: a.Description,
		DueDate:     a.DueDate,
		MaxPoints:   a.MaxPoints,
		TeacherId:   a.TeacherID,
		CreateTime:  a.CreateTime.Format(time.RFC3339),
	}
}
