package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/wire"
	"github.com/samber/lo"

	"github.com/mdtousif1712-create/prodigy-ai/biz/application/dto/prodigy/core"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/consts"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/assignment"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/class"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/notification"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/submission"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/user"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/util/log"
)

type ISubmissionService interface {
	CreateSubmission(ctx context.Context, req *core.CreateSubmissionReq) (*core.SubmissionInfo, error)
	ListSubmissions(ctx context.Context, req *core.ListSubmissionsReq) (*core.ListSubmissionsResp, error)
	GradeSubmission(ctx context.Context, req *core.GradeSubmissionReq) (*core.SubmissionInfo, error)
}

type SubmissionService struct {
	SubmissionMapper   submission.Mapper
	AssignmentMapper   assignment.Mapper
	ClassMapper        class.Mapper
	UserMapper         user.Mapper
	NotificationMapper notification.Mapper
}

var SubmissionServiceSet = wire.NewSet(
	wire.Struct(new(SubmissionService), "*"),
	wire.Bind(new(ISubmissionService), new(*SubmissionService)),
)

// CreateSubmission 学生提交作业, 同一份作业只能提交一次
func (s *SubmissionService) CreateSubmission(ctx context.Context, req *core.CreateSubmissionReq) (*core.SubmissionInfo, error) {
	meta, err := requireStudent(ctx, s.UserMapper)
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
	if !c.HasStudent(meta.GetUserId()) {
		return nil, consts.ErrForbidden
	}
	if existing, err := s.SubmissionMapper.FindByAssignmentAndStudent(ctx, req.AssignmentId, meta.GetUserId()); err == nil && existing != nil {
		return nil, consts.ErrRepeatSubmit
	}
	student, err := s.UserMapper.FindOne(ctx, meta.GetUserId())
	if err != nil {
		return nil, consts.ErrNotFound
	}

	now := time.Now()
	sub := &submission.Submission{
		AssignmentID: req.AssignmentId,
		StudentID:    meta.GetUserId(),
		StudentName:  student.FullName,
		Content:      req.Content,
		FileIDs:      req.FileIds,
		SubmitTime:   now,
		UpdateTime:   now,
	}
	if err = s.SubmissionMapper.Insert(ctx, sub); err != nil {
		log.Error("提交作业失败: %v", err)
		return nil, consts.ErrSubmit
	}
	return submissionInfo(sub), nil
}

// ListSubmissions 教师查看自己布置作业的提交, 学生查看自己的提交
func (s *SubmissionService) ListSubmissions(ctx context.Context, req *core.ListSubmissionsReq) (*core.ListSubmissionsResp, error) {
	meta, err := requireUser(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}

	var subs []*submission.Submission
	if meta.GetRole() == string(consts.RoleStudent) {
		subs, err = s.SubmissionMapper.FindByStudentID(ctx, meta.GetUserId())
		if err == nil && req.AssignmentId != nil {
			subs = lo.Filter(subs, func(sub *submission.Submission, _ int) bool {
				return sub.AssignmentID == *req.AssignmentId
			})
		}
	} else if req.AssignmentId != nil {
		var a *assignment.Assignment
		a, err = s.AssignmentMapper.FindOne(ctx, *req.AssignmentId)
		if err != nil {
			return nil, consts.ErrNotFound
		}
		if a.TeacherID != meta.GetUserId() {
			return nil, consts.ErrForbidden
		}
		subs, err = s.SubmissionMapper.FindByAssignmentID(ctx, *req.AssignmentId)
	} else {
		// 教师不指定作业时返回自己布置的全部作业的提交
		var classes []*class.Class
		classes, err = s.ClassMapper.FindByTeacher(ctx, meta.GetUserId())
		if err != nil {
			log.Error("获取班级列表失败: %v", err)
			return nil, consts.ErrGetAssignmentList
		}
		classIDs := lo.Map(classes, func(c *class.Class, _ int) string { return c.ID.Hex() })
		var assignments []*assignment.Assignment
		assignments, err = s.AssignmentMapper.FindByClassIDs(ctx, classIDs)
		if err != nil {
			log.Error("获取作业列表失败: %v", err)
			return nil, consts.ErrGetAssignmentList
		}
		assignmentIDs := lo.Map(assignments, func(a *assignment.Assignment, _ int) string { return a.ID.Hex() })
		subs, err = s.SubmissionMapper.FindByAssignmentIDs(ctx, assignmentIDs)
	}
	if err != nil {
		log.Error("获取提交列表失败: %v", err)
		return nil, consts.ErrGetAssignmentList
	}

	return &core.ListSubmissionsResp{
		Submissions: lo.Map(subs, func(sub *submission.Submission, _ int) *core.SubmissionInfo {
			return submissionInfo(sub)
		}),
	}, nil
}

// GradeSubmission 批改作业, 只有布置该作业的教师有权批改
func (s *SubmissionService) GradeSubmission(ctx context.Context, req *core.GradeSubmissionReq) (*core.SubmissionInfo, error) {
	meta, err := requireTeacher(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	sub, err := s.SubmissionMapper.FindOne(ctx, req.SubmissionId)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	a, err := s.AssignmentMapper.FindOne(ctx, sub.AssignmentID)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if a.TeacherID != meta.GetUserId() {
		return nil, consts.ErrForbidden
	}
	if req.Grade < 0 || req.Grade > a.MaxPoints {
		return nil, consts.ErrInvalidParams
	}

	if err = s.SubmissionMapper.UpdateGrade(ctx, req.SubmissionId, req.Grade, req.Remarks); err != nil {
		log.Error("批改作业失败: %v", err)
		return nil, consts.ErrGrade
	}
	sub.Grade = &req.Grade
	sub.Remarks = &req.Remarks

	// 通知学生成绩, 失败不影响批改结果
	now := time.Now()
	n := &notification.Notification{
		UserID:     sub.StudentID,
		Title:      "Assignment graded",
		Content:    fmt.Sprintf("You received %d points", req.Grade),
		Type:       consts.NotificationGrade,
		CreateTime: now,
	}
	if err = s.NotificationMapper.Insert(ctx, n); err != nil {
		log.Error("写入通知失败 student=%s: %v", sub.StudentID, err)
	}

	return submissionInfo(sub), nil
}

func submissionInfo(sub *submission.Submission) *core.SubmissionInfo {
	fileIDs := sub.FileIDs
	if fileIDs == nil {
		fileIDs = []string{}
	}
	return &core.SubmissionInfo{
		Id:           sub.ID.Hex(),
		AssignmentId: sub.AssignmentID,
		StudentId:    sub.StudentID,
		StudentName:  sub.StudentName,
		Content:      sub.Content,
		FileIds:      fileIDs,
		Grade:        sub.Grade,
		Remarks:      sub.Remarks,
		SubmitTime:   sub.SubmitTime.Format(time.RFC3339),
	}
}
