package service

import (
	"context"
	"math"
	"sort"

	"github.com/google/wire"
	"github.com/samber/lo"

	"github.com/mdtousif1712-create/prodigy-ai/biz/application/dto/prodigy/core"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/consts"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/assignment"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/class"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/file"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/submission"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/user"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/util/log"
)

type IAggregationService interface {
	GetStudentAnalytics(ctx context.Context, req *core.GetStudentAnalyticsReq) (*core.StudentAnalyticsResp, error)
	GetClassAnalytics(ctx context.Context, req *core.GetClassAnalyticsReq) (*core.ClassAnalyticsResp, error)
	GetLeaderboard(ctx context.Context, req *core.GetLeaderboardReq) (*core.GetLeaderboardResp, error)
	GetCalendar(ctx context.Context, req *core.GetCalendarReq) (*core.GetCalendarResp, error)
	Search(ctx context.Context, req *core.SearchReq) (*core.SearchResp, error)
}

type AggregationService struct {
	ClassMapper      class.Mapper
	AssignmentMapper assignment.Mapper
	SubmissionMapper submission.Mapper
	FileMapper       file.Mapper
	UserMapper       user.Mapper
}

var AggregationServiceSet = wire.NewSet(
	wire.Struct(new(AggregationService), "*"),
	wire.Bind(new(IAggregationService), new(*AggregationService)),
)

// GetStudentAnalytics 学生端学习概览, 无成绩时平均分为0
func (s *AggregationService) GetStudentAnalytics(ctx context.Context, req *core.GetStudentAnalyticsReq) (*core.StudentAnalyticsResp, error) {
	meta, err := requireStudent(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}

	classes, err := s.ClassMapper.FindByStudent(ctx, meta.GetUserId())
	if err != nil {
		log.Error("获取班级列表失败: %v", err)
		return nil, consts.ErrGetAnalytics
	}
	classIDs := lo.Map(classes, func(c *class.Class, _ int) string { return c.ID.Hex() })
	assignments, err := s.AssignmentMapper.FindByClassIDs(ctx, classIDs)
	if err != nil {
		log.Error("获取作业列表失败: %v", err)
		return nil, consts.ErrGetAnalytics
	}
	subs, err := s.SubmissionMapper.FindByStudentID(ctx, meta.GetUserId())
	if err != nil {
		log.Error("获取提交列表失败: %v", err)
		return nil, consts.ErrGetAnalytics
	}

	var graded, points int64
	for _, sub := range subs {
		if sub.Graded() {
			graded++
			points += *sub.Grade
		}
	}
	average := 0.0
	if graded > 0 {
		average = round1(float64(points) / float64(graded*consts.DefaultMaxPoints) * consts.DefaultMaxPoints)
	}

	return &core.StudentAnalyticsResp{
		TotalClasses:     int64(len(classes)),
		TotalAssignments: int64(len(assignments)),
		Submitted:        int64(len(subs)),
		Graded:           graded,
		AverageGrade:     average,
	}, nil
}

// GetClassAnalytics 班级维度统计, 仅限任课教师
func (s *AggregationService) GetClassAnalytics(ctx context.Context, req *core.GetClassAnalyticsReq) (*core.ClassAnalyticsResp, error) {
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

	assignments, err := s.AssignmentMapper.FindByClassIDs(ctx, []string{req.ClassId})
	if err != nil {
		log.Error("获取作业列表失败: %v", err)
		return nil, consts.ErrGetAnalytics
	}
	assignmentIDs := lo.Map(assignments, func(a *assignment.Assignment, _ int) string { return a.ID.Hex() })
	subs, err := s.SubmissionMapper.FindByAssignmentIDs(ctx, assignmentIDs)
	if err != nil {
		log.Error("获取提交列表失败: %v", err)
		return nil, consts.ErrGetAnalytics
	}

	stats := make(map[string]*core.StudentStat)
	for _, sub := range subs {
		st, ok := stats[sub.StudentID]
		if !ok {
			st = &core.StudentStat{StudentName: sub.StudentName}
			stats[sub.StudentID] = st
		}
		st.Total++
		if sub.Graded() {
			st.Graded++
			st.Points += *sub.Grade
		}
	}

	return &core.ClassAnalyticsResp{
		TotalStudents:    int64(len(c.Students)),
		TotalAssignments: int64(len(assignments)),
		TotalSubmissions: int64(len(subs)),
		StudentStats:     stats,
	}, nil
}

// GetLeaderboard 按平均分降序的排行榜, 同分保持先出现者在前
func (s *AggregationService) GetLeaderboard(ctx context.Context, req *core.GetLeaderboardReq) (*core.GetLeaderboardResp, error) {
	meta, err := requireUser(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}

	var subs []*submission.Submission
	if req.ClassId != nil {
		c, err := s.ClassMapper.FindOne(ctx, *req.ClassId)
		if err != nil {
			return nil, consts.ErrNotFound
		}
		if c.TeacherID != meta.GetUserId() && !c.HasStudent(meta.GetUserId()) {
			return nil, consts.ErrForbidden
		}
		assignments, err := s.AssignmentMapper.FindByClassIDs(ctx, []string{*req.ClassId})
		if err != nil {
			log.Error("获取作业列表失败: %v", err)
			return nil, consts.ErrGetAnalytics
		}
		assignmentIDs := lo.Map(assignments, func(a *assignment.Assignment, _ int) string { return a.ID.Hex() })
		subs, err = s.SubmissionMapper.FindByAssignmentIDs(ctx, assignmentIDs)
		if err != nil {
			log.Error("获取提交列表失败: %v", err)
			return nil, consts.ErrGetAnalytics
		}
	} else {
		subs, err = s.SubmissionMapper.FindAll(ctx)
		if err != nil {
			log.Error("获取提交列表失败: %v", err)
			return nil, consts.ErrGetAnalytics
		}
	}

	// 按学生首次出现的顺序聚合, 保证同分时排序稳定
	type bucket struct {
		name  string
		total int64
		count int64
	}
	order := make([]string, 0)
	buckets := make(map[string]*bucket)
	for _, sub := range subs {
		if !sub.Graded() {
			continue
		}
		b, ok := buckets[sub.StudentID]
		if !ok {
			b = &bucket{name: sub.StudentName}
			buckets[sub.StudentID] = b
			order = append(order, sub.StudentID)
		}
		b.total += *sub.Grade
		b.count++
	}

	entries := make([]*core.LeaderboardEntry, 0, len(order))
	for _, studentID := range order {
		b := buckets[studentID]
		entries = append(entries, &core.LeaderboardEntry{
			StudentId:    studentID,
			StudentName:  b.name,
			AverageGrade: round1(float64(b.total) / float64(b.count)),
			GradedCount:  b.count,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].AverageGrade > entries[j].AverageGrade })
	if len(entries) > consts.MaxLeaderboard {
		entries = entries[:consts.MaxLeaderboard]
	}
	return &core.GetLeaderboardResp{Leaderboard: entries}, nil
}

// GetCalendar 把用户全部班级的作业投影成日历事件
func (s *AggregationService) GetCalendar(ctx context.Context, req *core.GetCalendarReq) (*core.GetCalendarResp, error) {
	meta, err := requireUser(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}

	var classes []*class.Class
	if meta.GetRole() == string(consts.RoleTeacher) {
		classes, err = s.ClassMapper.FindByTeacher(ctx, meta.GetUserId())
	} else {
		classes, err = s.ClassMapper.FindByStudent(ctx, meta.GetUserId())
	}
	if err != nil {
		log.Error("获取班级列表失败: %v", err)
		return nil, consts.ErrGetAnalytics
	}
	classIDs := lo.Map(classes, func(c *class.Class, _ int) string { return c.ID.Hex() })

	assignments, err := s.AssignmentMapper.FindByClassIDs(ctx, classIDs)
	if err != nil {
		log.Error("获取作业列表失败: %v", err)
		return nil, consts.ErrGetAnalytics
	}

	return &core.GetCalendarResp{
		Events: lo.Map(assignments, func(a *assignment.Assignment, _ int) *core.CalendarEvent {
			return &core.CalendarEvent{
				Id:        a.ID.Hex(),
				Title:     a.Title,
				Date:      a.DueDate,
				Type:      consts.NotificationAssignment,
				ClassName: a.ClassName,
			}
		}),
	}, nil
}

// Search 班级、作业、文件三类各返回至多10条, 作业只在命中的班级里找
func (s *AggregationService) Search(ctx context.Context, req *core.SearchReq) (*core.SearchResp, error) {
	meta, err := requireUser(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	if req.Q == "" {
		return nil, consts.ErrInvalidParams
	}

	var classes []*class.Class
	if meta.GetRole() == string(consts.RoleTeacher) {
		classes, err = s.ClassMapper.SearchByTeacher(ctx, meta.GetUserId(), req.Q)
	} else {
		classes, err = s.ClassMapper.SearchByStudent(ctx, meta.GetUserId(), req.Q)
	}
	if err != nil {
		log.Error("搜索班级失败: %v", err)
		return nil, consts.ErrGetAnalytics
	}

	var assignments []*assignment.Assignment
	if len(classes) > 0 {
		classIDs := lo.Map(classes, func(c *class.Class, _ int) string { return c.ID.Hex() })
		assignments, err = s.AssignmentMapper.SearchByClassIDs(ctx, classIDs, req.Q)
		if err != nil {
			log.Error("搜索作业失败: %v", err)
			return nil, consts.ErrGetAnalytics
		}
	}

	files, err := s.FileMapper.SearchByOwner(ctx, meta.GetUserId(), req.Q)
	if err != nil {
		log.Error("搜索文件失败: %v", err)
		return nil, consts.ErrGetAnalytics
	}

	return &core.SearchResp{
		Classes:     lo.Map(classes, func(c *class.Class, _ int) *core.ClassInfo { return classInfo(c) }),
		Assignments: lo.Map(assignments, func(a *assignment.Assignment, _ int) *core.AssignmentInfo { return assignmentInfo(a) }),
		Files:       lo.Map(files, func(f *file.File, _ int) *core.FileInfo { return fileInfo(f) }),
	}, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
