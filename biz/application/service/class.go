package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/google/wire"
	"github.com/samber/lo"

	"github.com/mdtousif1712-create/prodigy-ai/biz/application/dto/basic"
	"github.com/mdtousif1712-create/prodigy-ai/biz/application/dto/prodigy/core"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/consts"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/class"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/repository/user"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/util"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/util/log"
)

type IClassService interface {
	CreateClass(ctx context.Context, req *core.CreateClassReq) (*core.ClassInfo, error)
	ListClasses(ctx context.Context, req *core.ListClassesReq) (*core.ListClassesResp, error)
	GetClass(ctx context.Context, req *core.GetClassReq) (*core.ClassInfo, error)
	JoinClass(ctx context.Context, req *core.JoinClassReq) (*core.JoinClassResp, error)
	DeleteClass(ctx context.Context, req *core.DeleteClassReq) (*basic.Response, error)
	GetClassStudents(ctx context.Context, req *core.GetClassStudentsReq) (*core.GetClassStudentsResp, error)
	RemoveStudent(ctx context.Context, req *core.RemoveStudentReq) (*basic.Response, error)
}

type ClassService struct {
	ClassMapper class.Mapper
	UserMapper  user.Mapper
}

var ClassServiceSet = wire.NewSet(
	wire.Struct(new(ClassService), "*"),
	wire.Bind(new(IClassService), new(*ClassService)),
)

// CreateClass 创建班级, 邀请码随机生成
func (s *ClassService) CreateClass(ctx context.Context, req *core.CreateClassReq) (*core.ClassInfo, error) {
	meta, err := requireTeacher(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	teacher, err := s.UserMapper.FindOne(ctx, meta.GetUserId())
	if err != nil {
		log.Error("获取用户信息失败: %v", err)
		return nil, consts.ErrNotFound
	}

	now := time.Now()
	c := &class.Class{
		Name:        req.Name,
		Description: req.Description,
		Subject:     req.Subject,
		ClassCode:   generateClassCode(),
		TeacherID:   meta.GetUserId(),
		TeacherName: teacher.FullName,
		Students:    []string{},
		CreateTime:  now,
		UpdateTime:  now,
	}
	if err = s.ClassMapper.Insert(ctx, c); err != nil {
		log.Error("创建班级失败: %v", err)
		return nil, consts.ErrCreateClass
	}
	return classInfo(c), nil
}

// ListClasses 教师返回自己创建的班级, 学生返回已加入的班级
func (s *ClassService) ListClasses(ctx context.Context, req *core.ListClassesReq) (*core.ListClassesResp, error) {
	meta, err := requireUser(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}

	classes, err := s.listAccessible(ctx, meta)
	if err != nil {
		log.Error("获取班级列表失败: %v", err)
		return nil, consts.ErrGetClassList
	}

	return &core.ListClassesResp{
		Classes: lo.Map(classes, func(c *class.Class, _ int) *core.ClassInfo { return classInfo(c) }),
		Total:   int64(len(classes)),
	}, nil
}

// GetClass 获取班级详情, 仅限任课教师和已加入的学生
func (s *ClassService) GetClass(ctx context.Context, req *core.GetClassReq) (*core.ClassInfo, error) {
	meta, err := requireUser(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	c, err := s.requireAccess(ctx, meta, req.ClassId)
	if err != nil {
		return nil, err
	}
	return classInfo(c), nil
}

// JoinClass 学生凭邀请码加入班级
func (s *ClassService) JoinClass(ctx context.Context, req *core.JoinClassReq) (*core.JoinClassResp, error) {
	meta, err := requireStudent(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}

	c, err := s.ClassMapper.FindOneByCode(ctx, strings.ToUpper(strings.TrimSpace(req.ClassCode)))
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if c.HasStudent(meta.GetUserId()) {
		return nil, consts.ErrRepeatJoinClass
	}

	if err = s.ClassMapper.AddStudent(ctx, c.ID.Hex(), meta.GetUserId()); err != nil {
		log.Error("加入班级失败: %v", err)
		return nil, consts.ErrJoinClass
	}
	return &core.JoinClassResp{ClassName: c.Name}, nil
}

// DeleteClass 删除班级, 仅限任课教师
func (s *ClassService) DeleteClass(ctx context.Context, req *core.DeleteClassReq) (*basic.Response, error) {
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
	if err = s.ClassMapper.Delete(ctx, req.ClassId); err != nil {
		log.Error("删除班级失败: %v", err)
		return nil, consts.ErrUpdate
	}
	return util.Succeed("删除成功")
}

// GetClassStudents 获取班级学生名单
func (s *ClassService) GetClassStudents(ctx context.Context, req *core.GetClassStudentsReq) (*core.GetClassStudentsResp, error) {
	meta, err := requireUser(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	c, err := s.requireAccess(ctx, meta, req.ClassId)
	if err != nil {
		return nil, err
	}

	students, err := s.UserMapper.FindByIDs(ctx, c.Students)
	if err != nil {
		log.Error("获取班级成员失败: %v", err)
		return nil, consts.ErrGetClassMembers
	}
	return &core.GetClassStudentsResp{
		Students: lo.Map(students, func(u *user.User, _ int) *core.UserInfo { return userInfo(u) }),
	}, nil
}

// RemoveStudent 将学生移出班级, 仅限任课教师
func (s *ClassService) RemoveStudent(ctx context.Context, req *core.RemoveStudentReq) (*basic.Response, error) {
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
	if !c.HasStudent(req.StudentId) {
		return nil, consts.ErrNotFound
	}
	if err = s.ClassMapper.RemoveStudent(ctx, req.ClassId, req.StudentId); err != nil {
		log.Error("移除学生失败: %v", err)
		return nil, consts.ErrUpdate
	}
	return util.Succeed("移除成功")
}

// listAccessible 返回用户可见的全部班级
func (s *ClassService) listAccessible(ctx context.Context, meta *basic.UserMeta) ([]*class.Class, error) {
	if meta.GetRole() == string(consts.RoleTeacher) {
		return s.ClassMapper.FindByTeacher(ctx, meta.GetUserId())
	}
	return s.ClassMapper.FindByStudent(ctx, meta.GetUserId())
}

// requireAccess 校验用户对班级的访问权限
func (s *ClassService) requireAccess(ctx context.Context, meta *basic.UserMeta, classID string) (*class.Class, error) {
	c, err := s.ClassMapper.FindOne(ctx, classID)
	if err != nil {
		return nil, consts.ErrNotFound
	}
	if c.TeacherID != meta.GetUserId() && !c.HasStudent(meta.GetUserId()) {
		return nil, consts.ErrForbidden
	}
	return c, nil
}

// generateClassCode 生成8位大写邀请码
func generateClassCode() string {
	return strings.ToUpper(uuid.New().String()[:consts.ClassCodeLength])
}

func classInfo(c *class.Class) *core.ClassInfo {
	students := c.Students
	if students == nil {
		students = []string{}
	}
	return &core.ClassInfo{
		Id:          c.ID.Hex(),
		Name:        c.Name,
		Description: c.Description,
		Subject:     c.Subject,
		ClassCode:   c.ClassCode,
		TeacherId:   c.TeacherID,
		TeacherName: c.TeacherName,
		Students:    students,
		CreateTime:  c.CreateTime.Format(time.RFC3339),
	}
}
