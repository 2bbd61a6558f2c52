package consts

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Errno struct {
	err  error
	code codes.Code
}

// GRPCStatus 实现 GRPCStatus 方法
func (en *Errno) GRPCStatus() *status.Status {
	return status.New(en.code, en.err.Error())
}

// 实现 Error 方法
func (en *Errno) Error() string {
	return en.err.Error()
}

// Code 返回错误码
func (en *Errno) Code() codes.Code {
	return en.code
}

// NewErrno 创建自定义错误
func NewErrno(code codes.Code, err error) *Errno {
	return &Errno{
		err:  err,
		code: code,
	}
}

// 定义常量错误
var (
	ErrNotAuthentication = NewErrno(codes.Unauthenticated, errors.New("not authentication"))
	ErrForbidden         = NewErrno(codes.PermissionDenied, errors.New("forbidden"))
	ErrSignUp            = NewErrno(codes.Code(1001), errors.New("注册失败，请重试"))
	ErrRepeatedSignUp    = NewErrno(codes.AlreadyExists, errors.New("用户名或邮箱已被注册"))
	ErrSignIn            = NewErrno(codes.Unauthenticated, errors.New("邮箱或密码错误"))
	ErrCreateClass       = NewErrno(codes.Code(1002), errors.New("创建班级失败"))
	ErrGetClassList      = NewErrno(codes.Code(1003), errors.New("获取班级列表失败"))
	ErrJoinClass         = NewErrno(codes.Code(1004), errors.New("加入班级失败"))
	ErrRepeatJoinClass   = NewErrno(codes.AlreadyExists, errors.New("已加入该班级"))
	ErrGetClassMembers   = NewErrno(codes.Code(1005), errors.New("获取班级成员失败"))
	ErrCreateAnnounce    = NewErrno(codes.Code(1006), errors.New("发布公告失败"))
	ErrCreateAssignment  = NewErrno(codes.Code(1007), errors.New("创建作业失败"))
	ErrGetAssignmentList = NewErrno(codes.Code(1008), errors.New("获取作业列表失败"))
	ErrSubmit            = NewErrno(codes.Code(1009), errors.New("提交作业失败"))
	ErrRepeatSubmit      = NewErrno(codes.AlreadyExists, errors.New("该作业已提交过"))
	ErrGrade             = NewErrno(codes.Code(1010), errors.New("批改作业失败"))
	ErrUpload            = NewErrno(codes.Code(1011), errors.New("上传文件失败"))
	ErrDownload          = NewErrno(codes.Code(1016), errors.New("下载文件失败"))
	ErrCreateFolder      = NewErrno(codes.Code(1012), errors.New("创建文件夹失败"))
	ErrSendMessage       = NewErrno(codes.Code(1013), errors.New("发送消息失败"))
	ErrGetConversations  = NewErrno(codes.Code(1014), errors.New("获取会话列表失败"))
	ErrGetAnalytics      = NewErrno(codes.Code(1015), errors.New("获取统计数据失败"))
	ErrAIService         = NewErrno(codes.Unavailable, errors.New("AI服务暂不可用，请稍后重试"))
)

// ErrInvalidParams 调用时错误
var ErrInvalidParams = NewErrno(codes.InvalidArgument, errors.New("参数错误"))

// 数据库相关错误
var (
	ErrNotFound        = NewErrno(codes.NotFound, errors.New("not found"))
	ErrInvalidObjectId = NewErrno(codes.InvalidArgument, errors.New("无效的id "))
	ErrUpdate          = NewErrno(codes.Code(2001), errors.New("更新失败"))
)
