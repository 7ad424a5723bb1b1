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

// 认证与授权错误
var (
	ErrNotAuthentication = NewErrno(codes.Unauthenticated, errors.New("not authentication"))
	ErrForbidden         = NewErrno(codes.PermissionDenied, errors.New("forbidden"))
	ErrNotInstructor     = NewErrno(codes.PermissionDenied, errors.New("只有班级教师可以执行此操作"))
	ErrNotClassMember    = NewErrno(codes.PermissionDenied, errors.New("用户不是班级成员"))
	ErrNotSender         = NewErrno(codes.PermissionDenied, errors.New("只有消息发送者可以编辑消息"))
)

// 业务错误
var (
	ErrCreateClass      = NewErrno(codes.Code(1001), errors.New("创建班级失败"))
	ErrGetClassList     = NewErrno(codes.Code(1002), errors.New("获取班级列表失败"))
	ErrJoinClass        = NewErrno(codes.Code(1003), errors.New("加入班级失败"))
	ErrGetClassMembers  = NewErrno(codes.Code(1004), errors.New("获取班级成员失败"))
	ErrAlreadyMember    = NewErrno(codes.AlreadyExists, errors.New("已经是班级成员"))
	ErrNotMember        = NewErrno(codes.InvalidArgument, errors.New("不是班级成员"))
	ErrInstructorLeave  = NewErrno(codes.InvalidArgument, errors.New("教师不能退出班级，请删除班级"))
	ErrInvalidRole      = NewErrno(codes.InvalidArgument, errors.New("无效的角色"))
	ErrChannelExists    = NewErrno(codes.AlreadyExists, errors.New("频道已存在"))
	ErrEmptyChannelName = NewErrno(codes.InvalidArgument, errors.New("频道名不能为空"))
	ErrChannelNotFound  = NewErrno(codes.InvalidArgument, errors.New("频道不存在"))
	ErrEmptyContent     = NewErrno(codes.InvalidArgument, errors.New("消息内容不能为空"))
	ErrContentTooLong   = NewErrno(codes.InvalidArgument, errors.New("消息内容超出长度限制"))
	ErrPostMessage      = NewErrno(codes.Code(1005), errors.New("发送消息失败"))
	ErrGetMessageList   = NewErrno(codes.Code(1006), errors.New("获取消息列表失败"))
	ErrGenerateInvite   = NewErrno(codes.Internal, errors.New("生成邀请码失败"))
	ErrEmptyInviteCode  = NewErrno(codes.InvalidArgument, errors.New("邀请码不能为空"))
	ErrDeleteClass      = NewErrno(codes.Code(1007), errors.New("删除班级失败"))
)

// ErrInvalidParams 调用时错误
var (
	ErrInvalidParams = NewErrno(codes.InvalidArgument, errors.New("参数错误"))
	ErrNameTooLong   = NewErrno(codes.InvalidArgument, errors.New("班级名称不能为空且不超过100字"))
	ErrDescTooLong   = NewErrno(codes.InvalidArgument, errors.New("班级描述不能为空且不超过500字"))
)

// 数据库相关错误
var (
	ErrNotFound        = NewErrno(codes.NotFound, errors.New("not found"))
	ErrInvalidObjectId = NewErrno(codes.InvalidArgument, errors.New("无效的id "))
	ErrUpdate          = NewErrno(codes.Code(2001), errors.New("更新失败"))
	ErrStore           = NewErrno(codes.Internal, errors.New("存储服务不可用，请重试"))
)
