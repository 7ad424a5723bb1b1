package service

import (
	"class-hub/biz/application/dto/hub"
	"class-hub/biz/infrastructure/config"
	"class-hub/biz/infrastructure/consts"
	"class-hub/biz/infrastructure/repository/class"
	"class-hub/biz/infrastructure/util"
	"class-hub/biz/infrastructure/util/log"
	"class-hub/biz/infrastructure/util/page"
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
)

type IClassService interface {
	CreateClass(ctx context.Context, req *hub.CreateClassReq) (*hub.CreateClassResp, error)
	ListClasses(ctx context.Context, req *hub.ListClassesReq) (*hub.ListClassesResp, error)
	GetClass(ctx context.Context, req *hub.GetClassReq) (*hub.GetClassResp, error)
	GetClassMembers(ctx context.Context, req *hub.GetClassMembersReq) (*hub.GetClassMembersResp, error)
	GenerateInvite(ctx context.Context, req *hub.GenerateInviteReq) (*hub.GenerateInviteResp, error)
	RevokeInvite(ctx context.Context, req *hub.RevokeInviteReq) (*hub.Response, error)
	JoinClass(ctx context.Context, req *hub.JoinClassReq) (*hub.JoinClassResp, error)
	LeaveClass(ctx context.Context, req *hub.LeaveClassReq) (*hub.Response, error)
	RemoveMember(ctx context.Context, req *hub.RemoveMemberReq) (*hub.Response, error)
	ChangeRole(ctx context.Context, req *hub.ChangeRoleReq) (*hub.Response, error)
	DeleteClass(ctx context.Context, req *hub.DeleteClassReq) (*hub.Response, error)
}

type ClassService struct {
	Config        *config.Config
	ClassMapper   ClassStore
	MessageMapper MessageStore
	Gate          *MembershipGate
	Identity      Identity
}

var ClassServiceSet = wire.NewSet(
	wire.Struct(new(ClassService), "*"),
	wire.Bind(new(IClassService), new(*ClassService)),
)

// CreateClass 创建班级, 创建者成为教师
func (s *ClassService) CreateClass(ctx context.Context, req *hub.CreateClassReq) (*hub.CreateClassResp, error) {
	// 获取用户信息
	userMeta := s.Identity.Resolve(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	// 校验名称和描述
	name := strings.TrimSpace(req.Name)
	description := strings.TrimSpace(req.Description)
	if name == "" || len([]rune(name)) > consts.MaxClassNameLen {
		return nil, consts.ErrNameTooLong
	}
	if description == "" || len([]rune(description)) > consts.MaxClassDescLen {
		return nil, consts.ErrDescTooLong
	}

	// 创建班级, 创建者同时进入成员列表
	now := time.Now()
	c := &class.Class{
		Name:        name,
		Description: description,
		Instructor:  userMeta.GetUserId(),
		Members:     []string{userMeta.GetUserId()},
		CreateTime:  now,
		UpdateTime:  now,
	}

	err := s.ClassMapper.Insert(ctx, c)
	if err != nil {
		log.Error("创建班级失败: %v", err)
		return nil, consts.ErrCreateClass
	}

	return &hub.CreateClassResp{
		ClassId: c.ID.Hex(),
	}, nil
}

// ListClasses 获取用户所在的班级列表
func (s *ClassService) ListClasses(ctx context.Context, req *hub.ListClassesReq) (*hub.ListClassesResp, error) {
	// 获取用户信息
	userMeta := s.Identity.Resolve(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	p, limit := page.ParsePageOpt(req.PaginationOptions)

	classes, total, err := s.ClassMapper.FindByUser(ctx, userMeta.GetUserId(), p, limit)
	if err != nil {
		log.Error("获取班级列表失败: %v", err)
		return nil, consts.ErrGetClassList
	}

	classInfos := make([]*hub.ClassInfo, 0, len(classes))
	for _, c := range classes {
		classInfos = append(classInfos, classInfo(c))
	}

	return &hub.ListClassesResp{
		Classes: classInfos,
		Total:   total,
	}, nil
}

// GetClass 获取班级详情
func (s *ClassService) GetClass(ctx context.Context, req *hub.GetClassReq) (*hub.GetClassResp, error) {
	userMeta := s.Identity.Resolve(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	// 读操作同样要求成员身份
	c, err := s.Gate.RequireMember(ctx, req.ClassId, userMeta.GetUserId())
	if err != nil {
		return nil, err
	}

	return &hub.GetClassResp{Class: classInfo(c)}, nil
}

// GetClassMembers 获取班级成员, 角色由教师字段和成员列表推导
func (s *ClassService) GetClassMembers(ctx context.Context, req *hub.GetClassMembersReq) (*hub.GetClassMembersResp, error) {
	userMeta := s.Identity.Resolve(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	c, err := s.Gate.RequireMember(ctx, req.ClassId, userMeta.GetUserId())
	if err != nil {
		return nil, err
	}

	p, limit := page.ParsePageOpt(req.PaginationOptions)
	total := int64(len(c.Members))

	start := (p - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	memberInfos := make([]*hub.ClassMemberInfo, 0, end-start)
	for _, userId := range c.Members[start:end] {
		memberInfos = append(memberInfos, &hub.ClassMemberInfo{
			UserId: userId,
			Role:   c.RoleOf(userId),
		})
	}

	return &hub.GetClassMembersResp{
		Members: memberInfos,
		Total:   total,
	}, nil
}

// GenerateInvite 生成邀请码, 7天后过期, 覆盖已有邀请码
func (s *ClassService) GenerateInvite(ctx context.Context, req *hub.GenerateInviteReq) (*hub.GenerateInviteResp, error) {
	userMeta := s.Identity.Resolve(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	if _, err := s.Gate.RequireInstructor(ctx, req.ClassId, userMeta.GetUserId()); err != nil {
		return nil, err
	}

	code, err := generateInvitationCode()
	if err != nil {
		log.Error("生成邀请码失败: %v", err)
		return nil, consts.ErrGenerateInvite
	}
	expires := time.Now().Add(consts.InviteCodeExpiry * time.Hour)

	err = s.ClassMapper.SetInvitation(ctx, req.ClassId, code, expires)
	if err != nil {
		log.Error("保存邀请码失败: %v", err)
		return nil, consts.ErrGenerateInvite
	}

	return &hub.GenerateInviteResp{
		Code:      code,
		ExpiresAt: expires.Unix(),
		InviteUrl: s.Config.Api.ClassJoinURL + "?invite_code=" + code,
	}, nil
}

// RevokeInvite 撤销邀请码
func (s *ClassService) RevokeInvite(ctx context.Context, req *hub.RevokeInviteReq) (*hub.Response, error) {
	userMeta := s.Identity.Resolve(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	if _, err := s.Gate.RequireInstructor(ctx, req.ClassId, userMeta.GetUserId()); err != nil {
		return nil, err
	}

	err := s.ClassMapper.ClearInvitation(ctx, req.ClassId)
	if err != nil {
		log.Error("撤销邀请码失败: %v", err)
		return nil, consts.ErrUpdate
	}

	return util.Succeed("邀请码已撤销")
}

// JoinClass 通过邀请码加入班级, 错误码和过期码统一返回 not found
func (s *ClassService) JoinClass(ctx context.Context, req *hub.JoinClassReq) (*hub.JoinClassResp, error) {
	userMeta := s.Identity.Resolve(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	userId := userMeta.GetUserId()

	if strings.TrimSpace(req.InviteCode) == "" {
		return nil, consts.ErrEmptyInviteCode
	}

	// 只命中未过期的邀请码
	c, err := s.ClassMapper.FindOneByInviteCode(ctx, req.InviteCode, req.ClassId, time.Now())
	if err != nil {
		log.CtxInfo(ctx, "邀请码无效或已过期: %v", err)
		return nil, consts.ErrNotFound
	}

	// 检查是否已经是班级成员
	if c.HasMember(userId) {
		return nil, consts.ErrAlreadyMember
	}

	err = s.ClassMapper.AddMember(ctx, c.ID.Hex(), userId)
	if err != nil {
		log.Error("加入班级失败: %v", err)
		return nil, consts.ErrJoinClass
	}

	return &hub.JoinClassResp{
		ClassId:   c.ID.Hex(),
		ClassName: c.Name,
	}, nil
}

// LeaveClass 退出班级, 教师不能退出
func (s *ClassService) LeaveClass(ctx context.Context, req *hub.LeaveClassReq) (*hub.Response, error) {
	userMeta := s.Identity.Resolve(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	userId := userMeta.GetUserId()

	c, err := s.ClassMapper.FindOne(ctx, req.ClassId)
	if err != nil {
		return nil, err
	}

	if userId == c.Instructor {
		return nil, consts.ErrInstructorLeave
	}
	if !c.HasMember(userId) {
		return nil, consts.ErrNotMember
	}

	err = s.ClassMapper.RemoveMember(ctx, c.ID.Hex(), userId)
	if err != nil {
		log.Error("退出班级失败: %v", err)
		return nil, consts.ErrUpdate
	}

	return util.Succeed("已退出班级")
}

// RemoveMember 教师移除班级成员, 成员不存在时为空操作
func (s *ClassService) RemoveMember(ctx context.Context, req *hub.RemoveMemberReq) (*hub.Response, error) {
	userMeta := s.Identity.Resolve(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	if _, err := s.Gate.RequireInstructor(ctx, req.ClassId, userMeta.GetUserId()); err != nil {
		return nil, err
	}

	err := s.ClassMapper.RemoveMember(ctx, req.ClassId, req.UserId)
	if err != nil {
		log.Error("移除班级成员失败: %v", err)
		return nil, consts.ErrUpdate
	}

	return util.Succeed("已移除成员")
}

// ChangeRole 变更成员角色, 提升为教师时原教师降级为普通成员
func (s *ClassService) ChangeRole(ctx context.Context, req *hub.ChangeRoleReq) (*hub.Response, error) {
	userMeta := s.Identity.Resolve(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	if req.Role != consts.RoleInstructor && req.Role != consts.RoleStudent {
		return nil, consts.ErrInvalidRole
	}

	c, err := s.Gate.RequireInstructor(ctx, req.ClassId, userMeta.GetUserId())
	if err != nil {
		return nil, err
	}

	if req.Role == consts.RoleInstructor {
		if req.UserId == c.Instructor {
			return util.Succeed("角色未变更")
		}
		// 以读到的教师做条件更新, 并发变更只有一个生效
		err = s.ClassMapper.ReassignInstructor(ctx, req.ClassId, c.Instructor, req.UserId)
		if err != nil {
			log.Error("变更教师失败: %v", err)
			return nil, consts.ErrUpdate
		}
		return util.Succeed("已变更教师")
	}

	// student: 确保目标在成员列表中, 不影响当前教师
	err = s.ClassMapper.AddMember(ctx, req.ClassId, req.UserId)
	if err != nil {
		log.Error("变更角色失败: %v", err)
		return nil, consts.ErrUpdate
	}

	return util.Succeed("已变更角色")
}

// DeleteClass 删除班级并级联删除班级消息
func (s *ClassService) DeleteClass(ctx context.Context, req *hub.DeleteClassReq) (*hub.Response, error) {
	userMeta := s.Identity.Resolve(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	c, err := s.Gate.RequireInstructor(ctx, req.ClassId, userMeta.GetUserId())
	if err != nil {
		return nil, err
	}

	err = s.ClassMapper.Delete(ctx, c.ID.Hex())
	if err != nil {
		log.Error("删除班级失败: %v", err)
		return nil, consts.ErrDeleteClass
	}

	// 级联删除消息
	err = s.MessageMapper.DeleteByClassID(ctx, c.ID.Hex())
	if err != nil {
		log.Error("级联删除班级消息失败: %v", err)
	}

	return util.Succeed("班级已删除")
}

// classInfo 实体转响应
func classInfo(c *class.Class) *hub.ClassInfo {
	info := new(hub.ClassInfo)
	_ = copier.Copy(info, c)
	info.Id = c.ID.Hex()
	info.InstructorId = c.Instructor
	info.MemberCount = int64(len(c.Members))
	info.Channels = c.ChannelList()
	info.CreateTime = c.CreateTime.Unix()
	return info
}

// generateInvitationCode 生成6位邀请码: 3个随机字节hex编码后转大写,
// 非字母数字字符兜底替换为 '0'
func generateInvitationCode() (string, error) {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	code := []byte(strings.ToUpper(hex.EncodeToString(buf)))
	for i, ch := range code {
		if !(ch >= 'A' && ch <= 'Z') && !(ch >= '0' && ch <= '9') {
			code[i] = '0'
		}
	}
	return string(code), nil
}
