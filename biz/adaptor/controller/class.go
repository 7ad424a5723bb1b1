package controller

import (
	"class-hub/biz/adaptor"
	"class-hub/biz/application/dto/hub"
	"class-hub/provider"
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// CreateClass 创建班级
func CreateClass(ctx context.Context, c *app.RequestContext) {
	var req hub.CreateClassReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.CreateClass(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListClasses 获取班级列表
func ListClasses(ctx context.Context, c *app.RequestContext) {
	var req hub.ListClassesReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.ListClasses(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetClass 获取班级详情
func GetClass(ctx context.Context, c *app.RequestContext) {
	var req hub.GetClassReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.GetClass(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetClassMembers 获取班级成员
func GetClassMembers(ctx context.Context, c *app.RequestContext) {
	var req hub.GetClassMembersReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.GetClassMembers(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GenerateInvite 生成邀请码
func GenerateInvite(ctx context.Context, c *app.RequestContext) {
	var req hub.GenerateInviteReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.GenerateInvite(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// RevokeInvite 撤销邀请码
func RevokeInvite(ctx context.Context, c *app.RequestContext) {
	var req hub.RevokeInviteReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.RevokeInvite(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// JoinClass 通过邀请码加入班级
func JoinClass(ctx context.Context, c *app.RequestContext) {
	var req hub.JoinClassReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.JoinClass(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// LeaveClass 退出班级
func LeaveClass(ctx context.Context, c *app.RequestContext) {
	var req hub.LeaveClassReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.LeaveClass(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// RemoveMember 移除班级成员
func RemoveMember(ctx context.Context, c *app.RequestContext) {
	var req hub.RemoveMemberReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.RemoveMember(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ChangeRole 变更成员角色
func ChangeRole(ctx context.Context, c *app.RequestContext) {
	var req hub.ChangeRoleReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.ChangeRole(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// DeleteClass 删除班级
func DeleteClass(ctx context.Context, c *app.RequestContext) {
	var req hub.DeleteClassReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.DeleteClass(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
