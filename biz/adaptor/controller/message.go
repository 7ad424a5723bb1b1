package controller

import (
	"class-hub/biz/adaptor"
	"class-hub/biz/application/dto/hub"
	"class-hub/provider"
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// PostMessage 发送消息
func PostMessage(ctx context.Context, c *app.RequestContext) {
	var req hub.PostMessageReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.MessageService.PostMessage(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListMessages 获取消息列表
func ListMessages(ctx context.Context, c *app.RequestContext) {
	var req hub.ListMessagesReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.MessageService.ListMessages(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// EditMessage 编辑消息
func EditMessage(ctx context.Context, c *app.RequestContext) {
	var req hub.EditMessageReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.MessageService.EditMessage(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// DeleteMessage 删除消息
func DeleteMessage(ctx context.Context, c *app.RequestContext) {
	var req hub.DeleteMessageReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.MessageService.DeleteMessage(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
