package controller

import (
	"class-hub/biz/adaptor"
	"class-hub/biz/application/dto/hub"
	"class-hub/provider"
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// ListChannels 获取班级频道列表
func ListChannels(ctx context.Context, c *app.RequestContext) {
	var req hub.ListChannelsReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ChannelService.ListChannels(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// CreateChannel 新建频道
func CreateChannel(ctx context.Context, c *app.RequestContext) {
	var req hub.CreateChannelReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ChannelService.CreateChannel(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
