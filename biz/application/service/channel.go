package service

import (
	"class-hub/biz/application/dto/hub"
	"class-hub/biz/infrastructure/consts"
	"class-hub/biz/infrastructure/repository/class"
	"class-hub/biz/infrastructure/util/log"
	"context"
	"strings"

	"github.com/google/wire"
	"github.com/samber/lo"
)

type IChannelService interface {
	ListChannels(ctx context.Context, req *hub.ListChannelsReq) (*hub.ListChannelsResp, error)
	CreateChannel(ctx context.Context, req *hub.CreateChannelReq) (*hub.CreateChannelResp, error)
}

type ChannelService struct {
	ClassMapper ClassStore
	Gate        *MembershipGate
	Identity    Identity
}

var ChannelServiceSet = wire.NewSet(
	wire.Struct(new(ChannelService), "*"),
	wire.Bind(new(IChannelService), new(*ChannelService)),
)

// ListChannels 获取班级频道列表, 未设置时返回默认频道
func (s *ChannelService) ListChannels(ctx context.Context, req *hub.ListChannelsReq) (*hub.ListChannelsResp, error) {
	userMeta := s.Identity.Resolve(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	c, err := s.Gate.RequireMember(ctx, req.ClassId, userMeta.GetUserId())
	if err != nil {
		return nil, err
	}

	return &hub.ListChannelsResp{
		Channels: c.ChannelList(),
	}, nil
}

// CreateChannel 新建频道, 名称规范化后去重追加
func (s *ChannelService) CreateChannel(ctx context.Context, req *hub.CreateChannelReq) (*hub.CreateChannelResp, error) {
	userMeta := s.Identity.Resolve(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	c, err := s.Gate.RequireInstructor(ctx, req.ClassId, userMeta.GetUserId())
	if err != nil {
		return nil, err
	}

	raw := strings.TrimSpace(req.Name)
	if raw == "" {
		return nil, consts.ErrEmptyChannelName
	}

	name := class.NormalizeChannelName(raw)
	channels := c.ChannelList()
	if lo.Contains(channels, name) {
		return nil, consts.ErrChannelExists
	}

	err = s.ClassMapper.SetChannels(ctx, c.ID.Hex(), append(channels, name))
	if err != nil {
		log.Error("新建频道失败: %v", err)
		return nil, consts.ErrUpdate
	}

	return &hub.CreateChannelResp{
		Name: name,
	}, nil
}
