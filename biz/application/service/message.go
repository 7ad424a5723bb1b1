package service

import (
	"class-hub/biz/application/dto/hub"
	"class-hub/biz/infrastructure/cache"
	"class-hub/biz/infrastructure/consts"
	"class-hub/biz/infrastructure/repository/message"
	"class-hub/biz/infrastructure/util"
	"class-hub/biz/infrastructure/util/log"
	"class-hub/biz/infrastructure/util/page"
	"context"
	"strings"
	"time"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
)

type IMessageService interface {
	PostMessage(ctx context.Context, req *hub.PostMessageReq) (*hub.PostMessageResp, error)
	ListMessages(ctx context.Context, req *hub.ListMessagesReq) (*hub.ListMessagesResp, error)
	EditMessage(ctx context.Context, req *hub.EditMessageReq) (*hub.EditMessageResp, error)
	DeleteMessage(ctx context.Context, req *hub.DeleteMessageReq) (*hub.Response, error)
}

type MessageService struct {
	MessageMapper MessageStore
	CacheMapper   cache.IMessageCacheMapper
	Gate          *MembershipGate
	Identity      Identity
}

var MessageServiceSet = wire.NewSet(
	wire.Struct(new(MessageService), "*"),
	wire.Bind(new(IMessageService), new(*MessageService)),
)

// PostMessage 发送消息, 发送者必须是班级成员且频道必须存在
func (s *MessageService) PostMessage(ctx context.Context, req *hub.PostMessageReq) (*hub.PostMessageResp, error) {
	userMeta := s.Identity.Resolve(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	c, err := s.Gate.RequireMember(ctx, req.ClassId, userMeta.GetUserId())
	if err != nil {
		return nil, err
	}

	channel := consts.DefaultChannel
	if req.Channel != nil && *req.Channel != "" {
		channel = *req.Channel
	}
	if !c.HasChannel(channel) {
		return nil, consts.ErrChannelNotFound
	}

	content, err := validateContent(req.Content)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	msg := &message.Message{
		ClassID:      req.ClassId,
		Sender:       userMeta.GetUserId(),
		Content:      content,
		Channel:      channel,
		AssignmentID: req.AssignmentId,
		CreateTime:   now,
		UpdateTime:   now,
	}

	err = s.MessageMapper.Insert(ctx, msg)
	if err != nil {
		log.Error("发送消息失败: %v", err)
		return nil, consts.ErrPostMessage
	}

	s.invalidateCache(ctx, req.ClassId, channel)

	return &hub.PostMessageResp{
		MessageId: msg.ID.Hex(),
	}, nil
}

// ListMessages 按班级和频道分页获取消息, 带短TTL缓存
func (s *MessageService) ListMessages(ctx context.Context, req *hub.ListMessagesReq) (*hub.ListMessagesResp, error) {
	userMeta := s.Identity.Resolve(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	c, err := s.Gate.RequireMember(ctx, req.ClassId, userMeta.GetUserId())
	if err != nil {
		return nil, err
	}

	channel := consts.DefaultChannel
	if req.Channel != nil && *req.Channel != "" {
		channel = *req.Channel
	}
	if !c.HasChannel(channel) {
		return nil, consts.ErrChannelNotFound
	}

	p, limit := page.ParsePageOpt(req.PaginationOptions)

	if cached, err := s.CacheMapper.Get(ctx, req.ClassId, channel, p, limit); err == nil {
		return cached, nil
	}

	messages, total, err := s.MessageMapper.FindByClassAndChannel(ctx, req.ClassId, channel, p, limit)
	if err != nil {
		log.Error("获取消息列表失败: %v", err)
		return nil, consts.ErrGetMessageList
	}

	messageInfos := make([]*hub.MessageInfo, 0, len(messages))
	for _, m := range messages {
		messageInfos = append(messageInfos, messageInfo(m))
	}

	resp := &hub.ListMessagesResp{
		Messages: messageInfos,
		Total:    total,
	}

	if err := s.CacheMapper.Set(ctx, req.ClassId, channel, p, limit, resp); err != nil {
		log.CtxInfo(ctx, "缓存消息分页失败: %v", err)
	}

	return resp, nil
}

// EditMessage 编辑消息, 只有原发送者可以编辑, 教师也不能编辑他人消息
func (s *MessageService) EditMessage(ctx context.Context, req *hub.EditMessageReq) (*hub.EditMessageResp, error) {
	userMeta := s.Identity.Resolve(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	msg, err := s.MessageMapper.FindOne(ctx, req.MessageId)
	if err != nil {
		return nil, err
	}
	if req.ClassId != "" && msg.ClassID != req.ClassId {
		return nil, consts.ErrNotFound
	}

	// 先做成员检查, 再做发送者检查
	if _, err := s.Gate.RequireMember(ctx, msg.ClassID, userMeta.GetUserId()); err != nil {
		return nil, err
	}
	if msg.Sender != userMeta.GetUserId() {
		return nil, consts.ErrNotSender
	}

	content, err := validateContent(req.Content)
	if err != nil {
		return nil, err
	}

	err = s.MessageMapper.UpdateContent(ctx, msg.ID.Hex(), content)
	if err != nil {
		log.Error("编辑消息失败: %v", err)
		return nil, consts.ErrUpdate
	}

	s.invalidateCache(ctx, msg.ClassID, msg.Channel)

	return &hub.EditMessageResp{
		Id:         msg.ID.Hex(),
		Content:    content,
		UpdateTime: time.Now().Unix(),
	}, nil
}

// DeleteMessage 删除消息, 发送者或班级教师可以删除
func (s *MessageService) DeleteMessage(ctx context.Context, req *hub.DeleteMessageReq) (*hub.Response, error) {
	userMeta := s.Identity.Resolve(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	msg, err := s.MessageMapper.FindOne(ctx, req.MessageId)
	if err != nil {
		return nil, err
	}
	if req.ClassId != "" && msg.ClassID != req.ClassId {
		return nil, consts.ErrNotFound
	}

	c, err := s.Gate.RequireMember(ctx, msg.ClassID, userMeta.GetUserId())
	if err != nil {
		return nil, err
	}

	// 删除权限比编辑宽: 发送者之外教师也可以删除
	if msg.Sender != userMeta.GetUserId() && c.Instructor != userMeta.GetUserId() {
		return nil, consts.ErrForbidden
	}

	err = s.MessageMapper.Delete(ctx, msg.ID.Hex())
	if err != nil {
		log.Error("删除消息失败: %v", err)
		return nil, consts.ErrUpdate
	}

	s.invalidateCache(ctx, msg.ClassID, msg.Channel)

	return util.Succeed("消息已删除")
}

func (s *MessageService) invalidateCache(ctx context.Context, classId, channel string) {
	if err := s.CacheMapper.Delete(ctx, classId, channel); err != nil {
		log.CtxInfo(ctx, "清除消息缓存失败: %v", err)
	}
}

// validateContent 校验并裁剪消息内容
func validateContent(raw string) (string, error) {
	content := strings.TrimSpace(raw)
	if content == "" {
		return "", consts.ErrEmptyContent
	}
	if len([]rune(content)) > consts.MaxMessageLen {
		return "", consts.ErrContentTooLong
	}
	return content, nil
}

// messageInfo 实体转响应
func messageInfo(m *message.Message) *hub.MessageInfo {
	info := new(hub.MessageInfo)
	_ = copier.Copy(info, m)
	info.Id = m.ID.Hex()
	info.ClassId = m.ClassID
	info.Sender = m.Sender
	info.AssignmentId = m.AssignmentID
	info.CreateTime = m.CreateTime.Unix()
	info.UpdateTime = m.UpdateTime.Unix()
	return info
}
