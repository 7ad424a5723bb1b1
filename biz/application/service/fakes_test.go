package service

import (
	"class-hub/biz/application/dto/basic"
	"class-hub/biz/application/dto/hub"
	"class-hub/biz/infrastructure/config"
	"class-hub/biz/infrastructure/consts"
	"class-hub/biz/infrastructure/repository/class"
	"class-hub/biz/infrastructure/repository/message"
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// staticIdentity 测试用身份解析器, 直接返回设定的用户
type staticIdentity struct {
	userId string
}

func (s *staticIdentity) Resolve(_ context.Context) *basic.UserMeta {
	return &basic.UserMeta{UserId: s.userId}
}

// fakeClassStore 内存版班级存储, 语义对齐 mongo mapper
type fakeClassStore struct {
	classes map[string]*class.Class
}

func newFakeClassStore() *fakeClassStore {
	return &fakeClassStore{classes: make(map[string]*class.Class)}
}

func (f *fakeClassStore) Insert(_ context.Context, c *class.Class) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
		c.CreateTime = time.Now()
		c.UpdateTime = c.CreateTime
	}
	f.classes[c.ID.Hex()] = c
	return nil
}

func (f *fakeClassStore) FindOne(_ context.Context, id string) (*class.Class, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	c, ok := f.classes[id]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return c, nil
}

func (f *fakeClassStore) FindOneByInviteCode(_ context.Context, code string, classId *string, now time.Time) (*class.Class, error) {
	for _, c := range f.classes {
		if c.InvitationCode != code || !now.Before(c.InvitationCodeExpires) {
			continue
		}
		if classId != nil && *classId != "" && c.ID.Hex() != *classId {
			continue
		}
		return c, nil
	}
	return nil, consts.ErrNotFound
}

func (f *fakeClassStore) FindByUser(_ context.Context, userId string, page, pageSize int64) ([]*class.Class, int64, error) {
	var result []*class.Class
	for _, c := range f.classes {
		if c.Instructor == userId || c.HasMember(userId) {
			result = append(result, c)
		}
	}
	return result, int64(len(result)), nil
}

func (f *fakeClassStore) AddMember(_ context.Context, id string, userId string) error {
	c, ok := f.classes[id]
	if !ok {
		return consts.ErrNotFound
	}
	if !lo.Contains(c.Members, userId) {
		c.Members = append(c.Members, userId)
	}
	return nil
}

func (f *fakeClassStore) RemoveMember(_ context.Context, id string, userId string) error {
	c, ok := f.classes[id]
	if !ok {
		return consts.ErrNotFound
	}
	c.Members = lo.Without(c.Members, userId)
	return nil
}

func (f *fakeClassStore) SetInvitation(_ context.Context, id string, code string, expires time.Time) error {
	c, ok := f.classes[id]
	if !ok {
		return consts.ErrNotFound
	}
	c.InvitationCode = code
	c.InvitationCodeExpires = expires
	return nil
}

func (f *fakeClassStore) ClearInvitation(_ context.Context, id string) error {
	c, ok := f.classes[id]
	if !ok {
		return consts.ErrNotFound
	}
	c.InvitationCode = ""
	c.InvitationCodeExpires = time.Time{}
	return nil
}

func (f *fakeClassStore) SetChannels(_ context.Context, id string, channels []string) error {
	c, ok := f.classes[id]
	if !ok {
		return consts.ErrNotFound
	}
	c.Channels = channels
	return nil
}

func (f *fakeClassStore) ReassignInstructor(_ context.Context, id string, prevInstructor, newInstructor string) error {
	c, ok := f.classes[id]
	if !ok || c.Instructor != prevInstructor {
		return consts.ErrUpdate
	}
	c.Instructor = newInstructor
	if !lo.Contains(c.Members, prevInstructor) {
		c.Members = append(c.Members, prevInstructor)
	}
	return nil
}

func (f *fakeClassStore) Delete(_ context.Context, id string) error {
	delete(f.classes, id)
	return nil
}

// fakeMessageStore 内存版消息存储
type fakeMessageStore struct {
	messages map[string]*message.Message
}

func newFakeMessageStore() *fakeMessageStore {
	return &fakeMessageStore{messages: make(map[string]*message.Message)}
}

func (f *fakeMessageStore) Insert(_ context.Context, msg *message.Message) error {
	if msg.ID.IsZero() {
		msg.ID = primitive.NewObjectID()
		msg.CreateTime = time.Now()
		msg.UpdateTime = msg.CreateTime
	}
	f.messages[msg.ID.Hex()] = msg
	return nil
}

func (f *fakeMessageStore) FindOne(_ context.Context, id string) (*message.Message, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	msg, ok := f.messages[id]
	if !ok {
		return nil, consts.ErrNotFound
	}
	return msg, nil
}

func (f *fakeMessageStore) FindByClassAndChannel(_ context.Context, classID, channel string, page, pageSize int64) ([]*message.Message, int64, error) {
	var result []*message.Message
	for _, msg := range f.messages {
		if msg.ClassID == classID && msg.Channel == channel {
			result = append(result, msg)
		}
	}
	return result, int64(len(result)), nil
}

func (f *fakeMessageStore) UpdateContent(_ context.Context, id string, content string) error {
	msg, ok := f.messages[id]
	if !ok {
		return consts.ErrNotFound
	}
	msg.Content = content
	msg.UpdateTime = time.Now()
	return nil
}

func (f *fakeMessageStore) Delete(_ context.Context, id string) error {
	delete(f.messages, id)
	return nil
}

func (f *fakeMessageStore) DeleteByClassID(_ context.Context, classID string) error {
	for id, msg := range f.messages {
		if msg.ClassID == classID {
			delete(f.messages, id)
		}
	}
	return nil
}

// fakeMessageCache 永远未命中的缓存, 记录失效调用
type fakeMessageCache struct {
	invalidated []string
}

func (f *fakeMessageCache) Get(_ context.Context, classId, channel string, page, limit int64) (*hub.ListMessagesResp, error) {
	return nil, fmt.Errorf("cache miss")
}

func (f *fakeMessageCache) Set(_ context.Context, classId, channel string, page, limit int64, data *hub.ListMessagesResp) error {
	return nil
}

func (f *fakeMessageCache) Delete(_ context.Context, classId, channel string) error {
	f.invalidated = append(f.invalidated, classId+":"+channel)
	return nil
}

// testEnv 组装服务和内存依赖
type testEnv struct {
	identity *staticIdentity
	classes  *fakeClassStore
	messages *fakeMessageStore
	cache    *fakeMessageCache
	class    *ClassService
	channel  *ChannelService
	message  *MessageService
}

func newTestEnv() *testEnv {
	identity := &staticIdentity{}
	classes := newFakeClassStore()
	messages := newFakeMessageStore()
	msgCache := &fakeMessageCache{}
	gate := &MembershipGate{ClassMapper: classes}

	cfg := &config.Config{}
	cfg.Api.ClassJoinURL = "https://hub.example.com/join"

	return &testEnv{
		identity: identity,
		classes:  classes,
		messages: messages,
		cache:    msgCache,
		class: &ClassService{
			Config:        cfg,
			ClassMapper:   classes,
			MessageMapper: messages,
			Gate:          gate,
			Identity:      identity,
		},
		channel: &ChannelService{
			ClassMapper: classes,
			Gate:        gate,
			Identity:    identity,
		},
		message: &MessageService{
			MessageMapper: messages,
			CacheMapper:   msgCache,
			Gate:          gate,
			Identity:      identity,
		},
	}
}

// as 切换当前请求身份
func (e *testEnv) as(userId string) {
	e.identity.userId = userId
}

// mustCreateClass 以指定教师创建班级并返回班级id
func (e *testEnv) mustCreateClass(t interface{ Fatalf(string, ...any) }, instructor, name string) string {
	e.as(instructor)
	resp, err := e.class.CreateClass(context.Background(), &hub.CreateClassReq{
		Name:        name,
		Description: "test class",
	})
	if err != nil {
		t.Fatalf("CreateClass failed: %v", err)
	}
	return resp.ClassId
}
