package service

import (
	"class-hub/biz/application/dto/basic"
	"class-hub/biz/infrastructure/repository/class"
	"class-hub/biz/infrastructure/repository/message"
	"context"
	"time"
)

// Identity 请求身份解析器
type Identity interface {
	Resolve(ctx context.Context) *basic.UserMeta
}

// ClassStore 班级存储, 由 class.MongoMapper 实现
type ClassStore interface {
	Insert(ctx context.Context, c *class.Class) error
	FindOne(ctx context.Context, id string) (*class.Class, error)
	FindOneByInviteCode(ctx context.Context, code string, classId *string, now time.Time) (*class.Class, error)
	FindByUser(ctx context.Context, userId string, page, pageSize int64) ([]*class.Class, int64, error)
	AddMember(ctx context.Context, id string, userId string) error
	RemoveMember(ctx context.Context, id string, userId string) error
	SetInvitation(ctx context.Context, id string, code string, expires time.Time) error
	ClearInvitation(ctx context.Context, id string) error
	SetChannels(ctx context.Context, id string, channels []string) error
	ReassignInstructor(ctx context.Context, id string, prevInstructor, newInstructor string) error
	Delete(ctx context.Context, id string) error
}

// MessageStore 消息存储, 由 message.MongoMapper 实现
type MessageStore interface {
	Insert(ctx context.Context, msg *message.Message) error
	FindOne(ctx context.Context, id string) (*message.Message, error)
	FindByClassAndChannel(ctx context.Context, classID, channel string, page, pageSize int64) ([]*message.Message, int64, error)
	UpdateContent(ctx context.Context, id string, content string) error
	Delete(ctx context.Context, id string) error
	DeleteByClassID(ctx context.Context, classID string) error
}
