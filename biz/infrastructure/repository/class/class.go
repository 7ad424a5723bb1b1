package class

import (
	"class-hub/biz/infrastructure/consts"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Class struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name                  string             `bson:"name" json:"name"`
	Description           string             `bson:"description" json:"description"`
	Instructor            string             `bson:"instructor" json:"instructor"`
	Members               []string           `bson:"members" json:"members"`
	InvitationCode        string             `bson:"invitation_code,omitempty" json:"invitationCode,omitempty"`
	InvitationCodeExpires time.Time          `bson:"invitation_code_expires,omitempty" json:"invitationCodeExpires,omitempty"`
	Channels              []string           `bson:"channels,omitempty" json:"channels,omitempty"`
	CreateTime            time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime            time.Time          `bson:"update_time" json:"updateTime"`
	DeleteTime            time.Time          `bson:"delete_time,omitempty" json:"deleteTime"`
}

// DefaultChannels 默认频道列表
func DefaultChannels() []string {
	return []string{consts.DefaultChannel, consts.AssignmentChannel, consts.QuestionChannel}
}

// RoleOf 推导用户在班级中的角色，先判断教师再判断成员
func (c *Class) RoleOf(userId string) string {
	if userId == "" {
		return consts.RoleNonMember
	}
	if userId == c.Instructor {
		return consts.RoleInstructor
	}
	if c.HasMember(userId) {
		return consts.RoleStudent
	}
	return consts.RoleNonMember
}

// HasMember 判断用户是否在成员列表中
func (c *Class) HasMember(userId string) bool {
	return lo.Contains(c.Members, userId)
}

// ChannelList 返回频道列表，未设置时返回默认频道
func (c *Class) ChannelList() []string {
	if len(c.Channels) == 0 {
		return DefaultChannels()
	}
	return c.Channels
}

// HasChannel 判断频道是否存在
func (c *Class) HasChannel(name string) bool {
	return lo.Contains(c.ChannelList(), name)
}

// HasActiveInvite 判断当前是否存在未过期的邀请码
func (c *Class) HasActiveInvite(now time.Time) bool {
	return c.InvitationCode != "" && now.Before(c.InvitationCodeExpires)
}

// NormalizeChannelName 规范化频道名: 小写, [a-z0-9-] 之外的字符替换为 '-'
func NormalizeChannelName(raw string) string {
	lowered := strings.ToLower(raw)
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return '-'
	}, lowered)
}
