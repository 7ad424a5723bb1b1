package service

import (
	"class-hub/biz/infrastructure/consts"
	"class-hub/biz/infrastructure/repository/class"
	"context"

	"github.com/google/wire"
)

// MembershipGate 成员准入检查, 任何班级内操作执行前先在这里解析角色
type MembershipGate struct {
	ClassMapper ClassStore
}

var MembershipGateSet = wire.NewSet(
	wire.Struct(new(MembershipGate), "*"),
)

// Role 解析用户在班级中的角色
func (g *MembershipGate) Role(ctx context.Context, classId, userId string) (string, *class.Class, error) {
	c, err := g.ClassMapper.FindOne(ctx, classId)
	if err != nil {
		return consts.RoleNonMember, nil, err
	}
	return c.RoleOf(userId), c, nil
}

// RequireMember 要求用户至少是班级成员
func (g *MembershipGate) RequireMember(ctx context.Context, classId, userId string) (*class.Class, error) {
	role, c, err := g.Role(ctx, classId, userId)
	if err != nil {
		return nil, err
	}
	if role == consts.RoleNonMember {
		return nil, consts.ErrNotClassMember
	}
	return c, nil
}

// RequireInstructor 要求用户是班级教师
func (g *MembershipGate) RequireInstructor(ctx context.Context, classId, userId string) (*class.Class, error) {
	role, c, err := g.Role(ctx, classId, userId)
	if err != nil {
		return nil, err
	}
	if role != consts.RoleInstructor {
		return nil, consts.ErrNotInstructor
	}
	return c, nil
}
