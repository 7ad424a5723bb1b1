package class

import (
	"class-hub/biz/infrastructure/consts"
	"testing"
	"time"
)

func TestRoleOf(t *testing.T) {
	c := &Class{
		Instructor: "teacher-1",
		Members:    []string{"stu-1", "stu-2"},
	}

	tests := []struct {
		name   string
		userId string
		want   string
	}{
		{"教师", "teacher-1", consts.RoleInstructor},
		{"普通成员", "stu-1", consts.RoleStudent},
		{"非成员", "stranger", consts.RoleNonMember},
		{"空用户", "", consts.RoleNonMember},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.RoleOf(tt.userId); got != tt.want {
				t.Errorf("RoleOf(%q) = %q, want %q", tt.userId, got, tt.want)
			}
		})
	}
}

// 教师不在成员列表中时依然是教师
func TestRoleOfInstructorNotInMembers(t *testing.T) {
	c := &Class{Instructor: "teacher-1", Members: []string{"stu-1"}}
	if got := c.RoleOf("teacher-1"); got != consts.RoleInstructor {
		t.Errorf("RoleOf(teacher-1) = %q, want %q", got, consts.RoleInstructor)
	}
}

func TestChannelListDefaults(t *testing.T) {
	c := &Class{}
	got := c.ChannelList()
	want := []string{"general", "assignments", "questions"}
	if len(got) != len(want) {
		t.Fatalf("ChannelList() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ChannelList()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	c.Channels = []string{"general", "labs"}
	got = c.ChannelList()
	if len(got) != 2 || got[1] != "labs" {
		t.Errorf("ChannelList() = %v, want stored channels", got)
	}
}

func TestHasActiveInvite(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		c    Class
		want bool
	}{
		{"无邀请码", Class{}, false},
		{"未过期", Class{InvitationCode: "AB12CD", InvitationCodeExpires: now.Add(time.Hour)}, true},
		{"已过期", Class{InvitationCode: "AB12CD", InvitationCodeExpires: now.Add(-time.Hour)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.HasActiveInvite(now); got != tt.want {
				t.Errorf("HasActiveInvite() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeChannelName(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"general", "general"},
		{"Hw #1!", "hw--1-"},
		{"Lab-Session", "lab-session"},
		{"数学", "--"},
		{"a b_c", "a-b-c"},
		{"ALL9", "all9"},
	}
	for _, tt := range tests {
		if got := NormalizeChannelName(tt.raw); got != tt.want {
			t.Errorf("NormalizeChannelName(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

// 规范化是幂等的: 二次规范化不改变结果
func TestNormalizeChannelNameIdempotent(t *testing.T) {
	inputs := []string{"general", "Hw #1!", "数学 Lab", "a--b", "MIXED case 42"}
	for _, raw := range inputs {
		once := NormalizeChannelName(raw)
		twice := NormalizeChannelName(once)
		if once != twice {
			t.Errorf("NormalizeChannelName 不幂等: %q -> %q -> %q", raw, once, twice)
		}
	}
}
