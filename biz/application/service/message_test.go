package service

import (
	"class-hub/biz/application/dto/hub"
	"class-hub/biz/infrastructure/consts"
	"context"
	"errors"
	"strings"
	"testing"
)

func (e *testEnv) mustPostMessage(t interface{ Fatalf(string, ...any) }, sender, classId, content string) string {
	e.as(sender)
	resp, err := e.message.PostMessage(context.Background(), &hub.PostMessageReq{
		ClassId: classId,
		Content: content,
	})
	if err != nil {
		t.Fatalf("PostMessage failed: %v", err)
	}
	return resp.MessageId
}

func TestPostMessage(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	classId := env.mustCreateClass(t, "teacher-1", "Algebra I")
	env.classes.classes[classId].Members = append(env.classes.classes[classId].Members, "stu-1")

	// 非成员不能发言
	env.as("stranger")
	if _, err := env.message.PostMessage(ctx, &hub.PostMessageReq{ClassId: classId, Content: "hi"}); !errors.Is(err, consts.ErrNotClassMember) {
		t.Errorf("非成员发言 err = %v, want %v", err, consts.ErrNotClassMember)
	}

	env.as("stu-1")

	// 内容校验
	if _, err := env.message.PostMessage(ctx, &hub.PostMessageReq{ClassId: classId, Content: "  "}); !errors.Is(err, consts.ErrEmptyContent) {
		t.Errorf("空内容 err = %v, want %v", err, consts.ErrEmptyContent)
	}
	long := strings.Repeat("a", consts.MaxMessageLen+1)
	if _, err := env.message.PostMessage(ctx, &hub.PostMessageReq{ClassId: classId, Content: long}); !errors.Is(err, consts.ErrContentTooLong) {
		t.Errorf("超长内容 err = %v, want %v", err, consts.ErrContentTooLong)
	}

	// 不存在的频道
	bogus := "no-such"
	if _, err := env.message.PostMessage(ctx, &hub.PostMessageReq{ClassId: classId, Content: "hi", Channel: &bogus}); !errors.Is(err, consts.ErrChannelNotFound) {
		t.Errorf("不存在频道 err = %v, want %v", err, consts.ErrChannelNotFound)
	}

	// 默认落在 general 频道
	msgId := env.mustPostMessage(t, "stu-1", classId, "hello class")
	msg := env.messages.messages[msgId]
	if msg.Channel != "general" {
		t.Errorf("channel = %q, want general", msg.Channel)
	}
	if msg.Sender != "stu-1" {
		t.Errorf("sender = %q, want stu-1", msg.Sender)
	}

	// 发消息使对应频道的列表缓存失效
	found := false
	for _, key := range env.cache.invalidated {
		if key == classId+":general" {
			found = true
		}
	}
	if !found {
		t.Errorf("缓存未失效: %v", env.cache.invalidated)
	}
}

func TestListMessages(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	classId := env.mustCreateClass(t, "teacher-1", "Algebra I")
	env.classes.classes[classId].Members = append(env.classes.classes[classId].Members, "stu-1")

	env.mustPostMessage(t, "teacher-1", classId, "welcome")
	env.mustPostMessage(t, "stu-1", classId, "hi")

	env.as("stu-1")
	resp, err := env.message.ListMessages(ctx, &hub.ListMessagesReq{ClassId: classId})
	if err != nil {
		t.Fatalf("ListMessages failed: %v", err)
	}
	if resp.Total != 2 || len(resp.Messages) != 2 {
		t.Errorf("total = %d, len = %d, want 2/2", resp.Total, len(resp.Messages))
	}

	// 不存在的频道
	bogus := "no-such"
	if _, err := env.message.ListMessages(ctx, &hub.ListMessagesReq{ClassId: classId, Channel: &bogus}); !errors.Is(err, consts.ErrChannelNotFound) {
		t.Errorf("不存在频道 err = %v, want %v", err, consts.ErrChannelNotFound)
	}

	// 非成员不可见
	env.as("stranger")
	if _, err := env.message.ListMessages(ctx, &hub.ListMessagesReq{ClassId: classId}); !errors.Is(err, consts.ErrNotClassMember) {
		t.Errorf("非成员查看 err = %v, want %v", err, consts.ErrNotClassMember)
	}
}

// 只有发送者本人能编辑, 教师也不行
func TestEditMessageSenderOnly(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	classId := env.mustCreateClass(t, "teacher-1", "Algebra I")
	env.classes.classes[classId].Members = append(env.classes.classes[classId].Members, "stu-1", "stu-2")

	msgId := env.mustPostMessage(t, "stu-1", classId, "draft")

	env.as("teacher-1")
	if _, err := env.message.EditMessage(ctx, &hub.EditMessageReq{ClassId: classId, MessageId: msgId, Content: "edited"}); !errors.Is(err, consts.ErrNotSender) {
		t.Errorf("教师编辑他人消息 err = %v, want %v", err, consts.ErrNotSender)
	}

	env.as("stu-2")
	if _, err := env.message.EditMessage(ctx, &hub.EditMessageReq{ClassId: classId, MessageId: msgId, Content: "edited"}); !errors.Is(err, consts.ErrNotSender) {
		t.Errorf("其他成员编辑 err = %v, want %v", err, consts.ErrNotSender)
	}

	env.as("stu-1")
	resp, err := env.message.EditMessage(ctx, &hub.EditMessageReq{ClassId: classId, MessageId: msgId, Content: "final"})
	if err != nil {
		t.Fatalf("EditMessage failed: %v", err)
	}
	if resp.Content != "final" {
		t.Errorf("content = %q, want final", resp.Content)
	}
	if env.messages.messages[msgId].Content != "final" {
		t.Error("消息内容未更新")
	}
}

func TestEditMessageClassMismatch(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	classA := env.mustCreateClass(t, "teacher-1", "Algebra I")
	classB := env.mustCreateClass(t, "teacher-1", "Biology")

	msgId := env.mustPostMessage(t, "teacher-1", classA, "hello")

	// 消息不属于请求的班级时按不存在处理
	env.as("teacher-1")
	if _, err := env.message.EditMessage(ctx, &hub.EditMessageReq{ClassId: classB, MessageId: msgId, Content: "x"}); !errors.Is(err, consts.ErrNotFound) {
		t.Errorf("跨班编辑 err = %v, want %v", err, consts.ErrNotFound)
	}
}

// 发送者和教师都能删, 其他成员不能
func TestDeleteMessage(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	classId := env.mustCreateClass(t, "teacher-1", "Algebra I")
	env.classes.classes[classId].Members = append(env.classes.classes[classId].Members, "stu-1", "stu-2")

	msgId := env.mustPostMessage(t, "stu-1", classId, "oops")

	env.as("stu-2")
	if _, err := env.message.DeleteMessage(ctx, &hub.DeleteMessageReq{ClassId: classId, MessageId: msgId}); !errors.Is(err, consts.ErrForbidden) {
		t.Errorf("其他成员删除 err = %v, want %v", err, consts.ErrForbidden)
	}

	env.as("teacher-1")
	if _, err := env.message.DeleteMessage(ctx, &hub.DeleteMessageReq{ClassId: classId, MessageId: msgId}); err != nil {
		t.Fatalf("教师删除失败: %v", err)
	}
	if _, ok := env.messages.messages[msgId]; ok {
		t.Error("消息未被删除")
	}

	msgId2 := env.mustPostMessage(t, "stu-1", classId, "mine")
	env.as("stu-1")
	if _, err := env.message.DeleteMessage(ctx, &hub.DeleteMessageReq{ClassId: classId, MessageId: msgId2}); err != nil {
		t.Fatalf("发送者删除失败: %v", err)
	}

	if _, err := env.message.DeleteMessage(ctx, &hub.DeleteMessageReq{ClassId: classId, MessageId: msgId2}); !errors.Is(err, consts.ErrNotFound) {
		t.Errorf("删除不存在消息 err = %v, want %v", err, consts.ErrNotFound)
	}
}
