package util

import (
	"class-hub/biz/application/dto/hub"
	"class-hub/biz/infrastructure/util/log"
	"encoding/json"
)

// JSONF 序列化为json字符串，仅用于日志输出
func JSONF(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error("序列化失败: %v", err)
		return ""
	}
	return string(data)
}

// Succeed 构造成功响应
func Succeed(msg string) (*hub.Response, error) {
	return &hub.Response{
		Code: 0,
		Msg:  msg,
	}, nil
}

// Fail 构造失败响应
func Fail(code int64, msg string) *hub.Response {
	return &hub.Response{
		Code: code,
		Msg:  msg,
	}
}
