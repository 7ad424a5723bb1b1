package hub

import "class-hub/biz/application/dto/basic"

type MessageInfo struct {
	Id           string  `json:"id"`
	ClassId      string  `json:"classId"`
	Sender       string  `json:"sender"`
	Content      string  `json:"content"`
	Channel      string  `json:"channel"`
	AssignmentId *string `json:"assignmentId,omitempty"`
	CreateTime   int64   `json:"createTime"`
	UpdateTime   int64   `json:"updateTime"`
}

type PostMessageReq struct {
	ClassId      string  `json:"classId"`
	Content      string  `json:"content"`
	Channel      *string `json:"channel,omitempty"`
	AssignmentId *string `json:"assignmentId,omitempty"`
}

type PostMessageResp struct {
	MessageId string `json:"messageId"`
}

type ListMessagesReq struct {
	ClassId           string                   `json:"classId" query:"classId"`
	Channel           *string                  `json:"channel,omitempty" query:"channel"`
	PaginationOptions *basic.PaginationOptions `json:"paginationOptions,omitempty"`
}

type ListMessagesResp struct {
	Messages []*MessageInfo `json:"messages"`
	Total    int64          `json:"total"`
}

type EditMessageReq struct {
	ClassId   string `json:"classId"`
	MessageId string `json:"messageId"`
	Content   string `json:"content"`
}

type EditMessageResp struct {
	Id         string `json:"id"`
	Content    string `json:"content"`
	UpdateTime int64  `json:"updateTime"`
}

type DeleteMessageReq struct {
	ClassId   string `json:"classId"`
	MessageId string `json:"messageId"`
}
