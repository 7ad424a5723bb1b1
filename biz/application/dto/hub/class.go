package hub

import "class-hub/biz/application/dto/basic"

// Response 通用响应
type Response struct {
	Code int64  `json:"code"`
	Msg  string `json:"msg"`
}

type ClassInfo struct {
	Id           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	InstructorId string   `json:"instructorId"`
	MemberCount  int64    `json:"memberCount"`
	Channels     []string `json:"channels"`
	CreateTime   int64    `json:"createTime"`
}

type ClassMemberInfo struct {
	UserId string `json:"userId"`
	Role   string `json:"role"`
}

type CreateClassReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CreateClassResp struct {
	ClassId string `json:"classId"`
}

type ListClassesReq struct {
	PaginationOptions *basic.PaginationOptions `json:"paginationOptions,omitempty"`
}

type ListClassesResp struct {
	Classes []*ClassInfo `json:"classes"`
	Total   int64        `json:"total"`
}

type GetClassReq struct {
	ClassId string `json:"classId" query:"classId"`
}

type GetClassResp struct {
	Class *ClassInfo `json:"class"`
}

type GetClassMembersReq struct {
	ClassId           string                   `json:"classId" query:"classId"`
	PaginationOptions *basic.PaginationOptions `json:"paginationOptions,omitempty"`
}

type GetClassMembersResp struct {
	Members []*ClassMemberInfo `json:"members"`
	Total   int64              `json:"total"`
}

type GenerateInviteReq struct {
	ClassId string `json:"classId"`
}

type GenerateInviteResp struct {
	Code      string `json:"code"`
	ExpiresAt int64  `json:"expiresAt"`
	InviteUrl string `json:"inviteUrl"`
}

type RevokeInviteReq struct {
	ClassId string `json:"classId"`
}

type JoinClassReq struct {
	InviteCode string  `json:"inviteCode"`
	ClassId    *string `json:"classId,omitempty"`
}

type JoinClassResp struct {
	ClassId   string `json:"classId"`
	ClassName string `json:"className"`
}

type LeaveClassReq struct {
	ClassId string `json:"classId"`
}

type RemoveMemberReq struct {
	ClassId string `json:"classId"`
	UserId  string `json:"userId"`
}

type ChangeRoleReq struct {
	ClassId string `json:"classId"`
	UserId  string `json:"userId"`
	Role    string `json:"role"` // instructor/student
}

type DeleteClassReq struct {
	ClassId string `json:"classId"`
}
