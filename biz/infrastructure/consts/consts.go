package consts

var PageSize int64 = 10

// 数据库相关
const (
	ID             = "_id"
	UserID         = "user_id"
	ClassID        = "class_id"
	Channel        = "channel"
	Instructor     = "instructor"
	Members        = "members"
	Channels       = "channels"
	InvitationCode = "invitation_code"
	InvitationExp  = "invitation_code_expires"
	CreateTime     = "create_time"
	UpdateTime     = "update_time"
	GreaterThan    = "$gt"
)

// 角色
const (
	RoleInstructor = "instructor"
	RoleStudent    = "student"
	RoleNonMember  = "non-member"
)

// 班级相关默认值
const (
	MaxClassNameLen   = 100
	MaxClassDescLen   = 500
	InviteCodeLen     = 6
	InviteCodeExpiry  = 7 * 24 // 小时
	MaxMessageLen     = 2000
	DefaultChannel    = "general"
	AssignmentChannel = "assignments"
	QuestionChannel   = "questions"
)

// http
const (
	Post            = "POST"
	ContentTypeJson = "application/json"
	CharSetUTF8     = "UTF-8"
)
