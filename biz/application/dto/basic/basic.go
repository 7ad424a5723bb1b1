package basic

// UserMeta 请求携带的用户身份信息
type UserMeta struct {
	UserId          string `json:"userId" mapstructure:"userId"`
	AppId           int64  `json:"appId" mapstructure:"appId"`
	DeviceId        string `json:"deviceId" mapstructure:"deviceId"`
	SessionUserId   string `json:"sessionUserId" mapstructure:"sessionUserId"`
	SessionAppId    int64  `json:"sessionAppId" mapstructure:"sessionAppId"`
	SessionDeviceId string `json:"sessionDeviceId" mapstructure:"sessionDeviceId"`
}

func (u *UserMeta) GetUserId() string {
	if u == nil {
		return ""
	}
	return u.UserId
}

func (u *UserMeta) GetAppId() int64 {
	if u == nil {
		return 0
	}
	return u.AppId
}

type PaginationOptions struct {
	Page  *int64 `json:"page,omitempty" query:"page"`
	Limit *int64 `json:"limit,omitempty" query:"limit"`
}
