package hub

type ListChannelsReq struct {
	ClassId string `json:"classId" query:"classId"`
}

type ListChannelsResp struct {
	Channels []string `json:"channels"`
}

type CreateChannelReq struct {
	ClassId string `json:"classId"`
	Name    string `json:"name"`
}

type CreateChannelResp struct {
	Name string `json:"name"`
}
