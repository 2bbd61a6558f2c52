package basic

// UserMeta jwt中携带的用户信息
type UserMeta struct {
	UserId string `json:"userId"`
	Role   string `json:"role"`
}

func (m *UserMeta) GetUserId() string {
	if m == nil {
		return ""
	}
	return m.UserId
}

func (m *UserMeta) GetRole() string {
	if m == nil {
		return ""
	}
	return m.Role
}

// Response 通用响应
type Response struct {
	Code int64  `form:"code" json:"code" query:"code"`
	Msg  string `form:"msg" json:"msg" query:"msg"`
}
