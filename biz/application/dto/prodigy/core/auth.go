package core

type SignUpReq struct {
	Username string `form:"username" json:"username" query:"username"`
	Email    string `form:"email" json:"email" query:"email"`
	Password string `form:"password" json:"password" query:"password"`
	FullName string `form:"full_name" json:"full_name" query:"full_name"`
	Role     string `form:"role" json:"role" query:"role"`
}

type SignInReq struct {
	Email    string `form:"email" json:"email" query:"email"`
	Password string `form:"password" json:"password" query:"password"`
}

// UserInfo 对外的用户视图, 永远不携带密码哈希
type UserInfo struct {
	Id         string  `form:"id" json:"id" query:"id"`
	Username   string  `form:"username" json:"username" query:"username"`
	Email      string  `form:"email" json:"email" query:"email"`
	FullName   string  `form:"full_name" json:"full_name" query:"full_name"`
	Role       string  `form:"role" json:"role" query:"role"`
	Avatar     *string `form:"avatar" json:"avatar,omitempty" query:"avatar"`
	CreateTime string  `form:"created_at" json:"created_at" query:"created_at"`
}

type AuthResp struct {
	Token string    `form:"token" json:"token" query:"token"`
	User  *UserInfo `form:"user" json:"user" query:"user"`
}

type GetMeReq struct {
}

type UpdateProfileReq struct {
	FullName *string `form:"full_name" json:"full_name,omitempty" query:"full_name"`
	Avatar   *string `form:"avatar" json:"avatar,omitempty" query:"avatar"`
}
