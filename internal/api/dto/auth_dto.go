package dto

// RegisterRequest 注册请求（multipart/form-data，avatar 必填，coverImage 可选）
type RegisterRequest struct {
	Username string `form:"username" json:"username" binding:"required,min=3,max=64,username"`
	Email    string `form:"email" json:"email" binding:"required,email,max=255"`
	Fullname string `form:"fullname" json:"fullname" binding:"required,min=1,max=255"`
	Password string `form:"password" json:"password" binding:"required,strongpassword"`
}

// LoginRequest 登录请求，username 与 email 二选一
type LoginRequest struct {
	Username string `json:"username" binding:"omitempty,max=64"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest 刷新请求，Cookie 中没有 refreshToken 时从请求体读取
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,strongpassword"`
}

// LoginData 登录/刷新成功返回的数据
type LoginData struct {
	User         *UserInfo `json:"user,omitempty"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
}
