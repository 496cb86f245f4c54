package dto

// SignUpRequest 邮箱注册
type SignUpRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// SignInRequest 邮箱登录
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshTokenRequest 刷新 access token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// AuthUserSnapshot 返回给客户端的用户快照
type AuthUserSnapshot struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Provider    string `json:"provider"`
}

// AuthTokenResponse 登录 / 注册 / 刷新的统一响应
type AuthTokenResponse struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	ExpiresIn    int              `json:"expires_in"`
	User         AuthUserSnapshot `json:"user"`
}

// OAuthURLResponse 跳转第三方授权页的地址
type OAuthURLResponse struct {
	URL string `json:"url"`
}
