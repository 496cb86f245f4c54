package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"MonthlyMasti/internal/middleware"
	"MonthlyMasti/internal/model/dto"
	"MonthlyMasti/internal/service"
	"MonthlyMasti/pkg/errors"
	"MonthlyMasti/pkg/response"
)

// SignUp 邮箱注册
// POST /v1/auth/signup
func SignUp(ctx context.Context, c *app.RequestContext) {
	var req dto.SignUpRequest
	if err := c.BindJSON(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	resp, err := service.Auth().SignUp(ctx, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, resp)
}

// SignIn 邮箱登录
// POST /v1/auth/login
func SignIn(ctx context.Context, c *app.RequestContext) {
	var req dto.SignInRequest
	if err := c.BindJSON(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	resp, err := service.Auth().SignIn(ctx, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, resp)
}

// OAuthRedirect 获取第三方授权跳转地址
// GET /v1/auth/oauth/:provider
func OAuthRedirect(ctx context.Context, c *app.RequestContext) {
	provider := c.Param("provider")

	url, err := service.Auth().BuildOAuthURL(ctx, provider)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, dto.OAuthURLResponse{URL: url})
}

// OAuthCallback 第三方授权回调
// GET /v1/auth/oauth/:provider/callback
func OAuthCallback(ctx context.Context, c *app.RequestContext) {
	provider := c.Param("provider")
	state := c.Query("state")
	code := c.Query("code")

	if state == "" || code == "" {
		response.Error(ctx, c, errors.OAuthStateInvalid)
		return
	}

	resp, err := service.Auth().HandleOAuthCallback(ctx, provider, state, code)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, resp)
}

// RefreshToken 刷新访问令牌
// POST /v1/auth/token/refresh
func RefreshToken(ctx context.Context, c *app.RequestContext) {
	var req dto.RefreshTokenRequest
	if err := c.BindJSON(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	resp, err := service.Auth().Refresh(ctx, req.RefreshToken)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, resp)
}

// SignOut 注销
// POST /v1/auth/logout
func SignOut(ctx context.Context, c *app.RequestContext) {
	userID, exists := middleware.GetUserID(ctx, c)
	if !exists {
		response.Error(ctx, c, errors.Unauthorized)
		return
	}

	if err := service.Auth().SignOut(ctx, userID); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.NoContent(ctx, c)
}
