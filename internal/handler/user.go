package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"MonthlyMasti/internal/middleware"
	"MonthlyMasti/internal/service"
	"MonthlyMasti/pkg/errors"
	"MonthlyMasti/pkg/response"
)

// GetUserProfile 当前登录用户
// GET /v1/users/me
func GetUserProfile(ctx context.Context, c *app.RequestContext) {
	userID, exists := middleware.GetUserID(ctx, c)
	if !exists {
		response.Error(ctx, c, errors.Unauthorized)
		return
	}

	snapshot, err := service.Auth().GetUser(ctx, userID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, snapshot)
}
