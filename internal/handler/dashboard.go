package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"MonthlyMasti/internal/service"
	"MonthlyMasti/pkg/response"
)

// Dashboard 看板数据
// GET /api/dashboard
func Dashboard(ctx context.Context, c *app.RequestContext) {
	data := service.Dashboard().Build(ctx)
	response.Success(ctx, c, data)
}
