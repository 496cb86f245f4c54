package handler

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"MonthlyMasti/internal/model/dto"
	"MonthlyMasti/internal/service"
)

// Notify 通知所有注册用户有新提交
// POST /api/notify
// 保持旧版接口的裸响应格式
func Notify(ctx context.Context, c *app.RequestContext) {
	if string(c.Method()) != consts.MethodPost {
		c.JSON(consts.StatusMethodNotAllowed, map[string]interface{}{
			"error": "Method not allowed",
		})
		return
	}

	if !strings.Contains(string(c.ContentType()), "application/json") {
		c.JSON(consts.StatusBadRequest, map[string]interface{}{
			"error": "Content-Type must be application/json",
		})
		return
	}

	var req dto.NotifyRequest
	if len(c.Request.Body()) > 0 {
		if err := json.Unmarshal(c.Request.Body(), &req); err != nil {
			c.JSON(consts.StatusBadRequest, map[string]interface{}{
				"error": "Invalid request body",
			})
			return
		}
	}

	if err := service.Notification().NotifyAll(ctx, req.Name); err != nil {
		c.JSON(consts.StatusInternalServerError, map[string]interface{}{
			"error": "Failed to send notifications",
		})
		return
	}

	c.JSON(consts.StatusOK, map[string]interface{}{
		"success": true,
	})
}
