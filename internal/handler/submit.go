package handler

import (
	"context"
	"encoding/json"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"MonthlyMasti/internal/model"
	"MonthlyMasti/internal/model/dto"
	"MonthlyMasti/internal/service"
)

// Submit 提交打卡
// POST /api/submit
// 保持旧版接口的裸响应格式：{"success":true} / {"error":"..."}
func Submit(ctx context.Context, c *app.RequestContext) {
	if string(c.Method()) != consts.MethodPost {
		c.JSON(consts.StatusMethodNotAllowed, map[string]interface{}{
			"error": "Method not allowed",
		})
		return
	}

	var req dto.SubmitRequest
	if err := json.Unmarshal(c.Request.Body(), &req); err != nil {
		c.JSON(consts.StatusBadRequest, map[string]interface{}{
			"error": "Invalid request body",
		})
		return
	}

	if req.Name == "" {
		c.JSON(consts.StatusBadRequest, map[string]interface{}{
			"error": "Name is required",
		})
		return
	}
	if len(req.PhotoURLs) > model.MaxPhotosPerSubmission {
		c.JSON(consts.StatusBadRequest, map[string]interface{}{
			"error": "Too many photos",
		})
		return
	}

	if err := service.Submission().Store(ctx, req); err != nil {
		c.JSON(consts.StatusInternalServerError, map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	// 通知投递失败不影响提交结果
	service.Submission().EnqueueNotification(req.Name)

	c.JSON(consts.StatusOK, map[string]interface{}{
		"success": true,
	})
}
