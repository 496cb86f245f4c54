package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"MonthlyMasti/internal/model/dto"
	"MonthlyMasti/internal/service"
	"MonthlyMasti/pkg/errors"
	"MonthlyMasti/pkg/response"
)

// Upload 上传打卡照片或自拍
// POST /api/uploads (multipart: file, kind=photos|selfies)
func Upload(ctx context.Context, c *app.RequestContext) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(ctx, c, errors.InvalidRequest)
		return
	}

	kind := c.PostForm("kind")
	if kind == "" {
		kind = "photos"
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(ctx, c, errors.UploadFailed)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")

	url, err := service.Upload().Store(ctx, kind, fileHeader.Filename, file, contentType, fileHeader.Size)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, dto.UploadResponse{URL: url})
}
