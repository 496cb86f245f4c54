package form

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"MonthlyMasti/internal/model/dto"
	"MonthlyMasti/pkg/logger"
	"MonthlyMasti/utils"
)

// Uploader 媒体上传协作方，由 api client 实现
type Uploader interface {
	Upload(ctx context.Context, kind, filename string, content io.Reader) (string, error)
}

// Ingester 提交和通知协作方，由 api client 实现
type Ingester interface {
	Submit(ctx context.Context, req dto.SubmitRequest) error
	Notify(ctx context.Context, name string) error
}

// Pipeline 提交流水线：顺序上传照片、组装载荷、提交、触发通知。
// 任何子步骤都不重试，上传失败直接中止且不清理已上传对象
type Pipeline struct {
	uploader Uploader
	ingester Ingester

	// now / spawn 可在测试中替换
	now   func() time.Time
	spawn func(fn func())
}

func NewPipeline(uploader Uploader, ingester Ingester) *Pipeline {
	return &Pipeline{
		uploader: uploader,
		ingester: ingester,
		now:      time.Now,
		spawn:    func(fn func()) { go fn() },
	}
}

// Run 执行提交。成功时置 success 标志，草稿内容保持不变
func (p *Pipeline) Run(ctx context.Context, d *Draft) error {
	d.loading = true
	d.err = ""
	defer func() { d.loading = false }()

	formTimestamp := utils.ISOTimestamp(p.now())

	photoURLs := make([]string, 0, len(d.photos))
	for _, photo := range d.photos {
		url, err := p.uploader.Upload(ctx, "photos", photo.Filename, bytes.NewReader(photo.Data))
		if err != nil {
			d.err = err.Error()
			return fmt.Errorf("photo upload failed: %w", err)
		}
		photoURLs = append(photoURLs, url)
	}

	var selfieURL *string
	if d.selfie != nil {
		url, err := p.uploader.Upload(ctx, "selfies", d.selfie.Filename, bytes.NewReader(d.selfie.Data))
		if err != nil {
			d.err = err.Error()
			return fmt.Errorf("selfie upload failed: %w", err)
		}
		selfieURL = &url
	}

	req := dto.SubmitRequest{
		FormTimestamp:  formTimestamp,
		Name:           d.Field(FieldName),
		Location:       d.Field(FieldLocation),
		ShortDesc:      d.Field(FieldShortDesc),
		Mood:           d.Field(FieldMood),
		Color:          d.Field(FieldColor),
		Memory:         d.Field(FieldMemory),
		Story:          d.Field(FieldStory),
		Recommendation: d.Field(FieldRecommendation),
		Message:        d.Field(FieldMessage),
		Date:           formTimestamp,
		PhotoURLs:      photoURLs,
		SelfieURL:      selfieURL,
	}

	if err := p.ingester.Submit(ctx, req); err != nil {
		d.err = err.Error()
		return fmt.Errorf("submit failed: %w", err)
	}

	// 通知是尽力而为的，失败只记录日志
	name := req.Name
	p.spawn(func() {
		if err := p.ingester.Notify(context.Background(), name); err != nil {
			logger.Logger.Warn("Failed to trigger submission notification",
				zap.String("name", name),
				zap.Error(err),
			)
		}
	})

	d.success = true
	return nil
}
