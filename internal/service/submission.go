package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm/clause"

	"MonthlyMasti/internal/cache"
	"MonthlyMasti/internal/model"
	"MonthlyMasti/internal/model/dto"
	"MonthlyMasti/internal/queue"
	"MonthlyMasti/pkg/logger"
	"MonthlyMasti/pkg/metrics"
	"MonthlyMasti/storage/database"
)

type SubmissionService struct{}

var (
	submissionService *SubmissionService
	submissionOnce    sync.Once
)

func Submission() *SubmissionService {
	submissionOnce.Do(func() {
		submissionService = &SubmissionService{}
	})

	return submissionService
}

// Store 保存一次打卡提交，form_timestamp 冲突时整行覆盖
func (s *SubmissionService) Store(ctx context.Context, req dto.SubmitRequest) error {
	start := time.Now()

	sub := model.Submission{
		FormTimestamp:  req.FormTimestamp,
		Name:           req.Name,
		Location:       req.Location,
		ShortDesc:      req.ShortDesc,
		Mood:           req.Mood,
		Color:          req.Color,
		Memory:         req.Memory,
		Story:          req.Story,
		Recommendation: req.Recommendation,
		Message:        req.Message,
		Date:           req.Date,
		PhotoURLs:      model.PhotoURLs(req.PhotoURLs),
		SelfieURL:      req.SelfieURL,
	}

	err := database.DB().WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "form_timestamp"}},
			UpdateAll: true,
		}).
		Create(&sub).Error
	if err != nil {
		metrics.RecordSubmission("failed", time.Since(start).Seconds())
		logger.Logger.Error("Failed to store submission",
			zap.String("form_timestamp", req.FormTimestamp),
			zap.Error(err),
		)
		return fmt.Errorf("failed to store submission: %w", err)
	}

	metrics.RecordSubmission("success", time.Since(start).Seconds())
	logger.Logger.Info("Submission stored",
		zap.String("form_timestamp", req.FormTimestamp),
		zap.String("name", req.Name),
		zap.Int("photo_count", len(req.PhotoURLs)),
	)

	// 看板缓存失效，下一次查询重建
	if err := cache.InvalidateSubmissionsSnapshot(ctx); err != nil {
		logger.Logger.Warn("Failed to invalidate dashboard cache", zap.Error(err))
	}

	return nil
}

// ListAll 返回全部提交，优先走缓存快照
func (s *SubmissionService) ListAll(ctx context.Context) ([]model.Submission, error) {
	if subs, ok, err := cache.GetSubmissionsSnapshot(ctx); err != nil {
		logger.Logger.Warn("Failed to read dashboard cache", zap.Error(err))
	} else if ok {
		return subs, nil
	}

	var subs []model.Submission
	err := database.DB().WithContext(ctx).
		Order("created_at DESC").
		Find(&subs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	if err := cache.SetSubmissionsSnapshot(ctx, subs); err != nil {
		logger.Logger.Warn("Failed to write dashboard cache", zap.Error(err))
	}

	return subs, nil
}

// EnqueueNotification 投递通知任务，提交成功与否不受通知失败影响
func (s *SubmissionService) EnqueueNotification(name string) {
	if err := queue.PublishSubmissionNotification(model.SubmissionNotificationMessage{
		Name: name,
	}); err != nil {
		logger.Logger.Error("Failed to enqueue submission notification",
			zap.String("name", name),
			zap.Error(err),
		)
	}
}
