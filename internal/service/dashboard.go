package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"MonthlyMasti/internal/dashboard"
	"MonthlyMasti/internal/model/dto"
	"MonthlyMasti/pkg/logger"
)

type DashboardService struct{}

var (
	dashboardService *DashboardService
	dashboardOnce    sync.Once
)

func Dashboard() *DashboardService {
	dashboardOnce.Do(func() {
		dashboardService = &DashboardService{}
	})
	return dashboardService
}

// Build 聚合全部提交。读库失败降级为空看板，不向调用方报错
func (s *DashboardService) Build(ctx context.Context) dto.DashboardData {
	subs, err := Submission().ListAll(ctx)
	if err != nil {
		logger.Logger.Warn("Failed to load submissions, serving empty dashboard", zap.Error(err))
		return dto.DashboardData{
			Feed:   []string{},
			Groups: []dto.DashboardGroup{},
		}
	}

	return dashboard.Aggregate(subs)
}
