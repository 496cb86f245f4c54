package cache

import (
	"context"
	"encoding/json"
	"time"

	redislib "github.com/redis/go-redis/v9"

	"MonthlyMasti/config"
	"MonthlyMasti/internal/model"
	"MonthlyMasti/storage/redis"
)

// 看板读多写少，整表快照直接缓存一份 JSON，提交成功时失效

const dashboardKey = "dashboard:snapshot"

// SetSubmissionsSnapshot 缓存最近一次读出的全部提交
func SetSubmissionsSnapshot(ctx context.Context, subs []model.Submission) error {
	data, err := json.Marshal(subs)
	if err != nil {
		return err
	}

	ttl := time.Duration(config.Cfg.DashboardCacheSeconds) * time.Second
	return redis.Client().Set(ctx, redis.Key(dashboardKey), data, ttl).Err()
}

// GetSubmissionsSnapshot 读取快照，未命中返回 (nil, false, nil)
func GetSubmissionsSnapshot(ctx context.Context) ([]model.Submission, bool, error) {
	data, err := redis.Client().Get(ctx, redis.Key(dashboardKey)).Bytes()
	if err != nil {
		if err == redislib.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}

	var subs []model.Submission
	if err := json.Unmarshal(data, &subs); err != nil {
		return nil, false, err
	}

	return subs, true, nil
}

// InvalidateSubmissionsSnapshot 新提交落库后失效快照
func InvalidateSubmissionsSnapshot(ctx context.Context) error {
	return redis.Client().Del(ctx, redis.Key(dashboardKey)).Err()
}
