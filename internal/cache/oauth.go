package cache

import (
	"context"
	"time"

	"MonthlyMasti/storage/redis"
)

const (
	oauthStatePrefix = "oauth:state"
	oauthStateTTL    = 10 * time.Minute
)

// SetOAuthState 记录授权跳转时发出的 state，回调时核对
func SetOAuthState(ctx context.Context, state, provider string) error {
	key := redis.Key(oauthStatePrefix, state)
	return redis.Client().Set(ctx, key, provider, oauthStateTTL).Err()
}

// TakeOAuthState 取出并删除 state，返回签发时的 provider；不存在返回 ""
func TakeOAuthState(ctx context.Context, state string) (string, error) {
	key := redis.Key(oauthStatePrefix, state)
	provider, err := redis.Client().GetDel(ctx, key).Result()
	if err != nil {
		return "", err
	}
	return provider, nil
}
