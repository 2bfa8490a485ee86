package redis

import (
	"context"
	"time"
)

// IncrWithWindow 固定窗口计数：自增后对新窗口设置过期时间，返回当前窗口内的计数
func IncrWithWindow(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := Rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}

	// 窗口首个请求负责设置过期
	if count == 1 {
		if err := Rdb.Expire(ctx, key, window).Err(); err != nil {
			return count, err
		}
	}

	return count, nil
}

// DeleteKey 删除一个键
func DeleteKey(ctx context.Context, key string) error {
	return Rdb.Del(ctx, key).Err()
}
