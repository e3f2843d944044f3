package idempotent

import "context"

type IdempotencyService interface {
	// Exists 返回 key 是否出现过，同时把 key 记为已出现
	Exists(ctx context.Context, key string) (bool, error)
	MExists(ctx context.Context, keys ...string) ([]bool, error)
	// Check 只读检查，不把 key 记为已出现。
	// 业务处理成功之后再用 Exists 落标记，避免处理失败的 key 被判成重复
	Check(ctx context.Context, key string) (bool, error)
}
