package idempotent

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// BloomIdempotencyService 基于 Redis 布隆过滤器的幂等判重。
// 存在误判（把没见过的判成见过）的概率由 errorRate 控制，
// 消费侧的 keyed upsert 保证误判也不会破坏正确性
type BloomIdempotencyService struct {
	client     redis.Cmdable
	filterName string
	capacity   uint64
	errorRate  float64
}

func NewBloomService(client redis.Cmdable, filterName string,
	capacity uint64, errorRate float64,
) *BloomIdempotencyService {
	return &BloomIdempotencyService{
		client:     client,
		filterName: filterName,
		capacity:   capacity,
		errorRate:  errorRate,
	}
}

func (s *BloomIdempotencyService) Exists(ctx context.Context, key string) (bool, error) {
	added, err := s.client.BFAdd(ctx, s.filterName, key).Result()
	if err != nil {
		return false, err
	}
	// BFAdd 返回 true 表示新加入，即之前没见过
	return !added, nil
}

func (s *BloomIdempotencyService) Check(ctx context.Context, key string) (bool, error) {
	return s.client.BFExists(ctx, s.filterName, key).Result()
}

func (s *BloomIdempotencyService) MExists(ctx context.Context, keys ...string) ([]bool, error) {
	if len(keys) == 0 {
		return nil, errors.New("empty keys")
	}
	res, err := s.client.BFMAdd(ctx, s.filterName, slice.Map(keys, func(_ int, src string) any {
		return src
	})...).Result()
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(_ int, added bool) bool {
		return !added
	}), nil
}
