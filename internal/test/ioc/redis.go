package ioc

import (
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"

	prodioc "gitee.com/flycash/varsling-platform/internal/ioc"
)

func InitRedisClient() *redis.Client {
	econf.Set("redis", map[string]any{
		"addr": "localhost:6379",
	})
	return prodioc.InitRedisClient()
}
