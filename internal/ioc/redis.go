package ioc

import (
	"github.com/gotomicro/ego/core/econf"
	"github.com/meoying/dlock-go"
	dlockRedis "github.com/meoying/dlock-go/redis"
	"github.com/redis/go-redis/v9"

	redismetrics "gitee.com/flycash/varsling-platform/internal/pkg/redis/metrics"
)

func InitRedisClient() *redis.Client {
	type Config struct {
		Addr string
	}
	var cfg Config
	err := econf.UnmarshalKey("redis", &cfg)
	if err != nil {
		panic(err)
	}
	cmd := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
	})
	cmd.AddHook(redismetrics.NewMetricsHook())
	return cmd
}

func InitDistributedLock(client redis.Cmdable) dlock.Client {
	return dlockRedis.NewClient(client)
}
