package metrics

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

var (
	commandCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redis_commands_total",
			Help: "Total number of Redis commands executed",
		},
		[]string{"command", "status"},
	)

	commandDuration = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "redis_command_duration_seconds",
			Help:       "Redis command execution time in seconds",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.95: 0.005, 0.99: 0.001},
		},
		[]string{"command"},
	)

	connectionCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redis_connections_total",
			Help: "Total number of Redis connections created",
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(
		commandCounter,
		commandDuration,
		connectionCounter,
	)
}

// Hook 实现 redis.Hook 接口，为 Redis 操作收集指标。
// 幂等检查走 Redis，网关调用前必经，所以要单独盯它的延迟
type Hook struct{}

func NewMetricsHook() *Hook {
	return &Hook{}
}

func (h *Hook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		commandDuration.WithLabelValues(cmd.Name()).Observe(time.Since(start).Seconds())

		status := "success"
		if err != nil && !errors.Is(err, redis.Nil) {
			status = "error"
		}
		commandCounter.WithLabelValues(cmd.Name(), status).Inc()
		return err
	}
}

func (h *Hook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmds)
		elapsed := time.Since(start)
		for _, cmd := range cmds {
			commandDuration.WithLabelValues(cmd.Name()).Observe(elapsed.Seconds())
			status := "success"
			if cmdErr := cmd.Err(); cmdErr != nil && !errors.Is(cmdErr, redis.Nil) {
				status = "error"
			}
			commandCounter.WithLabelValues(cmd.Name(), status).Inc()
		}
		return err
	}
}

func (h *Hook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := next(ctx, network, addr)
		status := "success"
		if err != nil {
			status = "error"
		}
		connectionCounter.WithLabelValues(status).Inc()
		return conn, err
	}
}
