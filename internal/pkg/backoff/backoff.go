package backoff

import (
	"math/rand"
	"time"
)

// Config 可重试失败的退避参数。
// 指数退避加满量抖动，封顶，避免重试风暴打垮网关
type Config struct {
	InitialInterval time.Duration `json:"initialInterval"`
	MaxInterval     time.Duration `json:"maxInterval"`
}

func DefaultConfig() Config {
	return Config{
		InitialInterval: time.Minute,
		MaxInterval:     time.Hour,
	}
}

// Next 计算第 attempt 次重试的执行时间，attempt 从 1 开始
func Next(now time.Time, attempt int, cfg Config, rng *rand.Rand) time.Time {
	if attempt < 1 {
		attempt = 1
	}
	if cfg.InitialInterval <= 0 {
		cfg.InitialInterval = time.Minute
	}
	if cfg.MaxInterval <= 0 {
		cfg.MaxInterval = time.Hour
	}

	// initial * 2^(attempt-1)，位移前先和封顶倍数比较，避免溢出成负数
	delay := cfg.MaxInterval
	if shift := attempt - 1; shift < 63 {
		if ratio := int64(cfg.MaxInterval / cfg.InitialInterval); int64(1)<<shift <= ratio {
			delay = cfg.InitialInterval << shift
		}
	}

	// 满量抖动：在 (0, delay] 内取随机值
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	jittered := time.Duration(rng.Int63n(int64(delay))) + 1

	return now.Add(jittered)
}
