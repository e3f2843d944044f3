package health

import "sync"

// Subsystem 子系统标识，健康检查按子系统粒度上报
type Subsystem string

const (
	SubsystemEksternVarsling Subsystem = "EKSTERN_VARSLING"
	SubsystemAutoslett       Subsystem = "AUTOSLETT"
)

var (
	mu    sync.RWMutex
	alive = map[Subsystem]bool{
		SubsystemEksternVarsling: true,
		SubsystemAutoslett:       true,
	}
)

// MarkDead 标记子系统不健康。只有重启能恢复：
// 不健康意味着需要人工介入排查，自动恢复会掩盖问题
func MarkDead(sub Subsystem) {
	mu.Lock()
	defer mu.Unlock()
	alive[sub] = false
}

func Alive() bool {
	mu.RLock()
	defer mu.RUnlock()
	for _, ok := range alive {
		if !ok {
			return false
		}
	}
	return true
}

func Snapshot() map[Subsystem]bool {
	mu.RLock()
	defer mu.RUnlock()
	snapshot := make(map[Subsystem]bool, len(alive))
	for sub, ok := range alive {
		snapshot[sub] = ok
	}
	return snapshot
}

// Reset 测试用
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	for sub := range alive {
		alive[sub] = true
	}
}
