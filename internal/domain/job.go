package domain

import (
	"time"

	"github.com/gofrs/uuid"
)

// JobState 任务队列状态机
// 终态（发送结果确认）的任务直接从队列中删除，不设 DONE 状态
type JobState string

const (
	JobStateNew        JobState = "NEW"
	JobStateInProgress JobState = "IN_PROGRESS"
	JobStateWaiting    JobState = "WAITING"
)

func (s JobState) String() string {
	return string(s)
}

// JobQueueEntry 每条待投递的外部通知对应一条队列记录
type JobQueueEntry struct {
	VarselID    uuid.UUID
	State       JobState
	LockedUntil *time.Time // IN_PROGRESS 时的锁过期时间
	ResumeAt    *time.Time // WAITING 时的恢复时间
	Attempts    int        // 已领取次数，退避计算使用
	Version     int        // CAS 版本号
}
