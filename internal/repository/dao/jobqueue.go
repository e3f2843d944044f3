package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"gitee.com/flycash/varsling-platform/internal/errs"
)

const (
	jobStateNew        = "NEW"
	jobStateInProgress = "IN_PROGRESS"
	jobStateWaiting    = "WAITING"
)

// JobQueueEntry 投递任务队列表，一条待投递的外部通知对应一行。
// 终态任务直接删除行，队列里只有未完成的任务
type JobQueueEntry struct {
	VarselID    string `gorm:"primaryKey;type:CHAR(36);comment:'外部通知ID'"`
	State       string `gorm:"type:ENUM('NEW','IN_PROGRESS','WAITING');NOT NULL;DEFAULT:'NEW';index:idx_state_resume,priority:1;comment:'任务状态'"`
	LockedUntil *int64 `gorm:"comment:'锁过期时间，毫秒'"`
	ResumeAt    *int64 `gorm:"index:idx_state_resume,priority:2;comment:'WAITING 任务的恢复时间，毫秒'"`
	Attempts    int    `gorm:"type:INT;NOT NULL;DEFAULT:0;comment:'已领取次数'"`
	Version     int    `gorm:"type:INT;NOT NULL;DEFAULT:1;comment:'版本号，用于CAS操作'"`
	Ctime       int64
	Utime       int64
}

func (JobQueueEntry) TableName() string {
	return "job_queue"
}

type JobQueueDAO interface {
	// Enqueue 插入 NEW 任务，幂等：已存在时不做任何事
	Enqueue(ctx context.Context, varselID string) error
	// ClaimNext 原子领取一个可执行的任务并锁定。
	// 没有可领取的任务时返回 errs.ErrNoJobAvailable
	ClaimNext(ctx context.Context, lockTimeout time.Duration) (JobQueueEntry, error)
	// Complete 移除任务，终态结果使用
	Complete(ctx context.Context, varselID string) error
	// Reschedule 把 IN_PROGRESS 任务转为 WAITING，到 resumeAt 后可再次领取
	Reschedule(ctx context.Context, varselID string, resumeAt time.Time) error
	// ReleaseTimedOutLocks 把锁已过期的 IN_PROGRESS 任务重置为 NEW，
	// 返回回收的任务数。崩溃的 worker 靠这个恢复
	ReleaseTimedOutLocks(ctx context.Context) (int64, error)
	// Delete 所属通知被硬删除时移除任务
	Delete(ctx context.Context, varselID string) error

	JobQueueCount(ctx context.Context) (int64, error)
	WaitQueueCount(ctx context.Context) (int64, error)
}

type jobQueueDAO struct {
	db *egorm.Component
}

func NewJobQueueDAO(db *egorm.Component) JobQueueDAO {
	return &jobQueueDAO{db: db}
}

func (d *jobQueueDAO) Enqueue(ctx context.Context, varselID string) error {
	now := time.Now().UnixMilli()
	entry := JobQueueEntry{
		VarselID: varselID,
		State:    jobStateNew,
		Version:  1,
		Ctime:    now,
		Utime:    now,
	}
	err := d.db.WithContext(ctx).Create(&entry).Error
	if err != nil {
		if isUniqueConstraintError(err) {
			// 事件重投递导致的重复入队
			return nil
		}
		return err
	}
	return nil
}

func (d *jobQueueDAO) ClaimNext(ctx context.Context, lockTimeout time.Duration) (JobQueueEntry, error) {
	// 先选候选再做条件更新。版本号不匹配说明别的 worker 抢先了，
	// 换下一个候选继续，有限次失败后当作队列为空
	const maxAttempts = 3
	for i := 0; i < maxAttempts; i++ {
		now := time.Now().UnixMilli()
		var entry JobQueueEntry
		err := d.db.WithContext(ctx).
			Where("state = ?"+
				" OR (state = ? AND resume_at <= ?)"+
				" OR (state = ? AND locked_until <= ?)",
				jobStateNew,
				jobStateWaiting, now,
				jobStateInProgress, now).
			Order("utime").
			First(&entry).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return JobQueueEntry{}, fmt.Errorf("%w", errs.ErrNoJobAvailable)
			}
			return JobQueueEntry{}, err
		}

		lockedUntil := now + lockTimeout.Milliseconds()
		res := d.db.WithContext(ctx).Model(&JobQueueEntry{}).
			Where("varsel_id = ? AND version = ?", entry.VarselID, entry.Version).
			Updates(map[string]any{
				"state":        jobStateInProgress,
				"locked_until": lockedUntil,
				"resume_at":    nil,
				"attempts":     gorm.Expr("attempts + 1"),
				"version":      gorm.Expr("version + 1"),
				"utime":        now,
			})
		if res.Error != nil {
			return JobQueueEntry{}, res.Error
		}
		if res.RowsAffected == 1 {
			entry.State = jobStateInProgress
			entry.LockedUntil = &lockedUntil
			entry.ResumeAt = nil
			entry.Attempts++
			entry.Version++
			entry.Utime = now
			return entry, nil
		}
	}
	return JobQueueEntry{}, fmt.Errorf("%w", errs.ErrNoJobAvailable)
}

func (d *jobQueueDAO) Complete(ctx context.Context, varselID string) error {
	return d.db.WithContext(ctx).
		Where("varsel_id = ?", varselID).
		Delete(&JobQueueEntry{}).Error
}

func (d *jobQueueDAO) Reschedule(ctx context.Context, varselID string, resumeAt time.Time) error {
	now := time.Now().UnixMilli()
	res := d.db.WithContext(ctx).Model(&JobQueueEntry{}).
		Where("varsel_id = ? AND state = ?", varselID, jobStateInProgress).
		Updates(map[string]any{
			"state":        jobStateWaiting,
			"locked_until": nil,
			"resume_at":    resumeAt.UnixMilli(),
			"version":      gorm.Expr("version + 1"),
			"utime":        now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected < 1 {
		return fmt.Errorf("%w: varselId=%s", errs.ErrJobNotInProgress, varselID)
	}
	return nil
}

func (d *jobQueueDAO) ReleaseTimedOutLocks(ctx context.Context) (int64, error) {
	now := time.Now().UnixMilli()
	res := d.db.WithContext(ctx).Model(&JobQueueEntry{}).
		Where("state = ? AND locked_until <= ?", jobStateInProgress, now).
		Updates(map[string]any{
			"state":        jobStateNew,
			"locked_until": nil,
			"version":      gorm.Expr("version + 1"),
			"utime":        now,
		})
	return res.RowsAffected, res.Error
}

func (d *jobQueueDAO) Delete(ctx context.Context, varselID string) error {
	return d.db.WithContext(ctx).
		Where("varsel_id = ?", varselID).
		Delete(&JobQueueEntry{}).Error
}

func (d *jobQueueDAO) JobQueueCount(ctx context.Context) (int64, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&JobQueueEntry{}).Count(&cnt).Error
	return cnt, err
}

func (d *jobQueueDAO) WaitQueueCount(ctx context.Context) (int64, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&JobQueueEntry{}).
		Where("state = ?", jobStateWaiting).
		Count(&cnt).Error
	return cnt, err
}

// isUniqueConstraintError 检查是否是唯一索引冲突错误
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	me := new(mysql.MySQLError)
	if ok := errors.As(err, &me); ok {
		const uniqueIndexErrNo uint16 = 1062
		return me.Number == uniqueIndexErrNo
	}
	return false
}
