//go:build e2e

package dao_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"gitee.com/flycash/varsling-platform/internal/errs"
	"gitee.com/flycash/varsling-platform/internal/repository/dao"
	testioc "gitee.com/flycash/varsling-platform/internal/test/ioc"
)

func TestJobQueueDAOSuite(t *testing.T) {
	suite.Run(t, new(JobQueueDAOTestSuite))
}

type JobQueueDAOTestSuite struct {
	suite.Suite
	db  *gorm.DB
	dao dao.JobQueueDAO
}

func (s *JobQueueDAOTestSuite) SetupSuite() {
	s.db = testioc.InitDBAndTables()
	s.dao = dao.NewJobQueueDAO(s.db)
}

func (s *JobQueueDAOTestSuite) TearDownTest() {
	// 每个测试后清空表数据
	s.db.Exec("TRUNCATE TABLE `job_queue`")
}

func (s *JobQueueDAOTestSuite) TestEnqueue() {
	t := s.T()
	ctx := context.Background()

	err := s.dao.Enqueue(ctx, "3fa9b407-1577-4a02-b83a-0b31b1f3f501")
	assert.NoError(t, err)

	var entry dao.JobQueueEntry
	err = s.db.First(&entry, "varsel_id = ?", "3fa9b407-1577-4a02-b83a-0b31b1f3f501").Error
	assert.NoError(t, err)
	assert.Equal(t, dao.JobStateNew, entry.State)
	assert.Equal(t, 1, entry.Version)
	assert.Equal(t, 0, entry.Attempts)
	assert.Nil(t, entry.LockedUntil)
	assert.Nil(t, entry.ResumeAt)
	assert.NotZero(t, entry.Ctime)
}

func (s *JobQueueDAOTestSuite) TestEnqueueIdempotent() {
	t := s.T()
	ctx := context.Background()
	varselID := "3fa9b407-1577-4a02-b83a-0b31b1f3f502"

	err := s.dao.Enqueue(ctx, varselID)
	assert.NoError(t, err)

	// 领取之后再次入队不能把任务重置回 NEW
	_, err = s.dao.ClaimNext(ctx, time.Minute)
	assert.NoError(t, err)

	err = s.dao.Enqueue(ctx, varselID)
	assert.NoError(t, err)

	var entry dao.JobQueueEntry
	err = s.db.First(&entry, "varsel_id = ?", varselID).Error
	assert.NoError(t, err)
	assert.Equal(t, dao.JobStateInProgress, entry.State)

	cnt, err := s.dao.JobQueueCount(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), cnt)
}

func (s *JobQueueDAOTestSuite) TestClaimNext() {
	t := s.T()
	ctx := context.Background()
	varselID := "3fa9b407-1577-4a02-b83a-0b31b1f3f503"

	err := s.dao.Enqueue(ctx, varselID)
	assert.NoError(t, err)

	before := time.Now().UnixMilli()
	entry, err := s.dao.ClaimNext(ctx, 5*time.Minute)
	assert.NoError(t, err)
	assert.Equal(t, varselID, entry.VarselID)
	assert.Equal(t, dao.JobStateInProgress, entry.State)
	assert.Equal(t, 1, entry.Attempts)
	assert.Equal(t, 2, entry.Version)
	assert.NotNil(t, entry.LockedUntil)
	assert.GreaterOrEqual(t, *entry.LockedUntil, before+(5*time.Minute).Milliseconds())

	// 锁没过期时同一个任务不能被再次领取
	_, err = s.dao.ClaimNext(ctx, 5*time.Minute)
	assert.ErrorIs(t, err, errs.ErrNoJobAvailable)
}

func (s *JobQueueDAOTestSuite) TestClaimNextEmptyQueue() {
	t := s.T()
	_, err := s.dao.ClaimNext(context.Background(), time.Minute)
	assert.ErrorIs(t, err, errs.ErrNoJobAvailable)
}

func (s *JobQueueDAOTestSuite) TestClaimNextReclaimsExpiredLock() {
	t := s.T()
	ctx := context.Background()
	varselID := "3fa9b407-1577-4a02-b83a-0b31b1f3f504"

	err := s.dao.Enqueue(ctx, varselID)
	assert.NoError(t, err)
	first, err := s.dao.ClaimNext(ctx, time.Minute)
	assert.NoError(t, err)

	// 模拟 worker 崩溃：把锁改成已过期
	expired := time.Now().Add(-time.Second).UnixMilli()
	err = s.db.Model(&dao.JobQueueEntry{}).
		Where("varsel_id = ?", varselID).
		Update("locked_until", expired).Error
	assert.NoError(t, err)

	second, err := s.dao.ClaimNext(ctx, time.Minute)
	assert.NoError(t, err)
	assert.Equal(t, varselID, second.VarselID)
	assert.Equal(t, first.Attempts+1, second.Attempts)
	assert.Greater(t, second.Version, first.Version)
}

func (s *JobQueueDAOTestSuite) TestReschedule() {
	t := s.T()
	ctx := context.Background()
	varselID := "3fa9b407-1577-4a02-b83a-0b31b1f3f505"

	err := s.dao.Enqueue(ctx, varselID)
	assert.NoError(t, err)
	_, err = s.dao.ClaimNext(ctx, time.Minute)
	assert.NoError(t, err)

	resumeAt := time.Now().Add(time.Hour)
	err = s.dao.Reschedule(ctx, varselID, resumeAt)
	assert.NoError(t, err)

	var entry dao.JobQueueEntry
	err = s.db.First(&entry, "varsel_id = ?", varselID).Error
	assert.NoError(t, err)
	assert.Equal(t, dao.JobStateWaiting, entry.State)
	assert.Nil(t, entry.LockedUntil)
	assert.NotNil(t, entry.ResumeAt)
	assert.Equal(t, resumeAt.UnixMilli(), *entry.ResumeAt)

	// 恢复时间没到，不可领取
	_, err = s.dao.ClaimNext(ctx, time.Minute)
	assert.ErrorIs(t, err, errs.ErrNoJobAvailable)

	waiting, err := s.dao.WaitQueueCount(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), waiting)
}

func (s *JobQueueDAOTestSuite) TestRescheduleNotInProgress() {
	t := s.T()
	ctx := context.Background()
	varselID := "3fa9b407-1577-4a02-b83a-0b31b1f3f506"

	err := s.dao.Enqueue(ctx, varselID)
	assert.NoError(t, err)

	err = s.dao.Reschedule(ctx, varselID, time.Now())
	assert.ErrorIs(t, err, errs.ErrJobNotInProgress)
}

func (s *JobQueueDAOTestSuite) TestWaitingJobClaimableAfterResumeAt() {
	t := s.T()
	ctx := context.Background()
	varselID := "3fa9b407-1577-4a02-b83a-0b31b1f3f507"

	err := s.dao.Enqueue(ctx, varselID)
	assert.NoError(t, err)
	_, err = s.dao.ClaimNext(ctx, time.Minute)
	assert.NoError(t, err)
	err = s.dao.Reschedule(ctx, varselID, time.Now().Add(-time.Second))
	assert.NoError(t, err)

	entry, err := s.dao.ClaimNext(ctx, time.Minute)
	assert.NoError(t, err)
	assert.Equal(t, varselID, entry.VarselID)
	assert.Equal(t, 2, entry.Attempts)
}

func (s *JobQueueDAOTestSuite) TestComplete() {
	t := s.T()
	ctx := context.Background()
	varselID := "3fa9b407-1577-4a02-b83a-0b31b1f3f508"

	err := s.dao.Enqueue(ctx, varselID)
	assert.NoError(t, err)
	_, err = s.dao.ClaimNext(ctx, time.Minute)
	assert.NoError(t, err)

	err = s.dao.Complete(ctx, varselID)
	assert.NoError(t, err)

	var entry dao.JobQueueEntry
	err = s.db.First(&entry, "varsel_id = ?", varselID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func (s *JobQueueDAOTestSuite) TestReleaseTimedOutLocks() {
	t := s.T()
	ctx := context.Background()

	err := s.dao.Enqueue(ctx, "3fa9b407-1577-4a02-b83a-0b31b1f3f509")
	assert.NoError(t, err)
	err = s.dao.Enqueue(ctx, "3fa9b407-1577-4a02-b83a-0b31b1f3f510")
	assert.NoError(t, err)

	_, err = s.dao.ClaimNext(ctx, time.Minute)
	assert.NoError(t, err)
	second, err := s.dao.ClaimNext(ctx, time.Minute)
	assert.NoError(t, err)

	// 只把其中一个锁改成已过期
	expired := time.Now().Add(-time.Second).UnixMilli()
	err = s.db.Model(&dao.JobQueueEntry{}).
		Where("varsel_id = ?", second.VarselID).
		Update("locked_until", expired).Error
	assert.NoError(t, err)

	released, err := s.dao.ReleaseTimedOutLocks(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), released)

	var entry dao.JobQueueEntry
	err = s.db.First(&entry, "varsel_id = ?", second.VarselID).Error
	assert.NoError(t, err)
	assert.Equal(t, dao.JobStateNew, entry.State)
	assert.Nil(t, entry.LockedUntil)
}

func (s *JobQueueDAOTestSuite) TestConcurrentClaim() {
	t := s.T()
	ctx := context.Background()

	jobIDs := []string{
		"3fa9b407-1577-4a02-b83a-0b31b1f3f511",
		"3fa9b407-1577-4a02-b83a-0b31b1f3f512",
		"3fa9b407-1577-4a02-b83a-0b31b1f3f513",
		"3fa9b407-1577-4a02-b83a-0b31b1f3f514",
	}
	for _, id := range jobIDs {
		err := s.dao.Enqueue(ctx, id)
		assert.NoError(t, err)
	}

	const claimers = 8
	var (
		mu      sync.Mutex
		claimed []string
		wg      sync.WaitGroup
	)
	wg.Add(claimers)
	for i := 0; i < claimers; i++ {
		go func() {
			defer wg.Done()
			entry, err := s.dao.ClaimNext(ctx, time.Minute)
			if err != nil {
				assert.ErrorIs(t, err, errs.ErrNoJobAvailable)
				return
			}
			mu.Lock()
			claimed = append(claimed, entry.VarselID)
			mu.Unlock()
		}()
	}
	wg.Wait()

	// 每个任务最多被领取一次
	seen := make(map[string]struct{}, len(claimed))
	for _, id := range claimed {
		_, dup := seen[id]
		assert.False(t, dup, "任务被重复领取: %s", id)
		seen[id] = struct{}{}
	}
	assert.LessOrEqual(t, len(claimed), len(jobIDs))
}
