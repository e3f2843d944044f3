package worker

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	"github.com/gotomicro/ego/core/elog"
	"github.com/meoying/dlock-go"
	"golang.org/x/sync/errgroup"

	"gitee.com/flycash/varsling-platform/internal/domain"
	"gitee.com/flycash/varsling-platform/internal/errs"
	"gitee.com/flycash/varsling-platform/internal/event/hendelse"
	"gitee.com/flycash/varsling-platform/internal/pkg/backoff"
	"gitee.com/flycash/varsling-platform/internal/pkg/loopjob"
	"gitee.com/flycash/varsling-platform/internal/repository"
	"gitee.com/flycash/varsling-platform/internal/service/brake"
	"gitee.com/flycash/varsling-platform/internal/service/gateway"
	"gitee.com/flycash/varsling-platform/internal/service/sendevindu"
)

const (
	defaultConcurrency  = 8
	defaultPollInterval = time.Second
	defaultLockTimeout  = 5 * time.Minute
	// 刹车开启或接收方不在白名单时的重试间隔。
	// 这两种情况要等人工处理，没必要退避
	holdInterval = 5 * time.Minute
	kildeAppNavn = "varsling-platform"
)

// Worker 投递执行器。从任务队列领取任务，依次过刹车、白名单、
// 发送窗口三道闸，然后调网关并按结果推进状态机
type Worker struct {
	repo     repository.VarslingRepository
	brakes   brake.Service
	klient   gateway.Klient
	producer hendelse.Producer

	concurrency  int
	pollInterval time.Duration
	lockTimeout  time.Duration
	backoffCfg   backoff.Config
	// rng 被全部投递循环共享，rand.Rand 不是并发安全的，访问要拿锁
	rngMu sync.Mutex
	rng   *rand.Rand

	logger *elog.Component
}

type Option func(*Worker)

func WithConcurrency(n int) Option {
	return func(w *Worker) {
		w.concurrency = n
	}
}

func WithPollInterval(d time.Duration) Option {
	return func(w *Worker) {
		w.pollInterval = d
	}
}

func WithLockTimeout(d time.Duration) Option {
	return func(w *Worker) {
		w.lockTimeout = d
	}
}

func NewWorker(
	repo repository.VarslingRepository,
	brakes brake.Service,
	klient gateway.Klient,
	producer hendelse.Producer,
	opts ...Option,
) *Worker {
	w := &Worker{
		repo:         repo,
		brakes:       brakes,
		klient:       klient,
		producer:     producer,
		concurrency:  defaultConcurrency,
		pollInterval: defaultPollInterval,
		lockTimeout:  defaultLockTimeout,
		backoffCfg:   backoff.DefaultConfig(),
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:       elog.DefaultLogger,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start 启动投递循环，ctx 被取消时全部 goroutine 退出
func (w *Worker) Start(ctx context.Context) {
	go func() {
		eg, egCtx := errgroup.WithContext(ctx)
		for i := 0; i < w.concurrency; i++ {
			eg.Go(func() error {
				w.loop(egCtx)
				return nil
			})
		}
		_ = eg.Wait()
	}()
}

func (w *Worker) loop(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		job, err := w.repo.ClaimNextJob(ctx, w.lockTimeout)
		if err != nil {
			if !errors.Is(err, errs.ErrNoJobAvailable) {
				w.logger.Error("领取任务失败", elog.FieldErr(err))
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(w.pollInterval):
			}
			continue
		}
		if err := w.ProcessJob(ctx, job); err != nil {
			w.logger.Error("处理任务失败",
				elog.String("varselId", job.VarselID.String()),
				elog.FieldErr(err))
		}
	}
}

// ProcessJob 处理一个已领取的任务。
// 出错时任务保持 IN_PROGRESS，锁过期后由清扫任务回收重试
func (w *Worker) ProcessJob(ctx context.Context, job domain.JobQueueEntry) error {
	now := time.Now()

	varsel, err := w.repo.FindVarsel(ctx, job.VarselID)
	if err != nil {
		if errors.Is(err, errs.ErrVarselNotFound) {
			// 所属通知在任务在队列期间被硬删除了，任务作废
			return w.repo.DeleteJob(ctx, job.VarselID)
		}
		return err
	}
	if varsel.Tilstand == domain.VarselTilstandKvittert {
		// 重复入队的残留任务，结果早已确认
		return w.repo.DeleteJob(ctx, job.VarselID)
	}

	stopped, err := w.brakes.Stopped(ctx)
	if err != nil {
		return err
	}
	if stopped {
		return w.repo.RescheduleJob(ctx, job.VarselID, now.Add(holdInterval))
	}

	allowed, err := w.repo.MottakerPaaAllowList(ctx, varsel.Mottaker())
	if err != nil {
		return err
	}
	if !allowed {
		w.logger.Warn("接收方不在白名单，任务挂起",
			elog.String("varselId", job.VarselID.String()))
		return w.repo.RescheduleJob(ctx, job.VarselID, now.Add(holdInterval))
	}

	res := sendevindu.Beregn(varsel.Sendevindu, varsel.Sendetidspunkt, now)
	if !res.SendNaa {
		return w.repo.RescheduleJob(ctx, job.VarselID, res.ResumeAt)
	}

	resp, err := w.klient.Send(ctx, varsel)
	if err != nil {
		// 传输层故障，退避后重试
		w.logger.Warn("调用网关失败",
			elog.String("varselId", job.VarselID.String()),
			elog.FieldErr(err))
		return w.repo.RescheduleJob(ctx, job.VarselID,
			w.nextBackoff(now, job.Attempts))
	}

	switch gateway.Klassifiser(resp) {
	case gateway.UtfallRetryable:
		return w.repo.RescheduleJob(ctx, job.VarselID,
			w.nextBackoff(now, job.Attempts))
	case gateway.UtfallOK:
		return w.fullfoer(ctx, varsel, resp, now, &hendelse.EksterntVarselVellykket{
			HendelseID:        w.newHendelseID(),
			NotifikasjonID:    varsel.NotifikasjonID,
			VarselID:          varsel.VarselID,
			Virksomhetsnummer: varsel.Virksomhetsnummer,
			ProdusentID:       varsel.ProdusentID,
			KildeAppNavn:      kildeAppNavn,
			RaaRespons:        []byte(resp.Raa),
		})
	default:
		// MANGLER_KOFUVI 和 ANNEN_FEIL 都是终态失败
		return w.fullfoer(ctx, varsel, resp, now, &hendelse.EksterntVarselFeilet{
			HendelseID:        w.newHendelseID(),
			NotifikasjonID:    varsel.NotifikasjonID,
			VarselID:          varsel.VarselID,
			Virksomhetsnummer: varsel.Virksomhetsnummer,
			ProdusentID:       varsel.ProdusentID,
			KildeAppNavn:      kildeAppNavn,
			RaaRespons:        []byte(resp.Raa),
			AltinnFeilkode:    resp.Feilkode,
			Feilmelding:       resp.Feilmelding,
		})
	}
}

// fullfoer 终态统一收尾：先落库再出队再发事件。
// 事件发送失败时任务已出队，varsel 停在 SENDT，
// 结果事件的回流投影不会发生，靠锁清扫之外的人工手段兜底。
// 落库和出队之间崩溃的话，锁过期后任务会被重新领取，
// 此时 varsel 停在 SENDT 不会被短路，会再发一次，
// 整条链路按至少一次投递对待
func (w *Worker) fullfoer(
	ctx context.Context,
	varsel domain.EksternVarsel,
	resp domain.AltinnResponse,
	now time.Time,
	h hendelse.Hendelse,
) error {
	if err := w.repo.MarkSendt(ctx, varsel.VarselID, resp, now); err != nil {
		return err
	}
	if err := w.repo.CompleteJob(ctx, varsel.VarselID); err != nil {
		return err
	}
	return w.producer.Produce(ctx, h)
}

func (w *Worker) nextBackoff(now time.Time, attempts int) time.Time {
	w.rngMu.Lock()
	defer w.rngMu.Unlock()
	return backoff.Next(now, attempts, w.backoffCfg, w.rng)
}

func (w *Worker) newHendelseID() uuid.UUID {
	id, err := uuid.NewV4()
	if err != nil {
		// 随机源耗尽才会失败，实际不会发生
		w.logger.Panic("生成 hendelseId 失败", elog.FieldErr(err))
	}
	return id
}

// LockSweeper 锁清扫任务：把锁过期的 IN_PROGRESS 任务重置回 NEW。
// 集群内通过分布式锁保证同时只有一个副本在扫
type LockSweeper struct {
	repo     repository.VarslingRepository
	dclient  dlock.Client
	interval time.Duration
	logger   *elog.Component
}

func NewLockSweeper(repo repository.VarslingRepository, dclient dlock.Client) *LockSweeper {
	return &LockSweeper{
		repo:     repo,
		dclient:  dclient,
		interval: time.Minute,
		logger:   elog.DefaultLogger,
	}
}

func (s *LockSweeper) Start(ctx context.Context) {
	const key = "varsling_platform_job_lock_sweeper"
	go loopjob.NewInfiniteLoop(s.dclient, s.sweep, key).Run(ctx)
}

func (s *LockSweeper) sweep(ctx context.Context) error {
	released, err := s.repo.ReleaseTimedOutLocks(ctx)
	if err != nil {
		return err
	}
	if released > 0 {
		s.logger.Warn("回收了锁过期的任务", elog.Any("count", released))
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.interval):
		return nil
	}
}
