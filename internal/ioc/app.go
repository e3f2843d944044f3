package ioc

import (
	"context"
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/gotomicro/ego/task/ecron"

	"gitee.com/flycash/varsling-platform/internal/pkg/idempotent"
	"gitee.com/flycash/varsling-platform/internal/repository"
	"gitee.com/flycash/varsling-platform/internal/repository/dao"
	"gitee.com/flycash/varsling-platform/internal/service/brake"
	eksportsvc "gitee.com/flycash/varsling-platform/internal/service/eksport"
	"gitee.com/flycash/varsling-platform/internal/service/gateway"
	gatewaymetrics "gitee.com/flycash/varsling-platform/internal/service/gateway/metrics"
	gatewaytracing "gitee.com/flycash/varsling-platform/internal/service/gateway/tracing"
	"gitee.com/flycash/varsling-platform/internal/service/harddelete"
	"gitee.com/flycash/varsling-platform/internal/service/projector"
	"gitee.com/flycash/varsling-platform/internal/service/worker"
)

type App struct {
	WebServer *egin.Component
	Tasks     []Task
	Crons     []ecron.Ecron

	BrakeSvc brake.Service
}

func (a *App) StartTasks(ctx context.Context) {
	for _, t := range a.Tasks {
		t.Start(ctx)
	}
}

func InitApp() *App {
	db := InitDB()
	rdb := InitRedisClient()
	dclient := InitDistributedLock(rdb)
	q := InitMQ()

	repo := repository.NewVarslingRepository(
		dao.NewEksternVarselDAO(db),
		dao.NewJobQueueDAO(db),
		dao.NewAllowListDAO(db),
	)
	brakeRepo := repository.NewBrakeRepository(dao.NewEmergencyBrakeDAO(db))
	hardDeleteRepo := repository.NewHardDeleteRepository(dao.NewSkedulertHardDeleteDAO(db))

	brakeSvc := brake.NewService(repo, brakeRepo)
	klient := initGatewayKlient()
	hendelseProducer := InitHendelseProducer(q)
	eksportProducer := InitEksportProducer(q)

	const (
		bloomFilter    = "varsling:hendelser"
		bloomCapacity  = 10_000_000
		bloomErrorRate = 0.001
	)
	idem := idempotent.NewBloomService(rdb, bloomFilter, bloomCapacity, bloomErrorRate)

	w := worker.NewWorker(repo, brakeSvc, klient, hendelseProducer)
	sweeper := worker.NewLockSweeper(repo, dclient)
	proj := projector.NewProjector(repo, hardDeleteRepo)
	eksportoer := eksportsvc.NewEksportoer(repo, eksportProducer)
	autoslett := harddelete.NewAutoslett(hardDeleteRepo, hendelseProducer, brakeSvc)

	return &App{
		WebServer: InitWebServer(repo, brakeSvc),
		Tasks: InitTasks(
			w,
			sweeper,
			InitProjectorConsumer(proj, idem),
			InitEksportConsumer(eksportoer, idem),
		),
		Crons:    Crons(autoslett),
		BrakeSvc: brakeSvc,
	}
}

func initGatewayKlient() gateway.Klient {
	type Config struct {
		BaseURL string        `yaml:"baseURL"`
		APIKey  string        `yaml:"apiKey"`
		Timeout time.Duration `yaml:"timeout"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("altinn", &cfg); err != nil {
		panic(err)
	}
	klient := gateway.NewAltinnKlient(cfg.BaseURL, cfg.APIKey, cfg.Timeout)
	return gatewaytracing.NewKlient(gatewaymetrics.NewKlient(klient))
}
