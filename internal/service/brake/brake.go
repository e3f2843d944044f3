package brake

import (
	"context"
	"fmt"

	"github.com/gotomicro/ego/core/elog"

	"gitee.com/flycash/varsling-platform/internal/pkg/health"
	"gitee.com/flycash/varsling-platform/internal/repository"
)

//go:generate mockgen -source=./brake.go -destination=./mocks/brake.mock.go -package=brakemocks -typed Service

// Service 紧急刹车。开启后停止一切出站发送，投递任务原地等待。
// 开关状态落库，集群内所有实例共享
type Service interface {
	// Stopped 每次都读库，见 repository.BrakeRepository 的说明
	Stopped(ctx context.Context) (bool, error)
	TurnOn(ctx context.Context, reason string) error
	TurnOff(ctx context.Context) error
	// DetectEmptyDatabase 启动时调用。事件流是唯一的数据来源，
	// 一条 varsel 都没有说明投影丢了或者连错了库，此时贸然发送
	// 会把历史事件当成新通知重发一遍，必须先刹停
	DetectEmptyDatabase(ctx context.Context) error
}

type service struct {
	repo   repository.VarslingRepository
	brakes repository.BrakeRepository
	logger *elog.Component
}

func NewService(repo repository.VarslingRepository, brakes repository.BrakeRepository) Service {
	return &service{
		repo:   repo,
		brakes: brakes,
		logger: elog.DefaultLogger,
	}
}

func (s *service) Stopped(ctx context.Context) (bool, error) {
	return s.brakes.Stopped(ctx)
}

func (s *service) TurnOn(ctx context.Context, reason string) error {
	s.logger.Warn("开启紧急刹车", elog.String("reason", reason))
	return s.brakes.TurnOn(ctx, reason)
}

func (s *service) TurnOff(ctx context.Context) error {
	s.logger.Info("关闭紧急刹车")
	return s.brakes.TurnOff(ctx)
}

func (s *service) DetectEmptyDatabase(ctx context.Context) error {
	cnt, err := s.repo.CountVarsler(ctx)
	if err != nil {
		return fmt.Errorf("检测数据库状态失败: %w", err)
	}
	if cnt > 0 {
		return nil
	}
	const reason = "数据库为空，疑似投影数据丢失"
	s.logger.Error("数据库里没有任何 varsel，自动开启紧急刹车",
		elog.String("reason", reason))
	health.MarkDead(health.SubsystemEksternVarsling)
	return s.brakes.TurnOn(ctx, reason)
}
