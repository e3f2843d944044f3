package harddelete

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/gotomicro/ego/core/elog"

	"gitee.com/flycash/varsling-platform/internal/domain"
	"gitee.com/flycash/varsling-platform/internal/event/hendelse"
	"gitee.com/flycash/varsling-platform/internal/pkg/health"
	"gitee.com/flycash/varsling-platform/internal/repository"
	"gitee.com/flycash/varsling-platform/internal/service/brake"
)

const (
	defaultBatchSize = 100
	kildeAppNavn     = "varsling-platform"
)

// Autoslett 自动硬删除。扫描到期的删除排期，
// 发出 HardDelete 事件让所有订阅方（包括本服务的投影）清除状态
type Autoslett struct {
	repo      repository.HardDeleteRepository
	producer  hendelse.Producer
	brakes    brake.Service
	batchSize int
	logger    *elog.Component
}

func NewAutoslett(
	repo repository.HardDeleteRepository,
	producer hendelse.Producer,
	brakes brake.Service,
) *Autoslett {
	return &Autoslett{
		repo:      repo,
		producer:  producer,
		brakes:    brakes,
		batchSize: defaultBatchSize,
		logger:    elog.DefaultLogger,
	}
}

// Do 处理一批到期的排期，ecron 定时调用
func (a *Autoslett) Do(ctx context.Context) error {
	for {
		now := time.Now()
		entries, err := a.repo.HentDue(ctx, now, a.batchSize)
		if err != nil {
			return fmt.Errorf("查询到期的删除排期失败: %w", err)
		}
		for _, entry := range entries {
			if err := a.slett(ctx, entry, now); err != nil {
				return err
			}
		}
		if len(entries) < a.batchSize {
			return nil
		}
	}
}

func (a *Autoslett) slett(ctx context.Context, entry domain.SkedulertHardDelete, now time.Time) error {
	// 查询条件就是“不晚于 now”，返回了未来的排期说明
	// 存储里的数据或查询本身出了问题。出问题时继续删下去
	// 可能把不该删的聚合删掉，这种错误无法挽回，必须刹停等人工排查
	if entry.BeregnetSlettetidspunkt.After(now) {
		a.logger.Error("删除排期的时刻在未来，停止自动删除",
			elog.String("aggregateId", entry.AggregateID.String()),
			elog.Any("slettetidspunkt", entry.BeregnetSlettetidspunkt))
		health.MarkDead(health.SubsystemAutoslett)
		if err := a.brakes.TurnOn(ctx, "自动删除读到了未来的排期"); err != nil {
			a.logger.Error("开启紧急刹车失败", elog.FieldErr(err))
		}
		return fmt.Errorf("删除排期的时刻在未来: aggregateId=%s", entry.AggregateID)
	}

	evt := &hendelse.HardDelete{
		HendelseID:        a.newHendelseID(),
		AggregatID:        entry.AggregateID,
		Virksomhetsnummer: entry.Virksomhetsnummer,
		ProdusentID:       entry.ProdusentID,
		KildeAppNavn:      kildeAppNavn,
		DeletedAt:         now,
	}
	// 案件要带上分组信息，投影侧靠它级联删除其下的通知
	if entry.AggregateType == domain.AggregateTypeSak {
		evt.Merkelapp = entry.Merkelapp
		evt.GrupperingsID = entry.Grupperingsid
	}
	if err := a.producer.Produce(ctx, evt); err != nil {
		return fmt.Errorf("发出 HardDelete 事件失败: %w", err)
	}

	// 事件已经发出去了，这里删排期只是避免下一轮重复发。
	// 删失败也没关系，HardDelete 的投影是幂等的
	if err := a.repo.Fjern(ctx, entry.AggregateID); err != nil {
		a.logger.Warn("清除删除排期失败",
			elog.String("aggregateId", entry.AggregateID.String()),
			elog.FieldErr(err))
	}
	return nil
}

func (a *Autoslett) newHendelseID() uuid.UUID {
	id, err := uuid.NewV4()
	if err != nil {
		a.logger.Panic("生成 hendelseId 失败", elog.FieldErr(err))
	}
	return id
}
