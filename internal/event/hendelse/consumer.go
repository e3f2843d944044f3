package hendelse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/gotomicro/ego/core/elog"

	"gitee.com/flycash/varsling-platform/internal/errs"
	"gitee.com/flycash/varsling-platform/internal/pkg/idempotent"
	"gitee.com/flycash/varsling-platform/internal/pkg/mqx"
)

const defaultReadTimeout = time.Second

// Handler 事件流的消费侧业务：投影服务和导出服务各自实现一份
type Handler interface {
	Handle(ctx context.Context, h Hendelse, meta Metadata) error
}

// Consumer 从事件日志读出领域事件并交给 Handler。
// 事件日志是 at-least-once 投递，这里用幂等服务挡掉重复事件，
// 挡不住的（如布隆误差之外的重投）由各 Handler 的 keyed upsert 兜底
type Consumer struct {
	handler    Handler
	consumer   mqx.Consumer
	idempotent idempotent.IdempotencyService
	group      string
	logger     *elog.Component
}

func NewConsumer(
	handler Handler,
	consumer *kafka.Consumer,
	idem idempotent.IdempotencyService,
	group string,
) (*Consumer, error) {
	err := consumer.SubscribeTopics([]string{TopicNotifikasjon}, nil)
	if err != nil {
		return nil, err
	}
	return &Consumer{
		handler:    handler,
		consumer:   consumer,
		idempotent: idem,
		group:      group,
		logger:     elog.DefaultLogger.With(elog.String("group", group)),
	}, nil
}

func (c *Consumer) Start(ctx context.Context) {
	go func() {
		for {
			if ctx.Err() != nil {
				c.logger.Info("事件消费循环退出")
				return
			}
			if err := c.Consume(ctx); err != nil {
				c.logger.Error("消费领域事件失败", elog.FieldErr(err))
			}
		}
	}()
}

// Consume 处理一条事件。处理成功才提交消费进度，
// 处理失败不提交，靠事件日志重投递重试
func (c *Consumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.ReadMessage(defaultReadTimeout)
	if err != nil {
		var kErr kafka.Error
		if errors.As(err, &kErr) && kErr.Code() == kafka.ErrTimedOut {
			return nil
		}
		return fmt.Errorf("获取消息失败: %w", err)
	}

	h, err := Unmarshal(msg.Value)
	if err != nil {
		if errors.Is(err, errs.ErrUnknownHendelsetype) {
			// 未知类型是正确性风险，不能静默跳过
			return err
		}
		// 解析失败的消息重试也不会成功，记日志后提交跳过
		c.logger.Warn("解析事件失败，跳过",
			elog.FieldErr(err),
			elog.Any("offset", msg.TopicPartition.Offset))
		_, cmErr := c.consumer.CommitMessage(msg)
		return cmErr
	}

	meta := Metadata{Timestamp: msg.Timestamp}

	// 先只读检查，处理成功后才落已见标记。
	// 提前落标记的话，处理失败后重投递的事件会被判成重复而丢掉
	seen, err := c.seenBefore(ctx, h)
	if err != nil {
		return err
	}
	if !seen {
		if err := c.handler.Handle(ctx, h, meta); err != nil {
			return fmt.Errorf("处理事件失败: %w", err)
		}
		c.markSeen(ctx, h)
	}

	if _, err := c.consumer.CommitMessage(msg); err != nil {
		return fmt.Errorf("提交消费进度失败: %w", err)
	}
	return nil
}

func (c *Consumer) seenBefore(ctx context.Context, h Hendelse) (bool, error) {
	seen, err := c.idempotent.Check(ctx, c.dedupKey(h))
	if err != nil {
		// 幂等服务不可用时宁可重复处理，Handler 自身是幂等的
		c.logger.Warn("幂等检测失败，按未见过处理", elog.FieldErr(err))
		return false, nil
	}
	return seen, nil
}

func (c *Consumer) markSeen(ctx context.Context, h Hendelse) {
	// 标记失败只会让事件重投递时多处理一次，不影响正确性
	if _, err := c.idempotent.Exists(ctx, c.dedupKey(h)); err != nil {
		c.logger.Warn("记录已见事件失败", elog.FieldErr(err))
	}
}

func (c *Consumer) dedupKey(h Hendelse) string {
	return fmt.Sprintf("%s:%s", c.group, hendelseID(h))
}

func hendelseID(h Hendelse) string {
	switch e := h.(type) {
	case *BeskjedOpprettet:
		return e.HendelseID.String()
	case *OppgaveOpprettet:
		return e.HendelseID.String()
	case *EksterntVarselVellykket:
		return e.HendelseID.String()
	case *EksterntVarselFeilet:
		return e.HendelseID.String()
	case *HardDelete:
		return e.HendelseID.String()
	case *SoftDelete:
		return e.HendelseID.String()
	default:
		return h.AggregateID().String()
	}
}
