package hendelse

import (
	"context"
	"fmt"

	mq "github.com/ecodeclub/mq-api"
)

//go:generate mockgen -source=./producer.go -package=evtmocks -destination=../mocks/hendelse_producer.mock.go -typed Producer
type Producer interface {
	// Produce 把事件写回事件日志，key 取聚合 ID 保证分区内有序
	Produce(ctx context.Context, h Hendelse) error
}

type producer struct {
	producer mq.Producer
}

func NewProducer(p mq.Producer) Producer {
	return &producer{producer: p}
}

func (p *producer) Produce(ctx context.Context, h Hendelse) error {
	data, err := Marshal(h)
	if err != nil {
		return err
	}
	_, err = p.producer.Produce(ctx, &mq.Message{
		Key:   []byte(h.AggregateID().String()),
		Topic: TopicNotifikasjon,
		Value: data,
	})
	if err != nil {
		return fmt.Errorf("写入事件日志失败: %w", err)
	}
	return nil
}
