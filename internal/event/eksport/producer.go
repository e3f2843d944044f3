package eksport

import (
	"context"
	"encoding/json"
	"fmt"

	mq "github.com/ecodeclub/mq-api"

	"gitee.com/flycash/varsling-platform/internal/domain"
	"gitee.com/flycash/varsling-platform/internal/event/hendelse"
)

//go:generate mockgen -source=./producer.go -package=evtmocks -destination=../mocks/eksport_producer.mock.go -mock_names=Producer=MockEksportProducer -typed Producer
type Producer interface {
	Produce(ctx context.Context, dto domain.VarslingStatusDto) error
}

type producer struct {
	producer mq.Producer
}

func NewProducer(p mq.Producer) Producer {
	return &producer{producer: p}
}

func (p *producer) Produce(ctx context.Context, dto domain.VarslingStatusDto) error {
	data, err := json.Marshal(dto)
	if err != nil {
		return fmt.Errorf("序列化导出记录失败: %w", err)
	}
	_, err = p.producer.Produce(ctx, &mq.Message{
		Key:   []byte(dto.VarselID.String()),
		Topic: hendelse.TopicVarslingStatus,
		Value: data,
	})
	if err != nil {
		return fmt.Errorf("写入导出流失败: %w", err)
	}
	return nil
}
