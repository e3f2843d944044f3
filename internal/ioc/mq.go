package ioc

import (
	"strings"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	mqapi "github.com/ecodeclub/mq-api"
	kafkamq "github.com/ecodeclub/mq-api/kafka"
	"github.com/gotomicro/ego/core/econf"

	"gitee.com/flycash/varsling-platform/internal/event/eksport"
	"gitee.com/flycash/varsling-platform/internal/event/hendelse"
	"gitee.com/flycash/varsling-platform/internal/pkg/idempotent"
	eksportsvc "gitee.com/flycash/varsling-platform/internal/service/eksport"
	"gitee.com/flycash/varsling-platform/internal/service/projector"
)

func InitMQ() mqapi.MQ {
	type Config struct {
		Network   string   `yaml:"network"`
		Addresses []string `yaml:"addresses"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("kafka", &cfg); err != nil {
		panic(err)
	}
	q, err := kafkamq.NewMQ(cfg.Network, cfg.Addresses)
	if err != nil {
		panic(err)
	}
	return q
}

func InitHendelseProducer(q mqapi.MQ) hendelse.Producer {
	p, err := q.Producer(hendelse.TopicNotifikasjon)
	if err != nil {
		panic(err)
	}
	return hendelse.NewProducer(p)
}

func InitEksportProducer(q mqapi.MQ) eksport.Producer {
	p, err := q.Producer(hendelse.TopicVarslingStatus)
	if err != nil {
		panic(err)
	}
	return eksport.NewProducer(p)
}

func newKafkaConsumer(group string) *kafka.Consumer {
	consumer, err := kafka.NewConsumer(kafkaConsumerConfig(group))
	if err != nil {
		panic(err)
	}
	return consumer
}

func kafkaConsumerConfig(group string) *kafka.ConfigMap {
	type Config struct {
		Addresses []string `yaml:"addresses"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("kafka_consumer", &cfg); err != nil {
		panic(err)
	}
	return &kafka.ConfigMap{
		"bootstrap.servers":  strings.Join(cfg.Addresses, ","),
		"group.id":           group,
		"auto.offset.reset":  "earliest",
		"enable.auto.commit": "false",
	}
}

func InitProjectorConsumer(p *projector.Projector, idem idempotent.IdempotencyService) *hendelse.Consumer {
	const group = "varsling-projector"
	c, err := hendelse.NewConsumer(p, newKafkaConsumer(group), idem, group)
	if err != nil {
		panic(err)
	}
	return c
}

func InitEksportConsumer(e *eksportsvc.Eksportoer, idem idempotent.IdempotencyService) *hendelse.Consumer {
	const group = "varsling-eksport"
	c, err := hendelse.NewConsumer(e, newKafkaConsumer(group), idem, group)
	if err != nil {
		panic(err)
	}
	return c
}
