package domain

import (
	"time"

	"github.com/gofrs/uuid"
)

// AggregateType 可被硬删除的聚合种类
type AggregateType string

const (
	AggregateTypeBeskjed AggregateType = "Beskjed"
	AggregateTypeOppgave AggregateType = "Oppgave"
	AggregateTypeSak     AggregateType = "Sak"
)

func (t AggregateType) String() string {
	return string(t)
}

// SkedulertHardDelete 一条已排期的硬删除。
// 删除时刻在排期时就算成绝对时间，后台任务到点兑现
type SkedulertHardDelete struct {
	AggregateID             uuid.UUID
	AggregateType           AggregateType
	BeregnetSlettetidspunkt time.Time
	Virksomhetsnummer       string
	ProdusentID             string
	Merkelapp               string
	Grupperingsid           string
}
