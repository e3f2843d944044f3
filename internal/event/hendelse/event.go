package hendelse

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofrs/uuid"

	"gitee.com/flycash/varsling-platform/internal/domain"
	"gitee.com/flycash/varsling-platform/internal/errs"
)

const (
	// TopicNotifikasjon 领域事件主题，按 notifikasjonId 分区保证同一通知内的事件有序
	TopicNotifikasjon = "fager.notifikasjon"
	// TopicVarslingStatus 导出流主题
	TopicVarslingStatus = "fager.ekstern-varsling-status"
)

// Hendelsetype 事件类型标签，序列化时写入 @type 字段
type Hendelsetype string

const (
	TypeBeskjedOpprettet        Hendelsetype = "BeskjedOpprettet"
	TypeOppgaveOpprettet        Hendelsetype = "OppgaveOpprettet"
	TypeEksterntVarselVellykket Hendelsetype = "EksterntVarselVellykket"
	TypeEksterntVarselFeilet    Hendelsetype = "EksterntVarselFeilet"
	TypeHardDelete              Hendelsetype = "HardDelete"
	TypeSoftDelete              Hendelsetype = "SoftDelete"
)

// Alle 所有已注册的事件类型。新增事件类型必须同时加到这里，
// 投影侧有测试校验每个类型都注册了处理函数，防止静默漏处理
func Alle() []Hendelsetype {
	return []Hendelsetype{
		TypeBeskjedOpprettet,
		TypeOppgaveOpprettet,
		TypeEksterntVarselVellykket,
		TypeEksterntVarselFeilet,
		TypeHardDelete,
		TypeSoftDelete,
	}
}

// Hendelse 领域事件的统一抽象
type Hendelse interface {
	Typ() Hendelsetype
	// AggregateID 所属通知（或案件）的聚合 ID
	AggregateID() uuid.UUID
}

// Metadata 事件元数据，时间戳来自事件日志本身
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
}

// EksterntVarsel 创建事件内嵌的外部通知请求载荷
type EksterntVarsel struct {
	VarselID       uuid.UUID         `json:"varselId"`
	VarselType     domain.VarselType `json:"varselType"`
	Mobilnummer    string            `json:"mobilnummer,omitempty"`
	FnrEllerOrgnr  string            `json:"fnrEllerOrgnr,omitempty"`
	SmsTekst       string            `json:"smsTekst,omitempty"`
	EpostAdresse   string            `json:"epostAdresse,omitempty"`
	EpostTittel    string            `json:"epostTittel,omitempty"`
	EpostBody      string            `json:"epostBody,omitempty"`
	Sendevindu     domain.Sendevindu `json:"sendevindu"`
	Sendetidspunkt *time.Time        `json:"sendetidspunkt,omitempty"`
}

// BeskjedOpprettet 生产者创建了一条消息型通知
type BeskjedOpprettet struct {
	HendelseID        uuid.UUID        `json:"hendelseId"`
	NotifikasjonID    uuid.UUID        `json:"notifikasjonId"`
	Virksomhetsnummer string           `json:"virksomhetsnummer"`
	ProdusentID       string           `json:"produsentId"`
	KildeAppNavn      string           `json:"kildeAppNavn"`
	Merkelapp         string           `json:"merkelapp"`
	GrupperingsID     string           `json:"grupperingsid,omitempty"`
	EksterneVarsler   []EksterntVarsel `json:"eksterneVarsler,omitempty"`
	HardDeleteAt      *time.Time       `json:"hardDelete,omitempty"`
}

func (e *BeskjedOpprettet) Typ() Hendelsetype { return TypeBeskjedOpprettet }
func (e *BeskjedOpprettet) AggregateID() uuid.UUID { return e.NotifikasjonID }

// OppgaveOpprettet 生产者创建了一条任务型通知，载荷与 Beskjed 相同
type OppgaveOpprettet struct {
	HendelseID        uuid.UUID        `json:"hendelseId"`
	NotifikasjonID    uuid.UUID        `json:"notifikasjonId"`
	Virksomhetsnummer string           `json:"virksomhetsnummer"`
	ProdusentID       string           `json:"produsentId"`
	KildeAppNavn      string           `json:"kildeAppNavn"`
	Merkelapp         string           `json:"merkelapp"`
	GrupperingsID     string           `json:"grupperingsid,omitempty"`
	EksterneVarsler   []EksterntVarsel `json:"eksterneVarsler,omitempty"`
	HardDeleteAt      *time.Time       `json:"hardDelete,omitempty"`
}

func (e *OppgaveOpprettet) Typ() Hendelsetype { return TypeOppgaveOpprettet }
func (e *OppgaveOpprettet) AggregateID() uuid.UUID { return e.NotifikasjonID }

// EksterntVarselVellykket 网关确认发送成功
type EksterntVarselVellykket struct {
	HendelseID        uuid.UUID       `json:"hendelseId"`
	NotifikasjonID    uuid.UUID       `json:"notifikasjonId"`
	VarselID          uuid.UUID       `json:"varselId"`
	Virksomhetsnummer string          `json:"virksomhetsnummer"`
	ProdusentID       string          `json:"produsentId"`
	KildeAppNavn      string          `json:"kildeAppNavn"`
	RaaRespons        json.RawMessage `json:"raaRespons,omitempty"`
}

func (e *EksterntVarselVellykket) Typ() Hendelsetype { return TypeEksterntVarselVellykket }
func (e *EksterntVarselVellykket) AggregateID() uuid.UUID { return e.NotifikasjonID }

// EksterntVarselFeilet 网关返回了终态失败
type EksterntVarselFeilet struct {
	HendelseID        uuid.UUID       `json:"hendelseId"`
	NotifikasjonID    uuid.UUID       `json:"notifikasjonId"`
	VarselID          uuid.UUID       `json:"varselId"`
	Virksomhetsnummer string          `json:"virksomhetsnummer"`
	ProdusentID       string          `json:"produsentId"`
	KildeAppNavn      string          `json:"kildeAppNavn"`
	RaaRespons        json.RawMessage `json:"raaRespons,omitempty"`
	AltinnFeilkode    string          `json:"altinnFeilkode"`
	Feilmelding       string          `json:"feilmelding"`
}

func (e *EksterntVarselFeilet) Typ() Hendelsetype { return TypeEksterntVarselFeilet }
func (e *EksterntVarselFeilet) AggregateID() uuid.UUID { return e.NotifikasjonID }

// HardDelete 通知或案件被彻底删除，所有派生状态一并清除
type HardDelete struct {
	HendelseID        uuid.UUID `json:"hendelseId"`
	AggregatID        uuid.UUID `json:"aggregateId"`
	Virksomhetsnummer string    `json:"virksomhetsnummer"`
	ProdusentID       string    `json:"produsentId"`
	KildeAppNavn      string    `json:"kildeAppNavn"`
	// 删除的是案件时带上分组信息，用于级联删除其下的通知
	Merkelapp     string    `json:"merkelapp,omitempty"`
	GrupperingsID string    `json:"grupperingsid,omitempty"`
	DeletedAt     time.Time `json:"deletedAt"`
}

func (e *HardDelete) Typ() Hendelsetype { return TypeHardDelete }
func (e *HardDelete) AggregateID() uuid.UUID { return e.AggregatID }

// SoftDelete 对外隐藏但保留数据，本子系统不关心，但必须注册处理函数
type SoftDelete struct {
	HendelseID        uuid.UUID `json:"hendelseId"`
	AggregatID        uuid.UUID `json:"aggregateId"`
	Virksomhetsnummer string    `json:"virksomhetsnummer"`
	ProdusentID       string    `json:"produsentId"`
	KildeAppNavn      string    `json:"kildeAppNavn"`
	DeletedAt         time.Time `json:"deletedAt"`
}

func (e *SoftDelete) Typ() Hendelsetype { return TypeSoftDelete }
func (e *SoftDelete) AggregateID() uuid.UUID { return e.AggregatID }

// envelope 事件在日志上的信封格式
type envelope struct {
	Type     Hendelsetype    `json:"@type"`
	Hendelse json.RawMessage `json:"hendelse"`
}

// Marshal 序列化事件，附带类型标签
func Marshal(h Hendelse) ([]byte, error) {
	payload, err := json.Marshal(h)
	if err != nil {
		return nil, fmt.Errorf("序列化事件失败: %w", err)
	}
	return json.Marshal(envelope{
		Type:     h.Typ(),
		Hendelse: payload,
	})
}

// Unmarshal 按类型标签还原具体事件
func Unmarshal(data []byte) (Hendelse, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("解析事件信封失败: %w", err)
	}

	var h Hendelse
	switch env.Type {
	case TypeBeskjedOpprettet:
		h = &BeskjedOpprettet{}
	case TypeOppgaveOpprettet:
		h = &OppgaveOpprettet{}
	case TypeEksterntVarselVellykket:
		h = &EksterntVarselVellykket{}
	case TypeEksterntVarselFeilet:
		h = &EksterntVarselFeilet{}
	case TypeHardDelete:
		h = &HardDelete{}
	case TypeSoftDelete:
		h = &SoftDelete{}
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownHendelsetype, env.Type)
	}

	if err := json.Unmarshal(env.Hendelse, h); err != nil {
		return nil, fmt.Errorf("解析事件载荷失败: %w", err)
	}
	return h, nil
}
