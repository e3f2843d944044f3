package domain

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid"

	"gitee.com/flycash/varsling-platform/internal/errs"
)

// VarselType 外部通知渠道
type VarselType string

const (
	VarselTypeSMS   VarselType = "SMS"
	VarselTypeEpost VarselType = "EPOST"
)

func (t VarselType) String() string {
	return string(t)
}

// Sendevindu 发送窗口策略，取值与事件流上的枚举保持一致
type Sendevindu string

const (
	SendevinduLoepende          Sendevindu = "LOEPENDE"            // 随时发送
	SendevinduNKSAapningstid    Sendevindu = "NKS_AAPNINGSTID"     // 仅客服开放时间发送
	SendevinduDagtidIkkeSoendag Sendevindu = "DAGTID_IKKE_SOENDAG" // 白天发送，周日除外
	SendevinduSpesifisert       Sendevindu = "SPESIFISERT"         // 指定时间发送
)

func (s Sendevindu) String() string {
	return string(s)
}

// VarselTilstand 投递生命周期状态
// NY 尚未尝试发送；SENDT 已调用网关等待回执确认；KVITTERT 结果已确认
type VarselTilstand string

const (
	VarselTilstandNy       VarselTilstand = "NY"
	VarselTilstandSendt    VarselTilstand = "SENDT"
	VarselTilstandKvittert VarselTilstand = "KVITTERT"
)

func (t VarselTilstand) String() string {
	return string(t)
}

// SendeStatus 网关回执的最终结果
type SendeStatus string

const (
	SendeStatusOK   SendeStatus = "OK"
	SendeStatusFeil SendeStatus = "FEIL"
)

func (s SendeStatus) String() string {
	return string(s)
}

// EksternVarsel 一条外部通知（短信或邮件），创建之后载荷不可变
type EksternVarsel struct {
	VarselID          uuid.UUID
	NotifikasjonID    uuid.UUID
	ProdusentID       string
	Virksomhetsnummer string
	VarselType        VarselType

	// SMS 载荷
	Mobilnummer   string
	FnrEllerOrgnr string
	SmsTekst      string

	// EPOST 载荷
	EpostAdresse string
	EpostTittel  string
	EpostBody    string

	Sendevindu     Sendevindu
	Sendetidspunkt *time.Time // 仅 SPESIFISERT 策略使用

	// 生命周期数据，由事件投影驱动
	Tilstand       VarselTilstand
	SendeStatus    SendeStatus
	AltinnFeilkode string
	Feilmelding    string
	RaaRespons     string // 网关原始响应，JSON
	SendtTidspunkt *time.Time
}

// Mottaker 返回接收方标识（手机号或邮箱），allow-list 按这个值比对
func (v *EksternVarsel) Mottaker() string {
	if v.VarselType == VarselTypeSMS {
		return v.Mobilnummer
	}
	return v.EpostAdresse
}

func (v *EksternVarsel) Validate() error {
	if v.VarselID == uuid.Nil {
		return fmt.Errorf("%w: VarselID 不能为空", errs.ErrInvalidParameter)
	}

	if v.NotifikasjonID == uuid.Nil {
		return fmt.Errorf("%w: NotifikasjonID 不能为空", errs.ErrInvalidParameter)
	}

	switch v.VarselType {
	case VarselTypeSMS:
		if v.Mobilnummer == "" {
			return fmt.Errorf("%w: SMS 通知需要手机号", errs.ErrInvalidParameter)
		}
	case VarselTypeEpost:
		if v.EpostAdresse == "" {
			return fmt.Errorf("%w: EPOST 通知需要邮箱地址", errs.ErrInvalidParameter)
		}
	default:
		return fmt.Errorf("%w: VarselType = %q", errs.ErrInvalidParameter, v.VarselType)
	}

	if v.Sendevindu == SendevinduSpesifisert && v.Sendetidspunkt == nil {
		return fmt.Errorf("%w: SPESIFISERT 策略需要指定发送时间", errs.ErrInvalidParameter)
	}

	return nil
}

// AltinnResponse 网关对一次发送尝试的响应
type AltinnResponse struct {
	Ok          bool
	Raa         string // 原始响应体
	Feilkode    string // 网关定义的错误码，分类器的唯一输入
	Feilmelding string
}
