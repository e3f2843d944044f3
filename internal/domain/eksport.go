package domain

import (
	"time"

	"github.com/gofrs/uuid"
)

// VarslingStatus 导出流上的结果状态
type VarslingStatus string

const (
	// VarslingStatusOK 发送成功
	VarslingStatusOK VarslingStatus = "OK"
	// VarslingStatusManglerKofuvi 接收方缺少数字联系信息，不修数据永远不会成功
	VarslingStatusManglerKofuvi VarslingStatus = "MANGLER_KOFUVI"
	// VarslingStatusAnnenFeil 其他终态失败
	VarslingStatusAnnenFeil VarslingStatus = "ANNEN_FEIL"
)

// VarslingStatusDto 下游报表消费的导出记录
type VarslingStatusDto struct {
	Status                 VarslingStatus `json:"status"`
	Virksomhetsnummer      string         `json:"virksomhetsnummer"`
	VarselID               uuid.UUID      `json:"varselId"`
	VarselTimestamp        time.Time      `json:"varselTimestamp"`
	KvittertEventTimestamp time.Time      `json:"kvittertEventTimestamp"`
}
