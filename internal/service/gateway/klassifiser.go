package gateway

import (
	"gitee.com/flycash/varsling-platform/internal/domain"
)

// Utfall 一次发送尝试的分类结果
type Utfall string

const (
	// UtfallOK 终态，发送成功
	UtfallOK Utfall = "OK"
	// UtfallRetryable 本次失败但可以带退避重试
	UtfallRetryable Utfall = "RETRYABLE"
	// UtfallManglerKofuvi 终态，接收方缺少数字联系信息
	UtfallManglerKofuvi Utfall = "MANGLER_KOFUVI"
	// UtfallAnnenFeil 终态，其他不可重试失败
	UtfallAnnenFeil Utfall = "ANNEN_FEIL"
)

// 缺少数字联系信息（KOFUVI）的一组网关错误码
var manglerKofuviKoder = map[string]struct{}{
	"30304": {},
	"30307": {},
	"30308": {},
	"30323": {},
}

// 网关内部错误，重试有意义
var retryableKoder = map[string]struct{}{
	"0": {},
}

// Klassifiser 把网关响应映射成封闭的分类集合。
// 错误码表是固定的，没映射到的码一律按不可重试失败处理，原始码保留在响应里
func Klassifiser(resp domain.AltinnResponse) Utfall {
	if resp.Ok {
		return UtfallOK
	}
	if _, ok := manglerKofuviKoder[resp.Feilkode]; ok {
		return UtfallManglerKofuvi
	}
	if _, ok := retryableKoder[resp.Feilkode]; ok {
		return UtfallRetryable
	}
	return UtfallAnnenFeil
}

// EksportStatus 终态失败在导出流上的状态。
// 下游要能区分“不修数据永远不会成功”和“其他失败”
func EksportStatus(feilkode string) domain.VarslingStatus {
	if _, ok := manglerKofuviKoder[feilkode]; ok {
		return domain.VarslingStatusManglerKofuvi
	}
	return domain.VarslingStatusAnnenFeil
}
