package sendevindu

import (
	"time"

	"gitee.com/flycash/varsling-platform/internal/domain"
)

// 发送窗口计算器。纯函数，不做任何 I/O，
// 窗口判断全部换算到业务时区（奥斯陆）进行

var oslo = mustLoadOslo()

func mustLoadOslo() *time.Location {
	loc, err := time.LoadLocation("Europe/Oslo")
	if err != nil {
		panic(err)
	}
	return loc
}

// Resultat 要么立即发送，要么推迟到 ResumeAt
type Resultat struct {
	SendNaa  bool
	ResumeAt time.Time
}

func sendNaa() Resultat {
	return Resultat{SendNaa: true}
}

func utsattTil(t time.Time) Resultat {
	return Resultat{ResumeAt: t}
}

// Beregn 根据发送窗口策略判断现在能不能发。
// 对任意策略和时钟，把 ResumeAt 作为新的 now 再算一次必然得到 SendNaa，
// 不存在无限推迟
func Beregn(vindu domain.Sendevindu, sendetidspunkt *time.Time, naa time.Time) Resultat {
	switch vindu {
	case domain.SendevinduLoepende:
		return sendNaa()
	case domain.SendevinduNKSAapningstid:
		// 客服工作时间：周一到周五 08:30–14:30
		return iVindu(naa, erUkedag, 8, 30, 14, 30)
	case domain.SendevinduDagtidIkkeSoendag:
		// 白天：周一到周六 09:00–16:00
		return iVindu(naa, erIkkeSoendag, 9, 0, 16, 0)
	case domain.SendevinduSpesifisert:
		if sendetidspunkt == nil || !naa.Before(*sendetidspunkt) {
			return sendNaa()
		}
		return utsattTil(*sendetidspunkt)
	default:
		// 未知策略按随时发送处理，创建侧已经校验过枚举值
		return sendNaa()
	}
}

// KalkulertSendetidspunkt 给定参考时刻，返回窗口允许的最早发送时刻。
// 导出流在没有记录具体发送时间时用它推算 varselTimestamp
func KalkulertSendetidspunkt(vindu domain.Sendevindu, sendetidspunkt *time.Time, tid time.Time) time.Time {
	res := Beregn(vindu, sendetidspunkt, tid)
	if res.SendNaa {
		return tid
	}
	return res.ResumeAt
}

func erUkedag(d time.Weekday) bool {
	return d != time.Saturday && d != time.Sunday
}

func erIkkeSoendag(d time.Weekday) bool {
	return d != time.Sunday
}

func iVindu(naa time.Time, dagOK func(time.Weekday) bool, aapneTime, aapneMin, stengTime, stengMin int) Resultat {
	lokal := naa.In(oslo)

	if dagOK(lokal.Weekday()) {
		aapner := paaKlokkeslett(lokal, aapneTime, aapneMin)
		stenger := paaKlokkeslett(lokal, stengTime, stengMin)
		if !lokal.Before(aapner) && lokal.Before(stenger) {
			return sendNaa()
		}
	}

	// 找下一个开放时刻，最多往后看一周
	const maksDager = 8
	for i := 0; i < maksDager; i++ {
		dag := lokal.AddDate(0, 0, i)
		if !dagOK(dag.Weekday()) {
			continue
		}
		aapner := paaKlokkeslett(dag, aapneTime, aapneMin)
		if aapner.After(lokal) {
			return utsattTil(aapner)
		}
	}
	// 到不了这里：一周内必然有开放日
	return sendNaa()
}

func paaKlokkeslett(dag time.Time, timer, minutter int) time.Time {
	return time.Date(dag.Year(), dag.Month(), dag.Day(), timer, minutter, 0, 0, oslo)
}
