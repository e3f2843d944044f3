package sendevindu

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitee.com/flycash/varsling-platform/internal/domain"
)

func osloTid(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, oslo)
}

func TestBeregn(t *testing.T) {
	t.Parallel()

	spesifisert := osloTid(2024, time.May, 10, 12, 0)

	testCases := []struct {
		name           string
		vindu          domain.Sendevindu
		sendetidspunkt *time.Time
		naa            time.Time

		wantSendNaa  bool
		wantResumeAt time.Time
	}{
		{
			name:        "LOEPENDE 永远立即发送",
			vindu:       domain.SendevinduLoepende,
			naa:         osloTid(2024, time.May, 5, 3, 0), // 周日凌晨
			wantSendNaa: true,
		},
		{
			name:        "NKS 工作日窗口内立即发送",
			vindu:       domain.SendevinduNKSAapningstid,
			naa:         osloTid(2024, time.May, 6, 10, 0), // 周一 10:00
			wantSendNaa: true,
		},
		{
			name:         "NKS 工作日开门前推迟到当天开门",
			vindu:        domain.SendevinduNKSAapningstid,
			naa:          osloTid(2024, time.May, 6, 7, 0), // 周一 07:00
			wantResumeAt: osloTid(2024, time.May, 6, 8, 30),
		},
		{
			name:         "NKS 工作日关门后推迟到次日开门",
			vindu:        domain.SendevinduNKSAapningstid,
			naa:          osloTid(2024, time.May, 6, 15, 0), // 周一 15:00
			wantResumeAt: osloTid(2024, time.May, 7, 8, 30),
		},
		{
			name:         "NKS 周五关门后推迟到下周一",
			vindu:        domain.SendevinduNKSAapningstid,
			naa:          osloTid(2024, time.May, 10, 20, 0), // 周五 20:00
			wantResumeAt: osloTid(2024, time.May, 13, 8, 30),
		},
		{
			name:         "NKS 周六推迟到下周一",
			vindu:        domain.SendevinduNKSAapningstid,
			naa:          osloTid(2024, time.May, 11, 10, 0), // 周六
			wantResumeAt: osloTid(2024, time.May, 13, 8, 30),
		},
		{
			name:        "DAGTID 周六窗口内立即发送",
			vindu:       domain.SendevinduDagtidIkkeSoendag,
			naa:         osloTid(2024, time.May, 11, 10, 0), // 周六 10:00
			wantSendNaa: true,
		},
		{
			name:         "DAGTID 周日推迟到周一早上",
			vindu:        domain.SendevinduDagtidIkkeSoendag,
			naa:          osloTid(2024, time.May, 12, 10, 0), // 周日
			wantResumeAt: osloTid(2024, time.May, 13, 9, 0),
		},
		{
			name:         "DAGTID 晚间推迟到次日早上",
			vindu:        domain.SendevinduDagtidIkkeSoendag,
			naa:          osloTid(2024, time.May, 6, 22, 0), // 周一 22:00
			wantResumeAt: osloTid(2024, time.May, 7, 9, 0),
		},
		{
			name:           "SPESIFISERT 未到点推迟到指定时间",
			vindu:          domain.SendevinduSpesifisert,
			sendetidspunkt: &spesifisert,
			naa:            osloTid(2024, time.May, 10, 9, 0),
			wantResumeAt:   spesifisert,
		},
		{
			name:           "SPESIFISERT 已过点立即发送",
			vindu:          domain.SendevinduSpesifisert,
			sendetidspunkt: &spesifisert,
			naa:            osloTid(2024, time.May, 10, 13, 0),
			wantSendNaa:    true,
		},
		{
			name:        "SPESIFISERT 缺少时间按立即发送处理",
			vindu:       domain.SendevinduSpesifisert,
			naa:         osloTid(2024, time.May, 10, 9, 0),
			wantSendNaa: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res := Beregn(tc.vindu, tc.sendetidspunkt, tc.naa)
			if tc.wantSendNaa {
				assert.True(t, res.SendNaa)
				return
			}
			require.False(t, res.SendNaa)
			assert.True(t, tc.wantResumeAt.Equal(res.ResumeAt),
				"want %v, got %v", tc.wantResumeAt, res.ResumeAt)
		})
	}
}

// TestBeregnKonvergens 推迟结果作为新的 now 再算一次必然允许发送
func TestBeregnKonvergens(t *testing.T) {
	t.Parallel()

	spesifisert := osloTid(2024, time.June, 1, 18, 30)
	vinduer := []domain.Sendevindu{
		domain.SendevinduLoepende,
		domain.SendevinduNKSAapningstid,
		domain.SendevinduDagtidIkkeSoendag,
		domain.SendevinduSpesifisert,
	}

	// 覆盖一整周的各个时刻
	start := osloTid(2024, time.May, 6, 0, 0)
	for _, vindu := range vinduer {
		for i := 0; i < 7*24; i++ {
			naa := start.Add(time.Duration(i) * time.Hour)
			res := Beregn(vindu, &spesifisert, naa)
			if res.SendNaa {
				continue
			}
			require.True(t, res.ResumeAt.After(naa),
				"vindu=%s naa=%v: 只能向后推迟", vindu, naa)
			igjen := Beregn(vindu, &spesifisert, res.ResumeAt)
			require.True(t, igjen.SendNaa,
				"vindu=%s naa=%v resumeAt=%v: 推迟后必须可发送", vindu, naa, res.ResumeAt)
		}
	}
}

func TestKalkulertSendetidspunkt(t *testing.T) {
	t.Parallel()

	t.Run("窗口内返回参考时刻本身", func(t *testing.T) {
		t.Parallel()
		tid := osloTid(2024, time.May, 6, 10, 0)
		got := KalkulertSendetidspunkt(domain.SendevinduLoepende, nil, tid)
		assert.True(t, tid.Equal(got))
	})

	t.Run("窗口外返回下一个开放时刻", func(t *testing.T) {
		t.Parallel()
		tid := osloTid(2024, time.May, 12, 10, 0) // 周日
		got := KalkulertSendetidspunkt(domain.SendevinduDagtidIkkeSoendag, nil, tid)
		assert.True(t, osloTid(2024, time.May, 13, 9, 0).Equal(got))
	})
}
