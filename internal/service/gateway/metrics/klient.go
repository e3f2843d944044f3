// Klient 为网关客户端添加指标收集的装饰器
package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"gitee.com/flycash/varsling-platform/internal/domain"
	"gitee.com/flycash/varsling-platform/internal/service/gateway"
)

// Klient 为网关客户端添加指标收集的装饰器
type Klient struct {
	klient              gateway.Klient
	sendDurationSummary *prometheus.SummaryVec
	sendCounter         *prometheus.CounterVec
	sendStatusCounter   *prometheus.CounterVec
}

// NewKlient 创建一个新的带有指标收集的网关客户端
func NewKlient(k gateway.Klient) *Klient {
	sendDurationSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "gateway_send_duration_seconds",
			Help:       "网关发送耗时统计（秒）",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.95: 0.005, 0.99: 0.001},
			MaxAge:     time.Minute * 5,
		},
		[]string{"varsel_type", "utfall"},
	)

	sendCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_send_total",
			Help: "网关发送总数",
		},
		[]string{"varsel_type"},
	)

	sendStatusCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_send_utfall_total",
			Help: "网关发送分类结果统计",
		},
		[]string{"varsel_type", "utfall"},
	)

	prometheus.MustRegister(sendDurationSummary, sendCounter, sendStatusCounter)

	return &Klient{
		klient:              k,
		sendDurationSummary: sendDurationSummary,
		sendCounter:         sendCounter,
		sendStatusCounter:   sendStatusCounter,
	}
}

// Send 发送并记录指标
func (k *Klient) Send(ctx context.Context, varsel domain.EksternVarsel) (domain.AltinnResponse, error) {
	startTime := time.Now()

	k.sendCounter.WithLabelValues(varsel.VarselType.String()).Inc()

	resp, err := k.klient.Send(ctx, varsel)

	duration := time.Since(startTime).Seconds()

	utfall := "TRANSPORT_FEIL"
	if err == nil {
		utfall = string(gateway.Klassifiser(resp))
	}

	k.sendStatusCounter.WithLabelValues(varsel.VarselType.String(), utfall).Inc()
	k.sendDurationSummary.WithLabelValues(varsel.VarselType.String(), utfall).Observe(duration)

	return resp, err
}
