package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"gitee.com/flycash/varsling-platform/internal/domain"
	"gitee.com/flycash/varsling-platform/internal/service/gateway"
)

// Klient 为网关客户端添加链路追踪的装饰器
type Klient struct {
	klient gateway.Klient
	tracer trace.Tracer
}

// NewKlient 创建一个新的带有链路追踪的网关客户端
func NewKlient(k gateway.Klient) *Klient {
	return &Klient{
		klient: k,
		tracer: otel.Tracer("varsling-platform/gateway"),
	}
}

func (k *Klient) Send(ctx context.Context, varsel domain.EksternVarsel) (domain.AltinnResponse, error) {
	ctx, span := k.tracer.Start(ctx, "Gateway.Send",
		trace.WithAttributes(
			attribute.String("varsel.id", varsel.VarselID.String()),
			attribute.String("varsel.notifikasjonId", varsel.NotifikasjonID.String()),
			attribute.String("varsel.type", varsel.VarselType.String()),
			attribute.String("varsel.sendevindu", varsel.Sendevindu.String()),
		))
	defer span.End()

	resp, err := k.klient.Send(ctx, varsel)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(
			attribute.Bool("varsel.ok", resp.Ok),
			attribute.String("varsel.feilkode", resp.Feilkode),
		)
	}

	return resp, err
}
