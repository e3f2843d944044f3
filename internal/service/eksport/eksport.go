package eksport

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/gotomicro/ego/core/elog"

	"gitee.com/flycash/varsling-platform/internal/domain"
	"gitee.com/flycash/varsling-platform/internal/errs"
	eksportevt "gitee.com/flycash/varsling-platform/internal/event/eksport"
	"gitee.com/flycash/varsling-platform/internal/event/hendelse"
	"gitee.com/flycash/varsling-platform/internal/repository"
	"gitee.com/flycash/varsling-platform/internal/service/gateway"
	"gitee.com/flycash/varsling-platform/internal/service/sendevindu"
)

// Eksportoer 把发送结果事件转成下游报表要的导出记录。
// 只关心结果事件，其余类型注册成空处理函数
type Eksportoer struct {
	repo     repository.VarslingRepository
	producer eksportevt.Producer
	logger   *elog.Component
}

func NewEksportoer(repo repository.VarslingRepository, producer eksportevt.Producer) *Eksportoer {
	return &Eksportoer{
		repo:     repo,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (e *Eksportoer) Dispatcher() *hendelse.Dispatcher {
	ignorer := func(_ context.Context, _ hendelse.Hendelse, _ hendelse.Metadata) error {
		return nil
	}
	return hendelse.NewDispatcher().
		Register(hendelse.TypeBeskjedOpprettet, ignorer).
		Register(hendelse.TypeOppgaveOpprettet, ignorer).
		Register(hendelse.TypeEksterntVarselVellykket, e.onVellykket).
		Register(hendelse.TypeEksterntVarselFeilet, e.onFeilet).
		Register(hendelse.TypeHardDelete, ignorer).
		Register(hendelse.TypeSoftDelete, ignorer)
}

// Handle 实现 hendelse.Handler
func (e *Eksportoer) Handle(ctx context.Context, h hendelse.Hendelse, meta hendelse.Metadata) error {
	return e.Dispatcher().Dispatch(ctx, h, meta)
}

func (e *Eksportoer) onVellykket(ctx context.Context, h hendelse.Hendelse, meta hendelse.Metadata) error {
	evt, ok := h.(*hendelse.EksterntVarselVellykket)
	if !ok {
		return fmt.Errorf("%w: %T", errs.ErrUnknownHendelsetype, h)
	}
	return e.eksporter(ctx, evt.VarselID, domain.VarslingStatusOK, meta)
}

func (e *Eksportoer) onFeilet(ctx context.Context, h hendelse.Hendelse, meta hendelse.Metadata) error {
	evt, ok := h.(*hendelse.EksterntVarselFeilet)
	if !ok {
		return fmt.Errorf("%w: %T", errs.ErrUnknownHendelsetype, h)
	}
	return e.eksporter(ctx, evt.VarselID, gateway.EksportStatus(evt.AltinnFeilkode), meta)
}

func (e *Eksportoer) eksporter(ctx context.Context, varselID uuid.UUID, status domain.VarslingStatus, meta hendelse.Metadata) error {
	varsel, err := e.repo.FindVarsel(ctx, varselID)
	if err != nil {
		if errors.Is(err, errs.ErrVarselNotFound) {
			// 所属通知已被硬删除，导出流上不该再出现它的任何痕迹
			e.logger.Info("varsel 已被删除，跳过导出",
				elog.String("varselId", varselID.String()))
			return nil
		}
		return err
	}

	// varselTimestamp 的规则：生产者指定过发送时间就用指定的，
	// 没指定则按发送窗口推算实际可发送的时刻
	varselTimestamp := sendevindu.KalkulertSendetidspunkt(varsel.Sendevindu, varsel.Sendetidspunkt, meta.Timestamp)
	if varsel.Sendetidspunkt != nil {
		varselTimestamp = *varsel.Sendetidspunkt
	}
	return e.producer.Produce(ctx, domain.VarslingStatusDto{
		Status:                 status,
		Virksomhetsnummer:      varsel.Virksomhetsnummer,
		VarselID:               varsel.VarselID,
		VarselTimestamp:        varselTimestamp,
		KvittertEventTimestamp: meta.Timestamp,
	})
}
