package projector

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/gotomicro/ego/core/elog"
	"github.com/hashicorp/go-multierror"

	"gitee.com/flycash/varsling-platform/internal/domain"
	"gitee.com/flycash/varsling-platform/internal/errs"
	"gitee.com/flycash/varsling-platform/internal/event/hendelse"
	"gitee.com/flycash/varsling-platform/internal/repository"
)

// Projector 把事件日志上的领域事件投影成本地状态：
// varsel 表、任务队列和硬删除排期。
// 事件可能重复投递，所有处理函数都要求幂等
type Projector struct {
	repo       repository.VarslingRepository
	hardDelete repository.HardDeleteRepository
	logger     *elog.Component
}

func NewProjector(
	repo repository.VarslingRepository,
	hardDelete repository.HardDeleteRepository,
) *Projector {
	return &Projector{
		repo:       repo,
		hardDelete: hardDelete,
		logger:     elog.DefaultLogger,
	}
}

// Dispatcher 返回注册了全部事件类型的调度表
func (p *Projector) Dispatcher() *hendelse.Dispatcher {
	return hendelse.NewDispatcher().
		Register(hendelse.TypeBeskjedOpprettet, p.onBeskjedOpprettet).
		Register(hendelse.TypeOppgaveOpprettet, p.onOppgaveOpprettet).
		Register(hendelse.TypeEksterntVarselVellykket, p.onVellykket).
		Register(hendelse.TypeEksterntVarselFeilet, p.onFeilet).
		Register(hendelse.TypeHardDelete, p.onHardDelete).
		Register(hendelse.TypeSoftDelete, p.onSoftDelete)
}

// Handle 实现 hendelse.Handler
func (p *Projector) Handle(ctx context.Context, h hendelse.Hendelse, meta hendelse.Metadata) error {
	return p.Dispatcher().Dispatch(ctx, h, meta)
}

func (p *Projector) onBeskjedOpprettet(ctx context.Context, h hendelse.Hendelse, _ hendelse.Metadata) error {
	evt, ok := h.(*hendelse.BeskjedOpprettet)
	if !ok {
		return fmt.Errorf("%w: %T", errs.ErrUnknownHendelsetype, h)
	}
	return p.opprett(ctx, opprettet{
		notifikasjonID:    evt.NotifikasjonID,
		aggregateType:     domain.AggregateTypeBeskjed,
		virksomhetsnummer: evt.Virksomhetsnummer,
		produsentID:       evt.ProdusentID,
		merkelapp:         evt.Merkelapp,
		grupperingsid:     evt.GrupperingsID,
		eksterneVarsler:   evt.EksterneVarsler,
		hardDeleteAt:      evt.HardDeleteAt,
	})
}

func (p *Projector) onOppgaveOpprettet(ctx context.Context, h hendelse.Hendelse, _ hendelse.Metadata) error {
	evt, ok := h.(*hendelse.OppgaveOpprettet)
	if !ok {
		return fmt.Errorf("%w: %T", errs.ErrUnknownHendelsetype, h)
	}
	return p.opprett(ctx, opprettet{
		notifikasjonID:    evt.NotifikasjonID,
		aggregateType:     domain.AggregateTypeOppgave,
		virksomhetsnummer: evt.Virksomhetsnummer,
		produsentID:       evt.ProdusentID,
		merkelapp:         evt.Merkelapp,
		grupperingsid:     evt.GrupperingsID,
		eksterneVarsler:   evt.EksterneVarsler,
		hardDeleteAt:      evt.HardDeleteAt,
	})
}

// opprettet Beskjed 和 Oppgave 的投影逻辑完全相同，收拢成一份
type opprettet struct {
	notifikasjonID    uuid.UUID
	aggregateType     domain.AggregateType
	virksomhetsnummer string
	produsentID       string
	merkelapp         string
	grupperingsid     string
	eksterneVarsler   []hendelse.EksterntVarsel
	hardDeleteAt      *time.Time
}

func (p *Projector) opprett(ctx context.Context, evt opprettet) error {
	for _, ev := range evt.eksterneVarsler {
		varsel := domain.EksternVarsel{
			VarselID:          ev.VarselID,
			NotifikasjonID:    evt.notifikasjonID,
			ProdusentID:       evt.produsentID,
			Virksomhetsnummer: evt.virksomhetsnummer,
			VarselType:        ev.VarselType,
			Mobilnummer:       ev.Mobilnummer,
			FnrEllerOrgnr:     ev.FnrEllerOrgnr,
			SmsTekst:          ev.SmsTekst,
			EpostAdresse:      ev.EpostAdresse,
			EpostTittel:       ev.EpostTittel,
			EpostBody:         ev.EpostBody,
			Sendevindu:        ev.Sendevindu,
			Sendetidspunkt:    ev.Sendetidspunkt,
			Tilstand:          domain.VarselTilstandNy,
		}
		if err := varsel.Validate(); err != nil {
			return err
		}
		err := p.repo.InsertVarsel(ctx, varsel)
		if err != nil && !errors.Is(err, errs.ErrVarselDuplicate) {
			return err
		}
		// 重复事件也要补入队：上次处理可能在插入之后入队之前崩了
		if err := p.repo.EnqueueJob(ctx, ev.VarselID); err != nil {
			return err
		}
	}

	if evt.hardDeleteAt != nil {
		return p.hardDelete.Skeduler(ctx, domain.SkedulertHardDelete{
			AggregateID:             evt.notifikasjonID,
			AggregateType:           evt.aggregateType,
			BeregnetSlettetidspunkt: *evt.hardDeleteAt,
			Virksomhetsnummer:       evt.virksomhetsnummer,
			ProdusentID:             evt.produsentID,
			Merkelapp:               evt.merkelapp,
			Grupperingsid:           evt.grupperingsid,
		})
	}
	return nil
}

func (p *Projector) onVellykket(ctx context.Context, h hendelse.Hendelse, _ hendelse.Metadata) error {
	evt, ok := h.(*hendelse.EksterntVarselVellykket)
	if !ok {
		return fmt.Errorf("%w: %T", errs.ErrUnknownHendelsetype, h)
	}
	return p.kvitter(ctx, evt.VarselID, domain.AltinnResponse{
		Ok:  true,
		Raa: string(evt.RaaRespons),
	})
}

func (p *Projector) onFeilet(ctx context.Context, h hendelse.Hendelse, _ hendelse.Metadata) error {
	evt, ok := h.(*hendelse.EksterntVarselFeilet)
	if !ok {
		return fmt.Errorf("%w: %T", errs.ErrUnknownHendelsetype, h)
	}
	return p.kvitter(ctx, evt.VarselID, domain.AltinnResponse{
		Raa:         string(evt.RaaRespons),
		Feilkode:    evt.AltinnFeilkode,
		Feilmelding: evt.Feilmelding,
	})
}

// kvitter 结果事件回流：确认结果并清掉可能残留的任务。
// varsel 不存在说明所属通知已被硬删除，静默跳过
func (p *Projector) kvitter(ctx context.Context, varselID uuid.UUID, resp domain.AltinnResponse) error {
	_, err := p.repo.FindVarsel(ctx, varselID)
	if err != nil {
		if errors.Is(err, errs.ErrVarselNotFound) {
			return nil
		}
		return err
	}
	if err := p.repo.MarkKvittert(ctx, varselID, resp); err != nil {
		return err
	}
	return p.repo.DeleteJob(ctx, varselID)
}

func (p *Projector) onHardDelete(ctx context.Context, h hendelse.Hendelse, _ hendelse.Metadata) error {
	evt, ok := h.(*hendelse.HardDelete)
	if !ok {
		return fmt.Errorf("%w: %T", errs.ErrUnknownHendelsetype, h)
	}

	// 删除的是案件时级联清掉其下所有通知的排期和状态。
	// 某个通知删失败不中断其余的，攒起来一起报错让事件重投递，
	// 已删掉的部分重放时是幂等的
	if evt.Merkelapp != "" && evt.GrupperingsID != "" {
		notifikasjoner, err := p.hardDelete.FindNotifikasjonerForSak(ctx, evt.Merkelapp, evt.GrupperingsID)
		if err != nil {
			return err
		}
		var errRes error
		for _, n := range notifikasjoner {
			if err := p.slettNotifikasjon(ctx, n.AggregateID); err != nil {
				errRes = multierror.Append(errRes, err)
			}
		}
		if errRes != nil {
			return errRes
		}
	}
	return p.slettNotifikasjon(ctx, evt.AggregatID)
}

func (p *Projector) slettNotifikasjon(ctx context.Context, notifikasjonID uuid.UUID) error {
	if err := p.repo.HardDeleteNotifikasjon(ctx, notifikasjonID); err != nil {
		return err
	}
	return p.hardDelete.Fjern(ctx, notifikasjonID)
}

// onSoftDelete 软删除只影响对外展示，本子系统没有要投影的状态。
// 仍然注册处理函数，未注册类型会被当成错误
func (p *Projector) onSoftDelete(_ context.Context, h hendelse.Hendelse, _ hendelse.Metadata) error {
	if _, ok := h.(*hendelse.SoftDelete); !ok {
		return fmt.Errorf("%w: %T", errs.ErrUnknownHendelsetype, h)
	}
	return nil
}
