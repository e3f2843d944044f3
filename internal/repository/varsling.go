package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/patrickmn/go-cache"

	"gitee.com/flycash/varsling-platform/internal/domain"
	"gitee.com/flycash/varsling-platform/internal/repository/dao"
)

//go:generate mockgen -source=./varsling.go -destination=./mocks/varsling.mock.go -package=repomocks -typed VarslingRepository

// VarslingRepository 外部通知的统一存储入口，屏蔽 DAO 层的行格式
type VarslingRepository interface {
	// InsertVarsel 幂等，重复插入返回 errs.ErrVarselDuplicate
	InsertVarsel(ctx context.Context, varsel domain.EksternVarsel) error
	FindVarsel(ctx context.Context, varselID uuid.UUID) (domain.EksternVarsel, error)
	// MarkSendt 记录网关响应并推进到 SENDT
	MarkSendt(ctx context.Context, varselID uuid.UUID, resp domain.AltinnResponse, sendtTidspunkt time.Time) error
	// MarkKvittert 结果事件回流后推进到 KVITTERT
	MarkKvittert(ctx context.Context, varselID uuid.UUID, resp domain.AltinnResponse) error
	HardDeleteNotifikasjon(ctx context.Context, notifikasjonID uuid.UUID) error
	FindVarselIDsForNotifikasjon(ctx context.Context, notifikasjonID uuid.UUID) ([]uuid.UUID, error)
	CountVarsler(ctx context.Context) (int64, error)

	EnqueueJob(ctx context.Context, varselID uuid.UUID) error
	ClaimNextJob(ctx context.Context, lockTimeout time.Duration) (domain.JobQueueEntry, error)
	CompleteJob(ctx context.Context, varselID uuid.UUID) error
	RescheduleJob(ctx context.Context, varselID uuid.UUID, resumeAt time.Time) error
	ReleaseTimedOutLocks(ctx context.Context) (int64, error)
	DeleteJob(ctx context.Context, varselID uuid.UUID) error
	JobQueueCount(ctx context.Context) (int64, error)
	WaitQueueCount(ctx context.Context) (int64, error)

	// MottakerPaaAllowList 接收方是否在白名单里，带本地缓存
	MottakerPaaAllowList(ctx context.Context, mottaker string) (bool, error)
}

const allowListCacheTTL = 5 * time.Minute

type varslingRepository struct {
	varselDAO    dao.EksternVarselDAO
	jobDAO       dao.JobQueueDAO
	allowListDAO dao.AllowListDAO
	// 只缓存命中的接收方。未命中可能随时被运维加进白名单，不缓存
	allowListCache *cache.Cache
}

func NewVarslingRepository(
	varselDAO dao.EksternVarselDAO,
	jobDAO dao.JobQueueDAO,
	allowListDAO dao.AllowListDAO,
) VarslingRepository {
	return &varslingRepository{
		varselDAO:      varselDAO,
		jobDAO:         jobDAO,
		allowListDAO:   allowListDAO,
		allowListCache: cache.New(allowListCacheTTL, 10*time.Minute),
	}
}

func (r *varslingRepository) InsertVarsel(ctx context.Context, varsel domain.EksternVarsel) error {
	return r.varselDAO.Insert(ctx, r.toEntity(varsel))
}

func (r *varslingRepository) FindVarsel(ctx context.Context, varselID uuid.UUID) (domain.EksternVarsel, error) {
	data, err := r.varselDAO.GetByVarselID(ctx, varselID.String())
	if err != nil {
		return domain.EksternVarsel{}, err
	}
	return r.toDomain(data)
}

func (r *varslingRepository) MarkSendt(ctx context.Context, varselID uuid.UUID, resp domain.AltinnResponse, sendtTidspunkt time.Time) error {
	sendt := sendtTidspunkt.UnixMilli()
	return r.varselDAO.MarkSendt(ctx, dao.EksternVarselKontaktinfo{
		VarselID:       varselID.String(),
		SendeStatus:    ptr(sendeStatus(resp).String()),
		AltinnFeilkode: ptrOrNil(resp.Feilkode),
		Feilmelding:    ptrOrNil(resp.Feilmelding),
		RaaRespons:     ptrOrNil(resp.Raa),
		SendtTidspunkt: &sendt,
	})
}

func (r *varslingRepository) MarkKvittert(ctx context.Context, varselID uuid.UUID, resp domain.AltinnResponse) error {
	return r.varselDAO.MarkKvittert(ctx, dao.EksternVarselKontaktinfo{
		VarselID:       varselID.String(),
		SendeStatus:    ptr(sendeStatus(resp).String()),
		AltinnFeilkode: ptrOrNil(resp.Feilkode),
		Feilmelding:    ptrOrNil(resp.Feilmelding),
	})
}

func (r *varslingRepository) HardDeleteNotifikasjon(ctx context.Context, notifikasjonID uuid.UUID) error {
	return r.varselDAO.DeleteByNotifikasjonID(ctx, notifikasjonID.String())
}

func (r *varslingRepository) FindVarselIDsForNotifikasjon(ctx context.Context, notifikasjonID uuid.UUID) ([]uuid.UUID, error) {
	raw, err := r.varselDAO.FindVarselIDsForNotifikasjon(ctx, notifikasjonID.String())
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.FromString(s)
		if err != nil {
			return nil, fmt.Errorf("存储中的 varselId 非法: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *varslingRepository) CountVarsler(ctx context.Context) (int64, error) {
	return r.varselDAO.Count(ctx)
}

func (r *varslingRepository) EnqueueJob(ctx context.Context, varselID uuid.UUID) error {
	return r.jobDAO.Enqueue(ctx, varselID.String())
}

func (r *varslingRepository) ClaimNextJob(ctx context.Context, lockTimeout time.Duration) (domain.JobQueueEntry, error) {
	entry, err := r.jobDAO.ClaimNext(ctx, lockTimeout)
	if err != nil {
		return domain.JobQueueEntry{}, err
	}
	return r.jobToDomain(entry)
}

func (r *varslingRepository) CompleteJob(ctx context.Context, varselID uuid.UUID) error {
	return r.jobDAO.Complete(ctx, varselID.String())
}

func (r *varslingRepository) RescheduleJob(ctx context.Context, varselID uuid.UUID, resumeAt time.Time) error {
	return r.jobDAO.Reschedule(ctx, varselID.String(), resumeAt)
}

func (r *varslingRepository) ReleaseTimedOutLocks(ctx context.Context) (int64, error) {
	return r.jobDAO.ReleaseTimedOutLocks(ctx)
}

func (r *varslingRepository) DeleteJob(ctx context.Context, varselID uuid.UUID) error {
	return r.jobDAO.Delete(ctx, varselID.String())
}

func (r *varslingRepository) JobQueueCount(ctx context.Context) (int64, error) {
	return r.jobDAO.JobQueueCount(ctx)
}

func (r *varslingRepository) WaitQueueCount(ctx context.Context) (int64, error) {
	return r.jobDAO.WaitQueueCount(ctx)
}

func (r *varslingRepository) MottakerPaaAllowList(ctx context.Context, mottaker string) (bool, error) {
	if _, found := r.allowListCache.Get(mottaker); found {
		return true, nil
	}
	ok, err := r.allowListDAO.Exists(ctx, mottaker)
	if err != nil {
		return false, err
	}
	if ok {
		r.allowListCache.SetDefault(mottaker, struct{}{})
	}
	return ok, nil
}

func (r *varslingRepository) toEntity(varsel domain.EksternVarsel) dao.EksternVarselKontaktinfo {
	data := dao.EksternVarselKontaktinfo{
		VarselID:          varsel.VarselID.String(),
		NotifikasjonID:    varsel.NotifikasjonID.String(),
		ProdusentID:       varsel.ProdusentID,
		Virksomhetsnummer: varsel.Virksomhetsnummer,
		VarselType:        varsel.VarselType.String(),
		Mobilnummer:       varsel.Mobilnummer,
		FnrEllerOrgnr:     varsel.FnrEllerOrgnr,
		SmsTekst:          varsel.SmsTekst,
		EpostAdresse:      varsel.EpostAdresse,
		EpostTittel:       varsel.EpostTittel,
		EpostBody:         varsel.EpostBody,
		Sendevindu:        varsel.Sendevindu.String(),
		Tilstand:          varsel.Tilstand.String(),
	}
	if data.Tilstand == "" {
		data.Tilstand = domain.VarselTilstandNy.String()
	}
	if varsel.Sendetidspunkt != nil {
		ms := varsel.Sendetidspunkt.UnixMilli()
		data.Sendetidspunkt = &ms
	}
	return data
}

func (r *varslingRepository) toDomain(data dao.EksternVarselKontaktinfo) (domain.EksternVarsel, error) {
	varselID, err := uuid.FromString(data.VarselID)
	if err != nil {
		return domain.EksternVarsel{}, fmt.Errorf("存储中的 varselId 非法: %w", err)
	}
	notifikasjonID, err := uuid.FromString(data.NotifikasjonID)
	if err != nil {
		return domain.EksternVarsel{}, fmt.Errorf("存储中的 notifikasjonId 非法: %w", err)
	}
	varsel := domain.EksternVarsel{
		VarselID:          varselID,
		NotifikasjonID:    notifikasjonID,
		ProdusentID:       data.ProdusentID,
		Virksomhetsnummer: data.Virksomhetsnummer,
		VarselType:        domain.VarselType(data.VarselType),
		Mobilnummer:       data.Mobilnummer,
		FnrEllerOrgnr:     data.FnrEllerOrgnr,
		SmsTekst:          data.SmsTekst,
		EpostAdresse:      data.EpostAdresse,
		EpostTittel:       data.EpostTittel,
		EpostBody:         data.EpostBody,
		Sendevindu:        domain.Sendevindu(data.Sendevindu),
		Tilstand:          domain.VarselTilstand(data.Tilstand),
		Sendetidspunkt:    msToTime(data.Sendetidspunkt),
		SendtTidspunkt:    msToTime(data.SendtTidspunkt),
	}
	if data.SendeStatus != nil {
		varsel.SendeStatus = domain.SendeStatus(*data.SendeStatus)
	}
	if data.AltinnFeilkode != nil {
		varsel.AltinnFeilkode = *data.AltinnFeilkode
	}
	if data.Feilmelding != nil {
		varsel.Feilmelding = *data.Feilmelding
	}
	if data.RaaRespons != nil {
		varsel.RaaRespons = *data.RaaRespons
	}
	return varsel, nil
}

func (r *varslingRepository) jobToDomain(entry dao.JobQueueEntry) (domain.JobQueueEntry, error) {
	varselID, err := uuid.FromString(entry.VarselID)
	if err != nil {
		return domain.JobQueueEntry{}, fmt.Errorf("存储中的 varselId 非法: %w", err)
	}
	return domain.JobQueueEntry{
		VarselID:    varselID,
		State:       domain.JobState(entry.State),
		LockedUntil: msToTime(entry.LockedUntil),
		ResumeAt:    msToTime(entry.ResumeAt),
		Attempts:    entry.Attempts,
		Version:     entry.Version,
	}, nil
}

func sendeStatus(resp domain.AltinnResponse) domain.SendeStatus {
	if resp.Ok {
		return domain.SendeStatusOK
	}
	return domain.SendeStatusFeil
}

func msToTime(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := time.UnixMilli(*ms)
	return &t
}

func ptr[T any](v T) *T {
	return &v
}

func ptrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
