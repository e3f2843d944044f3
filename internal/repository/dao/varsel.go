package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"

	"gitee.com/flycash/varsling-platform/internal/errs"
)

// EksternVarselKontaktinfo 外部通知联系方式与生命周期状态表
type EksternVarselKontaktinfo struct {
	VarselID          string `gorm:"primaryKey;type:CHAR(36);comment:'外部通知ID'"`
	NotifikasjonID    string `gorm:"type:CHAR(36);NOT NULL;index:idx_notifikasjon_id;comment:'所属通知ID'"`
	ProdusentID       string `gorm:"type:VARCHAR(128);NOT NULL;comment:'生产方ID'"`
	Virksomhetsnummer string `gorm:"type:VARCHAR(32);NOT NULL;comment:'企业编号'"`
	VarselType        string `gorm:"type:ENUM('SMS','EPOST');NOT NULL;comment:'渠道'"`

	Mobilnummer   string `gorm:"type:VARCHAR(32);comment:'SMS 手机号'"`
	FnrEllerOrgnr string `gorm:"type:VARCHAR(32);comment:'个人或组织编号'"`
	SmsTekst      string `gorm:"type:TEXT;comment:'SMS 内容'"`
	EpostAdresse  string `gorm:"type:VARCHAR(256);comment:'邮箱地址'"`
	EpostTittel   string `gorm:"type:TEXT;comment:'邮件标题'"`
	EpostBody     string `gorm:"type:TEXT;comment:'邮件正文'"`

	Sendevindu     string `gorm:"type:ENUM('LOEPENDE','NKS_AAPNINGSTID','DAGTID_IKKE_SOENDAG','SPESIFISERT');NOT NULL;comment:'发送窗口策略'"`
	Sendetidspunkt *int64 `gorm:"comment:'SPESIFISERT 的指定发送时间，毫秒'"`

	Tilstand       string  `gorm:"type:ENUM('NY','SENDT','KVITTERT');NOT NULL;DEFAULT:'NY';comment:'生命周期状态'"`
	SendeStatus    *string `gorm:"type:ENUM('OK','FEIL');comment:'网关回执结果'"`
	AltinnFeilkode *string `gorm:"type:VARCHAR(32);comment:'网关错误码'"`
	Feilmelding    *string `gorm:"type:TEXT;comment:'网关错误信息'"`
	RaaRespons     *string `gorm:"type:JSON;comment:'网关原始响应'"`
	SendtTidspunkt *int64  `gorm:"comment:'实际发送时间，毫秒'"`

	Ctime int64
	Utime int64
}

func (EksternVarselKontaktinfo) TableName() string {
	return "ekstern_varsel_kontaktinfo"
}

type EksternVarselDAO interface {
	// Insert 幂等插入：主键冲突说明是事件重投递，不报错
	Insert(ctx context.Context, data EksternVarselKontaktinfo) error
	GetByVarselID(ctx context.Context, varselID string) (EksternVarselKontaktinfo, error)
	// MarkSendt 记录网关响应并把状态推进到 SENDT
	MarkSendt(ctx context.Context, data EksternVarselKontaktinfo) error
	// MarkKvittert 结果事件确认后推进到 KVITTERT，幂等
	MarkKvittert(ctx context.Context, data EksternVarselKontaktinfo) error
	// DeleteByNotifikasjonID 硬删除通知时清除其所有外部通知及队列任务
	DeleteByNotifikasjonID(ctx context.Context, notifikasjonID string) error
	Count(ctx context.Context) (int64, error)
	// FindVarselIDsForNotifikasjon 级联删除时查所属通知下的 varsel
	FindVarselIDsForNotifikasjon(ctx context.Context, notifikasjonID string) ([]string, error)
}

type eksternVarselDAO struct {
	db *egorm.Component
}

func NewEksternVarselDAO(db *egorm.Component) EksternVarselDAO {
	return &eksternVarselDAO{db: db}
}

func (d *eksternVarselDAO) Insert(ctx context.Context, data EksternVarselKontaktinfo) error {
	now := time.Now().UnixMilli()
	data.Ctime, data.Utime = now, now
	if data.Tilstand == "" {
		data.Tilstand = "NY"
	}
	err := d.db.WithContext(ctx).Create(&data).Error
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: varselId=%s", errs.ErrVarselDuplicate, data.VarselID)
		}
		return err
	}
	return nil
}

func (d *eksternVarselDAO) GetByVarselID(ctx context.Context, varselID string) (EksternVarselKontaktinfo, error) {
	var data EksternVarselKontaktinfo
	err := d.db.WithContext(ctx).
		Where("varsel_id = ?", varselID).
		First(&data).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EksternVarselKontaktinfo{}, fmt.Errorf("%w: varselId=%s", errs.ErrVarselNotFound, varselID)
		}
		return EksternVarselKontaktinfo{}, err
	}
	return data, nil
}

func (d *eksternVarselDAO) MarkSendt(ctx context.Context, data EksternVarselKontaktinfo) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).Model(&EksternVarselKontaktinfo{}).
		Where("varsel_id = ?", data.VarselID).
		Updates(map[string]any{
			"tilstand":        "SENDT",
			"sende_status":    data.SendeStatus,
			"altinn_feilkode": data.AltinnFeilkode,
			"feilmelding":     data.Feilmelding,
			"raa_respons":     data.RaaRespons,
			"sendt_tidspunkt": data.SendtTidspunkt,
			"utime":           now,
		}).Error
}

func (d *eksternVarselDAO) MarkKvittert(ctx context.Context, data EksternVarselKontaktinfo) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).Model(&EksternVarselKontaktinfo{}).
		Where("varsel_id = ?", data.VarselID).
		Updates(map[string]any{
			"tilstand":        "KVITTERT",
			"sende_status":    data.SendeStatus,
			"altinn_feilkode": data.AltinnFeilkode,
			"feilmelding":     data.Feilmelding,
			"utime":           now,
		}).Error
}

func (d *eksternVarselDAO) DeleteByNotifikasjonID(ctx context.Context, notifikasjonID string) error {
	// varsel 行和队列任务在同一个事务里清掉，
	// 避免出现没有 varsel 的孤儿任务
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sub := tx.Model(&EksternVarselKontaktinfo{}).
			Select("varsel_id").
			Where("notifikasjon_id = ?", notifikasjonID)
		if err := tx.Where("varsel_id IN (?)", sub).
			Delete(&JobQueueEntry{}).Error; err != nil {
			return err
		}
		return tx.Where("notifikasjon_id = ?", notifikasjonID).
			Delete(&EksternVarselKontaktinfo{}).Error
	})
}

func (d *eksternVarselDAO) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&EksternVarselKontaktinfo{}).Count(&cnt).Error
	return cnt, err
}

func (d *eksternVarselDAO) FindVarselIDsForNotifikasjon(ctx context.Context, notifikasjonID string) ([]string, error) {
	var ids []string
	err := d.db.WithContext(ctx).Model(&EksternVarselKontaktinfo{}).
		Where("notifikasjon_id = ?", notifikasjonID).
		Pluck("varsel_id", &ids).Error
	return ids, err
}
