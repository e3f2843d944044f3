package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

// SkedulertHardDelete 计划中的硬删除。聚合到期后由后台任务兑现删除
type SkedulertHardDelete struct {
	AggregateID   string `gorm:"primaryKey;type:CHAR(36)"`
	AggregateType string `gorm:"type:ENUM('Beskjed','Oppgave','Sak');NOT NULL"`
	// 删除的绝对时刻，毫秒。调度时就已算好，不允许出现未来很久才揭晓的相对值
	BeregnetSlettetidspunkt int64  `gorm:"NOT NULL;index:idx_slettetidspunkt"`
	Virksomhetsnummer       string `gorm:"type:VARCHAR(32);NOT NULL"`
	ProdusentID             string `gorm:"type:VARCHAR(128)"`
	Merkelapp               string `gorm:"type:VARCHAR(128)"`
	Grupperingsid           string `gorm:"type:VARCHAR(128);index:idx_gruppering"`
	Ctime                   int64
	Utime                   int64
}

func (SkedulertHardDelete) TableName() string {
	return "skedulert_hard_delete"
}

type SkedulertHardDeleteDAO interface {
	// Upsert 重复调度同一个聚合时以最新的删除时刻为准
	Upsert(ctx context.Context, entry SkedulertHardDelete) error
	// HentDue 找出删除时刻不晚于 tilOgMed 的所有条目
	HentDue(ctx context.Context, tilOgMed time.Time, limit int) ([]SkedulertHardDelete, error)
	Delete(ctx context.Context, aggregateID string) error
	// FindNotifikasjonerForSak 级联删除用：按 merkelapp + grupperingsid 找同一 sak 下的通知
	FindNotifikasjonerForSak(ctx context.Context, merkelapp, grupperingsid string) ([]SkedulertHardDelete, error)
}

type skedulertHardDeleteDAO struct {
	db *egorm.Component
}

func NewSkedulertHardDeleteDAO(db *egorm.Component) SkedulertHardDeleteDAO {
	return &skedulertHardDeleteDAO{db: db}
}

func (d *skedulertHardDeleteDAO) Upsert(ctx context.Context, entry SkedulertHardDelete) error {
	now := time.Now().UnixMilli()
	entry.Ctime, entry.Utime = now, now
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "aggregate_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"beregnet_slettetidspunkt", "utime",
		}),
	}).Create(&entry).Error
}

func (d *skedulertHardDeleteDAO) HentDue(ctx context.Context, tilOgMed time.Time, limit int) ([]SkedulertHardDelete, error) {
	var entries []SkedulertHardDelete
	err := d.db.WithContext(ctx).
		Where("beregnet_slettetidspunkt <= ?", tilOgMed.UnixMilli()).
		Order("beregnet_slettetidspunkt ASC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

func (d *skedulertHardDeleteDAO) Delete(ctx context.Context, aggregateID string) error {
	return d.db.WithContext(ctx).
		Where("aggregate_id = ?", aggregateID).
		Delete(&SkedulertHardDelete{}).Error
}

func (d *skedulertHardDeleteDAO) FindNotifikasjonerForSak(ctx context.Context, merkelapp, grupperingsid string) ([]SkedulertHardDelete, error) {
	var entries []SkedulertHardDelete
	err := d.db.WithContext(ctx).
		Where("aggregate_type IN ('Beskjed', 'Oppgave')").
		Where("merkelapp = ? AND grupperingsid = ?", merkelapp, grupperingsid).
		Find(&entries).Error
	return entries, err
}
