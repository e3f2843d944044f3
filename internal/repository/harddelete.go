package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid"

	"gitee.com/flycash/varsling-platform/internal/domain"
	"gitee.com/flycash/varsling-platform/internal/repository/dao"
)

//go:generate mockgen -source=./harddelete.go -destination=./mocks/harddelete.mock.go -package=repomocks -typed HardDeleteRepository

type HardDeleteRepository interface {
	// Skeduler 幂等，重复排期同一聚合时以最新的删除时刻为准
	Skeduler(ctx context.Context, entry domain.SkedulertHardDelete) error
	HentDue(ctx context.Context, tilOgMed time.Time, limit int) ([]domain.SkedulertHardDelete, error)
	Fjern(ctx context.Context, aggregateID uuid.UUID) error
	FindNotifikasjonerForSak(ctx context.Context, merkelapp, grupperingsid string) ([]domain.SkedulertHardDelete, error)
}

type hardDeleteRepository struct {
	dao dao.SkedulertHardDeleteDAO
}

func NewHardDeleteRepository(d dao.SkedulertHardDeleteDAO) HardDeleteRepository {
	return &hardDeleteRepository{dao: d}
}

func (r *hardDeleteRepository) Skeduler(ctx context.Context, entry domain.SkedulertHardDelete) error {
	return r.dao.Upsert(ctx, dao.SkedulertHardDelete{
		AggregateID:             entry.AggregateID.String(),
		AggregateType:           entry.AggregateType.String(),
		BeregnetSlettetidspunkt: entry.BeregnetSlettetidspunkt.UnixMilli(),
		Virksomhetsnummer:       entry.Virksomhetsnummer,
		ProdusentID:             entry.ProdusentID,
		Merkelapp:               entry.Merkelapp,
		Grupperingsid:           entry.Grupperingsid,
	})
}

func (r *hardDeleteRepository) HentDue(ctx context.Context, tilOgMed time.Time, limit int) ([]domain.SkedulertHardDelete, error) {
	rows, err := r.dao.HentDue(ctx, tilOgMed, limit)
	if err != nil {
		return nil, err
	}
	return toDomainEntries(rows)
}

func (r *hardDeleteRepository) Fjern(ctx context.Context, aggregateID uuid.UUID) error {
	return r.dao.Delete(ctx, aggregateID.String())
}

func (r *hardDeleteRepository) FindNotifikasjonerForSak(ctx context.Context, merkelapp, grupperingsid string) ([]domain.SkedulertHardDelete, error) {
	rows, err := r.dao.FindNotifikasjonerForSak(ctx, merkelapp, grupperingsid)
	if err != nil {
		return nil, err
	}
	return toDomainEntries(rows)
}

func toDomainEntries(rows []dao.SkedulertHardDelete) ([]domain.SkedulertHardDelete, error) {
	entries := make([]domain.SkedulertHardDelete, 0, len(rows))
	for _, row := range rows {
		id, err := uuid.FromString(row.AggregateID)
		if err != nil {
			return nil, fmt.Errorf("存储中的 aggregateId 非法: %w", err)
		}
		entries = append(entries, domain.SkedulertHardDelete{
			AggregateID:             id,
			AggregateType:           domain.AggregateType(row.AggregateType),
			BeregnetSlettetidspunkt: time.UnixMilli(row.BeregnetSlettetidspunkt),
			Virksomhetsnummer:       row.Virksomhetsnummer,
			ProdusentID:             row.ProdusentID,
			Merkelapp:               row.Merkelapp,
			Grupperingsid:           row.Grupperingsid,
		})
	}
	return entries, nil
}
