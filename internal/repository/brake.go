package repository

import (
	"context"

	"gitee.com/flycash/varsling-platform/internal/repository/dao"
)

//go:generate mockgen -source=./brake.go -destination=./mocks/brake.mock.go -package=repomocks -typed BrakeRepository

// BrakeRepository 紧急刹车开关。状态必须实时读库，不允许缓存：
// 运维手动开刹车之后所有实例要在下一次轮询就停下来
type BrakeRepository interface {
	Stopped(ctx context.Context) (bool, error)
	TurnOn(ctx context.Context, reason string) error
	TurnOff(ctx context.Context) error
}

type brakeRepository struct {
	dao dao.EmergencyBrakeDAO
}

func NewBrakeRepository(d dao.EmergencyBrakeDAO) BrakeRepository {
	return &brakeRepository{dao: d}
}

func (r *brakeRepository) Stopped(ctx context.Context) (bool, error) {
	brake, err := r.dao.Get(ctx)
	if err != nil {
		return false, err
	}
	return brake.Stopped, nil
}

func (r *brakeRepository) TurnOn(ctx context.Context, reason string) error {
	return r.dao.Set(ctx, true, reason)
}

func (r *brakeRepository) TurnOff(ctx context.Context) error {
	return r.dao.Set(ctx, false, "")
}
