package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

// EmergencyBrake 紧急刹车标记，单行表
type EmergencyBrake struct {
	ID      int    `gorm:"primaryKey"`
	Stopped bool   `gorm:"NOT NULL;DEFAULT:false;comment:'true 时停止一切出站发送'"`
	Reason  string `gorm:"type:TEXT;comment:'开启原因，人工排查用'"`
	Utime   int64
}

func (EmergencyBrake) TableName() string {
	return "emergency_brake"
}

const brakeRowID = 1

type EmergencyBrakeDAO interface {
	// Get 没有行时按未开启处理
	Get(ctx context.Context) (EmergencyBrake, error)
	Set(ctx context.Context, stopped bool, reason string) error
}

type emergencyBrakeDAO struct {
	db *egorm.Component
}

func NewEmergencyBrakeDAO(db *egorm.Component) EmergencyBrakeDAO {
	return &emergencyBrakeDAO{db: db}
}

func (d *emergencyBrakeDAO) Get(ctx context.Context) (EmergencyBrake, error) {
	var brake EmergencyBrake
	err := d.db.WithContext(ctx).
		Where("id = ?", brakeRowID).
		First(&brake).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmergencyBrake{ID: brakeRowID}, nil
		}
		return EmergencyBrake{}, err
	}
	return brake, nil
}

func (d *emergencyBrakeDAO) Set(ctx context.Context, stopped bool, reason string) error {
	now := time.Now().UnixMilli()
	res := d.db.WithContext(ctx).Model(&EmergencyBrake{}).
		Where("id = ?", brakeRowID).
		Updates(map[string]any{
			"stopped": stopped,
			"reason":  reason,
			"utime":   now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return d.db.WithContext(ctx).Create(&EmergencyBrake{
			ID:      brakeRowID,
			Stopped: stopped,
			Reason:  reason,
			Utime:   now,
		}).Error
	}
	return nil
}

// AllowListEntry 出站发送的接收方白名单，防止错误配置把通知发给不该发的人
type AllowListEntry struct {
	Mottaker string `gorm:"primaryKey;type:VARCHAR(256);comment:'手机号或邮箱'"`
	Ctime    int64
}

func (AllowListEntry) TableName() string {
	return "allow_list"
}

type AllowListDAO interface {
	Exists(ctx context.Context, mottaker string) (bool, error)
}

type allowListDAO struct {
	db *egorm.Component
}

func NewAllowListDAO(db *egorm.Component) AllowListDAO {
	return &allowListDAO{db: db}
}

func (d *allowListDAO) Exists(ctx context.Context, mottaker string) (bool, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&AllowListEntry{}).
		Where("mottaker = ?", mottaker).
		Count(&cnt).Error
	return cnt > 0, err
}
