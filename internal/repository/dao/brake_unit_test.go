package dao

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestEmergencyBrakeGet(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	dao := NewEmergencyBrakeDAO(db)

	mock.ExpectQuery("SELECT \\* FROM `emergency_brake`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "stopped", "reason", "utime"}).
			AddRow(1, true, "数据库为空", 1717200000000))

	brake, err := dao.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, brake.Stopped)
	assert.Equal(t, "数据库为空", brake.Reason)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmergencyBrakeGetMissingRow(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	dao := NewEmergencyBrakeDAO(db)

	// 行不存在等价于没拉闸
	mock.ExpectQuery("SELECT \\* FROM `emergency_brake`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "stopped", "reason", "utime"}))

	brake, err := dao.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, brake.Stopped)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAllowListExistsQuery(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	dao := NewAllowListDAO(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `allow_list`").
		WithArgs("+4740000000").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	ok, err := dao.Exists(context.Background(), "+4740000000")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
