package ioc

import (
	"github.com/ego-component/egorm"

	"gitee.com/flycash/varsling-platform/internal/repository/dao"
)

func InitDB() *egorm.Component {
	db := egorm.Load("mysql").Build()
	if err := dao.InitTables(db); err != nil {
		panic(err)
	}
	return db
}
