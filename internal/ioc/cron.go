package ioc

import (
	"github.com/gotomicro/ego/task/ecron"

	"gitee.com/flycash/varsling-platform/internal/service/harddelete"
)

func Crons(a *harddelete.Autoslett) []ecron.Ecron {
	c1 := ecron.Load("cron.autoslett").Build(ecron.WithJob(a.Do))
	return []ecron.Ecron{c1}
}
