package main

import (
	"context"

	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"

	"gitee.com/flycash/varsling-platform/internal/ioc"
)

func main() {
	egoApp := ego.New()

	app := ioc.InitApp()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 启动前先检查投影数据是否还在，数据库被清空时直接拉闸
	if err := app.BrakeSvc.DetectEmptyDatabase(ctx); err != nil {
		elog.Panic("检测数据库失败", elog.FieldErr(err))
	}

	app.StartTasks(ctx)

	if err := egoApp.Serve(app.WebServer).Cron(app.Crons...).Run(); err != nil {
		elog.Panic("startup", elog.FieldErr(err))
	}
}
