package ioc

import (
	"context"

	"gitee.com/flycash/varsling-platform/internal/event/hendelse"
	"gitee.com/flycash/varsling-platform/internal/service/worker"
)

type Task interface {
	Start(ctx context.Context)
}

func InitTasks(
	w *worker.Worker,
	sweeper *worker.LockSweeper,
	projectorConsumer *hendelse.Consumer,
	eksportConsumer *hendelse.Consumer,
) []Task {
	return []Task{
		w,
		sweeper,
		projectorConsumer,
		eksportConsumer,
	}
}
