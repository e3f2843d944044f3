package hendelse

import (
	"context"
	"fmt"

	"gitee.com/flycash/varsling-platform/internal/errs"
)

// HandlerFunc 单个事件类型的处理函数
type HandlerFunc func(ctx context.Context, h Hendelse, meta Metadata) error

// Dispatcher 按事件类型分发的调度表。
// 源头上事件是封闭的变体集合，这里要求显式注册每一个类型：
// 收到未注册的类型直接报错，而不是静默忽略
type Dispatcher struct {
	handlers map[Hendelsetype]HandlerFunc
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[Hendelsetype]HandlerFunc),
	}
}

func (d *Dispatcher) Register(typ Hendelsetype, fn HandlerFunc) *Dispatcher {
	d.handlers[typ] = fn
	return d
}

// Registered 已注册的类型，测试用它对照 Alle() 校验完备性
func (d *Dispatcher) Registered() []Hendelsetype {
	types := make([]Hendelsetype, 0, len(d.handlers))
	for typ := range d.handlers {
		types = append(types, typ)
	}
	return types
}

func (d *Dispatcher) Dispatch(ctx context.Context, h Hendelse, meta Metadata) error {
	fn, ok := d.handlers[h.Typ()]
	if !ok {
		return fmt.Errorf("%w: %s 没有注册处理函数", errs.ErrUnknownHendelsetype, h.Typ())
	}
	return fn(ctx, h, meta)
}
