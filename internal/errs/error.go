package errs

import (
	"errors"
)

// 定义统一的错误类型
var (
	ErrInvalidParameter = errors.New("参数错误")

	ErrVarselNotFound  = errors.New("外部通知记录不存在")
	ErrVarselDuplicate = errors.New("外部通知记录主键冲突")

	ErrNoJobAvailable      = errors.New("任务队列中没有可领取的任务")
	ErrJobNotInProgress    = errors.New("任务不处于执行中状态")
	ErrSendVarselFailed    = errors.New("发送外部通知失败")
	ErrUnknownHendelsetype = errors.New("未知的事件类型")
)
