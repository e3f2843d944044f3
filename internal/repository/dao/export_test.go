//go:build e2e

package dao

// 仅供 e2e 测试包使用的内部状态常量别名
const (
	JobStateNew        = jobStateNew
	JobStateInProgress = jobStateInProgress
	JobStateWaiting    = jobStateWaiting
)
