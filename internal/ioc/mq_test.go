package ioc

import (
	"testing"

	"github.com/gotomicro/ego/core/econf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKafkaConsumerConfig(t *testing.T) {
	// 配置文件里 addresses 是列表，这里必须按列表解析再拼接，
	// 按字符串解析会在启动时直接 panic
	econf.Set("kafka_consumer", map[string]any{
		"addresses": []string{"broker-1:9092", "broker-2:9092"},
	})

	cm := kafkaConsumerConfig("test-gruppe")

	servers, err := cm.Get("bootstrap.servers", "")
	require.NoError(t, err)
	assert.Equal(t, "broker-1:9092,broker-2:9092", servers)

	group, err := cm.Get("group.id", "")
	require.NoError(t, err)
	assert.Equal(t, "test-gruppe", group)

	autoCommit, err := cm.Get("enable.auto.commit", "")
	require.NoError(t, err)
	assert.Equal(t, "false", autoCommit)
}
