package idpool

import (
	"fmt"
	"os"
	"strconv"
)

// Config 定义 idpool 组件的配置结构
type Config struct {
	ServiceName string `json:"serviceName"` // 服务名称，用于日志和监控
	ChunkSize   int    `json:"chunkSize"`   // 空闲槽位耗尽时的扩容增量，必须大于 0
	DefaultSize int    `json:"defaultSize"` // 创建时预先填充到空闲列表的槽位数量
}

// 默认的扩容增量与初始容量
const (
	DefaultChunkSize = 128
	DefaultPoolSize  = 128
)

// GetDefaultConfig 返回环境相关的默认配置
// 根据不同的运行环境提供优化的配置
func GetDefaultConfig(env string) *Config {
	config := &Config{
		ServiceName: getEnvWithDefault("SERVICE_NAME", "idpool"),
		ChunkSize:   getEnvIntWithDefault("IDPOOL_CHUNK_SIZE", DefaultChunkSize),
		DefaultSize: getEnvIntWithDefault("IDPOOL_DEFAULT_SIZE", DefaultPoolSize),
	}

	// 开发环境使用较小的池，便于在日志中观察扩容行为
	if env == "development" {
		config.ChunkSize = 16
		config.DefaultSize = 16
	}

	return config
}

// Validate 验证配置的有效性
// 在创建生成器之前调用，非法配置不会产生任何池状态
func (c *Config) Validate() error {
	// 扩容增量必须为正数，否则池耗尽后无法产出新槽位
	if c.ChunkSize <= 0 {
		return fmt.Errorf("扩容增量必须大于 0，当前值: %d", c.ChunkSize)
	}

	// 初始容量允许为 0（首次分配即触发扩容）
	if c.DefaultSize < 0 {
		return fmt.Errorf("初始容量不能为负数，当前值: %d", c.DefaultSize)
	}

	return nil
}

// SetServiceName 设置服务名称
// 提供便捷的配置方法
func (c *Config) SetServiceName(name string) *Config {
	c.ServiceName = name
	return c
}

// SetChunkSize 设置扩容增量
// 提供便捷的配置方法
func (c *Config) SetChunkSize(chunkSize int) *Config {
	c.ChunkSize = chunkSize
	return c
}

// SetDefaultSize 设置初始容量
// 提供便捷的配置方法
func (c *Config) SetDefaultSize(defaultSize int) *Config {
	c.DefaultSize = defaultSize
	return c
}

// 环境变量辅助函数
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
