package clog

import (
	"context"
	"log"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/bennetthardwick/volatile-unique-id/clog/internal"
)

// Logger 定义统一的日志记录接口，封装 zap.Logger 提供类型安全的使用方式
type Logger = internal.Logger

var (
	// defaultLogger 全局默认日志器，使用 atomic.Value 保证并发安全
	defaultLogger atomic.Value

	// defaultLoggerOnce 确保默认日志器只初始化一次
	defaultLoggerOnce sync.Once
)

// SetExitFunc 设置退出函数，用于测试时模拟 os.Exit 行为
// 调用此函数后，Fatal 日志将调用指定的函数而非直接退出程序
func SetExitFunc(fn func(int)) {
	internal.SetExitFunc(fn)
}

// getDefaultLogger 获取全局默认日志器
// 使用延迟初始化模式，第一次调用时创建并缓存实例
// 已经通过 Init 设置的 logger 不会被延迟初始化覆盖
// 初始化失败时会创建 fallback logger 确保系统可用性
func getDefaultLogger() Logger {
	if logger := defaultLogger.Load(); logger != nil {
		return logger.(Logger)
	}

	defaultLoggerOnce.Do(func() {
		if defaultLogger.Load() != nil {
			return
		}
		cfg := GetDefaultConfig("development")
		logger, err := internal.NewLogger(toInternalConfig(cfg), "")
		if err != nil {
			// 初始化失败时至少在标准错误中打印错误信息
			log.Printf("clog: failed to initialize default logger: %v", err)
			logger = internal.NewFallbackLogger()
		}
		defaultLogger.Store(logger)
	})
	return defaultLogger.Load().(Logger)
}

// New 创建独立的 Logger 实例，支持自定义配置
// 适用于需要特殊日志配置的场景，如不同输出位置或格式
//
// 参数：
//   - ctx: 控制初始化过程的上下文，Logger 不持有此上下文
//   - config: 日志配置，必须通过 Validate() 验证
//   - opts: 功能选项，如 WithNamespace() 设置命名空间
func New(ctx context.Context, config *Config, opts ...Option) (Logger, error) {
	// 验证配置有效性
	if err := config.Validate(); err != nil {
		return nil, err
	}

	options := ParseOptions(opts...)
	logger, err := internal.NewLogger(toInternalConfig(config), options.Namespace)
	if err != nil {
		// 初始化失败时返回 fallback logger 和原始错误
		return internal.NewFallbackLogger(), err
	}
	return logger, nil
}

// Init 初始化全局默认日志器
// 这是最常用的初始化方式，通常在服务的 main 函数中调用一次
// 初始化失败时不会替换现有 logger，保持系统可用性
// 重复调用会原子替换现有全局 logger
func Init(ctx context.Context, config *Config, opts ...Option) error {
	if err := config.Validate(); err != nil {
		return err
	}

	options := ParseOptions(opts...)
	logger, err := internal.NewLogger(toInternalConfig(config), options.Namespace)
	if err != nil {
		return err
	}

	defaultLogger.Store(logger)
	return nil
}

// Namespace 创建带有层次化命名空间的 Logger 实例
// 支持链式调用来构建深层命名空间路径，如 "service.module.component"
//
// 示例：
//
//	poolLogger := clog.Namespace("idpool")
//	statsLogger := poolLogger.Namespace("stats") // "idpool.stats"
func Namespace(name string) Logger {
	return getDefaultLogger().Namespace(name)
}

// toInternalConfig 把公开配置转换为内部配置结构
func toInternalConfig(c *Config) *internal.Config {
	cfg := &internal.Config{
		Level:       c.Level,
		Format:      c.Format,
		Output:      c.Output,
		AddSource:   c.AddSource,
		EnableColor: c.EnableColor,
	}

	if c.Rotation != nil {
		cfg.Rotation = &internal.RotationConfig{
			MaxSize:    c.Rotation.MaxSize,
			MaxBackups: c.Rotation.MaxBackups,
			MaxAge:     c.Rotation.MaxAge,
			Compress:   c.Rotation.Compress,
		}
	}

	return cfg
}

// Debug 记录 Debug 级别的日志
// 通常用于详细的调试信息，在生产环境中通常被禁用
func Debug(msg string, fields ...Field) {
	getDefaultLogger().WithOptions(zap.AddCallerSkip(1)).Debug(msg, fields...)
}

// Info 记录 Info 级别的日志
// 用于记录一般的业务信息，如状态变更等
func Info(msg string, fields ...Field) {
	getDefaultLogger().WithOptions(zap.AddCallerSkip(1)).Info(msg, fields...)
}

// Warn 记录 Warn 级别的日志
// 用于记录可能需要注意但不影响系统正常运行的情况
func Warn(msg string, fields ...Field) {
	getDefaultLogger().WithOptions(zap.AddCallerSkip(1)).Warn(msg, fields...)
}

// Error 记录 Error 级别的日志
// 用于记录错误情况，但不影响系统继续运行
func Error(msg string, fields ...Field) {
	getDefaultLogger().WithOptions(zap.AddCallerSkip(1)).Error(msg, fields...)
}

// Fatal 记录 Fatal 级别的日志并退出程序
// 用于记录严重错误，系统无法继续运行的情况
func Fatal(msg string, fields ...Field) {
	getDefaultLogger().WithOptions(zap.AddCallerSkip(1)).Fatal(msg, fields...)
}
