package internal

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ExitFunc allows mocking os.Exit in tests
var ExitFunc = os.Exit

// SetExitFunc sets the exit function for testing
func SetExitFunc(fn func(int)) {
	ExitFunc = fn
}

// Logger 定义日志接口
type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Fatal(msg string, fields ...zap.Field)

	With(fields ...zap.Field) Logger
	WithOptions(opts ...zap.Option) Logger
	Namespace(name string) Logger
}

// RotationConfig 日志轮转配置
type RotationConfig struct {
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

// Config 内部配置结构，由 clog 包从公开配置转换而来
type Config struct {
	Level       string
	Format      string
	Output      string
	AddSource   bool
	EnableColor bool
	Rotation    *RotationConfig
}

// zapLogger 封装 zap.Logger
type zapLogger struct {
	*zap.Logger
	namespace string
}

// NewLogger 创建新的 logger
func NewLogger(cfg *Config, namespace string) (Logger, error) {
	encoder := createEncoder(cfg.Format, buildEncoderConfig(cfg.Format, cfg.EnableColor, cfg.AddSource))

	syncer, err := buildWriteSyncer(cfg)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(encoder, syncer, parseLevel(cfg.Level))

	opts := []zap.Option{
		zap.AddStacktrace(zapcore.ErrorLevel),
	}
	if cfg.AddSource {
		opts = append(opts, zap.AddCaller())
	}

	return &zapLogger{
		Logger:    zap.New(core, opts...),
		namespace: namespace,
	}, nil
}

// NewFallbackLogger 创建备用 logger
func NewFallbackLogger() Logger {
	logger, _ := zap.NewProduction()
	return &zapLogger{Logger: logger}
}

// parseLevel 解析日志级别
func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// withNamespace 把 namespace 字段插入到字段列表首位
func (l *zapLogger) withNamespace(fields []zap.Field) []zap.Field {
	if l.namespace == "" {
		return fields
	}

	all := make([]zap.Field, len(fields)+1)
	all[0] = zap.String("namespace", l.namespace)
	copy(all[1:], fields)
	return all
}

// With 添加字段
// namespace 字段在记录时动态注入，这里过滤掉避免重复
func (l *zapLogger) With(fields ...zap.Field) Logger {
	var filtered []zap.Field
	for _, field := range fields {
		if field.Key != "namespace" {
			filtered = append(filtered, field)
		}
	}

	return &zapLogger{
		Logger:    l.Logger.With(filtered...),
		namespace: l.namespace,
	}
}

// WithOptions 添加选项
func (l *zapLogger) WithOptions(opts ...zap.Option) Logger {
	return &zapLogger{
		Logger:    l.Logger.WithOptions(opts...),
		namespace: l.namespace,
	}
}

// Namespace 创建子命名空间的 Logger 实例，支持链式调用
// 子命名空间会与父命名空间组合形成完整的层次化路径
func (l *zapLogger) Namespace(name string) Logger {
	fullNamespace := name
	if l.namespace != "" {
		fullNamespace = l.namespace + "." + name
	}

	return &zapLogger{
		Logger:    l.Logger,
		namespace: fullNamespace,
	}
}

// Debug 记录 Debug 级别的日志
func (l *zapLogger) Debug(msg string, fields ...zap.Field) {
	l.Logger.WithOptions(zap.AddCallerSkip(1)).Debug(msg, l.withNamespace(fields)...)
}

// Info 记录 Info 级别的日志
func (l *zapLogger) Info(msg string, fields ...zap.Field) {
	l.Logger.WithOptions(zap.AddCallerSkip(1)).Info(msg, l.withNamespace(fields)...)
}

// Warn 记录 Warn 级别的日志
func (l *zapLogger) Warn(msg string, fields ...zap.Field) {
	l.Logger.WithOptions(zap.AddCallerSkip(1)).Warn(msg, l.withNamespace(fields)...)
}

// Error 记录 Error 级别的日志
func (l *zapLogger) Error(msg string, fields ...zap.Field) {
	l.Logger.WithOptions(zap.AddCallerSkip(1)).Error(msg, l.withNamespace(fields)...)
}

// noopFatalHook 是无操作的 fatal 钩子
// zap 会把 WriteThenNoop 哨兵值强制替换为 WriteThenFatal（直接 os.Exit），
// 因此这里使用等价的自定义 no-op 钩子来跳过 zap 内部的退出逻辑
type noopFatalHook struct{}

func (noopFatalHook) OnWrite(*zapcore.CheckedEntry, []zapcore.Field) {}

// Fatal 记录 Fatal 级别的日志并通过 ExitFunc 退出程序
// 使用 no-op 钩子避免 zap 内部直接调用 os.Exit，保证退出行为可被测试替换
func (l *zapLogger) Fatal(msg string, fields ...zap.Field) {
	l.Logger.
		WithOptions(zap.AddCallerSkip(1), zap.WithFatalHook(noopFatalHook{})).
		Fatal(msg, l.withNamespace(fields)...)
	ExitFunc(1)
}
