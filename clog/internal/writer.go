package internal

import (
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// buildWriteSyncer 根据输出目标创建写入器
// "stdout"/"stderr" 之外的值被视为文件路径
func buildWriteSyncer(cfg *Config) (zapcore.WriteSyncer, error) {
	switch cfg.Output {
	case "stdout":
		return zapcore.AddSync(os.Stdout), nil
	case "stderr":
		return zapcore.AddSync(os.Stderr), nil
	default:
		return buildFileWriteSyncer(cfg)
	}
}

// buildFileWriteSyncer 创建文件写入器，配置了轮转时使用 lumberjack
func buildFileWriteSyncer(cfg *Config) (zapcore.WriteSyncer, error) {
	// 确保目录存在
	if err := os.MkdirAll(filepath.Dir(cfg.Output), 0755); err != nil {
		return nil, err
	}

	if cfg.Rotation == nil {
		file, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
		return zapcore.AddSync(file), nil
	}

	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.Output,
		MaxSize:    cfg.Rotation.MaxSize,
		MaxBackups: cfg.Rotation.MaxBackups,
		MaxAge:     cfg.Rotation.MaxAge,
		Compress:   cfg.Rotation.Compress,
		LocalTime:  true,
	}), nil
}
