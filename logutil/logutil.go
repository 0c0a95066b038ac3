// Package logutil builds the zap loggers used by the command line tools.
package logutil

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig selects level, encoding and destination. An empty Filename logs to stderr, otherwise the file is
// rotated by lumberjack after MaxSize megabytes, keeping MaxBackups old files for at most MaxDays days.
type LogConfig struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"`
	Filename   string `toml:"filename"`
	MaxSize    int    `toml:"max-size"`
	MaxDays    int    `toml:"max-days"`
	MaxBackups int    `toml:"max-backups"`
}

func (cfg *LogConfig) getLevel() (zap.AtomicLevel, error) {
	var l zapcore.Level
	if cfg.Level != "" {
		if err := l.UnmarshalText([]byte(cfg.Level)); err != nil {
			return zap.AtomicLevel{}, fmt.Errorf("log level %q: %w", cfg.Level, err)
		}
	}
	return zap.NewAtomicLevelAt(l), nil
}

func getLoggerEncoder(format string) (zapcore.Encoder, error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	switch format {
	case "", "console":
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(encoderConfig), nil
	case "json":
		return zapcore.NewJSONEncoder(encoderConfig), nil
	}
	return nil, fmt.Errorf("log format %q: want console or json", format)
}

func (cfg *LogConfig) getSyncer() zapcore.WriteSyncer {
	if cfg.Filename == "" {
		return getConsoleSyncer()
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxAge:     cfg.MaxDays,
		MaxBackups: cfg.MaxBackups,
	})
}

func getConsoleSyncer() zapcore.WriteSyncer {
	return zapcore.Lock(os.Stderr)
}

func (cfg *LogConfig) getOptions() []zap.Option {
	return []zap.Option{zap.AddStacktrace(zapcore.FatalLevel), zap.AddCaller()}
}

// NewLogger from cfg.
func NewLogger(cfg LogConfig) (*zap.Logger, error) {
	level, err := cfg.getLevel()
	if err != nil {
		return nil, err
	}
	enc, err := getLoggerEncoder(cfg.Format)
	if err != nil {
		return nil, err
	}
	return zap.New(zapcore.NewCore(enc, cfg.getSyncer(), level), cfg.getOptions()...), nil
}
