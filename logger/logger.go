// Package logger builds the process zap logger, writing to a size-rotated file
// so log output never interleaves with the terminal frame.
package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation defaults
const (
	DefaultMaxSizeMB  = 10
	DefaultMaxBackups = 3
	DefaultMaxAgeDays = 7
)

type Options struct {
	// Path of the log file, empty disables logging
	Path  string
	Level string

	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// New returns a console-encoded logger writing to opts.Path through lumberjack.
// An empty path yields a no-op logger.
func New(opts Options) (*zap.Logger, error) {
	if opts.Path == "" {
		return zap.NewNop(), nil
	}

	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(opts.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
	}

	lj := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    orDefault(opts.MaxSizeMB, DefaultMaxSizeMB),
		MaxBackups: orDefault(opts.MaxBackups, DefaultMaxBackups),
		MaxAge:     orDefault(opts.MaxAgeDays, DefaultMaxAgeDays),
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), zapcore.AddSync(lj), level)
	return zap.New(core, zap.AddCaller()), nil
}

// ParseLevel accepts zap level names, empty means info
func ParseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return l, fmt.Errorf("log level %q: %w", s, err)
	}
	return l, nil
}

// Sync flushes buffered entries, ignoring the benign errors from unsyncable outputs
func Sync(l *zap.Logger) {
	if l != nil {
		_ = l.Sync()
	}
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
		EncodeName:    zapcore.FullNameEncoder,
	}
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
