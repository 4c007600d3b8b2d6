package logutils

import (
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogSettings configures the process-wide zap logger.
type LogSettings struct {
	Enabled         bool   `json:"Enabled"`
	Level           string `json:"Level"`
	File            string `json:"File"`
	MaxSize         int    `json:"MaxSize"`
	MaxBackups      int    `json:"MaxBackups"`
	CompressRotated bool   `json:"CompressRotated"`
	ConsoleOutput   bool   `json:"ConsoleOutput"`
}

var (
	rootLogger *zap.Logger
	rootMu     sync.RWMutex
	rootOnce   sync.Once
)

// ZapLogger returns the process-wide logger. Until OverrideRootLoggerWithConfig is
// called it writes info-level console output to stderr.
func ZapLogger() *zap.Logger {
	rootOnce.Do(func() {
		rootMu.Lock()
		if rootLogger == nil {
			rootLogger = newConsoleLogger(zapcore.InfoLevel)
		}
		rootMu.Unlock()
	})

	rootMu.RLock()
	defer rootMu.RUnlock()
	return rootLogger
}

// OverrideRootLoggerWithConfig replaces the process-wide logger according to settings.
func OverrideRootLoggerWithConfig(settings LogSettings) error {
	logger, err := NewLogger(settings)
	if err != nil {
		return err
	}
	OverrideRootLogger(logger)
	return nil
}

// OverrideRootLogger replaces the process-wide logger.
func OverrideRootLogger(logger *zap.Logger) {
	rootOnce.Do(func() {})

	rootMu.Lock()
	defer rootMu.Unlock()
	rootLogger = logger
}

// NewLogger builds a logger that writes to a rotated file, to stderr, or both.
func NewLogger(settings LogSettings) (*zap.Logger, error) {
	if !settings.Enabled {
		return zap.NewNop(), nil
	}

	level, err := ParseLevel(settings.Level)
	if err != nil {
		return nil, err
	}

	var cores []zapcore.Core
	if settings.File != "" {
		encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		syncer := ZapSyncerWithRotation(FileOptions{
			Filename:   settings.File,
			MaxSize:    settings.MaxSize,
			MaxBackups: settings.MaxBackups,
			Compress:   settings.CompressRotated,
		})
		cores = append(cores, zapcore.NewCore(encoder, syncer, level))
	}
	if settings.File == "" || settings.ConsoleOutput {
		cores = append(cores, consoleCore(level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

// ParseLevel accepts geth style level names ("ERROR", "warn", "TRACE", ...).
// An empty string means info.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "":
		return zapcore.InfoLevel, nil
	case "trace":
		return zapcore.DebugLevel, nil
	case "crit":
		return zapcore.FatalLevel, nil
	}

	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return l, err
	}
	return l, nil
}

func consoleCore(level zapcore.Level) zapcore.Core {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.Lock(os.Stderr), level)
}

func newConsoleLogger(level zapcore.Level) *zap.Logger {
	return zap.New(consoleCore(level), zap.AddCaller())
}
