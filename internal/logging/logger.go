package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "FLASHDECK_LOG_LEVEL"

// LogFileEnvVar names the file log output is appended to. The viewer owns
// the whole screen, so logging to stderr while it runs garbles the display.
const LogFileEnvVar = "FLASHDECK_LOG_FILE"

// DefaultOutput is used when no log file is configured.
const DefaultOutput = "stderr"

// Options selects the level and destination of log output. Empty fields
// fall back to the environment variables, then to defaults.
type Options struct {
	Level  string
	Output string
}

// ParseLevel maps a level name to a zap level. Unknown names map to info.
func ParseLevel(level string) zapcore.Level {
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

// Initialize creates the global logger from opts.
// If no level is configured anywhere, logging is disabled (silent mode).
func Initialize(opts Options) error {
	if opts.Level == "" {
		opts.Level = os.Getenv(LogLevelEnvVar)
	}
	if opts.Output == "" {
		opts.Output = os.Getenv(LogFileEnvVar)
	}
	if opts.Output == "" {
		opts.Output = DefaultOutput
	}

	if opts.Level == "" {
		logger = zap.NewNop()
		return nil
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(opts.Level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{opts.Output},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = built

	return nil
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Silent until Initialize runs, so library code never writes over the screen.
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogResize logs a terminal resize.
func LogResize(width, height int) {
	Debug("Terminal resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// LogNavigation logs a cursor move caused by a key press.
func LogNavigation(key string, from, to, total int) {
	Debug("Cursor moved",
		zap.String("key", key),
		zap.Int("from", from),
		zap.Int("to", to),
		zap.Int("cards", total),
	)
}

// LogSession logs a raw mode session transition ("acquired", "released").
func LogSession(event string, fields ...zap.Field) {
	Debug("Terminal session "+event, fields...)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
