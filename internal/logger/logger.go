package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the process logger. It discards everything until Init is called,
// so packages can log safely from tests.
var Log = zerolog.Nop()

// Config holds logger configuration
type Config struct {
	Level      string
	LogDir     string
	MaxSize    int  // Max size in MB before rotation
	MaxBackups int  // Max number of old log files to retain
	MaxAge     int  // Max number of days to retain old log files
	Compress   bool // Compress rotated files
	Console    bool // Also output to console
	File       bool // Write to LogDir/joblens.log
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      getEnv("LOG_LEVEL", "info"),
		LogDir:     getEnv("LOG_DIR", "./logs"),
		MaxSize:    100, // 100 MB
		MaxBackups: 3,
		MaxAge:     28, // 28 days
		Compress:   true,
		Console:    getEnv("ENV", "development") == "development",
		File:       getEnv("LOG_FILE", "true") != "false",
	}
}

// Init initializes the global logger with the given configuration
func Init(cfg Config) {
	zerolog.SetGlobalLevel(parseLogLevel(cfg.Level))

	var writers []io.Writer

	if cfg.File {
		if err := os.MkdirAll(cfg.LogDir, 0755); err != nil {
			panic("failed to create log directory: " + err.Error())
		}
		writers = append(writers, &lumberjack.Logger{
			Filename:   filepath.Join(cfg.LogDir, "joblens.log"),
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		})
	}

	if cfg.Console {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}

	// JSON to stdout when nothing else is configured, e.g. in containers
	if len(writers) == 0 {
		writers = append(writers, os.Stdout)
	}

	Log = zerolog.New(io.MultiWriter(writers...)).
		With().
		Timestamp().
		Caller().
		Logger()
}

// parseLogLevel converts string log level to zerolog.Level
func parseLogLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// getEnv gets environment variable or returns default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Info returns a new info level event
func Info() *zerolog.Event {
	return Log.Info()
}

// Error returns a new error level event
func Error() *zerolog.Event {
	return Log.Error()
}

// Debug returns a new debug level event
func Debug() *zerolog.Event {
	return Log.Debug()
}

// Warn returns a new warn level event
func Warn() *zerolog.Event {
	return Log.Warn()
}

// Fatal returns a new fatal level event
func Fatal() *zerolog.Event {
	return Log.Fatal()
}
