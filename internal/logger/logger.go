package logger

import (
	"log/slog"
	"os"
)

var log *slog.Logger

// Init настраивает глобальный логгер под окружение.
// production — JSON для сборщика логов, test — только warnings и выше,
// всё остальное (development) — текстовый формат с debug-уровнем.
func Init(env string) {
	opts := &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
	}

	var handler slog.Handler
	switch env {
	case "production":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	case "test":
		opts.Level = slog.LevelWarn
		opts.AddSource = false
		handler = slog.NewTextHandler(os.Stdout, opts)
	default:
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	log = slog.New(handler)
	slog.SetDefault(log)
}

// GetLogger возвращает глобальный логгер, при необходимости инициализируя его.
func GetLogger() *slog.Logger {
	if log == nil {
		Init("development")
	}
	return log
}

func Debug(msg string, args ...any) {
	GetLogger().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	GetLogger().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}

// Fatal логирует ошибку и завершает процесс.
func Fatal(msg string, args ...any) {
	GetLogger().Error(msg, args...)
	os.Exit(1)
}

// With создаёт дочерний логгер с дополнительными полями.
func With(args ...any) *slog.Logger {
	return GetLogger().With(args...)
}

// WithError создаёт логгер с полем error.
func WithError(err error) *slog.Logger {
	return GetLogger().With("error", err.Error())
}
