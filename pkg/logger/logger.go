// Package logger реализует простой файловый логгер с уровнями.
// Интерфейс printf-style (Info/Warn/Error(format, v...)): все пакеты
// сервиса объявляют у себя узкий Logger-интерфейс и принимают этот тип.
package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// Уровни логирования в порядке возрастания важности.
const (
	LevelDebug = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger файловый логгер с фильтрацией по уровню.
type Logger struct {
	level int
	out   *os.File
	log   *log.Logger
}

// New создает логгер, пишущий в указанный файл.
// level: "debug" | "info" | "warn" | "error" (по умолчанию info).
func New(file string, level string) (*Logger, error) {
	f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logger: failed to open log file %s: %w", file, err)
	}

	return &Logger{
		level: parseLevel(level),
		out:   f,
		log:   log.New(f, "", log.LstdFlags|log.Lmicroseconds),
	}, nil
}

func parseLevel(level string) int {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Close закрывает файл логов.
func (l *Logger) Close() error {
	return l.out.Close()
}

func (l *Logger) write(level int, prefix, format string, v ...interface{}) {
	if level < l.level {
		return
	}
	l.log.Printf(prefix+" "+format, v...)
}

// Debug пишет отладочное сообщение.
func (l *Logger) Debug(format string, v ...interface{}) {
	l.write(LevelDebug, "[DEBUG]", format, v...)
}

// Info пишет информационное сообщение.
func (l *Logger) Info(format string, v ...interface{}) {
	l.write(LevelInfo, "[INFO]", format, v...)
}

// Warn пишет предупреждение.
func (l *Logger) Warn(format string, v ...interface{}) {
	l.write(LevelWarn, "[WARN]", format, v...)
}

// Error пишет сообщение об ошибке.
func (l *Logger) Error(format string, v ...interface{}) {
	l.write(LevelError, "[ERROR]", format, v...)
}

// Fatal пишет сообщение об ошибке и завершает процесс.
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.write(LevelError, "[FATAL]", format, v...)
	l.out.Close()
	os.Exit(1)
}
