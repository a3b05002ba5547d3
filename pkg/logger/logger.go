package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Level уровень логирования
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel конвертирует строку из конфига в Level
// Неизвестные значения трактуются как info
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// Logger пишет сообщения в stdout и (опционально) в файл
type Logger struct {
	mu    sync.Mutex
	level Level
	out   *log.Logger
	file  *os.File
}

// New создает логгер. Если filePath пустой - пишет только в stdout
func New(filePath string, level string) (*Logger, error) {
	writers := []io.Writer{os.Stdout}

	var file *os.File
	if filePath != "" {
		if dir := filepath.Dir(filePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("logger: create log dir: %w", err)
			}
		}

		f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: open log file: %w", err)
		}
		file = f
		writers = append(writers, f)
	}

	return NewWithWriter(io.MultiWriter(writers...), level, file), nil
}

// NewWithWriter создает логгер поверх произвольного writer (используется в тестах)
func NewWithWriter(w io.Writer, level string, file *os.File) *Logger {
	return &Logger{
		level: ParseLevel(level),
		out:   log.New(w, "", log.LstdFlags|log.Lmicroseconds),
		file:  file,
	}
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.write(LevelDebug, format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.write(LevelInfo, format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.write(LevelWarn, format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.write(LevelError, format, v...)
}

// Fatal логирует ошибку и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.write(LevelError, format, v...)
	l.Close()
	os.Exit(1)
}

// Close закрывает файл логов
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		_ = l.file.Close()
		l.file = nil
	}
}

func (l *Logger) write(level Level, format string, v ...interface{}) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.out.Printf("[%s] %s", level, fmt.Sprintf(format, v...))
}
