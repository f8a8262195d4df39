package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

// Level represents the severity of a log message.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

func levelString(l Level) string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

var (
	fileLoggerInstance *FileLogger
	fileLoggerOnce     sync.Once
)

// FileLogger writes component-tagged lines to scopedraft-debug.log in the
// user's home directory. All component loggers share one file handle.
type FileLogger struct {
	file      *os.File
	logger    *log.Logger
	level     Level
	mu        sync.Mutex
	component string
}

// NewComponentLogger creates a logger scoped to a specific component.
func NewComponentLogger(component string) *FileLogger {
	root := rootFileLogger()
	return &FileLogger{
		file:      root.file,
		logger:    root.logger,
		level:     root.level,
		component: component,
	}
}

func rootFileLogger() *FileLogger {
	fileLoggerOnce.Do(func() {
		fileLoggerInstance = newFileLogger(DebugLevel)
	})
	return fileLoggerInstance
}

func newFileLogger(level Level) *FileLogger {
	l := &FileLogger{level: level}

	home, err := os.UserHomeDir()
	if err != nil {
		return l
	}
	logPath := filepath.Join(home, "scopedraft-debug.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return l
	}

	l.file = file
	l.logger = log.New(file, "", 0)
	return l
}

// SetLevel sets the minimum level this logger emits.
func (l *FileLogger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Close closes the underlying log file.
func (l *FileLogger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func (l *FileLogger) log(level Level, format string, args ...any) {
	if level < l.level || l.logger == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	_, file, line, ok := runtime.Caller(2)
	if ok {
		file = filepath.Base(file)
	} else {
		file = "???"
		line = 0
	}

	component := l.component
	if component == "" {
		component = "SCOPEDRAFT"
	}

	// Format: 2026-08-28 12:34:56 [INFO] [Assembler] file.go:42 - message
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	message := fmt.Sprintf(format, args...)
	l.logger.Printf("%s [%s] [%s] %s:%d - %s",
		timestamp, levelString(level), component, file, line, message)
}

func (l *FileLogger) Debug(format string, args ...any) { l.log(DebugLevel, format, args...) }
func (l *FileLogger) Info(format string, args ...any)  { l.log(InfoLevel, format, args...) }
func (l *FileLogger) Warn(format string, args ...any)  { l.log(WarnLevel, format, args...) }
func (l *FileLogger) Error(format string, args ...any) { l.log(ErrorLevel, format, args...) }
