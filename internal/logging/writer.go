package logging

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// WriterLogger emits leveled, component-tagged lines to an io.Writer. The
// CLI uses it for stderr output in verbose mode, usually fanned out with the
// file logger via Multi.
type WriterLogger struct {
	mu        sync.Mutex
	w         io.Writer
	level     Level
	component string
}

// NewWriterLogger creates a writer-backed logger.
func NewWriterLogger(w io.Writer, level Level, component string) *WriterLogger {
	return &WriterLogger{w: w, level: level, component: component}
}

func (l *WriterLogger) log(level Level, format string, args ...any) {
	if level < l.level || l.w == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	timestamp := time.Now().Format("15:04:05")
	message := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.w, "%s [%s] [%s] %s\n", timestamp, levelString(level), l.component, message)
}

func (l *WriterLogger) Debug(format string, args ...any) { l.log(DebugLevel, format, args...) }
func (l *WriterLogger) Info(format string, args ...any)  { l.log(InfoLevel, format, args...) }
func (l *WriterLogger) Warn(format string, args ...any)  { l.log(WarnLevel, format, args...) }
func (l *WriterLogger) Error(format string, args ...any) { l.log(ErrorLevel, format, args...) }
