// Package logger is the leveled logger shared by the server, the CLI and
// the bot. The calculators never log.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level controls the verbosity of the logger.
type Level int

const (
	// LevelOff disables all output.
	LevelOff Level = iota
	// LevelNormal writes info, warnings and errors.
	LevelNormal
	// LevelVerbose adds debug output.
	LevelVerbose
)

func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelVerbose:
		return "verbose"
	default:
		return "normal"
	}
}

// ParseLevel reads LOG_LEVEL values. Unknown and empty values mean normal.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "none", "quiet":
		return LevelOff
	case "verbose", "debug":
		return LevelVerbose
	default:
		return LevelNormal
	}
}

// Logger is safe for concurrent use.
type Logger struct {
	mu    sync.RWMutex
	level Level
	out   *log.Logger
}

// New creates a logger writing to out, or to os.Stderr when out is nil.
func New(level Level, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return &Logger{level: level, out: log.New(out, "", log.LstdFlags)}
}

// Nop returns a logger that discards everything. Tests use it.
func Nop() *Logger { return New(LevelOff, io.Discard) }

// SetLevel changes the level at runtime.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetLevel returns the current level.
func (l *Logger) GetLevel() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

func (l *Logger) write(min Level, tag, format string, args []any) {
	if l == nil {
		return
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.level < min {
		return
	}
	l.out.Output(3, tag+" "+fmt.Sprintf(format, args...))
}

// Debug is only written in verbose mode.
func (l *Logger) Debug(format string, args ...any) { l.write(LevelVerbose, "[DBG]", format, args) }

func (l *Logger) Info(format string, args ...any) { l.write(LevelNormal, "[INF]", format, args) }

func (l *Logger) Warn(format string, args ...any) { l.write(LevelNormal, "[WRN]", format, args) }

func (l *Logger) Error(format string, args ...any) { l.write(LevelNormal, "[ERR]", format, args) }
