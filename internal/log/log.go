package log

import (
	"fmt"

	"github.com/pkg/errors"
)

type Level int

const (
	LevelDebug Level = iota
	LevelLog
	LevelWarn
	LevelError
)

var logLevel = LevelLog

func (l Level) Valid() bool {
	switch l {
	case LevelDebug, LevelLog, LevelWarn, LevelError:
		return true
	default:
		return false
	}
}

// String returns the console method name for the level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "log"
	}
}

func ParseLevel(level string) (Level, error) {
	switch level {
	case LevelDebug.String():
		return LevelDebug, nil
	case LevelLog.String(), "":
		return LevelLog, nil
	case LevelWarn.String():
		return LevelWarn, nil
	case LevelError.String():
		return LevelError, nil
	default:
		return -1, errors.Errorf("unknown log level %q", level)
	}
}

func CurrentLevel() Level {
	return logLevel
}

func Debugf(format string, args ...interface{}) int {
	return logf(LevelDebug, 1, format, args...)
}

func Printf(format string, args ...interface{}) int {
	return logf(LevelLog, 1, format, args...)
}

func Warnf(format string, args ...interface{}) int {
	return logf(LevelWarn, 1, format, args...)
}

func Errorf(format string, args ...interface{}) int {
	return logf(LevelError, 1, format, args...)
}

func logf(kind Level, skip int, format string, args ...interface{}) int {
	if kind < logLevel {
		return 0
	}
	s := fmt.Sprintf(format, args...)
	if caller := getCaller(skip + 1); caller != "" {
		s = caller + " - " + s
	}
	writeLog(kind, s)
	return len(s)
}

func Debug(args ...interface{}) int {
	return log(LevelDebug, 1, args...)
}

func Print(args ...interface{}) int {
	return log(LevelLog, 1, args...)
}

func Warn(args ...interface{}) int {
	return log(LevelWarn, 1, args...)
}

func Error(args ...interface{}) int {
	return log(LevelError, 1, args...)
}

func log(kind Level, skip int, args ...interface{}) int {
	if kind < logLevel {
		return 0
	}
	s := fmt.Sprint(args...)
	if caller := getCaller(skip + 1); caller != "" {
		s = caller + " - " + s
	}
	writeLog(kind, s)
	return len(s)
}

// Raw writes 's' without a caller prefix. Used for text forwarded from the engine.
func Raw(kind Level, s string) {
	if kind < logLevel {
		return
	}
	writeLog(kind, s)
}
