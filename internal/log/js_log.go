//go:build js
// +build js

package log

import (
	"syscall/js"

	"github.com/hack-pad/gameboot/internal/global"
)

var (
	console = js.Global().Get("console")
)

const logLevelKey = "logLevel"

func init() {
	global.SetDefault(logLevelKey, LevelLog.String())
	global.SetDefault("setLogLevel", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) < 1 {
			return nil
		}
		level, err := ParseLevel(args[0].String())
		if err != nil {
			Warn(err)
			return logLevel.String()
		}
		SetLevel(level)
		return logLevel.String()
	}))
}

func SetLevel(level Level) {
	if level.Valid() {
		logLevel = level
		global.Set(logLevelKey, logLevel.String())
	}
}

func ErrorJSValues(args ...interface{}) int {
	return logJSValues(LevelError, 1, args...)
}

func logJSValues(kind Level, skip int, args ...interface{}) int {
	if kind < logLevel {
		return 0
	}
	caller := getCaller(skip + 1)
	args = append([]interface{}{caller}, args...)
	console.Call(kind.String(), args...)
	return 0
}

func writeLog(l Level, s string) {
	console.Call(l.String(), s)
}
