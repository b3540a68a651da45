package log

import (
	"fmt"
	"runtime"
	"strings"
)

const (
	commonPrefix = "github.com/hack-pad/gameboot/"
)

func getCaller(skip int) string {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return ""
	}
	if ix := strings.Index(file, commonPrefix); ix != -1 {
		file = file[ix+len(commonPrefix):]
	}
	fn := runtime.FuncForPC(pc).Name()
	fn = fn[strings.LastIndexAny(fn, "./")+1:]
	return fmt.Sprintf("%s:%d:%s()", file, line, fn)
}
