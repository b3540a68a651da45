//go:build !js
// +build !js

package log

import (
	"fmt"
	"io"
	"os"
)

var output io.Writer = os.Stderr

func SetLevel(level Level) {
	if level.Valid() {
		logLevel = level
	}
}

func writeLog(l Level, s string) {
	if os.Getenv("DEBUG") == "true" {
		fmt.Fprintf(output, "%s: %s\n", l.String(), s)
	}
}
