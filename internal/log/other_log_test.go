//go:build !js
// +build !js

package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	t.Setenv("DEBUG", "true")
	var buf bytes.Buffer
	previous := output
	output = &buf
	t.Cleanup(func() {
		output = previous
	})
	return &buf
}

func TestRawHasNoCallerPrefix(t *testing.T) {
	buf := captureOutput(t)
	Raw(LevelLog, "[STATUS] Preparing…")
	assert.Equal(t, "log: [STATUS] Preparing…\n", buf.String())
}

func TestPrintHasCallerPrefix(t *testing.T) {
	buf := captureOutput(t)
	Print("hello")
	assert.Contains(t, buf.String(), "other_log_test.go:")
	assert.Contains(t, buf.String(), " - hello\n")
}
