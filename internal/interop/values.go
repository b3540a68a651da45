//go:build js
// +build js

package interop

import (
	"strings"
	"syscall/js"
)

var jsString = js.Global().Get("String")

// JoinArgs joins JS arguments with spaces the way console.log renders them.
func JoinArgs(args []js.Value) string {
	strs := make([]string, 0, len(args))
	for _, arg := range args {
		strs = append(strs, jsString.Invoke(arg).String())
	}
	return strings.Join(strs, " ")
}
