//go:build js
// +build js

package interop

import "syscall/js"

var uint8Array = js.Global().Get("Uint8Array")

func NewByteArray(b []byte) js.Value {
	buf := uint8Array.New(len(b))
	js.CopyBytesToJS(buf, b)
	return buf
}

func BytesFromJS(value js.Value) []byte {
	b := make([]byte, value.Length())
	js.CopyBytesToGo(b, value)
	return b
}
