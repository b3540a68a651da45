//go:build js
// +build js

package dom

import (
	"syscall/js"
)

var (
	window   = NewFromJS(js.Global())
	jsString = js.Global().Get("String")
)

func Alert(message string) {
	window.elem.Call("alert", message)
}

func UserAgent() string {
	return window.GetProperty("navigator").Get("userAgent").String()
}

// OnError installs the page's last-resort error handler.
func OnError(handler func(message string)) js.Func {
	fn := js.FuncOf(func(_ js.Value, args []js.Value) interface{} {
		message := "unknown error"
		if len(args) > 0 {
			message = jsString.Invoke(args[0]).String()
		}
		handler(message)
		return nil
	})
	window.SetProperty("onerror", fn)
	return fn
}
