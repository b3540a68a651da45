//go:build js
// +build js

package interop

import "syscall/js"

var (
	jsBlob     = js.Global().Get("Blob")
	jsDocument = js.Global().Get("document")
	jsURL      = js.Global().Get("URL")
)

func StartDownload(contentType, fileName string, b []byte) {
	jsBuf := NewByteArray(b)
	blob := jsBlob.New([]interface{}{jsBuf}, map[string]interface{}{
		"type": contentType,
	})
	url := jsURL.Call("createObjectURL", blob)
	link := jsDocument.Call("createElement", "a")
	link.Set("href", url)
	link.Set("download", fileName)
	link.Call("click")
	jsURL.Call("revokeObjectURL", url)
}
