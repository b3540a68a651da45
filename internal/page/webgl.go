//go:build js
// +build js

package page

import (
	"syscall/js"

	"github.com/pkg/errors"

	"github.com/hack-pad/gameboot/internal/dom"
	"github.com/hack-pad/gameboot/internal/log"
)

const contextLostMessage = "WebGL context lost. You will need to reload the page."

// NewWebGLContext creates the WebGL 2 context handed to the engine.
func (p *Page) NewWebGLContext(attributes map[string]interface{}) (js.Value, error) {
	glContext := p.canvas.Call("getContext", "webgl2", attributes)
	if glContext.IsNull() || glContext.IsUndefined() {
		return js.Null(), errors.New("WebGL 2 is not available in this browser")
	}
	p.canvas.AddEventListener("webglcontextlost", func(event js.Value) {
		log.Error(contextLostMessage)
		dom.Alert(contextLostMessage)
		event.Call("preventDefault")
	})
	return glContext, nil
}
