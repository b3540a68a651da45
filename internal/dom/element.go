//go:build js
// +build js

package dom

import (
	"runtime/debug"
	"syscall/js"

	"github.com/hack-pad/gameboot/internal/common"
	"github.com/hack-pad/gameboot/internal/log"
)

type Element struct {
	elem js.Value
}

type EventListener = func(event js.Value)

func NewFromJS(elem js.Value) *Element {
	if elem.IsNull() || elem.IsUndefined() {
		return nil
	}
	return &Element{elem}
}

func (e *Element) JSValue() js.Value {
	return e.elem
}

func (e *Element) GetProperty(property string) js.Value {
	return e.elem.Get(property)
}

func (e *Element) SetProperty(property string, value interface{}) {
	e.elem.Set(property, value)
}

func (e *Element) Call(method string, args ...interface{}) js.Value {
	return e.elem.Call(method, args...)
}

func (e *Element) SetInnerText(contents string) {
	e.elem.Set("innerText", contents)
}

func (e *Element) InnerText() string {
	return e.elem.Get("innerText").String()
}

func (e *Element) SetHidden(hidden bool) {
	e.elem.Set("hidden", hidden)
}

func (e *Element) Hidden() bool {
	return e.elem.Get("hidden").Bool()
}

func (e *Element) SetStyle(props map[string]interface{}) {
	style := e.elem.Get("style")
	for prop, value := range props {
		style.Set(prop, value)
	}
}

func (e *Element) AddEventListener(name string, listener EventListener) js.Func {
	listenerFunc := js.FuncOf(func(_ js.Value, args []js.Value) interface{} {
		defer common.CatchExceptionHandler(func(err error) {
			log.Error("recovered from panic: ", err, "\n", string(debug.Stack()))
		})
		listener(args[0])
		return nil
	})
	e.elem.Call("addEventListener", name, listenerFunc, false)
	return listenerFunc
}

func (e *Element) Value() string {
	return e.elem.Get("value").String()
}

func (e *Element) SetValue(value string) {
	e.elem.Set("value", value)
}

func (e *Element) Checked() bool {
	return e.elem.Get("checked").Bool()
}

func (e *Element) SetChecked(checked bool) {
	e.elem.Set("checked", checked)
}

// ScrollToBottom pins a scrollable element to its latest content.
func (e *Element) ScrollToBottom() {
	e.elem.Set("scrollTop", e.elem.Get("scrollHeight"))
}
