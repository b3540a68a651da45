//go:build js
// +build js

package interop

import (
	"runtime/debug"
	"strings"
	"syscall/js"

	"github.com/hack-pad/gameboot/internal/log"
	"github.com/pkg/errors"
)

// Func is a JS-callable Go func. A returned error is logged and JS receives undefined.
type Func = func(args []js.Value) (interface{}, error)

// SetFunc sets val[name] to fn, recovering and logging panics so one bad call does not kill the runtime.
func SetFunc(val js.Value, name string, fn Func) js.Func {
	jsWrappedFn := WrapFunc(name, fn)
	val.Set(name, jsWrappedFn)
	return jsWrappedFn
}

// WrapFunc is SetFunc without the assignment, for funcs stored in arrays.
func WrapFunc(name string, fn Func) js.Func {
	wrappedFn := func(_ js.Value, args []js.Value) (returnedVal interface{}) {
		log.Debug("running hook: ", name)

		const unhelpfulStackLines = 7
		defer handlePanic(unhelpfulStackLines)

		ret, err := fn(args)
		if err != nil {
			log.Error(errors.Wrap(err, name).Error())
			return nil
		}
		return ret
	}
	return js.FuncOf(wrappedFn)
}

func handlePanic(skipPanicLines int) {
	r := recover()
	if r == nil {
		return
	}
	stack := string(debug.Stack())
	for iter := 0; iter < skipPanicLines; iter++ {
		ix := strings.IndexRune(stack, '\n')
		if ix == -1 {
			break
		}
		stack = stack[ix+1:]
	}
	switch r := r.(type) {
	case js.Value:
		log.ErrorJSValues(
			js.ValueOf("panic:"),
			r,
			js.ValueOf("\n\n"+stack),
		)
	default:
		log.Errorf("panic: (%T) %+v\n\n%s", r, r, stack)
	}
}
