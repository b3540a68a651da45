//go:build js
// +build js

// Package jsfunc wraps Go funcs for JS callers.
package jsfunc

import "syscall/js"

type Func = func(this js.Value, args []js.Value) interface{}

// SingleUse releases the js.Func after its first call. Use for callbacks JS invokes exactly once.
func SingleUse(fn Func) js.Func {
	var wrapperFn js.Func
	wrapperFn = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		wrapperFn.Release()
		return fn(this, args)
	})
	return wrapperFn
}

// Arg returns args[i], or undefined when JS passed fewer arguments.
func Arg(args []js.Value, i int) js.Value {
	if i < len(args) {
		return args[i]
	}
	return js.Undefined()
}
