//go:build js
// +build js

// Package global manages the window.gameboot namespace shared with the page.
package global

import "syscall/js"

const globalKey = "gameboot"

var globals js.Value

func init() {
	global := js.Global()
	if !global.Get(globalKey).Truthy() {
		global.Set(globalKey, map[string]interface{}{})
	}
	globals = global.Get(globalKey)
}

func SetDefault(key string, value interface{}) {
	if globals.Get(key).IsUndefined() {
		globals.Set(key, value)
	}
}

func Set(key string, value interface{}) {
	globals.Set(key, value)
}

func Get(key string) js.Value {
	return globals.Get(key)
}

// Value is the namespace object itself, for attaching funcs.
func Value() js.Value {
	return globals
}
