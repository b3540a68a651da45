//go:build js
// +build js

package config

import (
	"syscall/js"

	"github.com/hack-pad/gameboot/internal/global"
)

const configKey = "config"

// FromPage loads overrides from window.gameboot.config, a TOML string set before the wasm starts.
func FromPage() (Config, error) {
	overrides := global.Get(configKey)
	if overrides.Type() != js.TypeString {
		return Load(nil)
	}
	return Load([]byte(overrides.String()))
}
