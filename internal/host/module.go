//go:build js
// +build js

// Package host builds the engine's Module object and the calls native code makes back into the page.
package host

import (
	"sort"
	"syscall/js"

	"github.com/hack-pad/gameboot/internal/common"
	"github.com/hack-pad/gameboot/internal/interop"
	"github.com/hack-pad/gameboot/internal/jsfunc"
	"github.com/hack-pad/gameboot/internal/log"
	"github.com/hack-pad/gameboot/internal/page"
	"github.com/hack-pad/gameboot/internal/status"
	"github.com/hack-pad/gameboot/internal/syncbridge"
	"github.com/pkg/errors"
)

const (
	moduleKey          = "Module"
	syncFSKey          = "SyncFS"
	syncCallbackExport = "vfs_sync_callback"
)

type Module struct {
	value    js.Value
	reporter *status.Reporter
	page     *page.Page
	preRun   []func() error
}

type Options struct {
	// Env is copied into the engine's ENV during preRun.
	Env       map[string]string
	GLContext js.Value
}

var _ syncbridge.Host = &Module{}

func New(reporter *status.Reporter, p *page.Page, options Options) *Module {
	m := &Module{
		value:    js.Global().Get("Object").New(),
		reporter: reporter,
		page:     p,
	}
	m.OnPreRun(func() error {
		return m.setEnv(options.Env)
	})

	m.value.Set("preRun", []interface{}{
		interop.WrapFunc("preRun", m.runPreRun),
	})
	m.value.Set("postRun", []interface{}{})
	m.value.Set("canvas", p.Canvas().JSValue())
	m.value.Set("preinitializedWebGLContext", options.GLContext)
	m.value.Set("totalDependencies", 0)

	interop.SetFunc(m.value, "onFirstFrame", m.onFirstFrame)
	interop.SetFunc(m.value, "print", m.print)
	interop.SetFunc(m.value, "printErr", m.printErr)
	interop.SetFunc(m.value, "setStatus", m.setStatus)
	interop.SetFunc(m.value, "monitorRunDependencies", m.monitorRunDependencies)
	return m
}

// OnPreRun queues fn to run before the engine's main. The first error is reported on the status line.
func (m *Module) OnPreRun(fn func() error) {
	m.preRun = append(m.preRun, fn)
}

// Install publishes the Module object. Must happen before the engine's loader script runs.
func (m *Module) Install() {
	js.Global().Set(moduleKey, m.value)
}

// runPreRun runs every queued hook, even after a failure, so later hooks still settle their state.
// The first error is reported.
func (m *Module) runPreRun([]js.Value) (interface{}, error) {
	var firstErr error
	for _, fn := range m.preRun {
		err := fn()
		if err == nil {
			continue
		}
		if firstErr == nil {
			firstErr = err
			m.reporter.ReportError(err.Error())
		} else {
			log.Error(err)
		}
	}
	return nil, firstErr
}

func (m *Module) onFirstFrame([]js.Value) (interface{}, error) {
	m.reporter.OnFirstFrame()
	return nil, nil
}

func (m *Module) print(args []js.Value) (interface{}, error) {
	text := interop.JoinArgs(args)
	log.Raw(log.LevelLog, text)
	m.page.AppendLog(text)
	return nil, nil
}

func (m *Module) printErr(args []js.Value) (interface{}, error) {
	log.Raw(log.LevelError, interop.JoinArgs(args))
	return nil, nil
}

func (m *Module) setStatus(args []js.Value) (interface{}, error) {
	var text string
	if jsText := jsfunc.Arg(args, 0); jsText.Type() == js.TypeString {
		text = jsText.String()
	}
	m.reporter.SetStatus(text, jsfunc.Arg(args, 1).Truthy())
	return nil, nil
}

func (m *Module) monitorRunDependencies(args []js.Value) (interface{}, error) {
	left := jsfunc.Arg(args, 0)
	if left.Type() != js.TypeNumber {
		return nil, errors.Errorf("expected dependency count, got %s", left.Type())
	}
	m.reporter.MonitorDependencies(left.Int())
	m.value.Set("totalDependencies", m.reporter.State().TotalDependencies)
	return nil, nil
}

// SyncCallback resumes the native continuation waiting on a filesystem sync.
func (m *Module) SyncCallback(isLoad bool, errMessage string, handle syncbridge.CallbackHandle) {
	defer common.CatchExceptionHandler(func(err error) {
		log.Errorf("Failed to call %s for %v: %s", syncCallbackExport, handle, err)
	})
	var jsErr interface{} = js.Null()
	if errMessage != "" {
		jsErr = errMessage
	}
	m.value.Call("ccall",
		syncCallbackExport,
		js.Null(),
		[]interface{}{"boolean", "string", "number"},
		[]interface{}{isLoad, jsErr, float64(handle)},
	)
}

// Runtime returns an engine runtime object such as FS or ENV.
// Builds export it on Module or leave it global, depending on their link flags.
func (m *Module) Runtime(name string) js.Value {
	if value := m.value.Get(name); value.Truthy() {
		return value
	}
	return js.Global().Get(name)
}

func (m *Module) setEnv(env map[string]string) error {
	jsEnv := m.Runtime("ENV")
	if !jsEnv.Truthy() {
		return errors.New("engine ENV is not available during preRun")
	}
	keys := make([]string, 0, len(env))
	for key := range env {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		jsEnv.Set(key, env[key])
		log.Debugf("ENV %s=%s", key, env[key])
	}
	return nil
}
