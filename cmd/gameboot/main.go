//go:build js
// +build js

package main

import (
	"context"

	"github.com/hack-pad/gameboot/internal/browser"
	"github.com/hack-pad/gameboot/internal/config"
	"github.com/hack-pad/gameboot/internal/dom"
	"github.com/hack-pad/gameboot/internal/emfs"
	"github.com/hack-pad/gameboot/internal/global"
	"github.com/hack-pad/gameboot/internal/host"
	"github.com/hack-pad/gameboot/internal/interop"
	"github.com/hack-pad/gameboot/internal/log"
	"github.com/hack-pad/gameboot/internal/page"
	"github.com/hack-pad/gameboot/internal/status"
	"github.com/hack-pad/gameboot/internal/syncbridge"
	"github.com/hack-pad/gameboot/internal/vfs"
	"github.com/pkg/errors"
)

func main() {
	cfg, err := config.FromPage()
	if err != nil {
		log.Error("Invalid configuration, using defaults: ", err)
		cfg = config.Default()
	}
	log.SetLevel(cfg.Level())

	p, err := page.New(cfg.Elements)
	if err != nil {
		log.Error(err)
		dom.Alert("Failed to start: " + err.Error())
		return
	}

	downloadMessage := cfg.DownloadMessage
	if downloadMessage == "" {
		downloadMessage = p.InitialStatusText()
	}
	reporter := status.New(p, status.Options{
		DownloadMessage: downloadMessage,
		Throttle:        cfg.Throttle(),
	})
	dom.OnError(reporter.ReportError)

	report := browser.Check(dom.UserAgent())
	if !report.Supported {
		log.Warn("Unsupported browser: ", report)
		reporter.SetStatus("Warning: "+report.String()+" may not support WebGL 2", true)
	}
	if !report.Desktop {
		log.Warn("Running on a non-desktop device, performance may suffer: ", report)
	}

	glContext, err := p.NewWebGLContext(cfg.WebGL.Attributes())
	if err != nil {
		reporter.ReportError(err.Error())
		return
	}

	module := host.New(reporter, p, host.Options{
		Env:       cfg.Env,
		GLContext: glContext,
	})
	storage := syncbridge.NewDeferred(cfg.Storage.OpenTimeout())
	module.OnPreRun(func() error {
		return openStorage(cfg.Storage, module, storage)
	})

	bridge := syncbridge.New(storage, module)
	host.ExposeSyncFS(bridge)
	interop.SetFunc(global.Value(), "profile", interop.MemoryProfileJS)
	module.Install()
	log.Debug("Module installed")

	select {}
}

// openStorage prepares the persistent mount. The engine's FS only exists once preRun fires.
func openStorage(storage config.Storage, module *host.Module, deferred *syncbridge.Deferred) error {
	fsObject := module.Runtime("FS")
	if !fsObject.Truthy() {
		err := errors.New("engine FS is not available during preRun")
		deferred.Resolve(nil, err)
		return err
	}

	switch storage.Backend {
	case config.BackendIDBFS:
		idbfs := emfs.NewIDBFS(fsObject)
		err := idbfs.Mount(module.Runtime("IDBFS"), storage.MountPath)
		if err != nil {
			err = errors.Wrapf(err, "Failed to mount IDBFS at %s", storage.MountPath)
			deferred.Resolve(nil, err)
			return err
		}
		deferred.Resolve(idbfs, nil)
		return nil
	default:
		local := emfs.New(fsObject, storage.MountPath)
		if err := local.EnsureRoot(); err != nil {
			deferred.Resolve(nil, err)
			return err
		}
		go func() {
			store, err := vfs.NewIndexedDBStore(context.Background(), local, vfs.Options{
				Database:          storage.Database,
				RelaxedDurability: storage.RelaxedDurability,
			})
			if err != nil {
				log.Error(err)
			}
			deferred.Resolve(store, err)
		}()
		return nil
	}
}
