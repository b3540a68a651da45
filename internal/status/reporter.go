package status

import (
	"fmt"
	"time"

	"github.com/hack-pad/gameboot/internal/log"
)

// Reporter renders status notifications onto a Surface.
// It is not safe for concurrent use; all calls are expected on the JS event loop.
type Reporter struct {
	surface Surface
	options Options
	state   State

	revealed bool
}

func New(surface Surface, options Options) *Reporter {
	if options.Throttle <= 0 {
		options.Throttle = DefaultThrottle
	}
	if options.Now == nil {
		options.Now = time.Now
	}
	if options.Log == nil {
		options.Log = func(s string) {
			log.Raw(log.LevelLog, s)
		}
	}
	return &Reporter{
		surface: surface,
		options: options,
	}
}

func (r *Reporter) State() State {
	return r.state
}

func (r *Reporter) SetStatus(text string, force bool) {
	if text == "" && !force {
		return
	}
	if text == r.state.LastText {
		return
	}

	label, progress, isProgress := parseProgress(text)
	now := r.options.Now()
	if isProgress && !r.state.LastAccepted.IsZero() && now.Sub(r.state.LastAccepted) < r.options.Throttle {
		return
	}
	r.state.LastAccepted = now
	r.state.LastText = text

	if isProgress {
		r.surface.SetProgress(&progress)
		r.surface.SetSpinnerVisible(true)
	} else {
		label = text
		r.surface.SetProgress(nil)
		if label == "" {
			r.surface.SetSpinnerVisible(false)
		}
	}

	label = formatLabel(label, r.options.DownloadMessage)
	r.surface.SetText(label)
	r.options.Log(logPrefix + label)
}

// MonitorDependencies reports the loader's count of outstanding run dependencies.
func (r *Reporter) MonitorDependencies(remaining int) {
	if remaining > r.state.TotalDependencies {
		r.state.TotalDependencies = remaining
	}
	if remaining > 0 {
		total := r.state.TotalDependencies
		r.SetStatus(fmt.Sprintf("Preparing… (%d/%d)", total-remaining, total), false)
		return
	}
	r.SetStatus(allDownloadsComplete, false)
}

// OnFirstFrame reveals the game once the first frame is rendered and clears the status line.
func (r *Reporter) OnFirstFrame() {
	if !r.revealed {
		r.revealed = true
		r.surface.SetCanvasVisible(true)
		r.surface.SetLogToggleVisible(true)
	}
	r.SetStatus("", true)
}

// ReportError leaves the page in a visibly failed state. Nothing is retried.
func (r *Reporter) ReportError(message string) {
	r.SetStatus(errorPrefix+message, true)
}
