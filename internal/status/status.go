// Package status turns the engine loader's free-text status notifications
// into the page's loading UI: a status line, an optional progress bar and a
// busy spinner.
package status

import "time"

const (
	DefaultThrottle = 30 * time.Millisecond

	allDownloadsComplete = "All downloads complete."
	errorPrefix          = "Error: "
	logPrefix            = "[STATUS] "
)

// Surface is the set of UI capabilities the Reporter drives.
type Surface interface {
	SetText(text string)
	// SetProgress shows the progress bar with the given bounds, or clears and hides it when p is nil.
	SetProgress(p *Progress)
	SetSpinnerVisible(visible bool)
	SetCanvasVisible(visible bool)
	SetLogToggleVisible(visible bool)
}

// Progress holds progress bar bounds, scaled by 100.
type Progress struct {
	Value int
	Max   int
}

// State is the Reporter's de-duplication and throttling memory.
type State struct {
	LastText string
	// LastAccepted is when the last update was accepted. The zero value means never.
	LastAccepted time.Time
	// TotalDependencies is the high-water mark of outstanding loader dependencies.
	TotalDependencies int
}

type Options struct {
	// DownloadMessage replaces a leading "Downloading..." or "Downloading data..." in status text.
	DownloadMessage string
	// Throttle is the minimum time between accepted progress updates. Defaults to DefaultThrottle.
	Throttle time.Duration
	Now      func() time.Time
	// Log receives every displayed status line. Defaults to the package logger.
	Log func(string)
}
