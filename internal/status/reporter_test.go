package status

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSurface struct {
	text           string
	texts          []string
	progress       *Progress
	progressCalls  int
	spinner        bool
	spinnerCalls   int
	canvas         bool
	canvasCalls    int
	logToggle      bool
	logToggleCalls int
}

func (f *fakeSurface) SetText(text string) {
	f.text = text
	f.texts = append(f.texts, text)
}

func (f *fakeSurface) SetProgress(p *Progress) {
	f.progress = p
	f.progressCalls++
}

func (f *fakeSurface) SetSpinnerVisible(visible bool) {
	f.spinner = visible
	f.spinnerCalls++
}

func (f *fakeSurface) SetCanvasVisible(visible bool) {
	f.canvas = visible
	f.canvasCalls++
}

func (f *fakeSurface) SetLogToggleVisible(visible bool) {
	f.logToggle = visible
	f.logToggleCalls++
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestReporter(t *testing.T) (*Reporter, *fakeSurface, *fakeClock, *[]string) {
	t.Helper()
	surface := &fakeSurface{spinner: true}
	clock := &fakeClock{now: time.Unix(1000, 0)}
	var logs []string
	r := New(surface, Options{
		DownloadMessage: "Fetching game data",
		Now:             clock.Now,
		Log: func(s string) {
			logs = append(logs, s)
		},
	})
	return r, surface, clock, &logs
}

func TestSetStatusEmptyWithoutForce(t *testing.T) {
	r, surface, _, logs := newTestReporter(t)
	r.SetStatus("Loading", false)
	r.SetStatus("", false)

	assert.Equal(t, "Loading", surface.text)
	assert.Equal(t, "Loading", r.State().LastText)
	assert.Len(t, *logs, 1)
}

func TestSetStatusDeduplicates(t *testing.T) {
	r, surface, clock, _ := newTestReporter(t)
	r.SetStatus("Compiling shaders", false)
	clock.Advance(time.Second)
	r.SetStatus("Compiling shaders", false)
	r.SetStatus("Compiling shaders", true)

	assert.Equal(t, []string{"Compiling shaders"}, surface.texts)
}

func TestSetStatusThrottlesProgress(t *testing.T) {
	r, surface, clock, _ := newTestReporter(t)
	r.SetStatus("Loading (1/10)", false)
	require.NotNil(t, surface.progress)
	assert.Equal(t, Progress{Value: 100, Max: 1000}, *surface.progress)

	clock.Advance(10 * time.Millisecond)
	r.SetStatus("Loading (2/10)", false)
	assert.Equal(t, Progress{Value: 100, Max: 1000}, *surface.progress)
	assert.Equal(t, "Loading (1/10)", r.State().LastText)

	clock.Advance(20 * time.Millisecond)
	r.SetStatus("Loading (3/10)", false)
	assert.Equal(t, Progress{Value: 300, Max: 1000}, *surface.progress)
	assert.Equal(t, "Loading (3/10)", r.State().LastText)
	assert.Equal(t, clock.now, r.State().LastAccepted)
}

func TestSetStatusDoesNotThrottlePlainText(t *testing.T) {
	r, surface, clock, _ := newTestReporter(t)
	r.SetStatus("Loading (1/10)", false)
	clock.Advance(time.Millisecond)
	r.SetStatus("Starting engine", false)

	assert.Equal(t, "Starting engine", surface.text)
	assert.Nil(t, surface.progress)
}

func TestSetStatusFractionalProgress(t *testing.T) {
	r, surface, _, logs := newTestReporter(t)
	r.SetStatus("Downloading data... (12.5/40)", false)

	require.NotNil(t, surface.progress)
	assert.Equal(t, Progress{Value: 1250, Max: 4000}, *surface.progress)
	assert.True(t, surface.spinner)
	assert.Equal(t, "Fetching game data ", surface.text)
	assert.Equal(t, []string{"[STATUS] Fetching game data "}, *logs)
}

func TestSetStatusPlainTextKeepsSpinner(t *testing.T) {
	r, surface, _, _ := newTestReporter(t)
	r.SetStatus("Running... please wait...", false)

	assert.Nil(t, surface.progress)
	assert.Equal(t, 1, surface.progressCalls)
	assert.Zero(t, surface.spinnerCalls)
	assert.True(t, surface.spinner)
	assert.Equal(t, "Running… please wait…", surface.text)
}

func TestSetStatusForcedEmptyHidesSpinner(t *testing.T) {
	r, surface, _, _ := newTestReporter(t)
	r.SetStatus("Loading (5/10)", false)
	r.SetStatus("", true)

	assert.Nil(t, surface.progress)
	assert.False(t, surface.spinner)
	assert.Equal(t, "", surface.text)
	assert.Equal(t, "", r.State().LastText)
}

func TestMonitorDependencies(t *testing.T) {
	r, surface, clock, _ := newTestReporter(t)
	var statuses []string
	for _, remaining := range []int{3, 1, 0} {
		r.MonitorDependencies(remaining)
		statuses = append(statuses, r.State().LastText)
		clock.Advance(time.Second)
	}

	assert.Equal(t, []string{
		"Preparing… (0/3)",
		"Preparing… (2/3)",
		"All downloads complete.",
	}, statuses)
	assert.Equal(t, []string{"Preparing… ", "Preparing… ", "All downloads complete."}, surface.texts)
	assert.Equal(t, 3, r.State().TotalDependencies)
}

func TestMonitorDependenciesHighWaterMark(t *testing.T) {
	r, _, clock, _ := newTestReporter(t)
	for _, remaining := range []int{2, 5, 1, 4, 0, 3} {
		before := r.State().TotalDependencies
		r.MonitorDependencies(remaining)
		assert.GreaterOrEqual(t, r.State().TotalDependencies, before)
		clock.Advance(time.Second)
	}
	assert.Equal(t, 5, r.State().TotalDependencies)
	assert.Equal(t, "Preparing… (2/5)", r.State().LastText)
}

func TestMonitorDependenciesCompleteIgnoresThrottle(t *testing.T) {
	r, _, _, _ := newTestReporter(t)
	r.MonitorDependencies(4)
	r.MonitorDependencies(2) // dropped, too soon after the last progress update
	assert.Equal(t, "Preparing… (0/4)", r.State().LastText)

	r.MonitorDependencies(0)
	assert.Equal(t, "All downloads complete.", r.State().LastText)
}

func TestOnFirstFrame(t *testing.T) {
	r, surface, _, _ := newTestReporter(t)
	r.SetStatus("All downloads complete.", false)

	r.OnFirstFrame()
	assert.True(t, surface.canvas)
	assert.True(t, surface.logToggle)
	assert.False(t, surface.spinner)
	assert.Equal(t, "", surface.text)

	r.OnFirstFrame()
	assert.Equal(t, 1, surface.canvasCalls)
	assert.Equal(t, 1, surface.logToggleCalls)
	assert.True(t, surface.canvas)
}

func TestReportError(t *testing.T) {
	r, surface, _, logs := newTestReporter(t)
	r.SetStatus("Loading (1/2)", false)
	r.ReportError("Uncaught RuntimeError: unreachable")

	assert.Equal(t, "Error: Uncaught RuntimeError: unreachable", surface.text)
	assert.Nil(t, surface.progress)
	assert.Equal(t, "[STATUS] Error: Uncaught RuntimeError: unreachable", (*logs)[len(*logs)-1])
}

func TestParseProgress(t *testing.T) {
	for _, tc := range []struct {
		text        string
		expectOK    bool
		expectLabel string
		expect      Progress
	}{
		{text: "Downloading (0/100)", expectOK: true, expectLabel: "Downloading ", expect: Progress{0, 10000}},
		{text: "Loading (3.75/9)", expectOK: true, expectLabel: "Loading ", expect: Progress{375, 900}},
		{text: "Downloading data... (100000000000000000000/200000000000000000000)", expectOK: true, expectLabel: "Downloading data... ", expect: Progress{math.MaxInt32, math.MaxInt32}},
		{text: "Unpacking (21474837/21474836)", expectOK: true, expectLabel: "Unpacking ", expect: Progress{math.MaxInt32, 2147483600}},
		{text: "(1/2)"},
		{text: "Loading (1/2.5)"},
		{text: "Loading"},
		{text: ""},
	} {
		tc := tc
		t.Run(tc.text, func(t *testing.T) {
			label, progress, ok := parseProgress(tc.text)
			assert.Equal(t, tc.expectOK, ok)
			if ok {
				assert.Equal(t, tc.expectLabel, label)
				assert.Equal(t, tc.expect, progress)
			}
		})
	}
}

func TestFormatLabel(t *testing.T) {
	assert.Equal(t, "Fetching", formatLabel("Downloading...", "Fetching"))
	assert.Equal(t, "Fetching (x)", formatLabel("Downloading data... (x)", "Fetching"))
	assert.Equal(t, "Still Downloading…", formatLabel("Still Downloading...", "Fetching"))
	assert.Equal(t, "Fetching… (unpacking…)", formatLabel("Downloading data...... (unpacking...)", "Fetching"))
}

func TestSetStatusHugeProgressStaysPositive(t *testing.T) {
	r, surface, _, _ := newTestReporter(t)
	r.SetStatus("Downloading data... (100000000000000000000/200000000000000000000)", false)
	require.NotNil(t, surface.progress)
	assert.Equal(t, Progress{Value: math.MaxInt32, Max: math.MaxInt32}, *surface.progress)
}
