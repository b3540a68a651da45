//go:build js
// +build js

// Package page binds the bootstrap to the HTML shell's elements.
package page

import (
	"syscall/js"

	"github.com/hack-pad/gameboot/internal/config"
	"github.com/hack-pad/gameboot/internal/dom"
	"github.com/hack-pad/gameboot/internal/status"
)

type Page struct {
	status             *dom.Element
	progress           *dom.Element
	spinner            *dom.Element
	canvas             *dom.Element
	canvasContainer    *dom.Element
	logToggle          *dom.Element
	logToggleContainer *dom.Element
	logContainer       *dom.Element
	logOutput          *dom.Element

	initialStatus string
}

var _ status.Surface = &Page{}

func New(ids config.Elements) (*Page, error) {
	doc := dom.GetDocument()
	p := &Page{}
	for _, lookup := range []struct {
		id   string
		dest **dom.Element
	}{
		{ids.Status, &p.status},
		{ids.Progress, &p.progress},
		{ids.Spinner, &p.spinner},
		{ids.Canvas, &p.canvas},
		{ids.CanvasContainer, &p.canvasContainer},
		{ids.LogToggle, &p.logToggle},
		{ids.LogToggleContainer, &p.logToggleContainer},
		{ids.LogContainer, &p.logContainer},
		{ids.LogOutput, &p.logOutput},
	} {
		elem, err := doc.ElementByID(lookup.id)
		if err != nil {
			return nil, err
		}
		*lookup.dest = elem
	}

	p.initialStatus = p.status.InnerText()
	p.logToggle.SetChecked(false)
	p.logToggle.AddEventListener("change", func(js.Value) {
		p.toggleLog()
	})
	p.logOutput.SetValue("") // browsers restore textarea contents on reload
	return p, nil
}

// InitialStatusText is the status line the page shipped with, used as the download message.
func (p *Page) InitialStatusText() string {
	return p.initialStatus
}

func (p *Page) Canvas() *dom.Element {
	return p.canvas
}

func (p *Page) SetText(text string) {
	p.status.SetInnerText(text)
}

func (p *Page) SetProgress(progress *status.Progress) {
	if progress == nil {
		p.progress.SetProperty("value", js.Null())
		p.progress.SetProperty("max", js.Null())
		p.progress.SetHidden(true)
		return
	}
	p.progress.SetProperty("value", progress.Value)
	p.progress.SetProperty("max", progress.Max)
	p.progress.SetHidden(false)
}

func (p *Page) SetSpinnerVisible(visible bool) {
	p.spinner.SetHidden(!visible)
}

func (p *Page) SetCanvasVisible(visible bool) {
	p.canvasContainer.SetHidden(!visible)
}

func (p *Page) SetLogToggleVisible(visible bool) {
	display := "none"
	if visible {
		display = "inline-block"
	}
	p.logToggleContainer.SetStyle(map[string]interface{}{
		"display": display,
	})
}

// AppendLog adds a line of engine output to the log panel.
func (p *Page) AppendLog(text string) {
	p.logOutput.SetValue(p.logOutput.Value() + text + "\n")
	p.logOutput.ScrollToBottom()
}

func (p *Page) toggleLog() {
	p.logContainer.SetHidden(!p.logToggle.Checked())
	p.logOutput.ScrollToBottom()
}
