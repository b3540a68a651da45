// Package browser decides whether the visitor's browser can run the engine.
package browser

import (
	"fmt"

	"github.com/avct/uasurfer"
)

// minimum major versions shipping WebGL 2
var minWebGL2Version = map[uasurfer.BrowserName]int{
	uasurfer.BrowserChrome:  56,
	uasurfer.BrowserFirefox: 51,
	uasurfer.BrowserOpera:   43,
	uasurfer.BrowserSafari:  15,
	uasurfer.BrowserSamsung: 7,
}

type Report struct {
	Browser   string
	Version   int
	OS        string
	Desktop   bool
	Supported bool
}

func (r Report) String() string {
	return fmt.Sprintf("%s %d on %s", r.Browser, r.Version, r.OS)
}

func Check(userAgent string) Report {
	ua := uasurfer.Parse(userAgent)
	report := Report{
		Browser: ua.Browser.Name.StringTrimPrefix(),
		Version: ua.Browser.Version.Major,
		OS:      ua.OS.Name.StringTrimPrefix(),
		Desktop: ua.DeviceType == uasurfer.DeviceComputer,
	}
	if minVersion, ok := minWebGL2Version[ua.Browser.Name]; ok {
		report.Supported = report.Version >= minVersion
	}
	return report
}
