package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	for _, tc := range []struct {
		description     string
		userAgent       string
		expectSupported bool
	}{
		{
			description:     "current chrome",
			userAgent:       "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			expectSupported: true,
		},
		{
			description:     "current firefox",
			userAgent:       "Mozilla/5.0 (X11; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/115.0",
			expectSupported: true,
		},
		{
			description: "old chrome",
			userAgent:   "Mozilla/5.0 (Windows NT 6.1; WOW64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/40.0.2214.115 Safari/537.36",
		},
		{
			description: "internet explorer",
			userAgent:   "Mozilla/5.0 (Windows NT 10.0; WOW64; Trident/7.0; rv:11.0) like Gecko",
		},
		{
			description: "unknown",
			userAgent:   "curl/8.4.0",
		},
	} {
		tc := tc
		t.Run(tc.description, func(t *testing.T) {
			report := Check(tc.userAgent)
			assert.Equal(t, tc.expectSupported, report.Supported)
		})
	}
}

func TestCheckReportsVersion(t *testing.T) {
	report := Check("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	assert.Equal(t, "Chrome", report.Browser)
	assert.Equal(t, 120, report.Version)
	assert.True(t, report.Desktop)
	assert.Equal(t, "Chrome 120 on Windows", report.String())
}
