package status

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	progressPattern = regexp.MustCompile(`([^(]+)\((\d+(\.\d+)?)/(\d+)\)`)
	downloadPattern = regexp.MustCompile(`^Downloading(?: data)?\.\.\.`)
)

const ellipsis = "…"

// parseProgress splits text like "Downloading data... (12.5/40)" into its label and scaled progress bounds.
func parseProgress(text string) (label string, progress Progress, ok bool) {
	match := progressPattern.FindStringSubmatch(text)
	if match == nil {
		return "", Progress{}, false
	}
	current, err := strconv.ParseFloat(match[2], 64)
	if err != nil {
		return "", Progress{}, false
	}
	total, err := strconv.ParseFloat(match[4], 64)
	if err != nil {
		return "", Progress{}, false
	}
	return match[1], Progress{
		Value: scaleProgress(current),
		Max:   scaleProgress(total),
	}, true
}

// scaleProgress scales x by 100, clamped so a progress element always receives a non-negative int32.
func scaleProgress(x float64) int {
	scaled := math.Floor(x * 100)
	if scaled > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(scaled)
}

func formatLabel(label, downloadMessage string) string {
	label = downloadPattern.ReplaceAllLiteralString(label, downloadMessage)
	return strings.ReplaceAll(label, "...", ellipsis)
}
