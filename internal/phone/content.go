package phone

import (
	"fmt"
	"image"
	"math"
)

// ContentKind selects what the screen layer shows.
type ContentKind int

const (
	ContentBlank ContentKind = iota
	ContentBoot
	ContentHome
	ContentError
)

func (k ContentKind) String() string {
	switch k {
	case ContentBlank:
		return "blank"
	case ContentBoot:
		return "boot"
	case ContentHome:
		return "home"
	case ContentError:
		return "error"
	}
	return "unknown"
}

// DefaultApps is the home screen's app grid when no background is set.
var DefaultApps = []string{"📱", "📧", "🌐", "📷", "🎵", "🗓️", "⚙️", "🎮"}

// Content is a renderer-independent description of the screen layer.
type Content struct {
	Kind       ContentKind
	Title      string
	Progress   int
	Time       string
	Date       string
	Apps       []string
	Background image.Image
	Message    string
	// Indicator is the transient volume label; empty when hidden.
	Indicator string
}

// BootContent is the boot splash at progress percent.
func BootContent(title string, progress float64) Content {
	p := int(math.Round(progress))
	if p > 100 {
		p = 100
	}
	if p < 0 {
		p = 0
	}
	return Content{Kind: ContentBoot, Title: title, Progress: p}
}

// VolumeLabel is the indicator text for level.
func VolumeLabel(level int) string {
	return fmt.Sprintf("Volume: %d", level)
}
