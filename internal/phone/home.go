package phone

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/webp"
	"golang.org/x/text/language"
)

// ErrorMessage is shown when the home screen cannot be built.
const ErrorMessage = "System error"

// Backdrop supplies the home screen's background image.
type Backdrop interface {
	Load() (image.Image, error)
}

// FileBackdrop decodes an image file once and caches it. JPEG, PNG, WebP and
// TGA are supported.
type FileBackdrop struct {
	Path string

	img image.Image
}

func (b *FileBackdrop) Load() (image.Image, error) {
	if b.img != nil {
		return b.img, nil
	}
	data, err := os.ReadFile(b.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read background: %w", err)
	}
	img, err := decodeImage(b.Path, data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode background %s: %w", b.Path, err)
	}
	b.img = img
	return img, nil
}

// decodeImage picks a decoder from the file's signature. TGA has no
// signature, so it is chosen by extension; image.Decode cannot be used
// because the tga package registers itself as matching any input.
func decodeImage(path string, data []byte) (image.Image, error) {
	r := bytes.NewReader(data)
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return png.Decode(r)
	case bytes.HasPrefix(data, []byte{0xff, 0xd8}):
		return jpeg.Decode(r)
	case len(data) >= 12 && string(data[:4]) == "RIFF" && string(data[8:12]) == "WEBP":
		return webp.Decode(r)
	case strings.EqualFold(filepath.Ext(path), ".tga"):
		return tga.Decode(r)
	}
	return nil, errors.New("unsupported image format")
}

// HomeScreen builds home content for a locale.
type HomeScreen struct {
	Locale   language.Tag
	Backdrop Backdrop
}

// NewHomeScreen parses locale (BCP 47); an unparseable tag falls back to
// American English.
func NewHomeScreen(locale string, backdrop Backdrop) *HomeScreen {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	return &HomeScreen{Locale: tag, Backdrop: backdrop}
}

// Build returns the home content at now. A panic while building is reported
// as an error so the caller can fall back to ErrorContent.
func (h *HomeScreen) Build(now time.Time) (c Content, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("home screen panic: %v", r)
		}
	}()
	if h == nil {
		return Content{}, errors.New("home screen not configured")
	}
	c = Content{
		Kind: ContentHome,
		Time: FormatClock(now),
		Date: FormatDate(now, h.Locale),
	}
	if h.Backdrop == nil {
		c.Apps = DefaultApps
		return c, nil
	}
	img, err := h.Backdrop.Load()
	if err != nil {
		return Content{}, err
	}
	c.Background = img
	return c, nil
}

// ErrorContent is the placeholder home screen.
func (h *HomeScreen) ErrorContent(now time.Time) Content {
	tag := language.AmericanEnglish
	if h != nil {
		tag = h.Locale
	}
	return Content{
		Kind:    ContentError,
		Time:    FormatClock(now),
		Date:    FormatDate(now, tag),
		Message: ErrorMessage,
	}
}

// FormatClock renders t as zero-padded 24-hour HH:MM.
func FormatClock(t time.Time) string {
	return t.Format("15:04")
}

var koWeekdays = [...]string{"일요일", "월요일", "화요일", "수요일", "목요일", "금요일", "토요일"}

// FormatDate renders weekday, month and day in the locale's long form.
// Korean and Japanese get their native order; everything else uses English.
func FormatDate(t time.Time, tag language.Tag) string {
	base, _ := tag.Base()
	switch base.String() {
	case "ko":
		return fmt.Sprintf("%d월 %d일 %s", int(t.Month()), t.Day(), koWeekdays[t.Weekday()])
	case "ja":
		return fmt.Sprintf("%d月%d日%s", int(t.Month()), t.Day(), jaWeekdays[t.Weekday()])
	}
	return t.Format("Monday, January 2")
}

var jaWeekdays = [...]string{"日曜日", "月曜日", "火曜日", "水曜日", "木曜日", "金曜日", "土曜日"}
