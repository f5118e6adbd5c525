package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"strings"

	"github.com/chromedp/chromedp"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrEmptyScreenshot   = errors.New("screenshot buffer is empty")
	ErrNothingToExport   = errors.New("render produced no document")
)

// ImageOptions tunes the headless browser rasterisation.
type ImageOptions struct {
	JPEGQuality int                            // 1-100, default 90
	ExecOptions []chromedp.ExecAllocatorOption // appended to the defaults
}

// IsImageFormat reports whether Rasterize can produce format.
func IsImageFormat(format string) bool {
	switch strings.ToLower(format) {
	case "png", "jpg", "jpeg":
		return true
	}
	return false
}

// Rasterize loads svg into headless Chrome, screenshots the <svg> element
// and writes it to w as PNG or JPEG. ctx bounds the whole browser session.
func Rasterize(ctx context.Context, svg, format string, w io.Writer, opts ImageOptions) error {
	format = strings.ToLower(format)
	if !IsImageFormat(format) {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if svg == "" {
		return ErrNothingToExport
	}

	dataURI := DataURI(svg)
	slog.Debug("created data URI for SVG", "bytes", len(dataURI))

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:], chromedp.Headless)
	allocOpts = append(allocOpts, opts.ExecOptions...)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var screenshotBuf []byte
	tasks := chromedp.Tasks{
		chromedp.Navigate(dataURI),
		chromedp.WaitVisible(`svg`, chromedp.ByQuery),
		chromedp.Screenshot(`svg`, &screenshotBuf, chromedp.ByQuery),
	}

	slog.Debug("running chromedp tasks", "format", format)
	if err := chromedp.Run(browserCtx, tasks); err != nil {
		return fmt.Errorf("chromedp execution failed: %w", err)
	}
	if len(screenshotBuf) == 0 {
		return ErrEmptyScreenshot
	}

	return encodeScreenshot(screenshotBuf, format, w, opts)
}

// encodeScreenshot passes PNG through and re-encodes for JPEG.
func encodeScreenshot(screenshot []byte, format string, w io.Writer, opts ImageOptions) error {
	switch format {
	case "png":
		if _, err := io.Copy(w, bytes.NewReader(screenshot)); err != nil {
			return fmt.Errorf("failed to write PNG screenshot data: %w", err)
		}
	case "jpg", "jpeg":
		img, err := png.Decode(bytes.NewReader(screenshot))
		if err != nil {
			return fmt.Errorf("failed to decode PNG screenshot: %w", err)
		}
		quality := opts.JPEGQuality
		if quality <= 0 || quality > 100 {
			quality = 90
		}
		if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
			return fmt.Errorf("failed to encode JPEG: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	slog.Info("encoded image", "format", strings.ToUpper(format), "screenshot_bytes", len(screenshot))
	return nil
}
