// Package export turns a rendered resume document into a downloadable
// PDF. One export runs at a time: the preview the user is looking at is
// a single DOM snapshot and concurrent exports would race over it.
package export

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

// ErrExportInFlight is returned when an export is requested while a
// previous one has not finished.
var ErrExportInFlight = errors.New("an export is already in progress")

// FallbackFilename is used when the resume has no name to derive one
// from.
const FallbackFilename = "Resume.pdf"

// PDFRenderer converts a standalone HTML document to PDF bytes.
type PDFRenderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// Exporter wraps a PDFRenderer with single-flight protection, retries,
// and output validation.
type Exporter struct {
	renderer PDFRenderer
	inFlight atomic.Bool
	attempts int
	backoff  time.Duration
}

func NewExporter(r PDFRenderer) *Exporter {
	return &Exporter{renderer: r, attempts: 3, backoff: time.Second}
}

// Filename derives the download name: whitespace runs in the full name
// become underscores, suffixed _Resume.pdf. An empty name falls back
// to a generic one.
func Filename(fullName string) string {
	name := strings.Join(strings.Fields(fullName), "_")
	if name == "" {
		return FallbackFilename
	}
	return name + "_Resume.pdf"
}

// Export renders html to PDF and returns the bytes plus the filename
// derived from fullName. A concurrent call fails fast with
// ErrExportInFlight; the in-flight flag is always cleared when the
// export resolves or fails. Rendering is retried with backoff and the
// output must carry a PDF signature before it is accepted.
func (e *Exporter) Export(ctx context.Context, html string, fullName string) ([]byte, string, error) {
	if !e.inFlight.CompareAndSwap(false, true) {
		return nil, "", ErrExportInFlight
	}
	defer e.inFlight.Store(false)

	var pdf []byte
	var renderErr error
	for i := 0; i < e.attempts; i++ {
		pdf, renderErr = e.renderer.RenderHTMLToPDF(ctx, html)
		if renderErr == nil {
			if len(pdf) > 0 && strings.HasPrefix(string(pdf), "%PDF") {
				break
			}
			renderErr = fmt.Errorf("invalid PDF output (len=%d)", len(pdf))
		}
		if i < e.attempts-1 {
			backoff := time.Duration(1<<i) * e.backoff
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, "", ctx.Err()
			}
		}
	}
	if renderErr != nil {
		return nil, "", fmt.Errorf("rendering failed after %d attempts: %w", e.attempts, renderErr)
	}
	return pdf, Filename(fullName), nil
}

// InFlight reports whether an export is currently running.
func (e *Exporter) InFlight() bool { return e.inFlight.Load() }
