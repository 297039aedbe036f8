package export

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type stubRenderer struct {
	mu      sync.Mutex
	calls   int
	outputs [][]byte
	errs    []error
	block   chan struct{}
}

func (s *stubRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	s.mu.Lock()
	i := s.calls
	s.calls++
	s.mu.Unlock()
	if s.block != nil {
		<-s.block
	}
	var out []byte
	var err error
	if i < len(s.outputs) {
		out = s.outputs[i]
	}
	if i < len(s.errs) {
		err = s.errs[i]
	}
	return out, err
}

func TestFilename_Derivation(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Jane Doe", "Jane_Doe_Resume.pdf"},
		{"Jane  Anne   Doe", "Jane_Anne_Doe_Resume.pdf"},
		{"  Jane Doe  ", "Jane_Doe_Resume.pdf"},
		{"Prince", "Prince_Resume.pdf"},
		{"", "Resume.pdf"},
		{"   ", "Resume.pdf"},
	}
	for _, tc := range cases {
		if got := Filename(tc.name); got != tc.want {
			t.Fatalf("Filename(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestExport_ReturnsPDFAndFilename(t *testing.T) {
	r := &stubRenderer{outputs: [][]byte{[]byte("%PDF-1.4 fake")}}
	e := NewExporter(r)

	pdf, name, err := e.Export(context.Background(), "<html></html>", "Jane Doe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(pdf) != "%PDF-1.4 fake" {
		t.Fatalf("unexpected pdf bytes: %q", pdf)
	}
	if name != "Jane_Doe_Resume.pdf" {
		t.Fatalf("unexpected filename: %q", name)
	}
	if r.calls != 1 {
		t.Fatalf("expected 1 render call, got %d", r.calls)
	}
}

func TestExport_RetriesOnBadSignature(t *testing.T) {
	r := &stubRenderer{
		outputs: [][]byte{[]byte("<html>not a pdf"), []byte("%PDF-1.4 ok")},
	}
	e := NewExporter(r)
	e.attempts = 2
	e.backoff = time.Millisecond

	pdf, _, err := e.Export(context.Background(), "doc", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(pdf) != "%PDF-1.4 ok" {
		t.Fatalf("retry did not pick up the valid output: %q", pdf)
	}
	if r.calls != 2 {
		t.Fatalf("expected 2 render calls, got %d", r.calls)
	}
}

func TestExport_FailureClearsInFlightFlag(t *testing.T) {
	r := &stubRenderer{errs: []error{errors.New("chrome crashed"), errors.New("chrome crashed"), errors.New("chrome crashed")}}
	e := NewExporter(r)
	e.attempts = 1

	if _, _, err := e.Export(context.Background(), "doc", ""); err == nil {
		t.Fatalf("expected error from failing renderer")
	}
	if e.InFlight() {
		t.Fatalf("in-flight flag not cleared after failure")
	}

	// a later export may run again
	r2 := &stubRenderer{outputs: [][]byte{[]byte("%PDF ok")}}
	e2 := NewExporter(r2)
	if _, _, err := e2.Export(context.Background(), "doc", ""); err != nil {
		t.Fatalf("unexpected error after recovery: %v", err)
	}
}

func TestExport_ConcurrentCallFailsFast(t *testing.T) {
	r := &stubRenderer{
		outputs: [][]byte{[]byte("%PDF slow")},
		block:   make(chan struct{}),
	}
	e := NewExporter(r)

	done := make(chan error, 1)
	go func() {
		_, _, err := e.Export(context.Background(), "doc", "")
		done <- err
	}()

	// wait until the first export is inside the renderer
	for {
		r.mu.Lock()
		started := r.calls > 0
		r.mu.Unlock()
		if started {
			break
		}
		time.Sleep(time.Millisecond)
	}

	if _, _, err := e.Export(context.Background(), "doc", ""); !errors.Is(err, ErrExportInFlight) {
		t.Fatalf("expected ErrExportInFlight, got %v", err)
	}

	close(r.block)
	if err := <-done; err != nil {
		t.Fatalf("first export failed: %v", err)
	}
	if e.InFlight() {
		t.Fatalf("in-flight flag not cleared after completion")
	}
}
