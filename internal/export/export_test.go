package export

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/elivatehq/planner/internal/document"
)

type fakeRenderer struct {
	mu      sync.Mutex
	calls   int
	fail    bool
	block   chan struct{} // when set, Render waits until closed
	started chan struct{} // signaled once Render has begun
}

func (f *fakeRenderer) Render(doc *document.Document) ([]byte, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
	if f.fail {
		return nil, errors.New("render exploded")
	}
	return []byte("%PDF-fake"), nil
}

func yearlyDoc() *document.Document {
	return &document.Document{Type: document.TypeYearlyPlan, Team: "ELIVATE NETWORK", Name: "Ada O."}
}

func TestFilename(t *testing.T) {
	cases := []struct {
		doc  document.Document
		want string
	}{
		{document.Document{Type: document.TypeYearlyPlan, Team: "ELIVATE NETWORK", Name: "Ada O."},
			"ELIVATE-NETWORK-Yearly-Plan-Ada-O-.pdf"},
		{document.Document{Type: document.TypeMonthlyPlan, Team: "Alpha Team", Name: "March-ELV001"},
			"Alpha-Team-Monthly-Plan-March-ELV001.pdf"},
		{document.Document{Type: document.TypeGoalCard, Team: "T", Name: "ELV001"},
			"T-Goal-Card-ELV001.pdf"},
	}
	for _, c := range cases {
		if got := Filename(&c.doc); got != c.want {
			t.Errorf("Filename = %q, want %q", got, c.want)
		}
	}
}

func TestDownloadWritesFile(t *testing.T) {
	dir := t.TempDir()
	p := NewPipeline(&fakeRenderer{}, dir)
	path, err := p.Download(yearlyDoc())
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("written outside output dir: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading download: %v", err)
	}
	if string(data) != "%PDF-fake" {
		t.Errorf("content = %q", data)
	}
}

func TestDownloadBusyGuard(t *testing.T) {
	r := &fakeRenderer{block: make(chan struct{}), started: make(chan struct{}, 1)}
	p := NewPipeline(r, t.TempDir())

	done := make(chan error, 1)
	go func() {
		_, err := p.Download(yearlyDoc())
		done <- err
	}()
	<-r.started

	// same type is rejected while in flight
	if _, err := p.Download(yearlyDoc()); !errors.Is(err, ErrBusy) {
		t.Errorf("concurrent same-type download: err = %v, want ErrBusy", err)
	}
	// a different type is unconstrained
	other := &document.Document{Type: document.TypeGoalCard, Team: "T", Name: "N"}
	if _, err := p.Download(other); err != nil {
		t.Errorf("different-type download during busy: %v", err)
	}

	close(r.block)
	if err := <-done; err != nil {
		t.Fatalf("blocked download: %v", err)
	}
	// guard released after completion
	if _, err := p.Download(yearlyDoc()); err != nil {
		t.Errorf("download after release: %v", err)
	}
}

func TestDownloadFailureIsRetryable(t *testing.T) {
	r := &fakeRenderer{fail: true}
	p := NewPipeline(r, t.TempDir())
	if _, err := p.Download(yearlyDoc()); err == nil {
		t.Fatal("expected render failure")
	}
	r.fail = false
	if _, err := p.Download(yearlyDoc()); err != nil {
		t.Errorf("retry after failure: %v", err)
	}
}

func TestPreviewLifecycle(t *testing.T) {
	p := NewPipeline(&fakeRenderer{}, t.TempDir())
	h, err := p.Preview(yearlyDoc())
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if _, err := os.Stat(h.Path); err != nil {
		t.Fatalf("preview file missing: %v", err)
	}
	path := h.Path
	if err := h.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("preview file survived Close")
	}
	if err := h.Close(); err != nil {
		t.Errorf("second Close should be a no-op: %v", err)
	}
}

func TestPreviewFailureLeavesNoFile(t *testing.T) {
	p := NewPipeline(&fakeRenderer{fail: true}, t.TempDir())
	before := tempPreviewCount(t)
	if _, err := p.Preview(yearlyDoc()); err == nil {
		t.Fatal("expected preview failure")
	}
	if after := tempPreviewCount(t); after != before {
		t.Errorf("preview temp files leaked: %d -> %d", before, after)
	}
}

func tempPreviewCount(t *testing.T) int {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(os.TempDir(), "planner-preview-*.pdf"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	return len(matches)
}
