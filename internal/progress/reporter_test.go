package progress

import (
	"bytes"
	"testing"
)

func TestNewReporterCI(t *testing.T) {
	t.Setenv("CI", "true")
	var buf bytes.Buffer
	r := NewReporter(&buf, "Importing")
	if _, ok := r.(*CIReporter); !ok {
		t.Fatalf("NewReporter() = %T, want *CIReporter", r)
	}

	r.Start(2)
	r.Update(1, "page a")
	r.Update(2, "page b")
	r.Finish()

	want := "Importing: 2 pages\n[1/2] page a\n[2/2] page b\nImporting: done\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestTerminalReporter(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	var buf bytes.Buffer
	r := NewReporter(&buf, "Importing")
	if _, ok := r.(*TerminalReporter); !ok {
		t.Fatalf("NewReporter() = %T, want *TerminalReporter", r)
	}
	r.Start(3)
	r.Update(3, "last")
	r.Finish()
	if buf.Len() == 0 {
		t.Error("terminal reporter wrote nothing")
	}
}
