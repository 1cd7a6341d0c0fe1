//go:build linux || darwin

package term

import (
	"os"
	"testing"

	"github.com/ttykit/ttykit-go/pkg/stty"
)

// openTestTTY opens the terminal side of a fresh pty pair, skipping when the
// environment provides no pty devices.
func openTestTTY(t *testing.T) *TTY {
	t.Helper()
	ptm, pts, _, err := OpenPty()
	if err != nil {
		t.Skipf("no pty available: %v", err)
	}
	t.Cleanup(func() {
		pts.Close()
		ptm.Close()
	})
	return NewTTY(pts)
}

func TestTermiosRoundTrip(t *testing.T) {
	tty := openTestTTY(t)

	st, err := stty.NewFromDevice(tty)
	if err != nil {
		t.Fatalf("fetching attributes: %v", err)
	}

	if err := st.SetAll(map[string]any{
		"echo":   false,
		"icanon": false,
		"intr":   "^C",
		"min":    1,
		"time":   0,
	}); err != nil {
		t.Fatalf("setting attributes: %v", err)
	}
	if err := st.ApplyTo(tty, stty.TCSANow, true, false); err != nil {
		t.Fatalf("applying attributes: %v", err)
	}

	got, err := stty.NewFromDevice(tty)
	if err != nil {
		t.Fatalf("refetching attributes: %v", err)
	}
	for name, want := range map[string]any{
		"echo":   false,
		"icanon": false,
		"intr":   "^C",
		"min":    1,
		"time":   0,
	} {
		v, err := got.Get(name)
		if err != nil {
			t.Fatalf("Get(%s) failed: %v", name, err)
		}
		if v != want {
			t.Errorf("after apply, %s = %v, want %v", name, v, want)
		}
	}
}

func TestWinsizeRoundTrip(t *testing.T) {
	tty := openTestTTY(t)

	want := stty.Winsize{Rows: 24, Cols: 80}
	if err := tty.SetWinsize(want); err != nil {
		t.Fatalf("SetWinsize failed: %v", err)
	}
	got, err := tty.Winsize()
	if err != nil {
		t.Fatalf("Winsize failed: %v", err)
	}
	if got.Rows != want.Rows || got.Cols != want.Cols {
		t.Errorf("Winsize = %dx%d, want %dx%d", got.Rows, got.Cols, want.Rows, want.Cols)
	}
}

func TestIsTerminal(t *testing.T) {
	tty := openTestTTY(t)

	if !IsTerminal(tty.Fd()) {
		t.Error("IsTerminal = false for a pty")
	}

	f, err := os.CreateTemp(t.TempDir(), "plain")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	defer f.Close()
	if IsTerminal(int(f.Fd())) {
		t.Error("IsTerminal = true for a regular file")
	}
}
