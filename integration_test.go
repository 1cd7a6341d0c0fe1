package ttykit_test

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ttykit/ttykit-go/pkg/persistence"
	"github.com/ttykit/ttykit-go/pkg/profile"
	"github.com/ttykit/ttykit-go/pkg/stty"
	"github.com/ttykit/ttykit-go/pkg/wire"
)

// TestE2E_SaveRestore tests the full snapshot persistence cycle: configure
// attributes, save to disk, restore into a fresh instance.
func TestE2E_SaveRestore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	src := stty.New()
	if err := src.SetAll(map[string]any{
		"echo":   true,
		"icanon": true,
		"isig":   true,
		"csize":  "cs8",
		"ispeed": 115200,
		"ospeed": 115200,
		"intr":   "^C",
		"erase":  "^?",
		"kill":   "^U",
		"min":    1,
		"time":   0,
	}); err != nil {
		t.Fatalf("Failed to configure attributes: %v", err)
	}

	store := persistence.NewSnapshotStore(filepath.Join(t.TempDir(), "tty.json"))
	if err := store.Save(src); err != nil {
		t.Fatalf("Failed to save snapshot: %v", err)
	}

	dst := stty.New()
	if err := store.Restore(dst); err != nil {
		t.Fatalf("Failed to restore snapshot: %v", err)
	}
	if !reflect.DeepEqual(src.Attributes(), dst.Attributes()) {
		t.Errorf("Attributes changed across save/restore:\n got %v\nwant %v",
			dst.Attributes(), src.Attributes())
	}
	if src.Termios() != dst.Termios() {
		t.Error("Raw attribute block changed across save/restore")
	}
}

// TestE2E_WireTransfer tests carrying a snapshot through the text wire form,
// the way "stty -g" output is pasted into another invocation.
func TestE2E_WireTransfer(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	src := stty.New()
	if err := src.Raw(); err != nil {
		t.Fatalf("Failed to enter raw mode: %v", err)
	}

	text, err := wire.EncodeString(src.Snapshot())
	if err != nil {
		t.Fatalf("Failed to encode snapshot: %v", err)
	}
	snap, err := wire.DecodeString(text)
	if err != nil {
		t.Fatalf("Failed to decode snapshot: %v", err)
	}

	dst, err := stty.NewFromSnapshot(snap)
	if err != nil {
		t.Fatalf("Failed to restore decoded snapshot: %v", err)
	}
	if !reflect.DeepEqual(src.Attributes(), dst.Attributes()) {
		t.Errorf("Attributes changed across the wire:\n got %v\nwant %v",
			dst.Attributes(), src.Attributes())
	}
}

// TestE2E_ProfileLifecycle tests applying a named profile and persisting
// the result.
func TestE2E_ProfileLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	profiles, err := profile.Parse([]byte(`
serial-7e1:
  parenb: true
  parodd: false
  csize: cs7
  ispeed: 9600
  ospeed: 9600
`))
	if err != nil {
		t.Fatalf("Failed to parse profiles: %v", err)
	}
	p, err := profiles.Lookup("serial-7e1")
	if err != nil {
		t.Fatalf("Failed to look up profile: %v", err)
	}

	st := stty.New()
	if err := p.Apply(st); err != nil {
		t.Fatalf("Failed to apply profile: %v", err)
	}

	v, err := st.Get("csize")
	if err != nil {
		t.Fatalf("Failed to read csize: %v", err)
	}
	if v != "cs7" {
		t.Errorf("csize = %v after profile, want cs7", v)
	}

	store := persistence.NewSnapshotStore(filepath.Join(t.TempDir(), "tty.json"))
	if err := store.Save(st); err != nil {
		t.Fatalf("Failed to save profiled snapshot: %v", err)
	}
	dst := stty.New()
	if err := store.Restore(dst); err != nil {
		t.Fatalf("Failed to restore profiled snapshot: %v", err)
	}
	if !reflect.DeepEqual(st.Attributes(), dst.Attributes()) {
		t.Error("Profiled attributes changed across save/restore")
	}
}
