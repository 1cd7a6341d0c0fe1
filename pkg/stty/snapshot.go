package stty

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Reserved snapshot keys carrying the raw blocks verbatim. Every other key
// is a symbolic attribute name.
const (
	KeyTermios = "_termios"
	KeyWinsize = "_winsize"
)

// Snapshot produces a fully self-describing serialization of the Stty: the
// raw attribute block, the raw window-size block where supported, and every
// derived symbolic value, as a flat map. This mimics "stty -g".
func (s *Stty) Snapshot() map[string]any {
	s.ensureDerived()
	snap := make(map[string]any, len(s.values)+2)
	for name, value := range s.values {
		snap[name] = value
	}
	snap[KeyTermios] = s.termios
	if platformHasWinsize {
		snap[KeyWinsize] = s.winsize
	}
	return snap
}

// Restore rebuilds the Stty from snapshot data. The raw blocks are
// installed directly; every remaining key is then re-applied through Set so
// value validation runs for each attribute. Snapshots captured on platforms
// with a different supported-attribute set are rejected rather than
// partially applied. On failure the Stty is left unchanged.
func (s *Stty) Restore(data map[string]any) error {
	raw, ok := data[KeyTermios]
	if !ok {
		return fmt.Errorf("%w: %s key absent", ErrMalformedSnapshot, KeyTermios)
	}
	t, err := decodeTermios(raw)
	if err != nil {
		return err
	}

	var ws Winsize
	if platformHasWinsize {
		rawWs, ok := data[KeyWinsize]
		if !ok {
			return fmt.Errorf("%w: %s key absent", ErrMalformedSnapshot, KeyWinsize)
		}
		if ws, err = decodeWinsize(rawWs); err != nil {
			return err
		}
	}

	attrs := make(map[string]any, len(data))
	for name, value := range data {
		if name == KeyTermios || name == KeyWinsize {
			continue
		}
		attrs[name] = value
	}

	var missing []string
	for _, name := range Default().names {
		if _, ok := attrs[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: %s", ErrIncompleteSnapshot, strings.Join(missing, ", "))
	}

	next := Stty{termios: t, winsize: ws, values: make(map[string]any, len(attrs))}
	if err := next.SetAll(attrs); err != nil {
		return err
	}
	*s = next
	return nil
}

// decodeTermios accepts the raw attribute block either as a Termios value
// (in-memory snapshot) or as the generic map a structured-text decoder
// produces.
func decodeTermios(v any) (Termios, error) {
	switch t := v.(type) {
	case Termios:
		return t, nil
	case *Termios:
		return *t, nil
	case map[string]any:
		var out Termios
		var err error
		if out.Iflag, err = snapshotUint(t, "iflag"); err != nil {
			return Termios{}, err
		}
		if out.Oflag, err = snapshotUint(t, "oflag"); err != nil {
			return Termios{}, err
		}
		if out.Cflag, err = snapshotUint(t, "cflag"); err != nil {
			return Termios{}, err
		}
		if out.Lflag, err = snapshotUint(t, "lflag"); err != nil {
			return Termios{}, err
		}
		if out.Ispeed, err = snapshotUint(t, "ispeed"); err != nil {
			return Termios{}, err
		}
		if out.Ospeed, err = snapshotUint(t, "ospeed"); err != nil {
			return Termios{}, err
		}
		if err = snapshotCc(t["cc"], out.Cc[:]); err != nil {
			return Termios{}, err
		}
		return out, nil
	default:
		return Termios{}, fmt.Errorf("%w: unexpected %T for %s", ErrMalformedSnapshot, v, KeyTermios)
	}
}

// decodeWinsize is the window-size counterpart of decodeTermios.
func decodeWinsize(v any) (Winsize, error) {
	switch ws := v.(type) {
	case Winsize:
		return ws, nil
	case *Winsize:
		return *ws, nil
	case map[string]any:
		var out Winsize
		for _, f := range []struct {
			key string
			dst *uint16
		}{
			{"rows", &out.Rows},
			{"cols", &out.Cols},
			{"xpixel", &out.XPixel},
			{"ypixel", &out.YPixel},
		} {
			n, err := snapshotUint(ws, f.key)
			if err != nil {
				return Winsize{}, err
			}
			if n > math.MaxUint16 {
				return Winsize{}, fmt.Errorf("%w: %s value %d beyond winsize range", ErrMalformedSnapshot, f.key, n)
			}
			*f.dst = uint16(n)
		}
		return out, nil
	default:
		return Winsize{}, fmt.Errorf("%w: unexpected %T for %s", ErrMalformedSnapshot, v, KeyWinsize)
	}
}

func snapshotUint(m map[string]any, key string) (uint64, error) {
	v, ok := m[key]
	if !ok {
		return 0, fmt.Errorf("%w: raw field %q absent", ErrMalformedSnapshot, key)
	}
	n, ok := toUint64(v)
	if !ok {
		return 0, fmt.Errorf("%w: raw field %q is not an unsigned integer", ErrMalformedSnapshot, key)
	}
	return n, nil
}

func snapshotCc(v any, dst []byte) error {
	switch cc := v.(type) {
	case []byte:
		if len(cc) > len(dst) {
			return fmt.Errorf("%w: control-character array too long", ErrMalformedSnapshot)
		}
		copy(dst, cc)
		return nil
	case []any:
		if len(cc) > len(dst) {
			return fmt.Errorf("%w: control-character array too long", ErrMalformedSnapshot)
		}
		for i, e := range cc {
			n, ok := toUint64(e)
			if !ok || n > math.MaxUint8 {
				return fmt.Errorf("%w: control-character array entry %d", ErrMalformedSnapshot, i)
			}
			dst[i] = byte(n)
		}
		return nil
	default:
		return fmt.Errorf("%w: unexpected %T for control-character array", ErrMalformedSnapshot, v)
	}
}
