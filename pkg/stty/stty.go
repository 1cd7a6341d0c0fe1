package stty

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Stty wraps one raw terminal attribute block and one raw window-size block
// and keeps a symbolic view of both. The raw blocks are the single source of
// truth; every successful Set mutates exactly one raw field and the cached
// symbolic value together.
//
// An Stty owns its blocks exclusively and holds no OS resource. It is not
// safe for concurrent mutation without external serialization. The zero
// value is ready to use and is equivalent to New().
type Stty struct {
	termios Termios
	winsize Winsize
	values  map[string]any
}

// New returns an Stty wrapping zeroed raw blocks, ready to be populated
// attribute by attribute.
func New() *Stty {
	s := &Stty{}
	s.ensureDerived()
	return s
}

// NewFromDevice returns an Stty populated from the device's current raw
// blocks.
func NewFromDevice(d Device) (*Stty, error) {
	s := &Stty{}
	if err := s.FromDevice(d); err != nil {
		return nil, err
	}
	return s, nil
}

// NewFromSnapshot returns an Stty restored from snapshot data.
func NewFromSnapshot(data map[string]any) (*Stty, error) {
	s := &Stty{}
	if err := s.Restore(data); err != nil {
		return nil, err
	}
	return s, nil
}

// Termios returns a copy of the raw attribute block.
func (s *Stty) Termios() Termios {
	return s.termios
}

// Winsize returns a copy of the raw window-size block. The second result is
// false on platforms without window-size support.
func (s *Stty) Winsize() (Winsize, bool) {
	return s.winsize, platformHasWinsize
}

// ensureDerived populates the symbolic view of a zero-value Stty. The raw
// blocks are unexported, so outside the constructors the only underived
// state is the zero value, and the zero block always derives.
func (s *Stty) ensureDerived() {
	if s.values == nil {
		if err := s.deriveAll(); err != nil {
			panic(fmt.Sprintf("stty: zero raw block does not derive: %v", err))
		}
	}
}

// Get returns the symbolic value of the named attribute: a bool for boolean
// flags, a value name for enumerated flags, an int for speeds, counts, and
// window dimensions, and a caret-form string for control characters.
func (s *Stty) Get(name string) (any, error) {
	if _, err := Default().Lookup(name); err != nil {
		return nil, err
	}
	s.ensureDerived()
	return s.values[name], nil
}

// Set validates value against the named attribute's domain and, on success,
// writes it into the raw block and updates the symbolic view. On failure the
// Stty is left completely unchanged.
func (s *Stty) Set(name string, value any) error {
	e, err := Default().Lookup(name)
	if err != nil {
		return err
	}
	s.ensureDerived()

	switch e.Category {
	case CategoryBool:
		return s.setBool(e, value)
	case CategoryEnum:
		return s.setEnum(e, value)
	case CategorySpeed:
		return s.setSpeed(e, value)
	case CategoryControlChar:
		return s.setControlChar(e, value)
	case CategoryCount:
		return s.setCount(e, value)
	case CategoryWinsize:
		return s.setWinsize(e, value)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedAttribute, name)
}

// SetAll sets multiple attributes. Every key is validated against the
// catalog before anything is applied: if any key is unknown on this
// platform, SetAll reports all unknown keys in one error and changes
// nothing. Individual values are then applied with Set semantics.
func (s *Stty) SetAll(attrs map[string]any) error {
	cat := Default()

	var unknown []string
	for name := range attrs {
		if !cat.Supported(name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("%w: %s", ErrUnsupportedAttribute, strings.Join(unknown, ", "))
	}

	for name, value := range attrs {
		if err := s.Set(name, value); err != nil {
			return err
		}
	}
	return nil
}

// Attributes returns the symbolic value of every attribute supported on
// this platform.
func (s *Stty) Attributes() map[string]any {
	s.ensureDerived()
	out := make(map[string]any, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// String renders every attribute as "name=value" pairs in catalog order.
func (s *Stty) String() string {
	s.ensureDerived()
	var b strings.Builder
	for i, name := range Default().names {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%v", name, s.values[name])
	}
	return b.String()
}

// FromDevice reads the raw attribute block and, where supported, the raw
// window-size block from the device and derives every symbolic value from
// scratch. On failure the Stty is left unchanged.
func (s *Stty) FromDevice(d Device) error {
	t, err := d.Termios()
	if err != nil {
		return err
	}

	var ws Winsize
	if platformHasWinsize && d.HasWinsize() {
		if ws, err = d.Winsize(); err != nil {
			return err
		}
	}

	next := Stty{termios: t, winsize: ws}
	if err := next.deriveAll(); err != nil {
		return err
	}
	*s = next
	return nil
}

// ApplyTo pushes the raw attribute block and/or the raw window-size block to
// the device. when selects the tcsetattr timing policy for the attribute
// block; the window-size update has no timing policy.
func (s *Stty) ApplyTo(d Device, when When, applyTermios, applyWinsize bool) error {
	if applyTermios {
		if err := d.SetTermios(s.termios, when); err != nil {
			return err
		}
	}
	if applyWinsize && platformHasWinsize && d.HasWinsize() {
		return d.SetWinsize(s.winsize)
	}
	return nil
}

// deriveAll recomputes every symbolic value from the raw blocks. This is
// the only place symbolic values are computed directly from raw bits; Set
// maintains the invariant incrementally afterwards.
func (s *Stty) deriveAll() error {
	cat := Default()
	values := make(map[string]any, len(cat.names))

	for _, name := range cat.names {
		e := cat.entries[name]
		switch e.Category {
		case CategoryBool:
			values[name] = *s.termios.flag(e.Field)&e.Mask != 0

		case CategoryEnum:
			raw := *s.termios.flag(e.Field) & e.Mask
			vn, ok := e.valueName(raw)
			if !ok {
				return fmt.Errorf("%w: raw %s value %#x", ErrInvalidValue, name, raw)
			}
			values[name] = vn

		case CategorySpeed:
			code := s.termios.Ispeed
			if e.Index == speedOutput {
				code = s.termios.Ospeed
			}
			rate, ok := cat.rateByBaud[code]
			if !ok {
				return fmt.Errorf("%w: raw %s code %#x", ErrInvalidValue, name, code)
			}
			values[name] = rate

		case CategoryControlChar:
			values[name] = CCString(s.termios.Cc[e.Index])

		case CategoryCount:
			values[name] = int(s.termios.Cc[e.Index])

		case CategoryWinsize:
			if e.Index == winszRows {
				values[name] = int(s.winsize.Rows)
			} else {
				values[name] = int(s.winsize.Cols)
			}
		}
	}

	s.values = values
	return nil
}

func (s *Stty) setBool(e *Entry, value any) error {
	v := Truthy(value)
	w := s.termios.flag(e.Field)
	if v {
		*w |= e.Mask
	} else {
		*w &^= e.Mask
	}
	s.values[e.Name] = v
	return nil
}

func (s *Stty) setEnum(e *Entry, value any) error {
	var raw uint64
	var vn string

	switch v := value.(type) {
	case string:
		r, ok := e.valueByName(v)
		if !ok {
			return fmt.Errorf("%w: %q is not a %s value", ErrInvalidValue, v, e.Name)
		}
		raw, vn = r, v
	default:
		n, ok := toInt64(value)
		if !ok {
			return fmt.Errorf("%w: %s takes a value name or integer, got %T", ErrInvalidType, e.Name, value)
		}
		name, ok := e.valueName(uint64(n))
		if n < 0 || !ok {
			return fmt.Errorf("%w: %d is not a %s value", ErrInvalidValue, n, e.Name)
		}
		raw, vn = uint64(n), name
	}

	w := s.termios.flag(e.Field)
	*w &^= e.Mask
	*w |= raw
	s.values[e.Name] = vn
	return nil
}

func (s *Stty) setSpeed(e *Entry, value any) error {
	n, ok := toInt64(value)
	if !ok {
		return fmt.Errorf("%w: %s takes an integer, got %T", ErrInvalidType, e.Name, value)
	}
	code, ok := Default().baudByRate[int(n)]
	if !ok {
		return fmt.Errorf("%w: %d is not a supported baud rate", ErrInvalidValue, n)
	}

	if e.Index == speedInput {
		s.termios.Ispeed = code
	} else {
		s.termios.Ospeed = code
	}
	s.values[e.Name] = int(n)
	return nil
}

func (s *Stty) setControlChar(e *Entry, value any) error {
	var b byte
	switch v := value.(type) {
	case byte:
		b = v
	case []byte:
		if len(v) != 1 {
			return fmt.Errorf("%w: %s takes a single byte, got %d", ErrInvalidValue, e.Name, len(v))
		}
		b = v[0]
	case string:
		cb, err := CCByte(v)
		if err != nil {
			return err
		}
		b = cb
	default:
		return fmt.Errorf("%w: %s takes a byte or string, got %T", ErrInvalidType, e.Name, value)
	}

	s.termios.Cc[e.Index] = b
	s.values[e.Name] = CCString(b)
	return nil
}

func (s *Stty) setCount(e *Entry, value any) error {
	n, ok := toInt64(value)
	if !ok {
		return fmt.Errorf("%w: %s takes an integer, got %T", ErrInvalidType, e.Name, value)
	}
	if n < 0 {
		return fmt.Errorf("%w: %s takes a nonnegative value, got %d", ErrInvalidValue, e.Name, n)
	}
	// Stored in a single control-character slot; larger values would
	// truncate, so they are rejected instead.
	if n > math.MaxUint8 {
		return fmt.Errorf("%w: %s beyond single byte, got %d", ErrInvalidValue, e.Name, n)
	}

	s.termios.Cc[e.Index] = byte(n)
	s.values[e.Name] = int(n)
	return nil
}

func (s *Stty) setWinsize(e *Entry, value any) error {
	n, ok := toInt64(value)
	if !ok {
		return fmt.Errorf("%w: %s takes an integer, got %T", ErrInvalidType, e.Name, value)
	}
	if n < 0 {
		return fmt.Errorf("%w: %s takes a nonnegative value, got %d", ErrInvalidValue, e.Name, n)
	}
	if n > math.MaxUint16 {
		return fmt.Errorf("%w: %s beyond winsize range, got %d", ErrInvalidValue, e.Name, n)
	}

	if e.Index == winszRows {
		s.winsize.Rows = uint16(n)
	} else {
		s.winsize.Cols = uint16(n)
	}
	s.values[e.Name] = int(n)
	return nil
}
