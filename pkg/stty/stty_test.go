package stty

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDevice is an in-memory Device for exercising fetch and apply paths.
type fakeDevice struct {
	termios    Termios
	winsize    Winsize
	noWinsize  bool
	termiosErr error

	setCalls []When
	wsCalls  int
}

func (d *fakeDevice) Termios() (Termios, error) {
	if d.termiosErr != nil {
		return Termios{}, d.termiosErr
	}
	return d.termios, nil
}

func (d *fakeDevice) SetTermios(t Termios, when When) error {
	d.termios = t
	d.setCalls = append(d.setCalls, when)
	return nil
}

func (d *fakeDevice) HasWinsize() bool { return !d.noWinsize }

func (d *fakeDevice) Winsize() (Winsize, error) { return d.winsize, nil }

func (d *fakeDevice) SetWinsize(ws Winsize) error {
	d.winsize = ws
	d.wsCalls++
	return nil
}

func TestNewDerivesEveryAttribute(t *testing.T) {
	s := New()

	attrs := s.Attributes()
	require.Len(t, attrs, len(Default().Names()))

	v, err := s.Get("echo")
	require.NoError(t, err)
	assert.Equal(t, false, v)

	v, err = s.Get("min")
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	v, err = s.Get("ispeed")
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}

func TestZeroValueUsable(t *testing.T) {
	var s Stty

	require.NoError(t, s.Set("echo", true))
	v, err := s.Get("echo")
	require.NoError(t, err)
	assert.Equal(t, true, v)

	var s2 Stty
	assert.Equal(t, New().Attributes(), s2.Attributes())
	assert.Equal(t, New().String(), s2.String())

	var s3 Stty
	_, err = NewFromSnapshot(s3.Snapshot())
	require.NoError(t, err)
}

func TestGetUnsupported(t *testing.T) {
	s := New()
	_, err := s.Get("no-such-attr")
	assert.ErrorIs(t, err, ErrUnsupportedAttribute)
}

func TestSetBool(t *testing.T) {
	s := New()
	e, err := Default().Lookup("echo")
	require.NoError(t, err)

	require.NoError(t, s.Set("echo", true))
	v, err := s.Get("echo")
	require.NoError(t, err)
	assert.Equal(t, true, v)
	assert.NotZero(t, s.Termios().Lflag&e.Mask)

	require.NoError(t, s.Set("echo", false))
	v, err = s.Get("echo")
	require.NoError(t, err)
	assert.Equal(t, false, v)
	assert.Zero(t, s.Termios().Lflag&e.Mask)
}

func TestSetBoolTruthy(t *testing.T) {
	tests := []struct {
		value any
		want  bool
	}{
		{true, true},
		{false, false},
		{nil, false},
		{0, false},
		{1, true},
		{-1, true},
		{0.0, false},
		{2.5, true},
		{"", false},
		{"yes", true},
		{[]byte{}, false},
		{[]byte("x"), true},
		{struct{}{}, true},
	}

	for _, tt := range tests {
		s := New()
		require.NoError(t, s.Set("echo", tt.value))
		v, err := s.Get("echo")
		require.NoError(t, err)
		assert.Equal(t, tt.want, v, "Truthy(%#v)", tt.value)
	}
}

func TestSetEnum(t *testing.T) {
	s := New()

	require.NoError(t, s.Set("csize", "cs7"))
	v, err := s.Get("csize")
	require.NoError(t, err)
	assert.Equal(t, "cs7", v)

	// Raw integer form resolves back to the symbolic name.
	e, err := Default().Lookup("csize")
	require.NoError(t, err)
	var cs8 uint64
	for _, ev := range e.Values {
		if ev.Name == "cs8" {
			cs8 = ev.Value
		}
	}
	require.NoError(t, s.Set("csize", int(cs8)))
	v, err = s.Get("csize")
	require.NoError(t, err)
	assert.Equal(t, "cs8", v)

	// Replacing a value clears the previous bits within the mask.
	assert.Equal(t, cs8, s.Termios().Cflag&e.Mask)
}

func TestSetEnumErrors(t *testing.T) {
	s := New()
	before := s.Termios()

	err := s.Set("csize", "cs99")
	assert.ErrorIs(t, err, ErrInvalidValue)

	err = s.Set("csize", -1)
	assert.ErrorIs(t, err, ErrInvalidValue)

	err = s.Set("csize", 3.5)
	assert.ErrorIs(t, err, ErrInvalidType)

	err = s.Set("csize", []int{1})
	assert.ErrorIs(t, err, ErrInvalidType)

	assert.Equal(t, before, s.Termios())
	v, err := s.Get("csize")
	require.NoError(t, err)
	assert.Equal(t, "cs5", v)
}

func TestSetSpeed(t *testing.T) {
	s := New()

	require.NoError(t, s.Set("ispeed", 9600))
	require.NoError(t, s.Set("ospeed", 38400))

	v, err := s.Get("ispeed")
	require.NoError(t, err)
	assert.Equal(t, 9600, v)
	v, err = s.Get("ospeed")
	require.NoError(t, err)
	assert.Equal(t, 38400, v)

	// The raw fields hold the encoded baud codes, not the rates.
	assert.NotEqual(t, s.Termios().Ispeed, s.Termios().Ospeed)
}

func TestSetSpeedErrors(t *testing.T) {
	s := New()

	err := s.Set("ispeed", 12345)
	assert.ErrorIs(t, err, ErrInvalidValue)

	err = s.Set("ispeed", "fast")
	assert.ErrorIs(t, err, ErrInvalidType)

	v, gerr := s.Get("ispeed")
	require.NoError(t, gerr)
	assert.Equal(t, 0, v)
}

func TestSetControlChar(t *testing.T) {
	s := New()

	require.NoError(t, s.Set("intr", "^C"))
	v, err := s.Get("intr")
	require.NoError(t, err)
	assert.Equal(t, "^C", v)

	e, err := Default().Lookup("intr")
	require.NoError(t, err)
	assert.Equal(t, byte(0x03), s.Termios().Cc[e.Index])

	// Raw byte and single-byte slice forms.
	require.NoError(t, s.Set("erase", byte(0x7f)))
	v, err = s.Get("erase")
	require.NoError(t, err)
	assert.Equal(t, "^?", v)

	require.NoError(t, s.Set("kill", []byte{0x15}))
	v, err = s.Get("kill")
	require.NoError(t, err)
	assert.Equal(t, "^U", v)

	// Disabling.
	require.NoError(t, s.Set("susp", "undef"))
	v, err = s.Get("susp")
	require.NoError(t, err)
	assert.Equal(t, CCUndef, v)
}

func TestSetControlCharErrors(t *testing.T) {
	s := New()

	err := s.Set("intr", "ctrl-c")
	assert.ErrorIs(t, err, ErrInvalidValue)

	err = s.Set("intr", []byte{1, 2})
	assert.ErrorIs(t, err, ErrInvalidValue)

	err = s.Set("intr", 3.14)
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestSetCount(t *testing.T) {
	s := New()

	require.NoError(t, s.Set("min", 1))
	require.NoError(t, s.Set("time", 10))

	v, err := s.Get("min")
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	v, err = s.Get("time")
	require.NoError(t, err)
	assert.Equal(t, 10, v)
}

func TestSetCountErrors(t *testing.T) {
	s := New()

	err := s.Set("min", 300)
	assert.ErrorIs(t, err, ErrInvalidValue)

	err = s.Set("min", -1)
	assert.ErrorIs(t, err, ErrInvalidValue)

	err = s.Set("min", "5")
	assert.ErrorIs(t, err, ErrInvalidType)

	v, gerr := s.Get("min")
	require.NoError(t, gerr)
	assert.Equal(t, 0, v)
}

func TestSetWinsize(t *testing.T) {
	if !platformHasWinsize {
		t.Skip("platform has no window-size support")
	}
	s := New()

	require.NoError(t, s.Set("rows", 40))
	require.NoError(t, s.Set("cols", 120))

	ws, ok := s.Winsize()
	require.True(t, ok)
	assert.Equal(t, uint16(40), ws.Rows)
	assert.Equal(t, uint16(120), ws.Cols)

	err := s.Set("rows", -1)
	assert.ErrorIs(t, err, ErrInvalidValue)
	err = s.Set("rows", 1<<16)
	assert.ErrorIs(t, err, ErrInvalidValue)
	err = s.Set("rows", "many")
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestSetAll(t *testing.T) {
	s := New()

	require.NoError(t, s.SetAll(map[string]any{
		"echo":   true,
		"icanon": true,
		"csize":  "cs8",
		"ispeed": 9600,
		"intr":   "^C",
		"min":    1,
	}))

	v, err := s.Get("csize")
	require.NoError(t, err)
	assert.Equal(t, "cs8", v)
	v, err = s.Get("intr")
	require.NoError(t, err)
	assert.Equal(t, "^C", v)
}

func TestSetAllUnknownKeys(t *testing.T) {
	s := New()
	require.NoError(t, s.Set("echo", true))
	before := s.Attributes()

	err := s.SetAll(map[string]any{
		"echo":  false,
		"zzz-b": 1,
		"zzz-a": 2,
	})
	require.ErrorIs(t, err, ErrUnsupportedAttribute)
	// All unknown keys are reported, sorted, and nothing is applied.
	assert.Contains(t, err.Error(), "zzz-a, zzz-b")
	assert.Equal(t, before, s.Attributes())
}

func TestRawSymbolicConsistency(t *testing.T) {
	s := New()
	require.NoError(t, s.SetAll(map[string]any{
		"echo":   true,
		"icanon": true,
		"ixon":   true,
		"opost":  true,
		"csize":  "cs7",
		"parenb": true,
		"ispeed": 115200,
		"ospeed": 115200,
		"intr":   "^C",
		"erase":  "^?",
		"min":    1,
		"time":   5,
	}))

	// Re-deriving from the raw blocks alone must reproduce the cached view.
	fresh := Stty{termios: s.Termios()}
	if ws, ok := s.Winsize(); ok {
		fresh.winsize = ws
	}
	require.NoError(t, fresh.deriveAll())
	assert.Equal(t, s.Attributes(), fresh.Attributes())
}

func TestFromDeviceAndApplyTo(t *testing.T) {
	src := New()
	require.NoError(t, src.SetAll(map[string]any{
		"echo":   true,
		"csize":  "cs8",
		"ispeed": 9600,
		"ospeed": 9600,
		"intr":   "^C",
	}))
	if platformHasWinsize {
		require.NoError(t, src.SetAll(map[string]any{"rows": 24, "cols": 80}))
	}

	dev := &fakeDevice{}
	require.NoError(t, src.ApplyTo(dev, TCSADrain, true, true))
	require.Equal(t, []When{TCSADrain}, dev.setCalls)
	if platformHasWinsize {
		require.Equal(t, 1, dev.wsCalls)
	}

	got, err := NewFromDevice(dev)
	require.NoError(t, err)
	assert.Equal(t, src.Attributes(), got.Attributes())
	assert.Equal(t, src.Termios(), got.Termios())
}

func TestApplyToSelective(t *testing.T) {
	s := New()
	dev := &fakeDevice{}

	require.NoError(t, s.ApplyTo(dev, TCSANow, true, false))
	assert.Equal(t, []When{TCSANow}, dev.setCalls)
	assert.Zero(t, dev.wsCalls)

	require.NoError(t, s.ApplyTo(dev, TCSANow, false, true))
	assert.Len(t, dev.setCalls, 1)
}

func TestFromDeviceFailureLeavesUnchanged(t *testing.T) {
	s := New()
	require.NoError(t, s.Set("echo", true))
	before := s.Attributes()

	dev := &fakeDevice{termiosErr: errors.New("fetch failed")}
	require.Error(t, s.FromDevice(dev))
	assert.Equal(t, before, s.Attributes())
}

func TestEvenParity(t *testing.T) {
	s := New()

	require.NoError(t, s.EvenParity(true))
	assert.Equal(t, map[string]any{"parenb": true, "parodd": false, "csize": "cs7"}, pick(t, s, "parenb", "parodd", "csize"))

	require.NoError(t, s.EvenParity(false))
	assert.Equal(t, map[string]any{"parenb": false, "csize": "cs8"}, pick(t, s, "parenb", "csize"))
}

func TestOddParity(t *testing.T) {
	s := New()

	require.NoError(t, s.OddParity(true))
	assert.Equal(t, map[string]any{"parenb": true, "parodd": true, "csize": "cs7"}, pick(t, s, "parenb", "parodd", "csize"))

	require.NoError(t, s.OddParity(false))
	assert.Equal(t, map[string]any{"parenb": false, "csize": "cs8"}, pick(t, s, "parenb", "csize"))
}

func TestRawMode(t *testing.T) {
	s := New()
	require.NoError(t, s.SetAll(map[string]any{
		"echo": true, "icanon": true, "isig": true, "ixon": true,
		"icrnl": true, "opost": true, "parenb": true,
	}))

	require.NoError(t, s.Raw())

	cat := Default()
	for _, f := range []Field{FieldInput, FieldLocal} {
		for _, name := range cat.BoolNames(f) {
			v, err := s.Get(name)
			require.NoError(t, err)
			assert.Equal(t, false, v, "raw mode left %s on", name)
		}
	}
	assert.Equal(t, map[string]any{
		"opost": false, "parenb": false, "csize": "cs8", "min": 1, "time": 0,
	}, pick(t, s, "opost", "parenb", "csize", "min", "time"))
}

func TestNLMode(t *testing.T) {
	s := New()
	require.NoError(t, s.SetAll(map[string]any{"icrnl": true, "inlcr": true, "igncr": true}))

	require.NoError(t, s.NL(true))
	assert.Equal(t, map[string]any{"icrnl": false}, pick(t, s, "icrnl"))

	require.NoError(t, s.NL(false))
	assert.Equal(t, map[string]any{"icrnl": true, "inlcr": false, "igncr": false}, pick(t, s, "icrnl", "inlcr", "igncr"))
}

func TestEraseKillDefaults(t *testing.T) {
	s := New()
	require.NoError(t, s.SetAll(map[string]any{"erase": "^X", "kill": "^Y"}))

	require.NoError(t, s.EraseKillDefaults())
	assert.Equal(t, map[string]any{"erase": "^?", "kill": "^U"}, pick(t, s, "erase", "kill"))
}

func TestStringOutput(t *testing.T) {
	s := New()
	require.NoError(t, s.Set("echo", true))

	out := s.String()
	assert.Contains(t, out, "echo=true")
	assert.Contains(t, out, "ispeed=0")
}

// pick returns the named attributes of s for comparison against a literal.
func pick(t *testing.T, s *Stty, names ...string) map[string]any {
	t.Helper()
	out := make(map[string]any, len(names))
	for _, name := range names {
		v, err := s.Get(name)
		require.NoError(t, err)
		out[name] = v
	}
	return out
}
