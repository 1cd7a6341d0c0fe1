package stty

import (
	"fmt"
	"sort"
	"sync"
)

// Field selects one of the four raw flag words.
type Field uint8

const (
	FieldInput   Field = iota // iflag
	FieldOutput               // oflag
	FieldControl              // cflag
	FieldLocal                // lflag
)

// String returns the conventional termios name of the flag word.
func (f Field) String() string {
	switch f {
	case FieldInput:
		return "iflag"
	case FieldOutput:
		return "oflag"
	case FieldControl:
		return "cflag"
	case FieldLocal:
		return "lflag"
	}
	return "unknown"
}

// Category classifies how an attribute is stored and validated.
type Category uint8

const (
	CategoryUnknown Category = iota
	CategoryBool
	CategoryEnum
	CategorySpeed
	CategoryControlChar
	CategoryCount
	CategoryWinsize
)

// String returns the category name.
func (c Category) String() string {
	names := []string{
		"unknown", "bool", "enum", "speed",
		"control-char", "count", "winsize",
	}
	if int(c) < len(names) {
		return names[c]
	}
	return "unknown"
}

// Index values for speed and winsize entries.
const (
	speedInput  = 0
	speedOutput = 1

	winszRows = 0
	winszCols = 1
)

// EnumValue is one member of an enumerated attribute's value table.
type EnumValue struct {
	// Name is the symbolic value name, e.g. "cs8".
	Name string

	// Value is the raw bit pattern within the entry's mask.
	Value uint64
}

// Entry describes one symbolic attribute: where it lives in the raw blocks
// and what values it accepts.
type Entry struct {
	// Name is the unique symbolic attribute name, e.g. "echo".
	Name string

	// Category determines storage and validation rules.
	Category Category

	// Field is the flag word the attribute occupies (bool and enum only).
	Field Field

	// Mask is the attribute's bit mask within Field (bool and enum only).
	Mask uint64

	// Index addresses the control-character array (control-char and count),
	// or selects the speed/winsize slot.
	Index int

	// Values is the ordered value table (enum only). The table is injective
	// and contains only values the platform defines.
	Values []EnumValue
}

// valueName returns the symbolic name for a raw enum value.
func (e *Entry) valueName(raw uint64) (string, bool) {
	for i := range e.Values {
		if e.Values[i].Value == raw {
			return e.Values[i].Name, true
		}
	}
	return "", false
}

// valueByName returns the raw value for a symbolic enum name.
func (e *Entry) valueByName(name string) (uint64, bool) {
	for i := range e.Values {
		if e.Values[i].Name == name {
			return e.Values[i].Value, true
		}
	}
	return 0, false
}

// Catalog is the platform-filtered registry of supported attributes. It is
// built once, is immutable afterwards, and lives for the process lifetime.
type Catalog struct {
	entries map[string]*Entry

	// names holds every supported attribute name in build order:
	// booleans by flag word, enums, speeds, control characters, counts,
	// window dimensions.
	names []string

	boolNames  map[Field][]string
	enumNames  []string
	speedNames []string
	ccNames    []string
	countNames []string
	winszNames []string

	speeds     []int
	baudByRate map[int]uint64
	rateByBaud map[uint64]int
}

var (
	defaultCatalog *Catalog
	catalogOnce    sync.Once
)

// Default returns the process-wide attribute catalog, building it on first
// use. The returned catalog must not be modified.
func Default() *Catalog {
	catalogOnce.Do(func() {
		defaultCatalog = buildCatalog()
	})
	return defaultCatalog
}

// buildCatalog assembles the catalog from the per-platform tables. The
// platform files list only raw constants golang.org/x/sys/unix defines for
// the target, so entries for unsupported masks are never constructed.
func buildCatalog() *Catalog {
	c := &Catalog{
		entries:    make(map[string]*Entry),
		boolNames:  make(map[Field][]string),
		baudByRate: make(map[int]uint64),
		rateByBaud: make(map[uint64]int),
	}

	for _, d := range platformBoolFlags {
		c.add(&Entry{Name: d.name, Category: CategoryBool, Field: d.field, Mask: d.mask})
		c.boolNames[d.field] = append(c.boolNames[d.field], d.name)
	}

	for _, g := range platformEnumGroups {
		values := make([]EnumValue, len(g.values))
		copy(values, g.values)
		c.add(&Entry{Name: g.name, Category: CategoryEnum, Field: g.field, Mask: g.mask, Values: values})
		c.enumNames = append(c.enumNames, g.name)
	}

	c.add(&Entry{Name: "ispeed", Category: CategorySpeed, Index: speedInput})
	c.add(&Entry{Name: "ospeed", Category: CategorySpeed, Index: speedOutput})
	c.speedNames = append(c.speedNames, "ispeed", "ospeed")

	for _, d := range platformControlChars {
		c.add(&Entry{Name: d.name, Category: CategoryControlChar, Index: d.index})
		c.ccNames = append(c.ccNames, d.name)
	}

	for _, d := range platformCounts {
		c.add(&Entry{Name: d.name, Category: CategoryCount, Index: d.index})
		c.countNames = append(c.countNames, d.name)
	}

	// Window dimensions are present as a group or not at all.
	if platformHasWinsize {
		c.add(&Entry{Name: "rows", Category: CategoryWinsize, Index: winszRows})
		c.add(&Entry{Name: "cols", Category: CategoryWinsize, Index: winszCols})
		c.winszNames = append(c.winszNames, "rows", "cols")
	}

	for _, b := range platformBauds {
		c.baudByRate[b.rate] = b.code
		c.rateByBaud[b.code] = b.rate
		c.speeds = append(c.speeds, b.rate)
	}
	sort.Ints(c.speeds)

	return c
}

func (c *Catalog) add(e *Entry) {
	c.entries[e.Name] = e
	c.names = append(c.names, e.Name)
}

// Lookup resolves a symbolic attribute name to its catalog entry.
func (c *Catalog) Lookup(name string) (*Entry, error) {
	e, ok := c.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAttribute, name)
	}
	return e, nil
}

// Supported reports whether the attribute name exists on this platform.
func (c *Catalog) Supported(name string) bool {
	_, ok := c.entries[name]
	return ok
}

// Names returns every supported attribute name in build order.
func (c *Catalog) Names() []string {
	return cloneStrings(c.names)
}

// BoolNames returns the boolean attribute names for one flag word.
func (c *Catalog) BoolNames(f Field) []string {
	return cloneStrings(c.boolNames[f])
}

// EnumNames returns the enumerated attribute names.
func (c *Catalog) EnumNames() []string {
	return cloneStrings(c.enumNames)
}

// EnumValues returns the ordered value table for an enumerated attribute,
// or nil if name is not an enumerated attribute on this platform.
func (c *Catalog) EnumValues(name string) []EnumValue {
	e, ok := c.entries[name]
	if !ok || e.Category != CategoryEnum {
		return nil
	}
	values := make([]EnumValue, len(e.Values))
	copy(values, e.Values)
	return values
}

// SpeedNames returns the speed attribute names.
func (c *Catalog) SpeedNames() []string {
	return cloneStrings(c.speedNames)
}

// ControlCharNames returns the control-character attribute names.
func (c *Catalog) ControlCharNames() []string {
	return cloneStrings(c.ccNames)
}

// CountNames returns the non-canonical count attribute names.
func (c *Catalog) CountNames() []string {
	return cloneStrings(c.countNames)
}

// WinsizeNames returns the window-dimension attribute names. The list is
// empty on platforms without window-size support.
func (c *Catalog) WinsizeNames() []string {
	return cloneStrings(c.winszNames)
}

// Speeds returns the supported baud rates in ascending order.
func (c *Catalog) Speeds() []int {
	speeds := make([]int, len(c.speeds))
	copy(speeds, c.speeds)
	return speeds
}

func cloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// Table row types filled in by the per-platform catalog files.

type maskDef struct {
	name  string
	field Field
	mask  uint64
}

type enumDef struct {
	name   string
	field  Field
	mask   uint64
	values []EnumValue
}

type indexDef struct {
	name  string
	index int
}

type baudDef struct {
	rate int
	code uint64
}
