// Package profile loads named terminal setting profiles from YAML files and
// applies them to an Stty with all-or-nothing name validation.
package profile

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/ttykit/ttykit-go/pkg/stty"
)

// Profile is one named group of attribute settings, e.g.
//
//	serial-7e1:
//	  parenb: true
//	  parodd: false
//	  csize: cs7
//	  ispeed: 9600
//	  ospeed: 9600
type Profile map[string]any

// Apply sets every attribute in the profile on st. Validation follows
// stty.SetAll: unknown attribute names are all reported before anything is
// applied.
func (p Profile) Apply(st *stty.Stty) error {
	return st.SetAll(p)
}

// File is a parsed profile file: profile name to settings.
type File map[string]Profile

// Names returns the profile names in sorted order.
func (f File) Names() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named profile.
func (f File) Lookup(name string) (Profile, error) {
	p, ok := f[name]
	if !ok {
		return nil, fmt.Errorf("profile %q not found", name)
	}
	return p, nil
}

// Parse parses profile data in YAML format.
func Parse(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("YAML parse error: %w", err)
	}
	return f, nil
}

// Load reads and parses a profile file.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}
