package stty

// Composite modes from stty(1). Each is a fixed sequence of Set/SetAll
// calls; none of them touches the raw blocks directly.

// EvenParity sets (on) or unsets the evenp combination mode.
func (s *Stty) EvenParity(on bool) error {
	if on {
		return s.SetAll(map[string]any{"parenb": true, "csize": "cs7", "parodd": false})
	}
	return s.SetAll(map[string]any{"parenb": false, "csize": "cs8"})
}

// OddParity sets (on) or unsets the oddp combination mode.
func (s *Stty) OddParity(on bool) error {
	if on {
		return s.SetAll(map[string]any{"parenb": true, "csize": "cs7", "parodd": true})
	}
	return s.SetAll(map[string]any{"parenb": false, "csize": "cs8"})
}

// Raw sets the raw combination mode: every input and local boolean flag
// off, output post-processing off, parity off, eight-bit characters, and
// min=1/time=0 for non-canonical reads.
func (s *Stty) Raw() error {
	cat := Default()
	for _, f := range []Field{FieldInput, FieldLocal} {
		for _, name := range cat.BoolNames(f) {
			if err := s.Set(name, false); err != nil {
				return err
			}
		}
	}
	return s.SetAll(map[string]any{
		"opost":  false,
		"parenb": false,
		"csize":  "cs8",
		"min":    1,
		"time":   0,
	})
}

// NL sets (on) or unsets the nl combination mode. On disables CR-to-NL
// input translation; off re-enables it and clears the NL-to-CR and
// CR-discard translations.
func (s *Stty) NL(on bool) error {
	if on {
		return s.Set("icrnl", false)
	}
	return s.SetAll(map[string]any{"icrnl": true, "inlcr": false, "igncr": false})
}

// EraseKillDefaults sets the erase and kill control characters to the
// platform's compiled-in defaults, where the platform defines them. This
// mimics "stty ek".
func (s *Stty) EraseKillDefaults() error {
	cat := Default()
	if platformHasDefaultErase && cat.Supported("erase") {
		if err := s.Set("erase", platformDefaultErase); err != nil {
			return err
		}
	}
	if platformHasDefaultKill && cat.Supported("kill") {
		if err := s.Set("kill", platformDefaultKill); err != nil {
			return err
		}
	}
	return nil
}
