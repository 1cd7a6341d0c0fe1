// Command ttyctl inspects and changes terminal attributes in the style of
// stty(1).
//
// Usage:
//
//	ttyctl [flags] [setting ...]
//
// Each setting is either an assignment "name=value" (e.g. intr=^C,
// csize=cs8, ispeed=9600), a bare attribute name to switch a boolean flag
// on (e.g. echo), "-name" to switch it off (e.g. -echo), or one of the
// combination modes raw, evenp, -evenp, oddp, -oddp, nl, -nl, ek. Settings
// beginning with "-" must follow a "--" terminator or another setting so
// the flag parser does not claim them.
//
// Flags:
//
//	-tty string      Terminal device path (default "/dev/tty")
//	-when string     Apply timing: now, drain, flush (default "now")
//	-show            Print all attributes after applying settings
//	-g               Print the snapshot in compact text form
//	-restore string  Apply a compact-form snapshot produced by -g
//	-save string     Save a snapshot file
//	-load string     Load and apply a snapshot file
//	-profiles string Profile file path (YAML)
//	-profile string  Apply a named profile from -profiles
//	-help-attrs      Print the supported attributes and exit
//	-interactive     Start the interactive shell
//
// Examples:
//
//	# Disable echo and canonical mode
//	ttyctl -- -echo -icanon
//
//	# Capture, then reinstate, the current settings
//	saved=$(ttyctl -g)
//	ttyctl -restore "$saved"
//
//	# Apply a named profile after output drains
//	ttyctl -profiles profiles.yaml -profile serial-7e1 -when drain
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/ttykit/ttykit-go/cmd/ttyctl/interactive"
	"github.com/ttykit/ttykit-go/pkg/inspect"
	"github.com/ttykit/ttykit-go/pkg/persistence"
	"github.com/ttykit/ttykit-go/pkg/profile"
	"github.com/ttykit/ttykit-go/pkg/stty"
	"github.com/ttykit/ttykit-go/pkg/term"
	"github.com/ttykit/ttykit-go/pkg/wire"
)

// Config holds the tool configuration.
type Config struct {
	TTY         string
	When        string
	Show        bool
	Compact     bool
	Restore     string
	SaveFile    string
	LoadFile    string
	Profiles    string
	Profile     string
	HelpAttrs   bool
	Interactive bool
}

var config Config

func init() {
	flag.StringVar(&config.TTY, "tty", "/dev/tty", "Terminal device path")
	flag.StringVar(&config.When, "when", "now", "Apply timing: now, drain, flush")
	flag.BoolVar(&config.Show, "show", false, "Print all attributes after applying settings")
	flag.BoolVar(&config.Compact, "g", false, "Print the snapshot in compact text form")
	flag.StringVar(&config.Restore, "restore", "", "Apply a compact-form snapshot produced by -g")
	flag.StringVar(&config.SaveFile, "save", "", "Save a snapshot file")
	flag.StringVar(&config.LoadFile, "load", "", "Load and apply a snapshot file")
	flag.StringVar(&config.Profiles, "profiles", "", "Profile file path (YAML)")
	flag.StringVar(&config.Profile, "profile", "", "Apply a named profile from -profiles")
	flag.BoolVar(&config.HelpAttrs, "help-attrs", false, "Print the supported attributes and exit")
	flag.BoolVar(&config.Interactive, "interactive", false, "Start the interactive shell")
}

func main() {
	flag.Parse()

	if config.HelpAttrs {
		fmt.Print(inspect.Help())
		return
	}

	when, err := parseWhen(config.When)
	if err != nil {
		log.Fatalf("Invalid -when: %v", err)
	}

	tty, err := term.Open(config.TTY)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", config.TTY, err)
	}
	defer tty.Close()

	st, err := stty.NewFromDevice(tty)
	if err != nil {
		log.Fatalf("Failed to read terminal attributes: %v", err)
	}

	if config.Interactive {
		shell, err := interactive.New(st, tty)
		if err != nil {
			log.Fatalf("Failed to start interactive shell: %v", err)
		}
		shell.Run()
		return
	}

	dirty := false

	if config.LoadFile != "" {
		store := persistence.NewSnapshotStore(config.LoadFile)
		if err := store.Restore(st); err != nil {
			log.Fatalf("Failed to load snapshot: %v", err)
		}
		dirty = true
	}

	if config.Restore != "" {
		snap, err := wire.DecodeString(config.Restore)
		if err != nil {
			log.Fatalf("Failed to decode snapshot text: %v", err)
		}
		if err := st.Restore(snap); err != nil {
			log.Fatalf("Failed to restore snapshot: %v", err)
		}
		dirty = true
	}

	if config.Profile != "" {
		if config.Profiles == "" {
			log.Fatal("-profile requires -profiles")
		}
		file, err := profile.Load(config.Profiles)
		if err != nil {
			log.Fatalf("Failed to load profiles: %v", err)
		}
		p, err := file.Lookup(config.Profile)
		if err != nil {
			log.Fatal(err)
		}
		if err := p.Apply(st); err != nil {
			log.Fatalf("Failed to apply profile %q: %v", config.Profile, err)
		}
		dirty = true
	}

	for _, arg := range flag.Args() {
		if err := applySetting(st, arg); err != nil {
			log.Fatalf("Setting %q: %v", arg, err)
		}
		dirty = true
	}

	if dirty {
		if err := st.ApplyTo(tty, when, true, true); err != nil {
			log.Fatalf("Failed to apply attributes: %v", err)
		}
	}

	if config.SaveFile != "" {
		store := persistence.NewSnapshotStore(config.SaveFile)
		if err := store.Save(st); err != nil {
			log.Fatalf("Failed to save snapshot: %v", err)
		}
	}

	if config.Compact {
		s, err := wire.EncodeString(st.Snapshot())
		if err != nil {
			log.Fatalf("Failed to encode snapshot: %v", err)
		}
		fmt.Println(s)
		return
	}

	if config.Show || (!dirty && config.SaveFile == "") {
		fmt.Println(st)
	}
}

// parseWhen maps the -when flag onto a tcsetattr timing policy.
func parseWhen(s string) (stty.When, error) {
	switch strings.ToLower(s) {
	case "now":
		return stty.TCSANow, nil
	case "drain":
		return stty.TCSADrain, nil
	case "flush":
		return stty.TCSAFlush, nil
	}
	return stty.TCSANow, fmt.Errorf("unknown timing %q (want now, drain, or flush)", s)
}

// applySetting applies one command-line setting token to st.
func applySetting(st *stty.Stty, arg string) error {
	switch arg {
	case "raw":
		return st.Raw()
	case "evenp":
		return st.EvenParity(true)
	case "-evenp":
		return st.EvenParity(false)
	case "oddp":
		return st.OddParity(true)
	case "-oddp":
		return st.OddParity(false)
	case "nl":
		return st.NL(true)
	case "-nl":
		return st.NL(false)
	case "ek":
		return st.EraseKillDefaults()
	}

	if name, value, ok := strings.Cut(arg, "="); ok {
		return st.Set(name, parseValue(value))
	}
	if strings.HasPrefix(arg, "-") {
		return st.Set(arg[1:], false)
	}
	return st.Set(arg, true)
}

// parseValue interprets a setting value token: integers and booleans are
// converted, everything else stays a string (enum value names and
// control-character forms).
func parseValue(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}
