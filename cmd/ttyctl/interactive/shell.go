// Package interactive provides the interactive command-line interface for
// ttyctl.
package interactive

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/ttykit/ttykit-go/pkg/inspect"
	"github.com/ttykit/ttykit-go/pkg/persistence"
	"github.com/ttykit/ttykit-go/pkg/stty"
	"github.com/ttykit/ttykit-go/pkg/term"
	"github.com/ttykit/ttykit-go/pkg/wire"
)

// Shell handles interactive mode for ttyctl.
type Shell struct {
	st  *stty.Stty
	tty *term.TTY
	rl  *readline.Instance
}

// New creates a new interactive shell over st and the open terminal.
func New(st *stty.Stty, tty *term.TTY) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "ttyctl> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Shell{st: st, tty: tty, rl: rl}, nil
}

// Run starts the interactive command loop.
func (s *Shell) Run() {
	defer s.rl.Close()

	s.printHelp()

	for {
		line, err := s.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			s.printHelp()

		case "show", "ls":
			s.cmdShow()

		case "get":
			s.cmdGet(args)

		case "set":
			s.cmdSet(args)

		case "raw":
			s.report(s.st.Raw())

		case "evenp":
			s.report(s.st.EvenParity(true))

		case "-evenp":
			s.report(s.st.EvenParity(false))

		case "oddp":
			s.report(s.st.OddParity(true))

		case "-oddp":
			s.report(s.st.OddParity(false))

		case "nl":
			s.report(s.st.NL(true))

		case "-nl":
			s.report(s.st.NL(false))

		case "ek":
			s.report(s.st.EraseKillDefaults())

		case "fetch":
			s.report(s.st.FromDevice(s.tty))

		case "push":
			s.cmdPush(args)

		case "g":
			s.cmdCompact()

		case "restore":
			s.cmdRestore(args)

		case "save":
			s.cmdSave(args)

		case "load":
			s.cmdLoad(args)

		case "attrs":
			fmt.Fprint(s.rl.Stdout(), inspect.Help())

		case "quit", "exit", "q":
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			return

		default:
			fmt.Fprintf(s.rl.Stdout(), "Unknown command %q. Type 'help' for commands.\n", cmd)
		}
	}
}

func (s *Shell) printHelp() {
	fmt.Fprint(s.rl.Stdout(), `Commands:
  show                     Print all attributes
  get <name>               Print one attribute
  set <name> <value>       Set one attribute (in memory)
  raw | evenp | -evenp | oddp | -oddp | nl | -nl | ek
                           Apply a combination mode (in memory)
  fetch                    Re-read attributes from the terminal
  push [now|drain|flush]   Apply attributes to the terminal
  g                        Print the compact snapshot text
  restore <text>           Install a compact snapshot text
  save <file>              Save a snapshot file
  load <file>              Load a snapshot file
  attrs                    List supported attributes
  quit                     Exit
`)
}

// report prints err, if any. Model operations either fully succeed or leave
// the attribute set unchanged, so there is nothing else to clean up here.
func (s *Shell) report(err error) {
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
	}
}

func (s *Shell) cmdShow() {
	attrs := s.st.Attributes()
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(s.rl.Stdout(), "  %-8s = %v\n", name, attrs[name])
	}
}

func (s *Shell) cmdGet(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: get <name>")
		return
	}
	value, err := s.st.Get(args[0])
	if err != nil {
		s.report(err)
		return
	}
	fmt.Fprintf(s.rl.Stdout(), "%v\n", value)
}

func (s *Shell) cmdSet(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: set <name> <value>")
		return
	}
	s.report(s.st.Set(args[0], parseValue(args[1])))
}

func (s *Shell) cmdPush(args []string) {
	when := stty.TCSANow
	if len(args) > 0 {
		switch strings.ToLower(args[0]) {
		case "now":
			when = stty.TCSANow
		case "drain":
			when = stty.TCSADrain
		case "flush":
			when = stty.TCSAFlush
		default:
			fmt.Fprintln(s.rl.Stdout(), "Usage: push [now|drain|flush]")
			return
		}
	}
	s.report(s.st.ApplyTo(s.tty, when, true, true))
}

func (s *Shell) cmdCompact() {
	text, err := wire.EncodeString(s.st.Snapshot())
	if err != nil {
		s.report(err)
		return
	}
	fmt.Fprintln(s.rl.Stdout(), text)
}

func (s *Shell) cmdRestore(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: restore <text>")
		return
	}
	snap, err := wire.DecodeString(args[0])
	if err != nil {
		s.report(err)
		return
	}
	s.report(s.st.Restore(snap))
}

func (s *Shell) cmdSave(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: save <file>")
		return
	}
	s.report(persistence.NewSnapshotStore(args[0]).Save(s.st))
}

func (s *Shell) cmdLoad(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: load <file>")
		return
	}
	s.report(persistence.NewSnapshotStore(args[0]).Restore(s.st))
}

// parseValue interprets a value token: integers and booleans are converted,
// everything else stays a string.
func parseValue(v string) any {
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	switch strings.ToLower(v) {
	case "true", "on":
		return true
	case "false", "off":
		return false
	}
	return v
}
