//go:build darwin

package stty

import "golang.org/x/sys/unix"

// Platform tables for Darwin. The uppercase-translation flags (iuclc, olcuc,
// xcase), cibaud, and the highest Linux baud rates do not exist here; Darwin
// adds the dsusp and status control characters.

var platformBoolFlags = []maskDef{
	{"ignbrk", FieldInput, unix.IGNBRK},
	{"brkint", FieldInput, unix.BRKINT},
	{"ignpar", FieldInput, unix.IGNPAR},
	{"parmrk", FieldInput, unix.PARMRK},
	{"inpck", FieldInput, unix.INPCK},
	{"istrip", FieldInput, unix.ISTRIP},
	{"inlcr", FieldInput, unix.INLCR},
	{"igncr", FieldInput, unix.IGNCR},
	{"icrnl", FieldInput, unix.ICRNL},
	{"ixon", FieldInput, unix.IXON},
	{"ixany", FieldInput, unix.IXANY},
	{"ixoff", FieldInput, unix.IXOFF},
	{"imaxbel", FieldInput, unix.IMAXBEL},

	{"opost", FieldOutput, unix.OPOST},
	{"onlcr", FieldOutput, unix.ONLCR},
	{"ocrnl", FieldOutput, unix.OCRNL},
	{"onocr", FieldOutput, unix.ONOCR},
	{"onlret", FieldOutput, unix.ONLRET},
	{"ofill", FieldOutput, unix.OFILL},
	{"ofdel", FieldOutput, unix.OFDEL},

	{"cstopb", FieldControl, unix.CSTOPB},
	{"cread", FieldControl, unix.CREAD},
	{"parenb", FieldControl, unix.PARENB},
	{"parodd", FieldControl, unix.PARODD},
	{"hupcl", FieldControl, unix.HUPCL},
	{"clocal", FieldControl, unix.CLOCAL},
	{"crtscts", FieldControl, unix.CRTSCTS},

	{"isig", FieldLocal, unix.ISIG},
	{"icanon", FieldLocal, unix.ICANON},
	{"echo", FieldLocal, unix.ECHO},
	{"echoe", FieldLocal, unix.ECHOE},
	{"echok", FieldLocal, unix.ECHOK},
	{"echonl", FieldLocal, unix.ECHONL},
	{"echoctl", FieldLocal, unix.ECHOCTL},
	{"echoprt", FieldLocal, unix.ECHOPRT},
	{"echoke", FieldLocal, unix.ECHOKE},
	{"flusho", FieldLocal, unix.FLUSHO},
	{"noflsh", FieldLocal, unix.NOFLSH},
	{"tostop", FieldLocal, unix.TOSTOP},
	{"pendin", FieldLocal, unix.PENDIN},
	{"iexten", FieldLocal, unix.IEXTEN},
}

var platformEnumGroups = []enumDef{
	{"csize", FieldControl, unix.CSIZE, []EnumValue{
		{"cs5", unix.CS5},
		{"cs6", unix.CS6},
		{"cs7", unix.CS7},
		{"cs8", unix.CS8},
	}},
	{"crdly", FieldOutput, unix.CRDLY, []EnumValue{
		{"cr0", unix.CR0},
		{"cr1", unix.CR1},
		{"cr2", unix.CR2},
		{"cr3", unix.CR3},
	}},
	{"nldly", FieldOutput, unix.NLDLY, []EnumValue{
		{"nl0", unix.NL0},
		{"nl1", unix.NL1},
	}},
	{"tabdly", FieldOutput, unix.TABDLY, []EnumValue{
		{"tab0", unix.TAB0},
		{"tab1", unix.TAB1},
		{"tab2", unix.TAB2},
		{"tab3", unix.TAB3},
	}},
	{"bsdly", FieldOutput, unix.BSDLY, []EnumValue{
		{"bs0", unix.BS0},
		{"bs1", unix.BS1},
	}},
	{"ffdly", FieldOutput, unix.FFDLY, []EnumValue{
		{"ff0", unix.FF0},
		{"ff1", unix.FF1},
	}},
	{"vtdly", FieldOutput, unix.VTDLY, []EnumValue{
		{"vt0", unix.VT0},
		{"vt1", unix.VT1},
	}},
}

var platformControlChars = []indexDef{
	{"eof", unix.VEOF},
	{"eol", unix.VEOL},
	{"eol2", unix.VEOL2},
	{"erase", unix.VERASE},
	{"werase", unix.VWERASE},
	{"kill", unix.VKILL},
	{"reprint", unix.VREPRINT},
	{"intr", unix.VINTR},
	{"quit", unix.VQUIT},
	{"susp", unix.VSUSP},
	{"dsusp", unix.VDSUSP},
	{"start", unix.VSTART},
	{"stop", unix.VSTOP},
	{"lnext", unix.VLNEXT},
	{"status", unix.VSTATUS},
	{"discard", unix.VDISCARD},
}

var platformCounts = []indexDef{
	{"min", unix.VMIN},
	{"time", unix.VTIME},
}

var platformBauds = []baudDef{
	{0, unix.B0},
	{50, unix.B50},
	{75, unix.B75},
	{110, unix.B110},
	{134, unix.B134},
	{150, unix.B150},
	{200, unix.B200},
	{300, unix.B300},
	{600, unix.B600},
	{1200, unix.B1200},
	{1800, unix.B1800},
	{2400, unix.B2400},
	{4800, unix.B4800},
	{9600, unix.B9600},
	{19200, unix.B19200},
	{38400, unix.B38400},
	{57600, unix.B57600},
	{115200, unix.B115200},
	{230400, unix.B230400},
}

const (
	// platformHasWinsize reports TIOCGWINSZ/TIOCSWINSZ support.
	platformHasWinsize = true

	// platformDisableChar is the byte that disables a control character
	// (the _POSIX_VDISABLE value).
	platformDisableChar byte = 0xff

	// Compiled-in terminal defaults from ttydefaults.h: ^? and ^U.
	platformHasDefaultErase      = true
	platformDefaultErase    byte = 0x7f
	platformHasDefaultKill       = true
	platformDefaultKill     byte = 0x15
)
