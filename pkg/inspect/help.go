// Package inspect renders the attribute catalog's metadata as help text:
// which attributes the running platform supports, grouped by category, and
// what values each accepts. It carries no behavior of its own.
package inspect

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ttykit/ttykit-go/pkg/stty"
)

// controlCharHelp describes the accepted control-character value forms.
const controlCharHelp = `    POSSIBLE VALUES: a single byte, a string of length 1, a string of length 2
                     starting with "^" (circumflex, caret) to represent a
                     control character, or the string "undef". Please check
                     the manpage of stty(1) for more details.`

// Help renders the full attribute help text for the running platform.
func Help() string {
	cat := stty.Default()
	var b strings.Builder

	b.WriteString("For details on the following attributes, check the manpage of stty(1) on your system.\n\n")
	b.WriteString("Terminal attributes:\n\n")

	for _, g := range []struct {
		field stty.Field
		label string
	}{
		{stty.FieldInput, "input mode"},
		{stty.FieldOutput, "output mode"},
		{stty.FieldControl, "control mode"},
		{stty.FieldLocal, "local mode"},
	} {
		fmt.Fprintf(&b, "  Boolean %s attributes (possible values: true, false):\n", g.label)
		fmt.Fprintf(&b, "    %s\n\n", strings.Join(sorted(cat.BoolNames(g.field)), " "))
	}

	if names := cat.WinsizeNames(); len(names) > 0 {
		b.WriteString("  Winsize attributes (possible values: any nonnegative integer):\n")
		fmt.Fprintf(&b, "    %s\n\n", strings.Join(sorted(names), " "))
	}

	b.WriteString("  Non-canonical mode attributes (possible values: integers 0 through 255):\n")
	fmt.Fprintf(&b, "    %s\n\n", strings.Join(sorted(cat.CountNames()), " "))

	b.WriteString("  Enumerated attributes:\n")
	b.WriteString(enumTable(cat))
	b.WriteString("\n")

	b.WriteString("  Control character attributes:\n")
	fmt.Fprintf(&b, "    ATTRIBUTES: %s\n", strings.Join(sorted(cat.ControlCharNames()), " "))
	b.WriteString(controlCharHelp)
	b.WriteString("\n\n")

	b.WriteString("  Speed attributes:\n")
	fmt.Fprintf(&b, "    ATTRIBUTES: %s\n", strings.Join(cat.SpeedNames(), " "))
	fmt.Fprintf(&b, "    POSSIBLE VALUES: %s\n", joinInts(cat.Speeds()))

	return b.String()
}

// enumTable renders the enumerated attributes and their value tables as an
// aligned two-column table.
func enumTable(cat *stty.Catalog) string {
	const heading1 = "ATTRIBUTE"
	const heading2 = "POSSIBLE VALUES"

	names := cat.EnumNames()
	padding := len(heading1)
	for _, name := range names {
		if len(name) > padding {
			padding = len(name)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "    %-*s  |  %s\n", padding, heading1, heading2)
	for _, name := range names {
		values := cat.EnumValues(name)
		labels := make([]string, len(values))
		for i, v := range values {
			labels[i] = v.Name
		}
		fmt.Fprintf(&b, "    %-*s  |  %s\n", padding, name, strings.Join(labels, ", "))
	}
	return b.String()
}

func sorted(names []string) []string {
	sort.Strings(names)
	return names
}

func joinInts(ns []int) string {
	labels := make([]string, len(ns))
	for i, n := range ns {
		labels[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(labels, ", ")
}
