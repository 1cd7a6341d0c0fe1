// Package stty implements an stty(1)-style symbolic view over a terminal's
// raw attribute blocks.
//
// # Model
//
// Two layers compose the package:
//
//	Catalog > Stty
//
// The Catalog is a static, platform-filtered registry describing every
// symbolic attribute available on the running platform: which raw flag word
// or array it occupies, its value domain, and how to translate between
// symbolic and raw forms. It is built once and is immutable afterwards, so
// concurrent readers need no synchronization.
//
// An Stty wraps one raw termios block plus the terminal window size and
// offers get/set by symbolic name with domain validation. The raw block is
// the single source of truth; the symbolic values an Stty exposes are views
// derived from it, kept consistent with every mutation.
//
// # Attribute categories
//
//   - Boolean flags ("echo", "icanon", ...): any truthy value sets the bit.
//   - Enumerated flags ("csize", "tabdly", ...): one of a fixed set of named
//     values, accepted by name or raw integer, always read back as the name.
//   - Speeds ("ispeed", "ospeed"): one of the platform's baud rates.
//   - Control characters ("intr", "erase", ...): a byte, a one-character
//     string, caret notation such as "^C", or "undef".
//   - Non-canonical counts ("min", "time"): a byte-sized nonnegative integer.
//   - Window dimensions ("rows", "cols"): a nonnegative integer.
//
// # Devices and persistence
//
// Reading attributes from and applying them to a live terminal goes through
// the Device interface, implemented for real terminals by pkg/term. Snapshot
// and Restore convert an Stty to and from a flat, self-describing map for
// serialization; see pkg/persistence and pkg/wire for the file and compact
// wire forms.
//
// An Stty is an unsynchronized owned value and is not safe for concurrent
// mutation without external serialization.
package stty
