// Package wire implements the compact machine-readable form of an
// attribute snapshot: deterministic CBOR, optionally wrapped in base64 for
// embedding in shell variables and scripts. It plays the role of the
// "stty -g" output format.
package wire
