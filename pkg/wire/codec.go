package wire

import (
	"encoding/base64"
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// encMode is the CBOR encoder mode for snapshots.
// Configured for deterministic encoding so equal snapshots produce equal
// bytes.
var encMode cbor.EncMode

// decMode is the CBOR decoder mode for snapshots.
var decMode cbor.DecMode

func init() {
	var err error

	// Configure encoder for deterministic output
	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical, // Deterministic key ordering
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	// Snapshot maps are keyed by attribute name; decode nested maps with
	// string keys so stty.Restore can consume them directly.
	decOpts := cbor.DecOptions{
		DupMapKey:      cbor.DupMapKeyQuiet, // Ignore duplicate keys (last wins)
		IndefLength:    cbor.IndefLengthAllowed,
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// Marshal encodes a value to CBOR bytes.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR bytes into a value.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// EncodeSnapshot encodes a snapshot mapping to CBOR bytes.
func EncodeSnapshot(snap map[string]any) ([]byte, error) {
	data, err := Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot decodes CBOR bytes into a snapshot mapping.
func DecodeSnapshot(data []byte) (map[string]any, error) {
	var snap map[string]any
	if err := Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return snap, nil
}

// EncodeString encodes a snapshot mapping to a base64 text form suitable
// for a shell variable.
func EncodeString(snap map[string]any) (string, error) {
	data, err := EncodeSnapshot(snap)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// DecodeString decodes the base64 text form back to a snapshot mapping.
func DecodeString(s string) (map[string]any, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("failed to decode snapshot text: %w", err)
	}
	return DecodeSnapshot(data)
}
