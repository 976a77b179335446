// Package codec centralizes element encoding for persisted snapshots.
//
// Snapshot files are self-describing: they record the codec name in their
// header, and the codec is selected by name on load. Changing the bytes a
// named codec produces is a breaking change for previously persisted data.
package codec

import "fmt"

// Codec encodes and decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
//
// Snapshot headers store the codec name; loaders use ByName to select the
// codec that produced the persisted bytes.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// MustMarshal is a helper for internal tests/benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}

// Default is the codec used when none is configured.
//
// This affects newly-created snapshots only. Existing snapshot files are
// self-describing and are opened by selecting the appropriate codec by name.
var Default Codec = GoJSON{}
