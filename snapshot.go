package seqgo

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hupe1980/seqgo/codec"
	"github.com/hupe1980/seqgo/vector"
)

// Snapshot layout (little-endian), checksummed from magic through payload:
//
//	magic        uint32
//	version      uint32
//	compression  uint8
//	codecNameLen uint8, codecName bytes
//	elementCount uint64
//	payloadLen   uint64, payload bytes (framed by compressPayload)
//	checksum     uint32 (CRC32, not part of the checksummed region)

type options struct {
	codec       codec.Codec
	compression Compression
	logger      *Logger
}

// Option configures snapshot Save/Load behavior.
type Option func(*options)

// WithCodec configures the codec used to encode elements on Save.
//
// On Load the codec is normally selected by the name recorded in the
// snapshot header; passing a custom codec here allows loading snapshots
// written with codecs outside the built-in registry. If nil is passed,
// codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression configures the payload compression used on Save.
// Load always honors the compression recorded in the snapshot header.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithLogger configures structured logging for snapshot operations.
// The default logger discards all output.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

func applyOptions(opts []Option) options {
	o := options{
		codec:       codec.Default,
		compression: CompressionNone,
		logger:      NoopLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Save writes a self-describing binary snapshot of vec to w.
//
// The snapshot records the codec name, compression algorithm, element count
// and a CRC32 checksum, so Load can validate and decode it without external
// configuration.
func Save[T any](w io.Writer, vec *vector.Vector[T], opts ...Option) error {
	o := applyOptions(opts)

	name := o.codec.Name()
	if len(name) == 0 || len(name) > 255 {
		return fmt.Errorf("codec name %q must be 1-255 bytes", name)
	}

	payload, err := o.codec.Marshal(vec.ToSlice())
	if err != nil {
		return fmt.Errorf("encode elements: %w", err)
	}

	block, err := compressPayload(payload, o.compression)
	if err != nil {
		return fmt.Errorf("compress payload: %w", err)
	}

	cw := newChecksumWriter(w)
	for _, field := range []any{
		uint32(MagicNumber),
		uint32(Version),
		uint8(o.compression),
		uint8(len(name)),
		[]byte(name),
		uint64(vec.Len()),
		uint64(len(block)),
		block,
	} {
		if err := binary.Write(cw, binary.LittleEndian, field); err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}
	}

	if err := binary.Write(w, binary.LittleEndian, cw.Sum()); err != nil {
		return fmt.Errorf("write checksum: %w", err)
	}

	o.logger.Debug("snapshot saved",
		"elements", vec.Len(),
		"codec", name,
		"compression", o.compression.String(),
		"payload_bytes", len(block),
	)

	return nil
}

// Load reads a snapshot written by Save and reconstructs the vector.
//
// The element type T must match the type the snapshot was saved with; the
// codec is selected by the name recorded in the header.
func Load[T any](r io.Reader, opts ...Option) (*vector.Vector[T], error) {
	o := applyOptions(opts)
	cr := newChecksumReader(r)

	var magic, version uint32
	if err := binary.Read(cr, binary.LittleEndian, &magic); err != nil {
		return nil, fmt.Errorf("read snapshot header: %w", err)
	}
	if magic != MagicNumber {
		return nil, fmt.Errorf("%w: 0x%08x", ErrInvalidMagic, magic)
	}
	if err := binary.Read(cr, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("read snapshot header: %w", err)
	}
	if version != Version {
		return nil, fmt.Errorf("%w: 0x%08x", ErrUnsupportedVersion, version)
	}

	var compression Compression
	if err := binary.Read(cr, binary.LittleEndian, (*uint8)(&compression)); err != nil {
		return nil, fmt.Errorf("read snapshot header: %w", err)
	}
	if !compression.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, uint8(compression))
	}

	var nameLen uint8
	if err := binary.Read(cr, binary.LittleEndian, &nameLen); err != nil {
		return nil, fmt.Errorf("read snapshot header: %w", err)
	}
	nameBytes := make([]byte, nameLen)
	if _, err := io.ReadFull(cr, nameBytes); err != nil {
		return nil, fmt.Errorf("read codec name: %w", err)
	}
	name := string(nameBytes)

	c := o.codec
	if c.Name() != name {
		var ok bool
		if c, ok = codec.ByName(name); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
		}
	}

	var count, blockLen uint64
	if err := binary.Read(cr, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("read snapshot header: %w", err)
	}
	if err := binary.Read(cr, binary.LittleEndian, &blockLen); err != nil {
		return nil, fmt.Errorf("read snapshot header: %w", err)
	}

	block := make([]byte, blockLen)
	if _, err := io.ReadFull(cr, block); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}

	// The checksum trailer is read from the raw reader so it does not feed
	// the running checksum.
	var expected uint32
	if err := binary.Read(r, binary.LittleEndian, &expected); err != nil {
		return nil, fmt.Errorf("read checksum: %w", err)
	}
	if err := cr.Verify(expected); err != nil {
		return nil, err
	}

	payload, err := decompressPayload(block, compression)
	if err != nil {
		return nil, err
	}

	var elems []T
	if err := c.Unmarshal(payload, &elems); err != nil {
		return nil, fmt.Errorf("decode elements: %w", err)
	}
	if uint64(len(elems)) != count {
		return nil, fmt.Errorf("%w: header count %d, decoded %d", ErrCorruptSnapshot, count, len(elems))
	}

	o.logger.Debug("snapshot loaded",
		"elements", len(elems),
		"codec", name,
		"compression", compression.String(),
	)

	return vector.Of(elems...), nil
}
