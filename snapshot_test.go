package seqgo

import (
	"bytes"
	"testing"

	"github.com/hupe1980/seqgo/codec"
	"github.com/hupe1980/seqgo/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestSnapshot_RoundTrip(t *testing.T) {
	in := vector.Of(
		record{ID: 1, Name: "a"},
		record{ID: 2, Name: "b"},
		record{ID: 3, Name: "c"},
	)

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, in))

	out, err := Load[record](&buf)
	require.NoError(t, err)
	assert.Equal(t, in.ToSlice(), out.ToSlice())
}

func TestSnapshot_EmptyVector(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, vector.New[int]()))

	out, err := Load[int](&buf)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Len())
}

func TestSnapshot_Compressions(t *testing.T) {
	in := vector.New[int]()
	for i := 0; i < 5000; i++ {
		in.Push(i % 10) // repetitive, compresses well
	}

	for _, compression := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
		t.Run(compression.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Save(&buf, in, WithCompression(compression)))

			out, err := Load[int](&buf)
			require.NoError(t, err)
			assert.Equal(t, in.ToSlice(), out.ToSlice())
		})
	}
}

func TestSnapshot_Codecs(t *testing.T) {
	in := vector.Of("x", "y", "z")

	for _, c := range []codec.Codec{codec.JSON{}, codec.GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Save(&buf, in, WithCodec(c)))

			// The codec is selected from the header; no option needed on load.
			out, err := Load[string](&buf)
			require.NoError(t, err)
			assert.Equal(t, in.ToSlice(), out.ToSlice())
		})
	}
}

func TestSnapshot_InvalidMagic(t *testing.T) {
	_, err := Load[int](bytes.NewReader([]byte("not a snapshot file at all")))
	assert.ErrorIs(t, err, ErrInvalidMagic)
}

func TestSnapshot_ChecksumMismatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, vector.Of(1, 2, 3)))

	// Flip a payload bit past the header.
	raw := buf.Bytes()
	raw[len(raw)-10] ^= 0xff

	_, err := Load[int](bytes.NewReader(raw))
	require.Error(t, err)
	assert.True(t, IsChecksumMismatch(err))
}

func TestSnapshot_Truncated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, vector.Of(1, 2, 3)))

	_, err := Load[int](bytes.NewReader(buf.Bytes()[:buf.Len()/2]))
	assert.Error(t, err)
}

func TestSnapshot_CustomCodecOnLoad(t *testing.T) {
	in := vector.Of(1, 2)

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, in, WithCodec(prefixCodec{})))

	// Unknown to the registry, so the loader needs the codec passed in.
	_, err := Load[int](bytes.NewReader(buf.Bytes()))
	assert.ErrorIs(t, err, ErrUnknownCodec)

	out, err := Load[int](bytes.NewReader(buf.Bytes()), WithCodec(prefixCodec{}))
	require.NoError(t, err)
	assert.Equal(t, in.ToSlice(), out.ToSlice())
}

// prefixCodec wraps JSON with a fixed prefix, standing in for an external codec.
type prefixCodec struct{}

func (prefixCodec) Marshal(v any) ([]byte, error) {
	b, err := codec.JSON{}.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append([]byte("PFX"), b...), nil
}

func (prefixCodec) Unmarshal(data []byte, v any) error {
	return codec.JSON{}.Unmarshal(bytes.TrimPrefix(data, []byte("PFX")), v)
}

func (prefixCodec) Name() string { return "prefix-json" }

func TestCompression_String(t *testing.T) {
	assert.Equal(t, "none", CompressionNone.String())
	assert.Equal(t, "lz4", CompressionLZ4.String())
	assert.Equal(t, "zstd", CompressionZSTD.String())
	assert.Equal(t, "unknown(9)", Compression(9).String())
}

func TestCompressPayload_RoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("seqgo"), 1000)

	for _, compression := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
		t.Run(compression.String(), func(t *testing.T) {
			block, err := compressPayload(data, compression)
			require.NoError(t, err)

			out, err := decompressPayload(block, compression)
			require.NoError(t, err)
			assert.Equal(t, data, out)
		})
	}
}

func TestCompressPayload_IncompressibleStoredRaw(t *testing.T) {
	// Too small and random-ish to compress; must fall back to stored form.
	data := []byte{0x01, 0xfe, 0x42}
	block, err := compressPayload(data, CompressionLZ4)
	require.NoError(t, err)

	out, err := decompressPayload(block, CompressionLZ4)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}
