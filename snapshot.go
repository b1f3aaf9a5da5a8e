package simgo

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"slices"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/simgo/blobstore"
	"github.com/hupe1980/simgo/codec"
	"github.com/hupe1980/simgo/core"
	"github.com/hupe1980/simgo/internal/slotset"
	"github.com/hupe1980/simgo/similarity"
)

var (
	snapshotMagic         = [4]byte{'S', 'G', 'S', '1'}
	snapshotFormatVersion = uint16(1)
)

// CompressionType selects the snapshot payload compression.
type CompressionType uint8

const (
	// CompressionNone stores the payload uncompressed.
	CompressionNone CompressionType = 0
	// CompressionLZ4 uses LZ4 frame compression (fast).
	CompressionLZ4 CompressionType = 1
	// CompressionZstd uses Zstandard compression (better ratio).
	CompressionZstd CompressionType = 2
)

// Zstd encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

// SnapshotOption configures snapshot writing.
type SnapshotOption func(*snapshotConfig)

type snapshotConfig struct {
	compression CompressionType
}

// WithCompression sets the snapshot payload compression.
// Defaults to CompressionNone.
func WithCompression(ct CompressionType) SnapshotOption {
	return func(c *snapshotConfig) {
		c.compression = ct
	}
}

// snapshotState is the codec-marshaled engine state. The reverse mapping
// is derived state and deliberately not serialized; it is rebuilt from
// the forward entries on load.
type snapshotState[K comparable] struct {
	Options  snapshotOptions    `json:"options"`
	NextSlot uint32             `json:"next_slot"`
	Entries  []snapshotEntry[K] `json:"entries"`
}

type snapshotOptions struct {
	CaseSensitive  bool     `json:"case_sensitive"`
	StopWhitespace bool     `json:"stop_whitespace"`
	StopWords      []string `json:"stop_words,omitempty"`
	Metric         string   `json:"metric"`
	Threshold      float64  `json:"threshold"`
}

type snapshotEntry[K comparable] struct {
	ID     K        `json:"id"`
	Slot   uint32   `json:"slot"`
	Tokens []string `json:"tokens,omitempty"`
}

// SaveToWriter serializes the engine state to w.
//
// Format:
//  1. header (magic, version, compression, codec name)
//  2. payload length and CRC32 checksum
//  3. codec-marshaled state, optionally compressed
func (e *Engine[K]) SaveToWriter(w io.Writer, optFns ...SnapshotOption) error {
	if w == nil {
		return fmt.Errorf("snapshot: writer is nil")
	}

	var cfg snapshotConfig
	for _, fn := range optFns {
		if fn != nil {
			fn(&cfg)
		}
	}

	state := snapshotState[K]{
		Options: snapshotOptions{
			CaseSensitive:  e.opts.caseSensitive,
			StopWhitespace: e.opts.stopWhitespace,
			StopWords:      e.opts.stopWords,
			Metric:         e.opts.metric.String(),
			Threshold:      e.threshold,
		},
		NextSlot: uint32(e.nextSlot),
		Entries:  make([]snapshotEntry[K], 0, e.ids.Len()),
	}

	for id, slot := range e.ids.All() {
		tokens, ok := e.forward[slot]
		if !ok {
			corruptf("slot %d live in bijection but missing from forward mapping", slot)
		}
		state.Entries = append(state.Entries, snapshotEntry[K]{
			ID:     id,
			Slot:   uint32(slot),
			Tokens: tokens,
		})
	}

	c := e.opts.codec
	if c == nil {
		c = codec.Default
	}

	payload, err := c.Marshal(state)
	if err != nil {
		return fmt.Errorf("snapshot: marshal state: %w", err)
	}

	payload, err = compressPayload(cfg.compression, payload)
	if err != nil {
		return fmt.Errorf("snapshot: compress payload: %w", err)
	}

	codecName := c.Name()
	if len(codecName) > 0xFFFF {
		return fmt.Errorf("snapshot: codec name too long: %d", len(codecName))
	}

	// Header (12 bytes + codec name)
	// [0:4]   magic
	// [4:6]   version
	// [6]     compression
	// [7]     reserved
	// [8:10]  codec name len
	// [10:12] reserved
	var hdr [12]byte
	copy(hdr[0:4], snapshotMagic[:])
	binary.LittleEndian.PutUint16(hdr[4:6], snapshotFormatVersion)
	hdr[6] = byte(cfg.compression)
	binary.LittleEndian.PutUint16(hdr[8:10], uint16(len(codecName)))
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	if _, err := io.WriteString(w, codecName); err != nil {
		return err
	}

	var trailer [12]byte
	binary.LittleEndian.PutUint64(trailer[0:8], uint64(len(payload)))
	binary.LittleEndian.PutUint32(trailer[8:12], crc32.ChecksumIEEE(payload))
	if _, err := w.Write(trailer[:]); err != nil {
		return err
	}

	_, err = w.Write(payload)
	return err
}

// LoadFromReader deserializes an engine from r.
//
// The engine configuration recorded in the snapshot is restored first;
// optFns are applied on top and take precedence, which is the hook for
// re-attaching ambient concerns (logger, metrics, codec) that are not
// part of the serialized state.
func LoadFromReader[K comparable](r io.Reader, optFns ...Option) (*Engine[K], error) {
	var hdr [12]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("%w: short header: %w", ErrSnapshotCorrupt, err)
	}
	if !bytes.Equal(hdr[0:4], snapshotMagic[:]) {
		return nil, fmt.Errorf("%w: bad magic", ErrSnapshotCorrupt)
	}
	if version := binary.LittleEndian.Uint16(hdr[4:6]); version != snapshotFormatVersion {
		return nil, fmt.Errorf("%w: unsupported format version %d", ErrSnapshotCorrupt, version)
	}
	compression := CompressionType(hdr[6])

	codecName := make([]byte, binary.LittleEndian.Uint16(hdr[8:10]))
	if _, err := io.ReadFull(r, codecName); err != nil {
		return nil, fmt.Errorf("%w: short codec name: %w", ErrSnapshotCorrupt, err)
	}
	c, ok := codec.ByName(string(codecName))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, codecName)
	}

	var trailer [12]byte
	if _, err := io.ReadFull(r, trailer[:]); err != nil {
		return nil, fmt.Errorf("%w: short payload header: %w", ErrSnapshotCorrupt, err)
	}

	// Read whatever is actually present instead of preallocating the
	// declared length; a corrupt length field must not drive allocation.
	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("snapshot: read payload: %w", err)
	}
	if uint64(len(payload)) != binary.LittleEndian.Uint64(trailer[0:8]) {
		return nil, fmt.Errorf("%w: payload length mismatch", ErrSnapshotCorrupt)
	}
	if crc32.ChecksumIEEE(payload) != binary.LittleEndian.Uint32(trailer[8:12]) {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrSnapshotCorrupt)
	}

	payload, err = decompressPayload(compression, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: decompress: %w", ErrSnapshotCorrupt, err)
	}

	var state snapshotState[K]
	if err := c.Unmarshal(payload, &state); err != nil {
		return nil, fmt.Errorf("%w: unmarshal state: %w", ErrSnapshotCorrupt, err)
	}

	metric, ok := similarity.ByName(state.Options.Metric)
	if !ok {
		return nil, fmt.Errorf("%w: unknown metric %q", ErrSnapshotCorrupt, state.Options.Metric)
	}

	base := []Option{
		WithCaseSensitive(state.Options.CaseSensitive),
		WithStopWhitespace(state.Options.StopWhitespace),
		WithStopWords(state.Options.StopWords...),
		WithMetric(metric),
		WithThreshold(state.Options.Threshold),
		WithCodec(c),
	}

	engine, err := New[K](append(base, optFns...)...)
	if err != nil {
		return nil, err
	}

	if err := engine.restore(state); err != nil {
		return nil, err
	}

	return engine, nil
}

// restore replays snapshot entries into a freshly constructed engine,
// rebuilding the reverse mapping from the forward token sets.
func (e *Engine[K]) restore(state snapshotState[K]) error {
	e.nextSlot = core.Slot(state.NextSlot)

	for _, entry := range state.Entries {
		slot := core.Slot(entry.Slot)

		if slot >= e.nextSlot {
			return fmt.Errorf("%w: slot %d not below next slot %d", ErrSnapshotCorrupt, slot, e.nextSlot)
		}
		if _, exists := e.forward[slot]; exists {
			return fmt.Errorf("%w: duplicate slot %d", ErrSnapshotCorrupt, slot)
		}
		if _, exists := e.ids.Lookup(entry.ID); exists {
			return fmt.Errorf("%w: duplicate identifier for slot %d", ErrSnapshotCorrupt, slot)
		}

		// Forward token sets are sorted and duplicate-free in memory;
		// normalize here so hand-edited snapshots cannot smuggle
		// duplicates past the delete bookkeeping.
		tokens := slices.Clone(entry.Tokens)
		slices.Sort(tokens)
		tokens = slices.Compact(tokens)

		for _, token := range tokens {
			set := e.reverse[token]
			if set == nil {
				set = slotset.New()
				e.reverse[token] = set
			}
			set.Add(slot)
		}

		e.forward[slot] = tokens
		e.ids.Insert(entry.ID, slot)
	}

	return nil
}

// SaveToStore serializes the engine and writes it to the named blob.
func (e *Engine[K]) SaveToStore(ctx context.Context, store blobstore.Store, name string, optFns ...SnapshotOption) error {
	var buf bytes.Buffer
	if err := e.SaveToWriter(&buf, optFns...); err != nil {
		e.opts.logger.LogSnapshotSave(ctx, name, 0, err)
		return err
	}

	err := store.Put(ctx, name, buf.Bytes())
	e.opts.logger.LogSnapshotSave(ctx, name, buf.Len(), err)
	return err
}

// LoadFromStore reads the named blob from the store and deserializes an
// engine from it.
func LoadFromStore[K comparable](ctx context.Context, store blobstore.Store, name string, optFns ...Option) (*Engine[K], error) {
	data, err := blobstore.ReadAll(ctx, store, name)
	if err != nil {
		return nil, err
	}

	engine, err := LoadFromReader[K](bytes.NewReader(data), optFns...)
	if err != nil {
		return nil, err
	}

	engine.opts.logger.LogSnapshotLoad(ctx, name, engine.Len(), nil)
	return engine, nil
}

func compressPayload(ct CompressionType, payload []byte) ([]byte, error) {
	switch ct {
	case CompressionNone:
		return payload, nil
	case CompressionLZ4:
		var buf bytes.Buffer
		zw := lz4.NewWriter(&buf)
		if _, err := zw.Write(payload); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case CompressionZstd:
		enc := getZstdEncoder()
		defer zstdEncoderPool.Put(enc)
		return enc.EncodeAll(payload, nil), nil
	default:
		return nil, fmt.Errorf("unsupported compression type: %d", ct)
	}
}

func decompressPayload(ct CompressionType, payload []byte) ([]byte, error) {
	switch ct {
	case CompressionNone:
		return payload, nil
	case CompressionLZ4:
		zr := lz4.NewReader(bytes.NewReader(payload))
		return io.ReadAll(zr)
	case CompressionZstd:
		dec := getZstdDecoder()
		defer zstdDecoderPool.Put(dec)
		return dec.DecodeAll(payload, nil)
	default:
		return nil, fmt.Errorf("unsupported compression type: %d", ct)
	}
}
