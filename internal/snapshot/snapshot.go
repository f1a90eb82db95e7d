// Package snapshot packs the state of emulator components into a single
// compressed, checksummed blob, and restores components from it.
//
// A snapshot is laid out as
//
//	0x00 - magic "GBCS"
//	0x04 - format version
//	0x05 - uncompressed payload length (uint32, little-endian)
//	0x09 - xxhash64 of the uncompressed payload (little-endian)
//	0x11 - brotli compressed payload
//
// The payload is the concatenated types.State of every component, in the
// order they were passed to Encode.
package snapshot

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/cespare/xxhash"
	"github.com/hashicorp/go-multierror"
	"github.com/thelolagemann/gbcore/internal/types"
)

const (
	magic      = "GBCS"
	version    = 1
	headerSize = len(magic) + 1 + 4 + 8
)

var (
	// ErrInvalidSnapshot is returned when the data is not a snapshot, or
	// does not match the components it is loaded into.
	ErrInvalidSnapshot = errors.New("invalid snapshot")
	// ErrChecksum is returned when the payload does not match its checksum.
	ErrChecksum = errors.New("snapshot checksum mismatch")
)

// Encode saves the given components and returns the snapshot.
func Encode(components ...types.Stater) ([]byte, error) {
	state := types.NewState()
	for _, c := range components {
		c.Save(state)
	}
	payload := state.Bytes()

	buf := bytes.NewBuffer(make([]byte, 0, headerSize+len(payload)/4))
	buf.WriteString(magic)
	buf.WriteByte(version)
	_ = binary.Write(buf, binary.LittleEndian, uint32(len(payload)))
	_ = binary.Write(buf, binary.LittleEndian, xxhash.Sum64(payload))

	w := brotli.NewWriterLevel(buf, brotli.DefaultCompression)
	if _, err := w.Write(payload); err != nil {
		return nil, fmt.Errorf("compressing snapshot: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("compressing snapshot: %w", err)
	}

	return buf.Bytes(), nil
}

// Decode verifies the snapshot and loads it into the given components, in
// the order they were encoded. If the snapshot is rejected, every
// component is left as it was before the call.
func Decode(data []byte, components ...types.Stater) error {
	payload, err := verify(data)
	if err != nil {
		return err
	}

	backup := types.NewState()
	for _, c := range components {
		c.Save(backup)
	}

	if err := load(payload, components); err != nil {
		rollback(backup, components)
		return err
	}
	return nil
}

func load(payload []byte, components []types.Stater) error {
	state := types.StateFromBytes(payload)
	for _, c := range components {
		if err := c.Load(state); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
		}
	}
	if n := state.Remaining(); n != 0 {
		return fmt.Errorf("%w: %d trailing bytes", ErrInvalidSnapshot, n)
	}
	return nil
}

// rollback restores the components from their own saved state, which they
// always accept.
func rollback(backup *types.State, components []types.Stater) {
	state := types.StateFromBytes(backup.Bytes())
	for _, c := range components {
		_ = c.Load(state)
	}
}

// verify checks the snapshot header and returns the decompressed,
// verified payload. Every header problem is reported.
func verify(data []byte) ([]byte, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrInvalidSnapshot, len(data))
	}

	var result *multierror.Error
	if string(data[:len(magic)]) != magic {
		result = multierror.Append(result, fmt.Errorf("%w: bad magic %q", ErrInvalidSnapshot, data[:len(magic)]))
	}
	if v := data[len(magic)]; v != version {
		result = multierror.Append(result, fmt.Errorf("%w: unsupported version %d", ErrInvalidSnapshot, v))
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	length := binary.LittleEndian.Uint32(data[len(magic)+1:])
	sum := binary.LittleEndian.Uint64(data[len(magic)+5:])

	raw, err := io.ReadAll(io.LimitReader(brotli.NewReader(bytes.NewReader(data[headerSize:])), int64(length)+1))
	if err != nil {
		return nil, fmt.Errorf("%w: decompressing: %w", ErrInvalidSnapshot, err)
	}

	if uint32(len(raw)) != length {
		result = multierror.Append(result, fmt.Errorf("%w: payload is %d bytes, header says %d", ErrInvalidSnapshot, len(raw), length))
	}
	if xxhash.Sum64(raw) != sum {
		result = multierror.Append(result, ErrChecksum)
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return raw, nil
}
