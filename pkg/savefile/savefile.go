// Package savefile implements a byte-exact codec for the save files written
// by the Stairville LED Commander 16/2 DMX controller.
//
// A save file is a flat 524,800-byte buffer divided into fixed regions: a
// "succeeded\0" magic header, an array of scene/chaser-step records, channel
// names, the DMX patch, virtual dimmer flags, several constant-filled blocks
// and a number of regions whose meaning is still unknown. The codec slices
// the buffer per a region table, offers typed access to the regions whose
// semantics have been confirmed, and re-encodes everything else verbatim so
// an edited file stays byte-identical outside the edits.
//
// SaveFile values are immutable snapshots; every mutating operation returns
// a new value. Distinct values are safe for concurrent use.
package savefile

import (
	"fmt"
)

const (
	// FileSize is the exact size of a save file in bytes.
	FileSize = 0x80200

	// BlockSize is the size of one scene/chaser-step record.
	BlockSize = 0xB8

	// FixtureCount is the number of fixtures the desk controls.
	FixtureCount = 16
	// ChannelCount is the number of channels per fixture.
	ChannelCount = 10
	// DMXChannelCount is the number of DMX output channels.
	DMXChannelCount = 512

	// ChannelNameCount is the number of nameable controls: eight channels,
	// pan, tilt and the two aux buttons.
	ChannelNameCount = 12
	// ChannelNameSize is the fixed size of one stored name.
	ChannelNameSize = 7
)

// Magic is the byte sequence every save file starts with.
var Magic = []byte("succeeded\x00")

// VendorTag is the vendor marker stored near the end of the settings area.
var VendorTag = []byte("acme\x00")

// SaveFile is a decoded save file. The zero value is not usable; obtain one
// from Decode.
type SaveFile struct {
	data   []byte
	layout Layout
}

// Decode parses a raw buffer using the builtin region table. The buffer is
// copied; the caller keeps ownership of data.
func Decode(data []byte) (*SaveFile, error) {
	return DecodeWithLayout(data, DefaultLayout())
}

// DecodeWithLayout parses a raw buffer using a custom region table, e.g. one
// loaded from a layout overlay file.
func DecodeWithLayout(data []byte, layout Layout) (*SaveFile, error) {
	if len(data) != FileSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrSizeMismatch, len(data), FileSize)
	}
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}
	buf := make([]byte, FileSize)
	copy(buf, data)
	return &SaveFile{data: buf, layout: layout}, nil
}

// Encode serializes the file back to a fresh buffer. When no region was
// written the result is byte-identical to the buffer passed to Decode.
func (f *SaveFile) Encode() []byte {
	out := make([]byte, FileSize)
	copy(out, f.data)
	return out
}

// Layout returns a copy of the region table the file was decoded with.
func (f *SaveFile) Layout() Layout {
	layout := make(Layout, len(f.layout))
	copy(layout, f.layout)
	return layout
}

// ReadRegion returns a copy of the named region's bytes.
func (f *SaveFile) ReadRegion(kind RegionKind) ([]byte, error) {
	r, err := f.layout.Region(kind)
	if err != nil {
		return nil, err
	}
	out := make([]byte, r.Length)
	copy(out, f.data[r.Offset:r.End()])
	return out, nil
}

// WriteRegion returns a new SaveFile with the named region replaced. Regions
// are fixed-size: data must be exactly the region's length.
func (f *SaveFile) WriteRegion(kind RegionKind, data []byte) (*SaveFile, error) {
	r, err := f.layout.Region(kind)
	if err != nil {
		return nil, err
	}
	if len(data) != r.Length {
		return nil, fmt.Errorf("%w: region %s is %d bytes, got %d", ErrLengthMismatch, kind, r.Length, len(data))
	}
	next := f.clone()
	copy(next.data[r.Offset:r.End()], data)
	return next, nil
}

// region returns the raw backing slice of a region. Callers must not write
// through it or retain it past a mutation.
func (f *SaveFile) region(kind RegionKind) ([]byte, error) {
	r, err := f.layout.Region(kind)
	if err != nil {
		return nil, err
	}
	return f.data[r.Offset:r.End()], nil
}

func (f *SaveFile) clone() *SaveFile {
	buf := make([]byte, FileSize)
	copy(buf, f.data)
	return &SaveFile{data: buf, layout: f.layout}
}
