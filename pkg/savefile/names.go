package savefile

import (
	"bytes"
	"fmt"
)

// Channel name slots, in stored order: the eight fixture channels, then pan,
// tilt and the two aux buttons.
const (
	NamePan  = 8
	NameTilt = 9
	NameAux1 = 10
	NameAux2 = 11
)

// DefaultChannelNames returns the desk's builtin labels, used when a slot
// has no custom name.
func DefaultChannelNames() []string {
	names := make([]string, ChannelNameCount)
	for i := 0; i < 8; i++ {
		names[i] = fmt.Sprintf("Channel %d", i+1)
	}
	names[NamePan] = "PAN"
	names[NameTilt] = "TILT"
	names[NameAux1] = "AUX 1"
	names[NameAux2] = "AUX 2"
	return names
}

// ChannelNames returns the twelve custom names with trailing NUL padding
// stripped. An empty string means the slot has no custom name.
func (f *SaveFile) ChannelNames() ([]string, error) {
	region, err := f.region(KindChannelNames)
	if err != nil {
		return nil, err
	}
	if len(region) < ChannelNameCount*ChannelNameSize {
		return nil, fmt.Errorf("%w: name region is %d bytes, want %d", ErrLengthMismatch, len(region), ChannelNameCount*ChannelNameSize)
	}
	names := make([]string, ChannelNameCount)
	for i := range names {
		raw := region[i*ChannelNameSize : (i+1)*ChannelNameSize]
		names[i] = string(bytes.TrimRight(raw, "\x00"))
	}
	return names, nil
}

// ChannelLabel returns the display label for a name slot: the custom name
// with the builtin label in parentheses, or just the builtin label when no
// custom name is set.
func (f *SaveFile) ChannelLabel(index int) (string, error) {
	if index < 0 || index >= ChannelNameCount {
		return "", fmt.Errorf("%w: name slot %d, have %d", ErrIndexOutOfRange, index, ChannelNameCount)
	}
	names, err := f.ChannelNames()
	if err != nil {
		return "", err
	}
	defaults := DefaultChannelNames()
	if names[index] == "" {
		return defaults[index], nil
	}
	return fmt.Sprintf("%s (%s)", names[index], defaults[index]), nil
}

// SetChannelName returns a new SaveFile with one name slot replaced. Names
// are stored as up to seven ASCII bytes, NUL-padded; longer or non-ASCII
// names fail with ErrLengthMismatch.
func (f *SaveFile) SetChannelName(index int, name string) (*SaveFile, error) {
	if index < 0 || index >= ChannelNameCount {
		return nil, fmt.Errorf("%w: name slot %d, have %d", ErrIndexOutOfRange, index, ChannelNameCount)
	}
	if len(name) > ChannelNameSize {
		return nil, fmt.Errorf("%w: name %q is %d bytes, limit %d", ErrLengthMismatch, name, len(name), ChannelNameSize)
	}
	for i := 0; i < len(name); i++ {
		if name[i] < 0x20 || name[i] > 0x7E {
			return nil, fmt.Errorf("name %q contains non-ASCII byte 0x%02X", name, name[i])
		}
	}
	r, err := f.layout.Region(KindChannelNames)
	if err != nil {
		return nil, err
	}
	if (index+1)*ChannelNameSize > r.Length {
		return nil, fmt.Errorf("%w: name region is %d bytes", ErrLengthMismatch, r.Length)
	}
	next := f.clone()
	slot := next.data[r.Offset+index*ChannelNameSize : r.Offset+(index+1)*ChannelNameSize]
	for i := range slot {
		slot[i] = 0
	}
	copy(slot, name)
	return next, nil
}
