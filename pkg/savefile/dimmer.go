package savefile

import "fmt"

// Virtual dimmer flags. The desk stores one byte per fixture (dimmer mode)
// and one byte per fixture/channel pairing (whether the dimmer applies to
// that channel). Only "zero = disabled, nonzero = enabled" is confirmed;
// newer firmware may use distinct nonzero mode values, so setters write 0x01
// but getters accept any nonzero byte.

// DimmerModes reports, per fixture, whether the virtual dimmer is enabled.
func (f *SaveFile) DimmerModes() ([]bool, error) {
	region, err := f.region(KindDimmerModes)
	if err != nil {
		return nil, err
	}
	modes := make([]bool, len(region))
	for i, b := range region {
		modes[i] = b != 0
	}
	return modes, nil
}

// DimmerAssignments reports, per fixture and channel, whether the virtual
// dimmer applies to that channel.
func (f *SaveFile) DimmerAssignments() ([][]bool, error) {
	region, err := f.region(KindDimmerAssignments)
	if err != nil {
		return nil, err
	}
	if len(region) < FixtureCount*ChannelCount {
		return nil, fmt.Errorf("%w: dimmer assignment region is %d bytes, want %d", ErrLengthMismatch, len(region), FixtureCount*ChannelCount)
	}
	out := make([][]bool, FixtureCount)
	for fixture := range out {
		row := make([]bool, ChannelCount)
		for channel := range row {
			row[channel] = region[fixture*ChannelCount+channel] != 0
		}
		out[fixture] = row
	}
	return out, nil
}

// SetDimmerMode returns a new SaveFile with one fixture's virtual dimmer
// flag replaced.
func (f *SaveFile) SetDimmerMode(fixture int, enabled bool) (*SaveFile, error) {
	r, err := f.layout.Region(KindDimmerModes)
	if err != nil {
		return nil, err
	}
	if fixture < 0 || fixture >= r.Length {
		return nil, fmt.Errorf("%w: fixture %d, have %d", ErrIndexOutOfRange, fixture, r.Length)
	}
	next := f.clone()
	next.data[r.Offset+fixture] = boolByte(enabled)
	return next, nil
}

// SetDimmerAssignment returns a new SaveFile with one fixture/channel
// virtual dimmer flag replaced.
func (f *SaveFile) SetDimmerAssignment(fixture, channel int, enabled bool) (*SaveFile, error) {
	r, err := f.layout.Region(KindDimmerAssignments)
	if err != nil {
		return nil, err
	}
	if fixture < 0 || fixture >= FixtureCount {
		return nil, fmt.Errorf("%w: fixture %d, have %d", ErrIndexOutOfRange, fixture, FixtureCount)
	}
	if channel < 0 || channel >= ChannelCount {
		return nil, fmt.Errorf("%w: channel %d, have %d", ErrIndexOutOfRange, channel, ChannelCount)
	}
	if fixture*ChannelCount+channel >= r.Length {
		return nil, fmt.Errorf("%w: dimmer assignment region is %d bytes", ErrLengthMismatch, r.Length)
	}
	next := f.clone()
	next.data[r.Offset+fixture*ChannelCount+channel] = boolByte(enabled)
	return next, nil
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
