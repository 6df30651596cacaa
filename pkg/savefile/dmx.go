package savefile

import "fmt"

// DMX patch codes. Each byte of the dmx-assignment region patches one DMX
// output channel: 0xA2 leaves it unpatched, 0xA0/0xA1 route it to the aux
// buttons, anything below routes it to fixture code/10, channel code%10.
const (
	codeAux1      = 0xA0
	codeAux2      = 0xA1
	codeUnpatched = 0xA2
)

// Assignment is the decoded patch target of one DMX output channel.
type Assignment struct {
	// Unpatched means the channel is not routed anywhere.
	Unpatched bool
	// Aux is 1 or 2 when the channel is routed to an aux button, 0
	// otherwise.
	Aux int
	// Fixture and Channel identify the fixture channel the DMX channel is
	// routed to. Only meaningful when Unpatched is false and Aux is 0.
	Fixture int
	Channel int
}

// String renders the assignment the way the desk labels it.
func (a Assignment) String() string {
	switch {
	case a.Unpatched:
		return "unpatched"
	case a.Aux != 0:
		return fmt.Sprintf("AUX %d", a.Aux)
	default:
		return fmt.Sprintf("fixture %d channel %d", a.Fixture+1, a.Channel+1)
	}
}

func decodeAssignment(code byte) (Assignment, error) {
	switch code {
	case codeUnpatched:
		return Assignment{Unpatched: true}, nil
	case codeAux1:
		return Assignment{Aux: 1}, nil
	case codeAux2:
		return Assignment{Aux: 2}, nil
	}
	if code > codeUnpatched {
		return Assignment{}, fmt.Errorf("undecodable patch code 0x%02X", code)
	}
	return Assignment{Fixture: int(code) / ChannelCount, Channel: int(code) % ChannelCount}, nil
}

func encodeAssignment(a Assignment) (byte, error) {
	switch {
	case a.Unpatched:
		return codeUnpatched, nil
	case a.Aux == 1:
		return codeAux1, nil
	case a.Aux == 2:
		return codeAux2, nil
	case a.Aux != 0:
		return 0, fmt.Errorf("%w: aux %d, have 2 aux buttons", ErrIndexOutOfRange, a.Aux)
	case a.Fixture < 0 || a.Fixture >= FixtureCount:
		return 0, fmt.Errorf("%w: fixture %d, have %d fixtures", ErrIndexOutOfRange, a.Fixture, FixtureCount)
	case a.Channel < 0 || a.Channel >= ChannelCount:
		return 0, fmt.Errorf("%w: channel %d, have %d channels", ErrIndexOutOfRange, a.Channel, ChannelCount)
	}
	return byte(a.Fixture*ChannelCount + a.Channel), nil
}

// DMXAssignments decodes the full 512-channel patch. Codes outside the
// decodable range come back as unpatched here; the validator reports them as
// anomalies instead of failing the decode.
func (f *SaveFile) DMXAssignments() ([]Assignment, error) {
	region, err := f.region(KindDMXAssignment)
	if err != nil {
		return nil, err
	}
	assignments := make([]Assignment, len(region))
	for i, code := range region {
		a, err := decodeAssignment(code)
		if err != nil {
			a = Assignment{Unpatched: true}
		}
		assignments[i] = a
	}
	return assignments, nil
}

// DMXAssignment decodes the patch target of one DMX output channel
// (0-based).
func (f *SaveFile) DMXAssignment(dmxChannel int) (Assignment, error) {
	region, err := f.region(KindDMXAssignment)
	if err != nil {
		return Assignment{}, err
	}
	if dmxChannel < 0 || dmxChannel >= len(region) {
		return Assignment{}, fmt.Errorf("%w: DMX channel %d, have %d", ErrIndexOutOfRange, dmxChannel, len(region))
	}
	return decodeAssignment(region[dmxChannel])
}

// SetDMXAssignment returns a new SaveFile with one DMX channel repatched.
func (f *SaveFile) SetDMXAssignment(dmxChannel int, a Assignment) (*SaveFile, error) {
	r, err := f.layout.Region(KindDMXAssignment)
	if err != nil {
		return nil, err
	}
	if dmxChannel < 0 || dmxChannel >= r.Length {
		return nil, fmt.Errorf("%w: DMX channel %d, have %d", ErrIndexOutOfRange, dmxChannel, r.Length)
	}
	code, err := encodeAssignment(a)
	if err != nil {
		return nil, err
	}
	next := f.clone()
	next.data[r.Offset+dmxChannel] = code
	return next, nil
}
