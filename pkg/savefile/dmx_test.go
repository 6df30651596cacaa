package savefile

import (
	"errors"
	"testing"
)

func TestDMXAssignments(t *testing.T) {
	data := goldenData()
	data[0x5AB54+0] = 0x00 // fixture 1 channel 1
	data[0x5AB54+1] = 0x17 // fixture 3 channel 4
	data[0x5AB54+2] = 0x9F // fixture 16 channel 10
	data[0x5AB54+3] = 0xA0 // AUX 1
	data[0x5AB54+4] = 0xA1 // AUX 2
	f, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	assignments, err := f.DMXAssignments()
	if err != nil {
		t.Fatalf("DMXAssignments() error: %v", err)
	}
	if len(assignments) != DMXChannelCount {
		t.Fatalf("DMXAssignments() returned %d entries, want %d", len(assignments), DMXChannelCount)
	}

	tests := []struct {
		channel int
		want    Assignment
	}{
		{0, Assignment{Fixture: 0, Channel: 0}},
		{1, Assignment{Fixture: 2, Channel: 3}},
		{2, Assignment{Fixture: 15, Channel: 9}},
		{3, Assignment{Aux: 1}},
		{4, Assignment{Aux: 2}},
		{5, Assignment{Unpatched: true}},
		{511, Assignment{Unpatched: true}},
	}
	for _, tt := range tests {
		if assignments[tt.channel] != tt.want {
			t.Errorf("assignments[%d] = %+v, want %+v", tt.channel, assignments[tt.channel], tt.want)
		}
	}
}

func TestDMXAssignment_Single(t *testing.T) {
	data := goldenData()
	data[0x5AB54+7] = 0x23 // fixture 4 channel 6
	f, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	a, err := f.DMXAssignment(7)
	if err != nil {
		t.Fatalf("DMXAssignment() error: %v", err)
	}
	if a.Fixture != 3 || a.Channel != 5 {
		t.Errorf("DMXAssignment(7) = %+v, want fixture 3 channel 5", a)
	}

	if _, err := f.DMXAssignment(DMXChannelCount); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("DMXAssignment(512) error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestDMXAssignment_UndecodableCode(t *testing.T) {
	data := goldenData()
	data[0x5AB54] = 0xF0
	f, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	if _, err := f.DMXAssignment(0); err == nil {
		t.Error("DMXAssignment(undecodable code) = nil error, want error")
	}

	// The bulk decoder degrades to unpatched instead of failing.
	assignments, err := f.DMXAssignments()
	if err != nil {
		t.Fatalf("DMXAssignments() error: %v", err)
	}
	if !assignments[0].Unpatched {
		t.Errorf("assignments[0] = %+v, want unpatched fallback", assignments[0])
	}
}

func TestSetDMXAssignment(t *testing.T) {
	f, err := Decode(goldenData())
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	tests := []struct {
		name       string
		assignment Assignment
		wantCode   byte
	}{
		{name: "fixture channel", assignment: Assignment{Fixture: 4, Channel: 7}, wantCode: 0x2F},
		{name: "aux 1", assignment: Assignment{Aux: 1}, wantCode: 0xA0},
		{name: "aux 2", assignment: Assignment{Aux: 2}, wantCode: 0xA1},
		{name: "unpatch", assignment: Assignment{Unpatched: true}, wantCode: 0xA2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edited, err := f.SetDMXAssignment(100, tt.assignment)
			if err != nil {
				t.Fatalf("SetDMXAssignment() error: %v", err)
			}
			if got := edited.Encode()[0x5AB54+100]; got != tt.wantCode {
				t.Errorf("stored code = 0x%02X, want 0x%02X", got, tt.wantCode)
			}
		})
	}
}

func TestSetDMXAssignment_Invalid(t *testing.T) {
	f, err := Decode(goldenData())
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	invalid := []Assignment{
		{Fixture: FixtureCount, Channel: 0},
		{Fixture: 0, Channel: ChannelCount},
		{Fixture: -1},
		{Aux: 3},
	}
	for _, a := range invalid {
		if _, err := f.SetDMXAssignment(0, a); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("SetDMXAssignment(%+v) error = %v, want ErrIndexOutOfRange", a, err)
		}
	}
	if _, err := f.SetDMXAssignment(512, Assignment{Unpatched: true}); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("SetDMXAssignment(channel 512) error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestAssignment_String(t *testing.T) {
	tests := []struct {
		assignment Assignment
		want       string
	}{
		{Assignment{Unpatched: true}, "unpatched"},
		{Assignment{Aux: 2}, "AUX 2"},
		{Assignment{Fixture: 2, Channel: 3}, "fixture 3 channel 4"},
	}
	for _, tt := range tests {
		if got := tt.assignment.String(); got != tt.want {
			t.Errorf("String(%+v) = %q, want %q", tt.assignment, got, tt.want)
		}
	}
}
