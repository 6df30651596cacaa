// Package testutil provides golden save-file builders shared by service and
// integration tests.
package testutil

import (
	"testing"

	"github.com/bbernstein/ledcommander-go/pkg/savefile"
)

// GoldenData returns a pristine save-file buffer: magic header, every
// constant and padding region filled with its expected pattern, the DMX
// patch fully unpatched, all other regions zeroed.
func GoldenData() []byte {
	data := make([]byte, savefile.FileSize)
	for _, r := range savefile.DefaultLayout() {
		region := data[r.Offset:r.End()]
		switch {
		case r.Kind == savefile.KindDMXAssignment:
			for i := range region {
				region[i] = 0xA2
			}
		case r.Pattern != nil:
			for i := range region {
				region[i] = r.Pattern[i%len(r.Pattern)]
			}
		}
	}
	return data
}

// GoldenFile decodes a pristine buffer and fails the test on error.
func GoldenFile(t *testing.T) *savefile.SaveFile {
	t.Helper()
	f, err := savefile.Decode(GoldenData())
	if err != nil {
		t.Fatalf("failed to decode golden save file: %v", err)
	}
	return f
}

// ProgrammedFile returns a golden file with a few realistic edits applied:
// custom channel names, a small DMX patch and virtual dimmer flags on the
// first fixture.
func ProgrammedFile(t *testing.T) *savefile.SaveFile {
	t.Helper()
	f := GoldenFile(t)

	var err error
	for slot, name := range map[int]string{0: "RED", 1: "GREEN", 2: "BLUE", savefile.NamePan: "MoveX"} {
		if f, err = f.SetChannelName(slot, name); err != nil {
			t.Fatalf("failed to set channel name: %v", err)
		}
	}
	for ch := 0; ch < 3; ch++ {
		if f, err = f.SetDMXAssignment(ch, savefile.Assignment{Fixture: 0, Channel: ch}); err != nil {
			t.Fatalf("failed to patch DMX channel: %v", err)
		}
	}
	if f, err = f.SetDMXAssignment(9, savefile.Assignment{Aux: 1}); err != nil {
		t.Fatalf("failed to patch DMX channel: %v", err)
	}
	if f, err = f.SetDimmerMode(0, true); err != nil {
		t.Fatalf("failed to set dimmer mode: %v", err)
	}
	if f, err = f.SetDimmerAssignment(0, 0, true); err != nil {
		t.Fatalf("failed to set dimmer assignment: %v", err)
	}
	return f
}
