package savefile

import (
	"bytes"
	"errors"
	"testing"
)

// goldenData builds a pristine save file: every patterned region filled with
// its pattern, the DMX patch fully unpatched, everything else zeroed.
func goldenData() []byte {
	data := make([]byte, FileSize)
	for _, r := range DefaultLayout() {
		region := data[r.Offset:r.End()]
		switch {
		case r.Kind == KindDMXAssignment:
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

// noisyData builds a buffer of the right size whose content deviates from
// every expectation. The codec must still round-trip it untouched.
func noisyData() []byte {
	data := make([]byte, FileSize)
	x := uint32(0x2545F491)
	for i := range data {
		// xorshift, deterministic junk
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5
		data[i] = byte(x)
	}
	return data
}

func TestDecode_SizeGate(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{name: "empty", size: 0},
		{name: "one byte short", size: FileSize - 1},
		{name: "one byte long", size: FileSize + 1},
		{name: "half", size: FileSize / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(make([]byte, tt.size))
			if !errors.Is(err, ErrSizeMismatch) {
				t.Errorf("Decode() error = %v, want ErrSizeMismatch", err)
			}
		})
	}
}

func TestRoundTripIdentity(t *testing.T) {
	for _, tt := range []struct {
		name string
		data []byte
	}{
		{name: "golden", data: goldenData()},
		{name: "noisy", data: noisyData()},
	} {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Decode(tt.data)
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			if !bytes.Equal(f.Encode(), tt.data) {
				t.Error("Encode() does not round-trip the input buffer")
			}
		})
	}
}

func TestDecode_CopiesInput(t *testing.T) {
	data := goldenData()
	f, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	// Scribbling on the caller's buffer must not reach the snapshot.
	data[0] = 'x'
	if f.Encode()[0] != 's' {
		t.Error("Decode() did not copy the input buffer")
	}
}

func TestReadRegion(t *testing.T) {
	f, err := Decode(goldenData())
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	magic, err := f.ReadRegion(KindMagicHeader)
	if err != nil {
		t.Fatalf("ReadRegion() error: %v", err)
	}
	if !bytes.Equal(magic, Magic) {
		t.Errorf("ReadRegion(magic) = % X, want %q", magic, Magic)
	}

	tag, err := f.ReadRegion(KindVendorTag)
	if err != nil {
		t.Fatalf("ReadRegion() error: %v", err)
	}
	if !bytes.Equal(tag, VendorTag) {
		t.Errorf("ReadRegion(vendor tag) = % X, want %q", tag, VendorTag)
	}
}

func TestReadRegion_Unknown(t *testing.T) {
	f, err := Decode(goldenData())
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if _, err := f.ReadRegion(RegionKind(99)); !errors.Is(err, ErrRegionNotFound) {
		t.Errorf("ReadRegion(bogus kind) error = %v, want ErrRegionNotFound", err)
	}
}

func TestWriteRegion_Isolation(t *testing.T) {
	original := goldenData()
	f, err := Decode(original)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	names := make([]byte, ChannelNameCount*ChannelNameSize)
	copy(names, "RED\x00\x00\x00\x00GREEN\x00\x00")
	edited, err := f.WriteRegion(KindChannelNames, names)
	if err != nil {
		t.Fatalf("WriteRegion() error: %v", err)
	}

	// The write is visible through ReadRegion.
	got, err := edited.ReadRegion(KindChannelNames)
	if err != nil {
		t.Fatalf("ReadRegion() error: %v", err)
	}
	if !bytes.Equal(got, names) {
		t.Error("ReadRegion() after WriteRegion() does not return the written data")
	}

	// The receiver is untouched.
	if !bytes.Equal(f.Encode(), original) {
		t.Error("WriteRegion() mutated the receiver")
	}

	// Every other region is byte-identical.
	r, err := edited.Layout().Region(KindChannelNames)
	if err != nil {
		t.Fatalf("Region() error: %v", err)
	}
	out := edited.Encode()
	if !bytes.Equal(out[:r.Offset], original[:r.Offset]) {
		t.Error("WriteRegion() disturbed bytes before the region")
	}
	if !bytes.Equal(out[r.End():], original[r.End():]) {
		t.Error("WriteRegion() disturbed bytes after the region")
	}
}

func TestWriteRegion_LengthMismatch(t *testing.T) {
	f, err := Decode(goldenData())
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if _, err := f.WriteRegion(KindVendorTag, []byte("acme")); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("WriteRegion(short data) error = %v, want ErrLengthMismatch", err)
	}
}
