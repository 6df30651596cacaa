package savefile

import (
	"bytes"
	"errors"
	"testing"
)

func TestBlockCount(t *testing.T) {
	f, err := Decode(goldenData())
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	count, err := f.BlockCount()
	if err != nil {
		t.Fatalf("BlockCount() error: %v", err)
	}
	// 16 scenes plus 2000 chaser steps.
	if count != 2016 {
		t.Errorf("BlockCount() = %d, want 2016", count)
	}
}

func TestBlockCount_Misaligned(t *testing.T) {
	// Shift one byte from the header gap into the block array; coverage
	// still holds but the array is no longer a whole number of records.
	layout := DefaultLayout()
	layout[1].Length--
	layout[2].Offset--
	layout[2].Length++
	if err := layout.Validate(); err != nil {
		t.Fatalf("test layout does not cover the file: %v", err)
	}

	f, err := DecodeWithLayout(goldenData(), layout)
	if err != nil {
		t.Fatalf("DecodeWithLayout() error: %v", err)
	}
	if _, err := f.BlockCount(); !errors.Is(err, ErrMisalignedBlockArray) {
		t.Errorf("BlockCount() error = %v, want ErrMisalignedBlockArray", err)
	}
	if _, err := f.Block(0); !errors.Is(err, ErrMisalignedBlockArray) {
		t.Errorf("Block() error = %v, want ErrMisalignedBlockArray", err)
	}
}

func TestBlock(t *testing.T) {
	data := goldenData()
	// Stamp a recognizable first record.
	for i := 0; i < BlockSize; i++ {
		data[0x200+i] = byte(i)
	}
	f, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	block, err := f.Block(0)
	if err != nil {
		t.Fatalf("Block() error: %v", err)
	}
	if len(block) != BlockSize {
		t.Fatalf("Block() returned %d bytes, want %d", len(block), BlockSize)
	}
	for i, b := range block {
		if b != byte(i) {
			t.Fatalf("Block(0)[%d] = 0x%02X, want 0x%02X", i, b, byte(i))
		}
	}

	// Neighbouring record is untouched golden content.
	next, err := f.Block(1)
	if err != nil {
		t.Fatalf("Block() error: %v", err)
	}
	if !bytes.Equal(next, make([]byte, BlockSize)) {
		t.Error("Block(1) is not zeroed")
	}
}

func TestBlock_IndexOutOfRange(t *testing.T) {
	f, err := Decode(goldenData())
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	for _, index := range []int{-1, 2016, 1 << 20} {
		if _, err := f.Block(index); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Block(%d) error = %v, want ErrIndexOutOfRange", index, err)
		}
		if _, err := f.SetBlock(index, make([]byte, BlockSize)); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("SetBlock(%d) error = %v, want ErrIndexOutOfRange", index, err)
		}
	}
}

func TestSetBlock(t *testing.T) {
	original := goldenData()
	f, err := Decode(original)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	record := bytes.Repeat([]byte{0xAB}, BlockSize)
	edited, err := f.SetBlock(2015, record)
	if err != nil {
		t.Fatalf("SetBlock() error: %v", err)
	}

	got, err := edited.Block(2015)
	if err != nil {
		t.Fatalf("Block() error: %v", err)
	}
	if !bytes.Equal(got, record) {
		t.Error("Block() after SetBlock() does not return the written record")
	}

	// Only that record changed.
	out := edited.Encode()
	start := 0x200 + 2015*BlockSize
	if !bytes.Equal(out[:start], original[:start]) {
		t.Error("SetBlock() disturbed bytes before the record")
	}
	if !bytes.Equal(out[start+BlockSize:], original[start+BlockSize:]) {
		t.Error("SetBlock() disturbed bytes after the record")
	}
}

func TestSetBlock_LengthMismatch(t *testing.T) {
	f, err := Decode(goldenData())
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if _, err := f.SetBlock(0, make([]byte, BlockSize-1)); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("SetBlock(short record) error = %v, want ErrLengthMismatch", err)
	}
}
