package savefile

import "fmt"

// The scene/chase region stores 16 scenes followed by 2000 chaser steps as
// uniform 184-byte records. The record's internal value/flag layout has not
// been confirmed, so records are exposed as opaque byte slices only; no
// sub-field accessors exist until further reverse engineering pins the
// layout down.

// BlockCount returns the number of scene/chase records. It fails with
// ErrMisalignedBlockArray when the region length is not an exact multiple of
// BlockSize, which means the region table itself is wrong.
func (f *SaveFile) BlockCount() (int, error) {
	r, err := f.layout.Region(KindSceneChaseBlocks)
	if err != nil {
		return 0, err
	}
	if r.Length%BlockSize != 0 {
		return 0, fmt.Errorf("%w: region length %d is not a multiple of %d", ErrMisalignedBlockArray, r.Length, BlockSize)
	}
	return r.Length / BlockSize, nil
}

// Block returns a copy of the record at index.
func (f *SaveFile) Block(index int) ([]byte, error) {
	count, err := f.BlockCount()
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= count {
		return nil, fmt.Errorf("%w: block %d, have %d blocks", ErrIndexOutOfRange, index, count)
	}
	region, err := f.region(KindSceneChaseBlocks)
	if err != nil {
		return nil, err
	}
	out := make([]byte, BlockSize)
	copy(out, region[index*BlockSize:(index+1)*BlockSize])
	return out, nil
}

// SetBlock returns a new SaveFile with the record at index replaced. Records
// are fixed-size: data must be exactly BlockSize bytes.
func (f *SaveFile) SetBlock(index int, data []byte) (*SaveFile, error) {
	count, err := f.BlockCount()
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= count {
		return nil, fmt.Errorf("%w: block %d, have %d blocks", ErrIndexOutOfRange, index, count)
	}
	if len(data) != BlockSize {
		return nil, fmt.Errorf("%w: block records are %d bytes, got %d", ErrLengthMismatch, BlockSize, len(data))
	}
	r, _ := f.layout.Region(KindSceneChaseBlocks)
	next := f.clone()
	copy(next.data[r.Offset+index*BlockSize:r.Offset+(index+1)*BlockSize], data)
	return next, nil
}
