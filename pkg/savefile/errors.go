package savefile

import "errors"

var (
	// ErrSizeMismatch means a buffer is not exactly FileSize bytes.
	ErrSizeMismatch = errors.New("save file size mismatch")

	// ErrLengthMismatch means a write supplied the wrong number of bytes
	// for a fixed-size region or record.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrIndexOutOfRange means a record or channel index is outside the
	// valid range.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrMisalignedBlockArray means the scene/chase region length is not a
	// multiple of the record size. This indicates a broken region table,
	// not broken file content.
	ErrMisalignedBlockArray = errors.New("misaligned scene/chase block array")

	// ErrRegionNotFound means the layout has no region of the requested
	// kind.
	ErrRegionNotFound = errors.New("region not found")
)
