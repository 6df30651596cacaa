package savefile

import (
	"bytes"
	"fmt"
)

// Anomaly is one non-fatal deviation found by Validate. Anomalies are data,
// not errors: the point of the codec is surfacing deviations in captured
// files, not rejecting them.
type Anomaly struct {
	// Kind names the region the deviation was found in.
	Kind RegionKind
	// Offset is the absolute file offset of the first deviating byte, or
	// the region start for structural findings.
	Offset int
	// Message describes the deviation.
	Message string
}

// String renders the anomaly for logs and reports.
func (a Anomaly) String() string {
	return fmt.Sprintf("%s @0x%05X: %s", a.Kind, a.Offset, a.Message)
}

// Validate checks everything that is known to be constant about a save file
// and reports deviations in region order. It never fails: a corrupted file
// produces findings, not an error. An empty result means the file matches
// all confirmed expectations.
//
// Checked: the magic header, every patterned region (fixture constants,
// vendor tag, channel constants, zero and 0xFF fill), scene/chase array
// alignment, and that every DMX patch code is decodable.
func (f *SaveFile) Validate() []Anomaly {
	var anomalies []Anomaly
	for _, r := range f.layout {
		region := f.data[r.Offset:r.End()]
		switch {
		case r.Kind == KindMagicHeader:
			if !bytes.Equal(region, Magic) {
				anomalies = append(anomalies, Anomaly{
					Kind:    r.Kind,
					Offset:  r.Offset + firstMismatch(region, Magic),
					Message: fmt.Sprintf("magic header is % X, want %q", region, Magic),
				})
			}
		case r.Kind == KindSceneChaseBlocks:
			if r.Length%BlockSize != 0 {
				anomalies = append(anomalies, Anomaly{
					Kind:    r.Kind,
					Offset:  r.Offset,
					Message: fmt.Sprintf("region length %d is not a multiple of %d (region table bug)", r.Length, BlockSize),
				})
			}
		case r.Kind == KindDMXAssignment:
			if a, ok := checkPatchCodes(r, region); !ok {
				anomalies = append(anomalies, a)
			}
		case r.Pattern != nil:
			if a, ok := checkPattern(r, region); !ok {
				anomalies = append(anomalies, a)
			}
		}
	}
	return anomalies
}

// checkPattern verifies that a region repeats its expected pattern for its
// whole length. One finding per region, citing the first deviating byte.
func checkPattern(r Region, region []byte) (Anomaly, bool) {
	for i, b := range region {
		want := r.Pattern[i%len(r.Pattern)]
		if b != want {
			return Anomaly{
				Kind:    r.Kind,
				Offset:  r.Offset + i,
				Message: fmt.Sprintf("got 0x%02X, want 0x%02X", b, want),
			}, false
		}
	}
	return Anomaly{}, true
}

func checkPatchCodes(r Region, region []byte) (Anomaly, bool) {
	for i, code := range region {
		if _, err := decodeAssignment(code); err != nil {
			return Anomaly{
				Kind:    r.Kind,
				Offset:  r.Offset + i,
				Message: fmt.Sprintf("DMX channel %d: %v", i+1, err),
			}, false
		}
	}
	return Anomaly{}, true
}

func firstMismatch(got, want []byte) int {
	for i := range got {
		if i >= len(want) || got[i] != want[i] {
			return i
		}
	}
	return 0
}
