package savefile

import (
	"encoding/hex"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// RegionKind identifies one region of the save file. Each kind appears at
// most once in a layout.
type RegionKind int

const (
	// KindMagicHeader is the leading "succeeded\0" magic sequence.
	KindMagicHeader RegionKind = iota
	// KindHeaderGap is the undeciphered gap between the magic and the
	// scene/chase block array.
	KindHeaderGap
	// KindSceneChaseBlocks holds the scene and chaser-step records.
	KindSceneChaseBlocks
	// KindChannelNames holds the user-assigned channel/pan/tilt/aux names.
	KindChannelNames
	// KindDMXAssignment maps each DMX output channel to a fixture channel
	// or aux control.
	KindDMXAssignment
	// KindFixtureConstants is a per-fixture block observed to always be
	// 00 00 05.
	KindFixtureConstants
	// KindVendorTag is the "acme\0" vendor marker.
	KindVendorTag
	// KindChannelConstants is a per-DMX-channel block observed to always
	// be 0x02.
	KindChannelConstants
	// KindReservedZero is a large region observed to stay zeroed.
	KindReservedZero
	// KindUnknownTail is four bytes of undeciphered data.
	KindUnknownTail
	// KindDimmerModes holds the per-fixture virtual dimmer enable bytes.
	KindDimmerModes
	// KindDimmerAssignments holds the per-fixture-channel virtual dimmer
	// enable bytes.
	KindDimmerAssignments
	// KindUnusedTail is the 0xFF-filled remainder of the file.
	KindUnusedTail
)

var kindNames = map[RegionKind]string{
	KindMagicHeader:       "magic-header",
	KindHeaderGap:         "header-gap",
	KindSceneChaseBlocks:  "scene-chase-blocks",
	KindChannelNames:      "channel-names",
	KindDMXAssignment:     "dmx-assignment",
	KindFixtureConstants:  "fixture-constants",
	KindVendorTag:         "vendor-tag",
	KindChannelConstants:  "channel-constants",
	KindReservedZero:      "reserved-zero",
	KindUnknownTail:       "unknown-tail",
	KindDimmerModes:       "dimmer-modes",
	KindDimmerAssignments: "dimmer-assignments",
	KindUnusedTail:        "unused-tail",
}

// String returns the stable name used in layout files and reports.
func (k RegionKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("region-kind-%d", int(k))
}

// ParseRegionKind resolves a layout-file kind name.
func ParseRegionKind(name string) (RegionKind, error) {
	for kind, kindName := range kindNames {
		if kindName == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown region kind %q", name)
}

// Region describes one fixed byte range of the save file.
//
// Pattern, when non-nil, is the byte sequence the region is expected to
// repeat for its whole length (a single byte for fill regions, the full
// content for magic/vendor regions). Regions with a nil Pattern carry
// free-form or undeciphered data and are never content-checked.
type Region struct {
	Kind    RegionKind
	Offset  int
	Length  int
	Pattern []byte
}

// End returns the exclusive end offset of the region.
func (r Region) End() int {
	return r.Offset + r.Length
}

// Layout is an ordered region table covering the whole file. Refinements
// from further reverse engineering are edits to this table only; no other
// code hard-codes offsets.
type Layout []Region

// defaultLayout is the region table as currently understood. Offsets match
// the captures byte for byte; lengths are derived from the inclusive offset
// ranges in the notes.
var defaultLayout = Layout{
	{Kind: KindMagicHeader, Offset: 0x00000, Length: 10, Pattern: Magic},
	{Kind: KindHeaderGap, Offset: 0x0000A, Length: 502},
	{Kind: KindSceneChaseBlocks, Offset: 0x00200, Length: 0x5A900},
	{Kind: KindChannelNames, Offset: 0x5AB00, Length: ChannelNameCount * ChannelNameSize},
	{Kind: KindDMXAssignment, Offset: 0x5AB54, Length: DMXChannelCount},
	{Kind: KindFixtureConstants, Offset: 0x5AD54, Length: FixtureCount * 3, Pattern: []byte{0x00, 0x00, 0x05}},
	{Kind: KindVendorTag, Offset: 0x5AD84, Length: 5, Pattern: VendorTag},
	{Kind: KindChannelConstants, Offset: 0x5AD89, Length: DMXChannelCount, Pattern: []byte{0x02}},
	{Kind: KindReservedZero, Offset: 0x5AF89, Length: 0xFA00, Pattern: []byte{0x00}},
	{Kind: KindUnknownTail, Offset: 0x6A989, Length: 4},
	{Kind: KindDimmerModes, Offset: 0x6A98D, Length: FixtureCount},
	{Kind: KindDimmerAssignments, Offset: 0x6A99D, Length: FixtureCount * ChannelCount},
	{Kind: KindUnusedTail, Offset: 0x6AA3D, Length: 0x157C3, Pattern: []byte{0xFF}},
}

// DefaultLayout returns a copy of the builtin region table.
func DefaultLayout() Layout {
	layout := make(Layout, len(defaultLayout))
	copy(layout, defaultLayout)
	return layout
}

// Region looks up the region with the given kind.
func (l Layout) Region(kind RegionKind) (Region, error) {
	for _, r := range l {
		if r.Kind == kind {
			return r, nil
		}
	}
	return Region{}, fmt.Errorf("%w: %s", ErrRegionNotFound, kind)
}

// Validate checks the coverage invariant: regions are sorted, contiguous,
// non-overlapping, start at offset zero and together cover exactly FileSize
// bytes, with no kind appearing twice.
func (l Layout) Validate() error {
	if len(l) == 0 {
		return fmt.Errorf("layout is empty")
	}
	if !sort.SliceIsSorted(l, func(i, j int) bool { return l[i].Offset < l[j].Offset }) {
		return fmt.Errorf("layout regions are not in offset order")
	}
	seen := make(map[RegionKind]bool, len(l))
	next := 0
	for _, r := range l {
		if seen[r.Kind] {
			return fmt.Errorf("duplicate region kind %s", r.Kind)
		}
		seen[r.Kind] = true
		if r.Length <= 0 {
			return fmt.Errorf("region %s has non-positive length %d", r.Kind, r.Length)
		}
		if r.Offset != next {
			return fmt.Errorf("region %s starts at 0x%05X, want 0x%05X (gap or overlap)", r.Kind, r.Offset, next)
		}
		next = r.End()
	}
	if next != FileSize {
		return fmt.Errorf("layout covers %d bytes, want %d", next, FileSize)
	}
	return nil
}

// layoutFile is the YAML shape of a region-table overlay.
type layoutFile struct {
	Regions []layoutFileRegion `yaml:"regions"`
}

type layoutFileRegion struct {
	Kind    string `yaml:"kind"`
	Offset  int    `yaml:"offset"`
	Length  int    `yaml:"length"`
	Pattern string `yaml:"pattern"` // hex, e.g. "000005"; empty for opaque regions
}

// ParseLayout reads a full region table from YAML. Overlay files let a
// reverse-engineering session try refined boundaries without a rebuild; the
// parsed table must still satisfy the coverage invariant.
func ParseLayout(data []byte) (Layout, error) {
	var file layoutFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}
	layout := make(Layout, 0, len(file.Regions))
	for _, fr := range file.Regions {
		kind, err := ParseRegionKind(fr.Kind)
		if err != nil {
			return nil, err
		}
		var pattern []byte
		if fr.Pattern != "" {
			pattern, err = hex.DecodeString(fr.Pattern)
			if err != nil {
				return nil, fmt.Errorf("bad pattern for region %s: %w", fr.Kind, err)
			}
		}
		layout = append(layout, Region{
			Kind:    kind,
			Offset:  fr.Offset,
			Length:  fr.Length,
			Pattern: pattern,
		})
	}
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}
	return layout, nil
}
