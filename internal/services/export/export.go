// Package export renders a decoded save file as JSON for external tooling.
package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lucsky/cuid"

	"github.com/bbernstein/ledcommander-go/internal/services/version"
	"github.com/bbernstein/ledcommander-go/pkg/savefile"
)

// ExportedSaveFile is the JSON document produced for one save file.
type ExportedSaveFile struct {
	Version       string                `json:"version"`
	Metadata      *ExportMetadata       `json:"metadata,omitempty"`
	Regions       []ExportedRegion      `json:"regions"`
	Channels      []ExportedChannel     `json:"channels"`
	DMXPatch      []ExportedPatchEntry  `json:"dmxPatch"`
	VirtualDimmer *ExportedDimmer       `json:"virtualDimmer"`
	Blocks        *ExportedBlockSummary `json:"blocks"`
	Anomalies     []ExportedAnomaly     `json:"anomalies"`
}

// ExportMetadata contains export metadata.
type ExportMetadata struct {
	ID          string `json:"id"`
	ExportedAt  string `json:"exportedAt"`
	ToolVersion string `json:"toolVersion"`
}

// ExportedRegion describes one region-table entry.
type ExportedRegion struct {
	Kind   string `json:"kind"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
}

// ExportedChannel is one nameable control slot.
type ExportedChannel struct {
	Index       int    `json:"index"`
	CustomName  string `json:"customName,omitempty"`
	DefaultName string `json:"defaultName"`
	Label       string `json:"label"`
}

// ExportedPatchEntry routes one DMX output channel. Unpatched channels are
// omitted from the document (sparse format).
type ExportedPatchEntry struct {
	DMXChannel int    `json:"dmxChannel"` // 1-based, as shown on the desk
	Fixture    *int   `json:"fixture,omitempty"`
	Channel    *int   `json:"channel,omitempty"`
	Aux        *int   `json:"aux,omitempty"`
	Label      string `json:"label"`
}

// ExportedDimmer carries the virtual dimmer flags.
type ExportedDimmer struct {
	Modes       []bool   `json:"modes"`       // per fixture
	Assignments [][]bool `json:"assignments"` // per fixture, per channel
}

// ExportedBlockSummary summarizes the opaque scene/chase records.
type ExportedBlockSummary struct {
	Count   int   `json:"count"`
	Size    int   `json:"size"`
	NonZero []int `json:"nonZero,omitempty"` // indexes of records with any non-zero byte
}

// ExportedAnomaly is one validator finding.
type ExportedAnomaly struct {
	Kind    string `json:"kind"`
	Offset  int    `json:"offset"`
	Message string `json:"message"`
}

// Options configures an export.
type Options struct {
	// IncludeBlockIndex lists the indexes of non-zero scene/chase records.
	// Off by default: a fully programmed desk would list all 2016.
	IncludeBlockIndex bool
	// IncludeAnomalies runs validation and embeds the findings.
	IncludeAnomalies bool
}

// Stats contains statistics about an export.
type Stats struct {
	NamedChannels   int
	PatchedChannels int
	AnomalyCount    int
}

// Service handles save-file export operations.
type Service struct{}

// NewService creates a new export service.
func NewService() *Service {
	return &Service{}
}

// Export renders the decoded contents of a save file.
func (s *Service) Export(f *savefile.SaveFile, opts Options) (*ExportedSaveFile, *Stats, error) {
	exported := &ExportedSaveFile{
		Version: "1.0",
		Metadata: &ExportMetadata{
			ID:          cuid.New(),
			ExportedAt:  time.Now().UTC().Format(time.RFC3339),
			ToolVersion: version.Current(),
		},
	}
	stats := &Stats{}

	for _, r := range f.Layout() {
		exported.Regions = append(exported.Regions, ExportedRegion{
			Kind:   r.Kind.String(),
			Offset: r.Offset,
			Length: r.Length,
		})
	}

	names, err := f.ChannelNames()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read channel names: %w", err)
	}
	defaults := savefile.DefaultChannelNames()
	for i, name := range names {
		label, err := f.ChannelLabel(i)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to build channel label: %w", err)
		}
		exported.Channels = append(exported.Channels, ExportedChannel{
			Index:       i,
			CustomName:  name,
			DefaultName: defaults[i],
			Label:       label,
		})
		if name != "" {
			stats.NamedChannels++
		}
	}

	assignments, err := f.DMXAssignments()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read DMX patch: %w", err)
	}
	for i, a := range assignments {
		if a.Unpatched {
			continue
		}
		entry := ExportedPatchEntry{DMXChannel: i + 1, Label: a.String()}
		if a.Aux != 0 {
			aux := a.Aux
			entry.Aux = &aux
		} else {
			fixture, channel := a.Fixture, a.Channel
			entry.Fixture = &fixture
			entry.Channel = &channel
		}
		exported.DMXPatch = append(exported.DMXPatch, entry)
		stats.PatchedChannels++
	}

	modes, err := f.DimmerModes()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read dimmer modes: %w", err)
	}
	dimmerAssignments, err := f.DimmerAssignments()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read dimmer assignments: %w", err)
	}
	exported.VirtualDimmer = &ExportedDimmer{Modes: modes, Assignments: dimmerAssignments}

	count, err := f.BlockCount()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to count scene/chase blocks: %w", err)
	}
	summary := &ExportedBlockSummary{Count: count, Size: savefile.BlockSize}
	if opts.IncludeBlockIndex {
		for i := 0; i < count; i++ {
			block, err := f.Block(i)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to read block %d: %w", i, err)
			}
			if !allZero(block) {
				summary.NonZero = append(summary.NonZero, i)
			}
		}
	}
	exported.Blocks = summary

	if opts.IncludeAnomalies {
		for _, a := range f.Validate() {
			exported.Anomalies = append(exported.Anomalies, ExportedAnomaly{
				Kind:    a.Kind.String(),
				Offset:  a.Offset,
				Message: a.Message,
			})
		}
		stats.AnomalyCount = len(exported.Anomalies)
	}

	return exported, stats, nil
}

// ToJSON converts an exported save file to a JSON string.
func (e *ExportedSaveFile) ToJSON(indent bool) (string, error) {
	var (
		data []byte
		err  error
	)
	if indent {
		data, err = json.MarshalIndent(e, "", "  ")
	} else {
		data, err = json.Marshal(e)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ParseExportedSaveFile parses JSON into an ExportedSaveFile.
func ParseExportedSaveFile(jsonContent string) (*ExportedSaveFile, error) {
	var exported ExportedSaveFile
	if err := json.Unmarshal([]byte(jsonContent), &exported); err != nil {
		return nil, err
	}
	return &exported, nil
}

func allZero(data []byte) bool {
	for _, b := range data {
		if b != 0 {
			return false
		}
	}
	return true
}
