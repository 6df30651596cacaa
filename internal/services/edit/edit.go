// Package edit applies structured edit documents to save files. An edit
// document is the JSON counterpart of the export format: it names the
// channel renames, patch changes, dimmer toggles and raw record replacements
// to apply, and everything it does not name stays byte-identical.
package edit

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/bbernstein/ledcommander-go/pkg/savefile"
)

// EditDocument describes a set of edits. All sections are optional.
type EditDocument struct {
	ChannelNames      []ChannelNameEdit      `json:"channelNames,omitempty"`
	DMXPatch          []PatchEdit            `json:"dmxPatch,omitempty"`
	DimmerModes       []DimmerModeEdit       `json:"dimmerModes,omitempty"`
	DimmerAssignments []DimmerAssignmentEdit `json:"dimmerAssignments,omitempty"`
	Blocks            []BlockEdit            `json:"blocks,omitempty"`
}

// ChannelNameEdit renames one control slot. An empty name clears the custom
// name, falling back to the desk's builtin label.
type ChannelNameEdit struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

// PatchEdit repatches one DMX output channel. Exactly one of Fixture+Channel,
// Aux, or Unpatch must be given.
type PatchEdit struct {
	DMXChannel int  `json:"dmxChannel"` // 1-based, as shown on the desk
	Fixture    *int `json:"fixture,omitempty"`
	Channel    *int `json:"channel,omitempty"`
	Aux        *int `json:"aux,omitempty"`
	Unpatch    bool `json:"unpatch,omitempty"`
}

// DimmerModeEdit toggles one fixture's virtual dimmer.
type DimmerModeEdit struct {
	Fixture int  `json:"fixture"`
	Enabled bool `json:"enabled"`
}

// DimmerAssignmentEdit toggles the virtual dimmer for one fixture channel.
type DimmerAssignmentEdit struct {
	Fixture int  `json:"fixture"`
	Channel int  `json:"channel"`
	Enabled bool `json:"enabled"`
}

// BlockEdit replaces one opaque scene/chase record with raw bytes, given as
// hex. The record's internal layout is unconfirmed, so this is the only way
// to edit one.
type BlockEdit struct {
	Index int    `json:"index"`
	Data  string `json:"data"` // hex, exactly 184 bytes once decoded
}

// Stats counts the edits applied.
type Stats struct {
	ChannelsRenamed    int
	ChannelsRepatched  int
	DimmerFlagsChanged int
	BlocksReplaced     int
}

// ParseEditDocument parses JSON into an EditDocument.
func ParseEditDocument(jsonContent []byte) (*EditDocument, error) {
	var doc EditDocument
	if err := json.Unmarshal(jsonContent, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse edit document: %w", err)
	}
	return &doc, nil
}

// Service applies edit documents.
type Service struct{}

// NewService creates a new edit service.
func NewService() *Service {
	return &Service{}
}

// Apply applies every edit in the document and returns the resulting
// SaveFile. The input file is never mutated; on any invalid entry Apply
// fails and no partial result is returned.
func (s *Service) Apply(f *savefile.SaveFile, doc *EditDocument) (*savefile.SaveFile, *Stats, error) {
	stats := &Stats{}
	out := f
	var err error

	for _, e := range doc.ChannelNames {
		if out, err = out.SetChannelName(e.Index, e.Name); err != nil {
			return nil, nil, fmt.Errorf("channel name edit %d: %w", e.Index, err)
		}
		stats.ChannelsRenamed++
	}

	for _, e := range doc.DMXPatch {
		assignment, err := e.assignment()
		if err != nil {
			return nil, nil, fmt.Errorf("patch edit for DMX channel %d: %w", e.DMXChannel, err)
		}
		if out, err = out.SetDMXAssignment(e.DMXChannel-1, assignment); err != nil {
			return nil, nil, fmt.Errorf("patch edit for DMX channel %d: %w", e.DMXChannel, err)
		}
		stats.ChannelsRepatched++
	}

	for _, e := range doc.DimmerModes {
		if out, err = out.SetDimmerMode(e.Fixture, e.Enabled); err != nil {
			return nil, nil, fmt.Errorf("dimmer mode edit for fixture %d: %w", e.Fixture, err)
		}
		stats.DimmerFlagsChanged++
	}

	for _, e := range doc.DimmerAssignments {
		if out, err = out.SetDimmerAssignment(e.Fixture, e.Channel, e.Enabled); err != nil {
			return nil, nil, fmt.Errorf("dimmer assignment edit for fixture %d channel %d: %w", e.Fixture, e.Channel, err)
		}
		stats.DimmerFlagsChanged++
	}

	for _, e := range doc.Blocks {
		record, err := hex.DecodeString(e.Data)
		if err != nil {
			return nil, nil, fmt.Errorf("block edit %d: bad hex: %w", e.Index, err)
		}
		if out, err = out.SetBlock(e.Index, record); err != nil {
			return nil, nil, fmt.Errorf("block edit %d: %w", e.Index, err)
		}
		stats.BlocksReplaced++
	}

	return out, stats, nil
}

// assignment resolves a patch edit into a codec assignment.
func (e PatchEdit) assignment() (savefile.Assignment, error) {
	targets := 0
	if e.Fixture != nil || e.Channel != nil {
		targets++
	}
	if e.Aux != nil {
		targets++
	}
	if e.Unpatch {
		targets++
	}
	if targets != 1 {
		return savefile.Assignment{}, fmt.Errorf("need exactly one of fixture+channel, aux, or unpatch")
	}
	switch {
	case e.Unpatch:
		return savefile.Assignment{Unpatched: true}, nil
	case e.Aux != nil:
		return savefile.Assignment{Aux: *e.Aux}, nil
	case e.Fixture == nil || e.Channel == nil:
		return savefile.Assignment{}, fmt.Errorf("fixture and channel must be given together")
	default:
		return savefile.Assignment{Fixture: *e.Fixture, Channel: *e.Channel}, nil
	}
}
