// Package presets provides named constraint limits embedded at build time.
package presets

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/samdwyer/dungeonprobe/internal/constraints"
)

var (
	// ErrUnknownPreset is returned when a preset id is not in the registry.
	ErrUnknownPreset = errors.New("unknown preset")
	// ErrInvalidPreset is returned when a presets file fails validation.
	ErrInvalidPreset = errors.New("invalid preset")
)

//go:embed presets.json
var presetsJSON []byte

// Preset is a named set of generation limits loaded from JSON.
type Preset struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "standard")
	Name        string `json:"name"`        // Display name
	Description string `json:"description"` // Short summary for listings
	MaxSpaces   int    `json:"maxSpaces"`   // Maximum rooms
	MaxKeys     int    `json:"maxKeys"`     // Maximum keys
	MaxSwitches int    `json:"maxSwitches"` // Maximum switches
}

// Constraints builds a fresh count-limited constraint set from the preset.
func (p *Preset) Constraints() *constraints.Count {
	return constraints.NewCount(p.MaxSpaces, p.MaxKeys, p.MaxSwitches)
}

// PresetsFile represents the structure of presets.json.
type PresetsFile struct {
	Presets []Preset `json:"presets"`
}

// LoadPresets loads preset definitions from the embedded presets.json file.
func LoadPresets() ([]Preset, error) {
	return ParsePresets(presetsJSON)
}

// ParsePresets decodes a presets file and checks that every preset has a
// unique, non-empty id.
func ParsePresets(content []byte) ([]Preset, error) {
	var file PresetsFile
	if err := json.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}
	if len(file.Presets) == 0 {
		return nil, fmt.Errorf("%w: no presets defined", ErrInvalidPreset)
	}

	seen := make(map[string]bool, len(file.Presets))
	for i, p := range file.Presets {
		if p.ID == "" {
			return nil, fmt.Errorf("%w: preset %d has no id", ErrInvalidPreset, i)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidPreset, p.ID)
		}
		seen[p.ID] = true
	}
	return file.Presets, nil
}

// Registry holds loaded presets keyed by id.
type Registry struct {
	presets map[string]*Preset
	all     []Preset
}

// NewRegistry creates a registry from loaded preset definitions.
func NewRegistry(presets []Preset) *Registry {
	registry := &Registry{
		presets: make(map[string]*Preset),
		all:     presets,
	}
	for i := range presets {
		registry.presets[presets[i].ID] = &presets[i]
	}
	return registry
}

// LoadRegistry loads and creates a registry from the embedded presets.json.
func LoadRegistry() (*Registry, error) {
	presets, err := LoadPresets()
	if err != nil {
		return nil, err
	}
	return NewRegistry(presets), nil
}

// GetByID returns the preset with the given id, or nil if not found.
func (r *Registry) GetByID(id string) *Preset {
	return r.presets[id]
}

// Find is GetByID with an error naming the known ids.
func (r *Registry) Find(id string) (*Preset, error) {
	p := r.GetByID(id)
	if p == nil {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownPreset, id, r.IDs())
	}
	return p, nil
}

// All returns all presets in file order.
func (r *Registry) All() []Preset {
	return r.all
}

// IDs returns the sorted ids of all presets.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.all))
	for _, p := range r.All() {
		ids = append(ids, p.ID)
	}
	sort.Strings(ids)
	return ids
}

// Count returns the number of presets in the registry.
func (r *Registry) Count() int {
	return len(r.all)
}
