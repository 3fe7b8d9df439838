// Package settings persists cycler tuning made at runtime, so an exhibit
// restarts with the timing its operator last chose.
package settings

import (
	"fmt"
	"log"
	"strings"
	"unicode"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const tuningObject = "cyclers"

// Tuning is the runtime-adjustable part of a color cycler.
type Tuning struct {
	Interval     float32 `yaml:"interval"`
	Duration     float32 `yaml:"duration"`
	Loop         bool    `yaml:"loop"`
	Random       bool    `yaml:"random"`
	FadeEmission bool    `yaml:"fadeEmission"`
	Preset       string  `yaml:"preset"`
}

// Props returns the tuning as script property values.
func (t Tuning) Props() map[string]any {
	props := map[string]any{
		"interval":     t.Interval,
		"duration":     t.Duration,
		"loop":         t.Loop,
		"random":       t.Random,
		"fadeEmission": t.FadeEmission,
	}
	if t.Preset != "" {
		props["preset"] = t.Preset
	}
	return props
}

// Store saves tunings keyed by object name. A Store without a gdata
// manager keeps everything in memory only.
type Store struct {
	manager *gdata.Manager
	memory  map[string]Tuning
}

// Open creates a store backed by gdata under appName.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open settings store: %w", err)
	}
	return NewStore(m), nil
}

// NewStore wraps an existing manager. m may be nil.
func NewStore(m *gdata.Manager) *Store {
	return &Store{manager: m, memory: make(map[string]Tuning)}
}

// Persistent reports whether saves reach disk.
func (s *Store) Persistent() bool {
	return s.manager != nil
}

// Load returns the saved tuning for name. ok is false when nothing was
// saved.
func (s *Store) Load(name string) (t Tuning, ok bool, err error) {
	key := propKey(name)
	if t, ok := s.memory[key]; ok {
		return t, true, nil
	}
	if s.manager == nil || !s.manager.ObjectPropExists(tuningObject, key) {
		return Tuning{}, false, nil
	}

	data, err := s.manager.LoadObjectProp(tuningObject, key)
	if err != nil {
		return Tuning{}, false, fmt.Errorf("load tuning %q: %w", name, err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, false, fmt.Errorf("decode tuning %q: %w", name, err)
	}
	s.memory[key] = t
	return t, true, nil
}

// Save records the tuning for name.
func (s *Store) Save(name string, t Tuning) error {
	key := propKey(name)
	s.memory[key] = t
	if s.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("encode tuning %q: %w", name, err)
	}
	if err := s.manager.SaveObjectProp(tuningObject, key, data); err != nil {
		return fmt.Errorf("save tuning %q: %w", name, err)
	}
	log.Printf("[Settings] saved tuning for %q", name)
	return nil
}

// Delete forgets the tuning for name.
func (s *Store) Delete(name string) error {
	key := propKey(name)
	delete(s.memory, key)
	if s.manager == nil || !s.manager.ObjectPropExists(tuningObject, key) {
		return nil
	}
	if err := s.manager.DeleteObjectProp(tuningObject, key); err != nil {
		return fmt.Errorf("delete tuning %q: %w", name, err)
	}
	return nil
}

// propKey turns an object name into a file-safe property key.
func propKey(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "_"
	}
	return b.String()
}
