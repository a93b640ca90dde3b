// Package fallback holds the canned payloads served in place of a failed upstream
// call when fallback data is enabled.
package fallback

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed data/*.json
var fixtures embed.FS

// Store looks up the fixture for an operation's fallback key.
// Lookup returns a copy the caller may modify.
type Store interface {
	Lookup(key string) (json.RawMessage, bool)
	Keys() []string
}

type store struct {
	payloads map[string]json.RawMessage
}

// NewStore loads the embedded fixtures. Each file data/<key>.json becomes fixture <key>.
func NewStore() (Store, error) {
	return load(fixtures, "data")
}

// NewStoreFromMap builds a Store from in-memory payloads.
func NewStoreFromMap(payloads map[string]json.RawMessage) Store {
	copied := make(map[string]json.RawMessage, len(payloads))
	for k, v := range payloads {
		copied[k] = bytes.Clone(v)
	}
	return &store{payloads: copied}
}

func load(fsys fs.FS, dir string) (Store, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}

	payloads := make(map[string]json.RawMessage, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".json" {
			continue
		}

		raw, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read fixture %s: %w", entry.Name(), err)
		}

		var compacted bytes.Buffer
		if err := json.Compact(&compacted, raw); err != nil {
			return nil, fmt.Errorf("fixture %s is not valid JSON: %w", entry.Name(), err)
		}

		payloads[strings.TrimSuffix(entry.Name(), ".json")] = compacted.Bytes()
	}

	return &store{payloads: payloads}, nil
}

func (s *store) Lookup(key string) (json.RawMessage, bool) {
	if key == "" {
		return nil, false
	}
	payload, ok := s.payloads[key]
	if !ok {
		return nil, false
	}
	return bytes.Clone(payload), true
}

func (s *store) Keys() []string {
	keys := make([]string, 0, len(s.payloads))
	for k := range s.payloads {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
