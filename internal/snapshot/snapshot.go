// Package snapshot records the class string every component story resolves
// to, so class drift shows up as a reviewable diff.
package snapshot

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/capsule/internal/ui/components"
	"github.com/alexisbeaulieu97/capsule/pkg/diff"
	capsuleerrors "github.com/alexisbeaulieu97/capsule/pkg/errors"
)

// Snapshot maps component name to story name to resolved classes.
type Snapshot map[string]map[string]string

// Build resolves every story of every registered component.
func Build(r *components.Registry) (Snapshot, error) {
	snap := make(Snapshot)
	for _, entry := range r.Entries() {
		stories := make(map[string]string, len(entry.Stories))
		for _, story := range entry.Stories {
			cls, err := entry.Classes(story.Select, "")
			if err != nil {
				return nil, fmt.Errorf("%s/%s: %w", entry.Name, story.Name, err)
			}
			stories[story.Name] = cls
		}
		snap[entry.Name] = stories
	}
	return snap, nil
}

// Marshal encodes the snapshot as YAML with keys in sorted order.
func (s Snapshot) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(map[string]map[string]string(s)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Parse decodes a snapshot document. label names the source in errors.
func Parse(label string, data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, capsuleerrors.NewParseError(label, 0, err)
	}
	if snap == nil {
		snap = Snapshot{}
	}
	return snap, nil
}

// Write stores the snapshot at path.
func Write(path string, s Snapshot) error {
	data, err := s.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Compare diffs two encoded snapshots. The result is empty when they match.
func Compare(baseline, current []byte, baselineLabel, currentLabel string) (string, diff.Stats) {
	return diff.Unified(baseline, current, baselineLabel, currentLabel)
}
