// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package rules maps file extensions to destination categories
package rules

import (
	"path/filepath"
	"sort"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🗂️ Classification is the resolved destination for one extension
type Classification struct {
	Category    string // Top-level folder under the destination root
	Subcategory string // Optional second-level folder, empty for one-level paths
}

// Segments returns the relative folder path segments under the destination root
func (c Classification) Segments() []string {
	if c.Subcategory == "" {
		return []string{c.Category}
	}
	return []string{c.Category, c.Subcategory}
}

// Rel returns the classification as a relative folder path
func (c Classification) Rel() string {
	return filepath.Join(c.Segments()...)
}

// Fallback classifications, applied in priority order: an empty extension
// always wins over the unknown-extension default.
var (
	// 📭 NoExtension is returned for files without an extension
	NoExtension = Classification{Category: "No Extension", Subcategory: "Files Without Extension"}

	// ❓ Unknown is returned for extensions absent from the table
	Unknown = Classification{Category: "Other Files", Subcategory: "Miscellaneous"}
)

// 🗺️ Table is an immutable extension → classification mapping.
// Keys are lowercase extensions including the leading dot.
type Table struct {
	entries map[string]Classification
}

// 🏭 New builds a table from the given entries. Keys are lowercased; two keys
// that collide after lowercasing are rejected, as are keys missing the
// leading dot.
func New(entries map[string]Classification) (*Table, error) {
	normalized := make(map[string]Classification, len(entries))
	for ext, c := range entries {
		key := strings.ToLower(ext)
		if key != "" && !strings.HasPrefix(key, ".") {
			return nil, errors.Errorf("rule key %q must start with a dot", ext)
		}
		if c.Category == "" {
			return nil, errors.Errorf("rule key %q has no category", ext)
		}
		if prev, ok := normalized[key]; ok && prev != c {
			return nil, errors.Errorf("conflicting rules for extension %q", key)
		} else if ok {
			return nil, errors.Errorf("duplicate rule for extension %q", key)
		}
		normalized[key] = c
	}
	return &Table{entries: normalized}, nil
}

// 🎯 Classify resolves an extension to its destination classification.
// Matching is case-insensitive; an empty extension takes priority over the
// unknown-extension default.
func (t *Table) Classify(ext string) Classification {
	key := strings.ToLower(ext)
	if c, ok := t.entries[key]; ok {
		return c
	}
	if key == "" {
		return NoExtension
	}
	return Unknown
}

// Merge returns a new table with the overrides applied on top of t.
// Overrides replace existing entries for the same extension.
func (t *Table) Merge(overrides map[string]Classification) (*Table, error) {
	merged := make(map[string]Classification, len(t.entries)+len(overrides))
	for ext, c := range t.entries {
		merged[ext] = c
	}
	for ext, c := range overrides {
		key := strings.ToLower(ext)
		if key != "" && !strings.HasPrefix(key, ".") {
			return nil, errors.Errorf("rule key %q must start with a dot", ext)
		}
		if c.Category == "" {
			return nil, errors.Errorf("rule key %q has no category", ext)
		}
		merged[key] = c
	}
	return &Table{entries: merged}, nil
}

// Extensions returns the table keys in sorted order
func (t *Table) Extensions() []string {
	exts := make([]string, 0, len(t.entries))
	for ext := range t.entries {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Len returns the number of entries in the table
func (t *Table) Len() int {
	return len(t.entries)
}
