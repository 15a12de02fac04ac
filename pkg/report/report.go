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

// Package report aggregates per-file placement outcomes for one run
package report

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// 📊 Action represents the outcome of one placement
type Action int

const (
	ActionUnknown Action = iota
	ActionMoved          // File was moved to the destination
	ActionCopied         // File was copied to the destination
	ActionPlanned        // Dry run: placement resolved but not executed
	ActionFailed         // File was skipped due to an error
)

// String returns a string representation of Action
func (a Action) String() string {
	switch a {
	case ActionMoved:
		return "moved"
	case ActionCopied:
		return "copied"
	case ActionPlanned:
		return "planned"
	case ActionFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 PlacementRecord is the outcome of processing one file. Records are
// immutable once added to the Reporter.
type PlacementRecord struct {
	Source string // Full source path
	Folder string // Relative destination folder
	Name   string // Final filename after conflict resolution
	Action Action // Outcome
	Err    string // Underlying error text, empty on success
}

// 📈 Summary is the finalized view of one run
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
	Elapsed   time.Duration
	// Created holds category → sorted subcategories for folders first
	// created during this run
	Created map[string][]string
}

// 🔧 Reporter accumulates placement records and folder creations for one run.
// It is scoped to a single execution; nothing is persisted between runs.
type Reporter struct {
	mu      sync.Mutex
	started time.Time
	records []PlacementRecord

	succeeded int
	failed    int

	created map[string]map[string]bool
}

// 🏭 New creates a reporter with the run clock started
func New() *Reporter {
	return &Reporter{
		started: time.Now(),
		created: make(map[string]map[string]bool),
	}
}

// Add records the outcome of one file
func (r *Reporter) Add(rec PlacementRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, rec)
	if rec.Action == ActionFailed {
		r.failed++
	} else {
		r.succeeded++
	}
}

// FolderCreated marks a (category, subcategory) pair as newly created during
// this run. Repeat calls for the same pair are deduplicated.
func (r *Reporter) FolderCreated(category, subcategory string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs, ok := r.created[category]
	if !ok {
		subs = make(map[string]bool)
		r.created[category] = subs
	}
	if subcategory != "" {
		subs[subcategory] = true
	}
}

// Records returns a copy of the accumulated placement records
func (r *Reporter) Records() []PlacementRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]PlacementRecord, len(r.records))
	copy(out, r.records)
	return out
}

// Summary finalizes the counters for this run
func (r *Reporter) Summary() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := make(map[string][]string, len(r.created))
	for category, subs := range r.created {
		sorted := make([]string, 0, len(subs))
		for sub := range subs {
			sorted = append(sorted, sub)
		}
		sort.Strings(sorted)
		created[category] = sorted
	}

	return Summary{
		Total:     len(r.records),
		Succeeded: r.succeeded,
		Failed:    r.failed,
		Elapsed:   time.Since(r.started),
		Created:   created,
	}
}

// 📝 RenderSummary renders the run summary as plain text. Rendering is pure:
// writing the result to the console or log is the caller's responsibility.
func (r *Reporter) RenderSummary() string {
	return r.Summary().Render()
}

// Render renders a summary as plain text
func (s Summary) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Summary\n")
	fmt.Fprintf(&b, "  total:     %d\n", s.Total)
	fmt.Fprintf(&b, "  succeeded: %d\n", s.Succeeded)
	fmt.Fprintf(&b, "  failed:    %d\n", s.Failed)
	fmt.Fprintf(&b, "  elapsed:   %s\n", s.Elapsed.Round(time.Millisecond))

	if len(s.Created) == 0 {
		return b.String()
	}

	categories := make([]string, 0, len(s.Created))
	for category := range s.Created {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	fmt.Fprintf(&b, "Created folders\n")
	for _, category := range categories {
		fmt.Fprintf(&b, "  %s\n", category)
		for _, sub := range s.Created[category] {
			fmt.Fprintf(&b, "    %s\n", sub)
		}
	}

	return b.String()
}
