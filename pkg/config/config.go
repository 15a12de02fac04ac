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

// Package config loads and validates sortrc run configuration
package config

import (
	"fmt"
	"path/filepath"

	"github.com/walteh/sortrc/pkg/rules"
	"gitlab.com/tozd/go/errors"
)

// DefaultLogFile is the audit log name used when none is configured
const DefaultLogFile = "sortrc.log"

// 📏 Rule overrides or extends one entry of the built-in rule table
type Rule struct {
	Extension   string `json:"extension" yaml:"extension" hcl:"extension,label"`
	Category    string `json:"category" yaml:"category" hcl:"category"`
	Subcategory string `json:"subcategory,omitempty" yaml:"subcategory,omitempty" hcl:"subcategory,optional"`
}

// 📚 Config represents the complete configuration for one run
type Config struct {
	Source         string   `json:"source" yaml:"source" hcl:"source"`
	Destination    string   `json:"destination" yaml:"destination" hcl:"destination"`
	Move           bool     `json:"move,omitempty" yaml:"move,omitempty" hcl:"move,optional"`
	Recursive      bool     `json:"recursive,omitempty" yaml:"recursive,omitempty" hcl:"recursive,optional"`
	DryRun         bool     `json:"dry_run,omitempty" yaml:"dry_run,omitempty" hcl:"dry_run,optional"`
	LogFile        string   `json:"log_file,omitempty" yaml:"log_file,omitempty" hcl:"log_file,optional"`
	IgnorePatterns []string `json:"ignore_patterns,omitempty" yaml:"ignore_patterns,omitempty" hcl:"ignore_patterns,optional"`
	Rules          []Rule   `json:"rules,omitempty" yaml:"rules,omitempty" hcl:"rule,block"`
}

// 🔍 Validate checks required fields, cleans paths and fills defaults
func (cfg *Config) Validate() error {
	if cfg.Source == "" {
		return errors.Errorf("source is required")
	}
	if cfg.Destination == "" {
		return errors.Errorf("destination is required")
	}

	cfg.Source = filepath.Clean(cfg.Source)
	cfg.Destination = filepath.Clean(cfg.Destination)

	if cfg.LogFile == "" {
		cfg.LogFile = DefaultLogFile
	}

	for _, r := range cfg.Rules {
		if r.Extension == "" {
			return errors.Errorf("rule with empty extension")
		}
		if r.Category == "" {
			return errors.Errorf("rule %q has no category", r.Extension)
		}
	}

	return nil
}

// 🗺️ RuleTable merges the configured rule overrides onto the built-in table
func (cfg *Config) RuleTable() (*rules.Table, error) {
	overrides := make(map[string]rules.Classification, len(cfg.Rules))
	for _, r := range cfg.Rules {
		overrides[r.Extension] = rules.Classification{
			Category:    r.Category,
			Subcategory: r.Subcategory,
		}
	}

	table, err := rules.Default().Merge(overrides)
	if err != nil {
		return nil, errors.Errorf("merging rule overrides: %w", err)
	}
	return table, nil
}

// Mode returns the transfer mode as a display string
func (cfg *Config) Mode() string {
	if cfg.Move {
		return "move"
	}
	return "copy"
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s -> %s (%s)", cfg.Source, cfg.Destination, cfg.Mode())
}
