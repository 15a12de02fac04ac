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

// Package discover lists candidate files from a source directory
package discover

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📄 File is one candidate file found in the source directory
type File struct {
	Path string // Full path to the file
	Rel  string // Path relative to the source directory, slash-separated
	Name string // Base name
	Ext  string // Extension including the leading dot, empty if none
	Size int64  // Size in bytes
}

// 🔧 Options controls discovery behavior
type Options struct {
	// Recursive includes files in nested directories
	Recursive bool
	// IgnorePatterns are doublestar globs matched against the relative path
	IgnorePatterns []string
	// ExcludeNames are exact base names to skip, e.g. the tool's own log file
	// when source and destination overlap
	ExcludeNames []string
}

// 🔍 Discover lists the regular files in dir. The result is a finite slice in
// deterministic order, not a live view; directories are never included.
func Discover(ctx context.Context, dir string, opts Options) ([]File, error) {
	logger := zerolog.Ctx(ctx)

	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Errorf("reading source directory: %w", err)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("source %q is not a directory", dir)
	}

	var files []File
	collect := func(path string, d fs.DirEntry) error {
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return errors.Errorf("relativizing %q: %w", path, err)
		}
		rel = filepath.ToSlash(rel)

		if excluded(d.Name(), opts.ExcludeNames) {
			logger.Debug().Str("file", rel).Msg("excluded tool artifact")
			return nil
		}
		ignore, err := ignored(rel, opts.IgnorePatterns)
		if err != nil {
			return err
		}
		if ignore {
			logger.Debug().Str("file", rel).Msg("file ignored by pattern")
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			return errors.Errorf("reading file info for %q: %w", path, err)
		}

		files = append(files, File{
			Path: path,
			Rel:  rel,
			Name: d.Name(),
			Ext:  filepath.Ext(d.Name()),
			Size: fi.Size(),
		})
		return nil
	}

	if opts.Recursive {
		err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return errors.Errorf("walking %q: %w", path, err)
			}
			if d.IsDir() {
				return nil
			}
			return collect(path, d)
		})
	} else {
		var entries []fs.DirEntry
		entries, err = os.ReadDir(dir)
		if err != nil {
			return nil, errors.Errorf("listing source directory: %w", err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if err = collect(filepath.Join(dir, entry.Name()), entry); err != nil {
				break
			}
		}
	}
	if err != nil {
		return nil, err
	}

	logger.Debug().Int("files", len(files)).Str("source", dir).Msg("discovery complete")
	return files, nil
}

// 🔍 excluded checks a base name against the exclusion list
func excluded(name string, excludes []string) bool {
	for _, e := range excludes {
		if name == e {
			return true
		}
	}
	return false
}

// 🔍 ignored checks a relative path against the ignore patterns
func ignored(rel string, patterns []string) (bool, error) {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			return false, errors.Errorf("matching pattern %q: %w", pattern, err)
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}
