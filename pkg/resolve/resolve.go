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

// Package resolve generates non-colliding filenames within a folder
package resolve

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// maxAttempts bounds the collision probe so a pathological folder can never
// loop the run. Exceeding it is a per-file failure, not an expected outcome.
const maxAttempts = 100

// 🎯 UniqueName returns a filename that does not yet exist in folder. If
// proposed is free it is returned unchanged; otherwise "base_N.ext" is probed
// for N = 1, 2, 3, … until a free name is found or the attempt bound is hit.
//
// The existence check and the caller's subsequent write are not atomic: a
// concurrent writer to the same folder can race the returned name. That is
// acceptable for a single-user interactive tool and this package makes no
// stronger guarantee.
func UniqueName(folder, proposed string) (string, error) {
	exists, err := entryExists(filepath.Join(folder, proposed))
	if err != nil {
		return "", errors.Errorf("checking %q: %w", proposed, err)
	}
	if !exists {
		return proposed, nil
	}

	ext := filepath.Ext(proposed)
	base := strings.TrimSuffix(proposed, ext)

	for n := 1; n <= maxAttempts; n++ {
		candidate := fmt.Sprintf("%s_%d%s", base, n, ext)
		exists, err := entryExists(filepath.Join(folder, candidate))
		if err != nil {
			return "", errors.Errorf("checking %q: %w", candidate, err)
		}
		if !exists {
			return candidate, nil
		}
	}

	return "", errors.Errorf("no unique name for %q in %s after %d attempts", proposed, folder, maxAttempts)
}

// entryExists reports whether any directory entry occupies the path. A
// directory counts as a collision too: a file cannot land on top of it.
func entryExists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
