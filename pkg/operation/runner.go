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

package operation

import (
	"context"

	"github.com/rs/zerolog"
)

// 🏃 Runner executes operations while watching for cancellation
type Runner struct {
	logger *zerolog.Logger
}

// 🏗️ NewRunner creates a new runner
func NewRunner(logger *zerolog.Logger) *Runner {
	return &Runner{logger: logger}
}

// 🏃 Run executes an operation to completion. On cancellation the operation
// finishes its current file before stopping, so already-placed files are
// never left half-transferred.
func (r *Runner) Run(ctx context.Context, op Operation) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- op.Execute(ctx)
	}()

	select {
	case <-ctx.Done():
		r.logger.Warn().Msg("cancellation received, finishing current file")
		return <-errCh
	case err := <-errCh:
		return err
	}
}
