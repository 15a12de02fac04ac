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
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/sortrc/pkg/discover"
	"github.com/walteh/sortrc/pkg/log"
	"github.com/walteh/sortrc/pkg/report"
	"github.com/walteh/sortrc/pkg/resolve"
	"gitlab.com/tozd/go/errors"
)

// 🏃 Execute runs the organize operation. Configuration errors (unreadable
// source, uncreatable destination root) abort the run before any file is
// touched; everything after that is a per-file outcome.
func (op *organizeOperation) Execute(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)
	cfg := op.opts.Config

	info, err := os.Stat(cfg.Source)
	if err != nil {
		return errors.Errorf("reading source directory: %w", err)
	}
	if !info.IsDir() {
		return errors.Errorf("source %q is not a directory", cfg.Source)
	}

	if !cfg.DryRun {
		if err := os.MkdirAll(cfg.Destination, 0755); err != nil {
			return errors.Errorf("creating destination root: %w", err)
		}
	}

	files, err := discover.Discover(ctx, cfg.Source, discover.Options{
		Recursive:      cfg.Recursive,
		IgnorePatterns: cfg.IgnorePatterns,
		ExcludeNames:   []string{filepath.Base(cfg.LogFile)},
	})
	if err != nil {
		return err
	}

	logger.Debug().Int("files", len(files)).Str("mode", cfg.Mode()).Msg("starting placement")

	for _, f := range files {
		// Interruptible between files; files already placed stay placed.
		if err := ctx.Err(); err != nil {
			return errors.Errorf("run interrupted: %w", err)
		}

		rec := op.placeFile(ctx, f)
		op.opts.Reporter.Add(rec)

		if op.opts.Console != nil {
			op.opts.Console.LogPlacement(ctx, log.FromRecord(rec))
		}
		if op.opts.RunLog != nil {
			if err := op.opts.RunLog.Record(rec); err != nil {
				logger.Warn().Err(err).Msg("writing audit log entry")
			}
		}
	}

	return nil
}

// 📄 placeFile processes a single file: classify, ensure folder, resolve a
// unique name, transfer. Any error becomes a failed record; it never aborts
// the run.
func (op *organizeOperation) placeFile(ctx context.Context, f discover.File) report.PlacementRecord {
	logger := zerolog.Ctx(ctx)
	cfg := op.opts.Config

	classification := op.opts.Table.Classify(f.Ext)
	folder := filepath.Join(cfg.Destination, classification.Rel())

	rec := report.PlacementRecord{
		Source: f.Path,
		Folder: classification.Rel(),
		Name:   f.Name,
	}

	if cfg.DryRun {
		// Resolve against the current destination so the preview shows the
		// name a real run would pick, but touch nothing.
		if name, err := resolve.UniqueName(folder, f.Name); err == nil {
			rec.Name = name
		}
		rec.Action = report.ActionPlanned
		return rec
	}

	created, err := ensureFolder(folder)
	if err != nil {
		return fail(logger, rec, errors.Errorf("creating destination folder: %w", err))
	}
	if created {
		op.opts.Reporter.FolderCreated(classification.Category, classification.Subcategory)
		if op.opts.User != nil {
			op.opts.User.LogFolderCreated(classification.Rel())
		}
		if op.opts.RunLog != nil {
			if err := op.opts.RunLog.Eventf("created folder %s", classification.Rel()); err != nil {
				logger.Warn().Err(err).Msg("writing audit log entry")
			}
		}
	}

	name, err := resolve.UniqueName(folder, f.Name)
	if err != nil {
		return fail(logger, rec, errors.Errorf("resolving unique name: %w", err))
	}
	rec.Name = name
	target := filepath.Join(folder, name)

	if cfg.Move {
		if err := moveFile(f.Path, target); err != nil {
			return fail(logger, rec, errors.Errorf("moving file: %w", err))
		}
		rec.Action = report.ActionMoved
	} else {
		if err := copyFile(f.Path, target); err != nil {
			return fail(logger, rec, errors.Errorf("copying file: %w", err))
		}
		rec.Action = report.ActionCopied
	}

	return rec
}

// fail finalizes a record as failed, capturing the underlying error text
func fail(logger *zerolog.Logger, rec report.PlacementRecord, err error) report.PlacementRecord {
	logger.Debug().Err(err).Str("source", rec.Source).Msg("placement failed")
	rec.Action = report.ActionFailed
	rec.Err = err.Error()
	return rec
}

// ensureFolder creates the folder (and intermediates) if absent, reporting
// whether the leaf was newly created. Creation is idempotent.
func ensureFolder(folder string) (bool, error) {
	if _, err := os.Stat(folder); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}
	if err := os.MkdirAll(folder, 0755); err != nil {
		return false, err
	}
	return true, nil
}
