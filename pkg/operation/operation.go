// Package operation provides the core placement engine for organizing files
package operation

import (
	"context"

	"github.com/walteh/sortrc/pkg/config"
	"github.com/walteh/sortrc/pkg/log"
	"github.com/walteh/sortrc/pkg/report"
	"github.com/walteh/sortrc/pkg/rules"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation defines a single executable run
type Operation interface {
	// Execute runs the operation to completion
	Execute(ctx context.Context) error
}

// 🔧 Options contains configuration for an operation
type Options struct {
	// Config is the run configuration
	Config *config.Config
	// Table is the extension rule table
	Table *rules.Table
	// Reporter accumulates placement outcomes
	Reporter *report.Reporter
	// RunLog is the append-only audit log, optional
	RunLog *report.RunLog
	// Console prints the per-file placement lines, optional
	Console *log.Logger
	// User is the live console feedback printer, optional
	User *log.UserLogger
}

// 🏭 NewOrganizeOperation creates the organize operation
func NewOrganizeOperation(opts Options) (Operation, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.Table == nil {
		return nil, errors.Errorf("rule table is required")
	}
	if opts.Reporter == nil {
		return nil, errors.Errorf("reporter is required")
	}
	return &organizeOperation{opts: opts}, nil
}

// 🎮 organizeOperation implements the Operation interface
type organizeOperation struct {
	opts Options
}
