package commands

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/sortrc/cmd/sortrc/opts"
	"github.com/walteh/sortrc/pkg/config"
	"github.com/walteh/sortrc/pkg/log"
	"github.com/walteh/sortrc/pkg/operation"
	"github.com/walteh/sortrc/pkg/report"
	"gitlab.com/tozd/go/errors"
)

// NewOrganizeCmd creates a new organize command
func NewOrganizeCmd(ro *opts.RootOpts) *cobra.Command {
	var (
		source      string
		destination string
		logFile     string
		move        bool
		recursive   bool
		dryRun      bool
		ignore      []string
	)

	cmd := &cobra.Command{
		Use:   "organize",
		Short: "Classify and place source files into the destination tree",
		Long: `Organize classifies each file in the source directory by extension and
places it under destination/Category[/Subcategory]. It will:
1. Discover candidate files (optionally recursive)
2. Classify each extension against the rule table
3. Resolve filename conflicts without overwriting
4. Copy or move each file and append an audit log entry
5. Render a run summary`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := ro.LoadConfig(ctx)
			if err != nil {
				return err
			}

			// Flags override whatever the config file said
			if cmd.Flags().Changed("source") {
				cfg.Source = source
			}
			if cmd.Flags().Changed("destination") {
				cfg.Destination = destination
			}
			if cmd.Flags().Changed("log-file") {
				cfg.LogFile = logFile
			}
			if cmd.Flags().Changed("move") {
				cfg.Move = move
			}
			if cmd.Flags().Changed("recursive") {
				cfg.Recursive = recursive
			}
			if cmd.Flags().Changed("dry-run") {
				cfg.DryRun = dryRun
			}
			if cmd.Flags().Changed("ignore") {
				cfg.IgnorePatterns = ignore
			}

			if err := cfg.Validate(); err != nil {
				return errors.Errorf("validating config: %w", err)
			}

			absDestination, err := filepath.Abs(cfg.Destination)
			if err != nil {
				return errors.Errorf("getting absolute destination path: %w", err)
			}
			cfg.Destination = absDestination

			return runOrganize(cmd, ro, cfg)
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "", "source directory to organize")
	cmd.Flags().StringVarP(&destination, "destination", "o", "", "destination root for category folders")
	cmd.Flags().StringVar(&logFile, "log-file", "", "audit log file name (default "+config.DefaultLogFile+")")
	cmd.Flags().BoolVarP(&move, "move", "m", false, "move files instead of copying")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "recurse into source subdirectories")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "resolve placements without touching the filesystem")
	cmd.Flags().StringArrayVar(&ignore, "ignore", nil, "glob patterns for files to skip")

	return cmd
}

// runOrganize wires the reporter, audit log and placement engine together
func runOrganize(cmd *cobra.Command, ro *opts.RootOpts, cfg *config.Config) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)

	level := zerolog.InfoLevel
	if ro.Debug {
		level = zerolog.DebugLevel
	}
	console := log.New(cmd.OutOrStdout(), level)
	console.Header(cfg.String())

	table, err := cfg.RuleTable()
	if err != nil {
		return err
	}

	reporter := report.New()
	user := log.NewUserLogger(ctx)

	var runLog *report.RunLog
	if !cfg.DryRun {
		if err := os.MkdirAll(cfg.Destination, 0755); err != nil {
			return errors.Errorf("creating destination root: %w", err)
		}

		logPath := cfg.LogFile
		if !filepath.IsAbs(logPath) {
			logPath = filepath.Join(cfg.Destination, logPath)
		}
		runLog, err = report.OpenRunLog(logPath)
		if err != nil {
			return err
		}
		if err := runLog.Header(time.Now(), cfg.Source, cfg.Destination, cfg.Mode()); err != nil {
			runLog.Close()
			return err
		}
	}

	op, err := operation.NewOrganizeOperation(operation.Options{
		Config:   cfg,
		Table:    table,
		Reporter: reporter,
		RunLog:   runLog,
		Console:  console,
		User:     user,
	})
	if err != nil {
		if runLog != nil {
			runLog.Close()
		}
		return errors.Errorf("creating organize operation: %w", err)
	}

	runner := operation.NewRunner(logger)
	runErr := runner.Run(ctx, op)

	// The summary is always rendered, even for runs that contained errors
	summary := reporter.RenderSummary()
	console.LogNewline()
	console.Plain(summary)

	if runLog != nil {
		if err := runLog.Summary(summary); err != nil {
			console.Warningf("writing summary to audit log: %v", err)
		}
		if err := runLog.Close(); err != nil {
			console.Warningf("closing audit log: %v", err)
		}
	}

	if runErr != nil {
		console.Errorf("organize aborted: %v", runErr)
		return errors.Errorf("running organize operation: %w", runErr)
	}

	s := reporter.Summary()
	switch {
	case cfg.DryRun:
		console.Infof("dry run: %d files resolved, nothing written", s.Total)
	case s.Failed > 0:
		console.Warningf("%d of %d files failed, see the audit log for details", s.Failed, s.Total)
	default:
		console.Successf("organized %d files", s.Succeeded)
	}

	return nil
}
