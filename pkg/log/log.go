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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/sortrc/pkg/report"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 35 // Base width for filename
	folderWidth = 30 // Width for destination folder
	actionWidth = 10 // Width for the action label
)

// 🎯 Placement represents one file placement for logging
type Placement struct {
	Name     string // Final filename
	Folder   string // Relative destination folder
	Action   string // moved / copied / planned / failed
	IsMoved  bool   // Whether the file was moved
	IsCopied bool   // Whether the file was copied
	IsFailed bool   // Whether the placement failed
	Detail   string // Error text or extra detail
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🎯 FromRecord converts a placement record into its console representation
func FromRecord(rec report.PlacementRecord) Placement {
	return Placement{
		Name:     rec.Name,
		Folder:   rec.Folder,
		Action:   rec.Action.String(),
		IsMoved:  rec.Action == report.ActionMoved,
		IsCopied: rec.Action == report.ActionCopied,
		IsFailed: rec.Action == report.ActionFailed,
		Detail:   rec.Err,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatPlacement formats a placement for display
func (l *Logger) formatPlacement(p Placement) string {
	var symbol rune
	var symbolColor color.Attribute
	switch {
	case p.IsFailed:
		symbol = '✗'
		symbolColor = color.FgRed
	case p.IsMoved:
		symbol = '✓'
		symbolColor = color.FgGreen
	case p.IsCopied:
		symbol = '✓'
		symbolColor = color.FgCyan
	default:
		symbol = '-'
		symbolColor = color.FgYellow
	}

	detail := p.Folder
	if p.IsFailed {
		detail = p.Detail
	}

	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, p.Name),
		color.New(color.FgBlue).Sprint(fmt.Sprintf("%-*s", actionWidth, p.Action)),
		fmt.Sprintf("%-*s", folderWidth, detail))
}

// 📝 LogPlacement logs one file placement
func (l *Logger) LogPlacement(ctx context.Context, p Placement) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, l.formatPlacement(p))

	l.zlog.Info().
		Str("file", p.Name).
		Str("folder", p.Folder).
		Str("action", p.Action).
		Bool("is_moved", p.IsMoved).
		Bool("is_copied", p.IsCopied).
		Bool("is_failed", p.IsFailed).
		Msg("file placement")
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	sortrcText := color.New(color.Bold, color.FgCyan).Sprint("sortrc")
	fmt.Fprintf(l.console, "\n%s %s\n\n", sortrcText, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Plain writes preformatted text to the console without decoration
func (l *Logger) Plain(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprint(l.console, text)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
