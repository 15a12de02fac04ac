package report

import (
	"bufio"
	"fmt"
	"os"
	"sync"
	"time"

	"gitlab.com/tozd/go/errors"
)

// timeFormat is the timestamp layout used for log lines
const timeFormat = "2006-01-02 15:04:05"

// 📜 RunLog is the append-only plain-text audit log for one run. Lines are
// written sequentially by a single writer and flushed on Close.
type RunLog struct {
	mu sync.Mutex
	f  *os.File
	w  *bufio.Writer
}

// 🏭 OpenRunLog opens (or creates) the log file for appending
func OpenRunLog(path string) (*RunLog, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.Errorf("opening run log: %w", err)
	}
	return &RunLog{f: f, w: bufio.NewWriter(f)}, nil
}

// Header writes the run header block
func (l *RunLog) Header(start time.Time, source, destination, mode string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.w, "==== sortrc run started %s ====\n", start.Format(timeFormat))
	fmt.Fprintf(l.w, "source:      %s\n", source)
	fmt.Fprintf(l.w, "destination: %s\n", destination)
	fmt.Fprintf(l.w, "mode:        %s\n", mode)
	return l.flush()
}

// Eventf writes one timestamped event line
func (l *RunLog) Eventf(format string, args ...interface{}) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.w, "[%s] ", time.Now().Format(timeFormat))
	fmt.Fprintf(l.w, format, args...)
	fmt.Fprintln(l.w)
	return l.flush()
}

// Record writes the event line for one placement record
func (l *RunLog) Record(rec PlacementRecord) error {
	if rec.Action == ActionFailed {
		return l.Eventf("FAILED %s: %s", rec.Source, rec.Err)
	}
	return l.Eventf("%s %s -> %s/%s", rec.Action, rec.Source, rec.Folder, rec.Name)
}

// Summary writes the trailing summary block
func (l *RunLog) Summary(text string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.w, "---- run summary ----")
	fmt.Fprint(l.w, text)
	fmt.Fprintf(l.w, "==== sortrc run finished %s ====\n", time.Now().Format(timeFormat))
	return l.flush()
}

// Close flushes buffered lines and closes the log file
func (l *RunLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.w.Flush(); err != nil {
		l.f.Close()
		return errors.Errorf("flushing run log: %w", err)
	}
	if err := l.f.Close(); err != nil {
		return errors.Errorf("closing run log: %w", err)
	}
	return nil
}

// Name returns the log file path
func (l *RunLog) Name() string {
	return l.f.Name()
}

// flush must be called with the mutex held
func (l *RunLog) flush() error {
	if err := l.w.Flush(); err != nil {
		return errors.Errorf("flushing run log: %w", err)
	}
	return nil
}
