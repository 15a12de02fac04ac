package log_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/walteh/sortrc/pkg/log"
	"github.com/walteh/sortrc/pkg/report"
)

// 🧪 newTestLogger creates a logger writing to a buffer with color disabled
func newTestLogger(t *testing.T) (*log.Logger, *bytes.Buffer) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	return log.New(&buf, zerolog.Disabled), &buf
}

// 🧪 TestLogPlacement tests per-file console lines
func TestLogPlacement(t *testing.T) {
	logger, buf := newTestLogger(t)

	logger.LogPlacement(context.Background(), log.Placement{
		Name:     "report.pdf",
		Folder:   "Documents/PDFs",
		Action:   "copied",
		IsCopied: true,
	})

	out := buf.String()
	assert.Contains(t, out, "report.pdf")
	assert.Contains(t, out, "Documents/PDFs")
	assert.Contains(t, out, "copied")
	assert.Contains(t, out, "✓")
}

// 🧪 TestLogPlacementFailure tests that failures show the error detail
func TestLogPlacementFailure(t *testing.T) {
	logger, buf := newTestLogger(t)

	logger.LogPlacement(context.Background(), log.Placement{
		Name:     "data.bin",
		Action:   "failed",
		IsFailed: true,
		Detail:   "permission denied",
	})

	out := buf.String()
	assert.Contains(t, out, "data.bin")
	assert.Contains(t, out, "permission denied")
	assert.Contains(t, out, "✗")
}

// 🧪 TestFromRecord tests the record-to-console conversion
func TestFromRecord(t *testing.T) {
	p := log.FromRecord(report.PlacementRecord{
		Source: "/in/report.pdf",
		Folder: "Documents/PDFs",
		Name:   "report_1.pdf",
		Action: report.ActionMoved,
	})

	assert.Equal(t, "report_1.pdf", p.Name)
	assert.Equal(t, "Documents/PDFs", p.Folder)
	assert.Equal(t, "moved", p.Action)
	assert.True(t, p.IsMoved)
	assert.False(t, p.IsFailed)

	failed := log.FromRecord(report.PlacementRecord{
		Name:   "data.bin",
		Action: report.ActionFailed,
		Err:    "permission denied",
	})
	assert.True(t, failed.IsFailed)
	assert.Equal(t, "permission denied", failed.Detail)
}

// 🧪 TestMessageHelpers tests the console message helpers
func TestMessageHelpers(t *testing.T) {
	logger, buf := newTestLogger(t)

	logger.Header("organizing files")
	logger.Successf("placed %d files", 4)
	logger.Warning("1 file skipped")
	logger.Error("destination unreachable")
	logger.Plain("Summary\n")

	out := buf.String()
	assert.Contains(t, out, "sortrc")
	assert.Contains(t, out, "organizing files")
	assert.Contains(t, out, "placed 4 files")
	assert.Contains(t, out, "1 file skipped")
	assert.Contains(t, out, "destination unreachable")
	assert.Contains(t, out, "Summary")
}

// 🧪 TestContext tests logger context round-trip
func TestContext(t *testing.T) {
	logger, _ := newTestLogger(t)

	ctx := log.NewContext(context.Background(), logger)
	assert.Equal(t, logger, log.FromContext(ctx))
}
