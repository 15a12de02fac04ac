package operation

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"gitlab.com/tozd/go/errors"
)

// copyFile streams src into a temporary file beside dst, verifies the byte
// count, then renames into place. A failed copy leaves no partial file at
// dst; mtime and permissions are carried over from the source.
func copyFile(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return errors.Errorf("reading source info: %w", err)
	}

	in, err := os.Open(src)
	if err != nil {
		return errors.Errorf("opening source file: %w", err)
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".sortrc-*")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	written, err := io.Copy(tmp, in)
	if err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.Errorf("copying file content: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Errorf("closing temp file: %w", err)
	}

	if written != srcInfo.Size() {
		os.Remove(tmpPath)
		return errors.Errorf("copy size mismatch: source %d bytes, copied %d bytes", srcInfo.Size(), written)
	}

	if err := os.Chmod(tmpPath, srcInfo.Mode().Perm()); err != nil {
		os.Remove(tmpPath)
		return errors.Errorf("setting file mode: %w", err)
	}

	// Timestamps carry over where the filesystem supports them. This happens
	// on the temp file, before the rename: once the rename completes the
	// transfer has succeeded and nothing may fail it anymore.
	_ = os.Chtimes(tmpPath, time.Now(), srcInfo.ModTime())

	if err := os.Rename(tmpPath, dst); err != nil {
		os.Remove(tmpPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// moveFile renames src to dst, falling back to copy-then-remove when rename
// fails (typically across devices). On success the source entry is gone.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	if err := copyFile(src, dst); err != nil {
		return err
	}
	if err := os.Remove(src); err != nil {
		// A failed move leaves the source untouched, never the file in both
		// trees: withdraw the destination copy before reporting the failure.
		os.Remove(dst)
		return errors.Errorf("removing source after copy: %w", err)
	}
	return nil
}
