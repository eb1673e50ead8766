// SPDX-License-Identifier: Apache-2.0

// Package fsx provides the small set of filesystem operations the
// provisioner relies on. All mutating operations are idempotent so a
// pipeline can be re-run safely after a partial failure.
package fsx

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joomcode/errorx"
)

var (
	ErrNamespace = errorx.NewNamespace("fsx")

	ErrFileRead  = ErrNamespace.NewType("file_read_error")
	ErrFileWrite = ErrNamespace.NewType("file_write_error")

	PathProperty = errorx.RegisterProperty("path")
)

// PathExists reports whether path exists. The FileInfo is nil when it does not.
func PathExists(path string) (os.FileInfo, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, ErrFileRead.Wrap(err, "failed to stat %s", path).
			WithProperty(PathProperty, path)
	}
	return info, true, nil
}

// CreateDirectory creates path and any missing parents. An existing
// directory is not an error.
func CreateDirectory(path string, perm os.FileMode) error {
	if err := os.MkdirAll(path, perm); err != nil {
		return ErrFileWrite.Wrap(err, "failed to create directory %s", path).
			WithProperty(PathProperty, path)
	}
	return nil
}

// CopyFile copies src to dst with the given permissions. The content is
// written to a temp file in the destination directory and renamed into
// place so a partially written file is never observed at dst.
func CopyFile(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return ErrFileRead.Wrap(err, "failed to open %s", src).
			WithProperty(PathProperty, src)
	}
	defer in.Close()

	dir := filepath.Dir(dst)
	tmp, err := os.CreateTemp(dir, filepath.Base(dst)+".tmp.*")
	if err != nil {
		return ErrFileWrite.Wrap(err, "failed to create temp file in %s", dir).
			WithProperty(PathProperty, dir)
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, in); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return ErrFileWrite.Wrap(err, "failed to copy %s to %s", src, dst).
			WithProperty(PathProperty, dst)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return ErrFileWrite.Wrap(err, "failed to finalize %s", tmpPath).
			WithProperty(PathProperty, tmpPath)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		_ = os.Remove(tmpPath)
		return ErrFileWrite.Wrap(err, "failed to set permissions on %s", tmpPath).
			WithProperty(PathProperty, tmpPath)
	}
	if err := os.Rename(tmpPath, dst); err != nil {
		_ = os.Remove(tmpPath)
		return ErrFileWrite.Wrap(err, "failed to move %s into place", dst).
			WithProperty(PathProperty, dst)
	}
	return nil
}

// WriteFile writes content to path with the given permissions, replacing
// any previous content.
func WriteFile(path string, content []byte, perm os.FileMode) error {
	if err := os.WriteFile(path, content, perm); err != nil {
		return ErrFileWrite.Wrap(err, "failed to write %s", path).
			WithProperty(PathProperty, path)
	}
	return nil
}

// ContainsLine reports whether path contains line as an exact full line.
// A missing file is treated as an empty file.
func ContainsLine(path, line string) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, ErrFileRead.Wrap(err, "failed to read %s", path).
			WithProperty(PathProperty, path)
	}
	for _, l := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(l) == line {
			return true, nil
		}
	}
	return false, nil
}

// EnsureLineInFile appends line to path unless an identical line is
// already present. A missing file is created. It reports whether the
// file was modified. Re-running it never duplicates the line.
func EnsureLineInFile(path, line string, perm os.FileMode) (bool, error) {
	present, err := ContainsLine(path, line)
	if err != nil {
		return false, err
	}
	if present {
		return false, nil
	}

	content, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return false, ErrFileRead.Wrap(err, "failed to read %s", path).
			WithProperty(PathProperty, path)
	}
	if len(content) > 0 && !strings.HasSuffix(string(content), "\n") {
		content = append(content, '\n')
	}
	content = append(content, []byte(line+"\n")...)

	if err := WriteFile(path, content, perm); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveIfExists removes a file or empty directory. A missing path is
// not an error.
func RemoveIfExists(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return ErrFileWrite.Wrap(err, "failed to remove %s", path).
			WithProperty(PathProperty, path)
	}
	return nil
}

// RemoveAllIfExists removes path recursively. A missing path is not an error.
func RemoveAllIfExists(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return ErrFileWrite.Wrap(err, "failed to remove %s", path).
			WithProperty(PathProperty, path)
	}
	return nil
}
