// Package fsutil holds the filesystem helpers shared by every writer:
// best-effort directory creation and scoped file creation.
package fsutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphprep/pkg/errors"
)

// DirPerm is the permission used for every directory graphprep creates.
const DirPerm = 0o755

// EnsureDir creates path and any missing parents.
//
// A directory that already exists is not an error: a warning is logged and
// nil is returned, so calling EnsureDir twice on the same path is safe.
// Every other failure is logged and returned as an ErrCodeFilesystem error,
// or ErrCodeInvalidPath when path exists but is not a directory.
// A nil logger uses log.Default().
func EnsureDir(logger *log.Logger, path string) error {
	if logger == nil {
		logger = log.Default()
	}
	if err := errors.ValidatePath(path); err != nil {
		return err
	}

	if info, err := os.Stat(path); err == nil {
		if !info.IsDir() {
			logger.Error("Creation of the directory failed", "path", path, "reason", "not a directory")
			return errors.New(errors.ErrCodeInvalidPath, "%s exists and is not a directory", path)
		}
		logger.Warn("Creation of the directory failed", "path", path, "reason", "already exists")
		return nil
	}

	if err := os.MkdirAll(path, DirPerm); err != nil {
		logger.Error("Creation of the directory failed", "path", path, "err", err)
		return errors.Wrap(errors.ErrCodeFilesystem, err, "create directory %s", path)
	}
	logger.Info("Successfully created the directory", "path", path)
	return nil
}

// WriteFile ensures the parent directory of path exists, truncates or
// creates path, and hands the open file to fn. The file is closed on every
// return path; a close error is reported when fn itself succeeded.
func WriteFile(logger *log.Logger, path string, fn func(w io.Writer) error) (err error) {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if err := EnsureDir(logger, filepath.Dir(path)); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFilesystem, err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(errors.ErrCodeFilesystem, cerr, "close %s", path)
		}
	}()

	if err := fn(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
