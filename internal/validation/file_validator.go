package validation

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	apperrors "classmate/internal/errors"
)

// FileValidator runs the filesystem checks around a run: the roster must be
// a readable file and the report directory must accept new files.
type FileValidator struct {
	logger *slog.Logger
}

func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{logger: logger}
}

// ValidateOutputDirectory creates dir when needed and proves it is writable
// by creating and removing a probe file. An empty dir means the working
// directory. Every failure is a STORAGE error.
func (v *FileValidator) ValidateOutputDirectory(dir string) error {
	if dir == "" {
		dir = "."
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return v.storageFailure("cannot create output directory", dir, err)
	}

	probe, err := os.CreateTemp(dir, ".classmate-probe-*")
	if err != nil {
		return v.storageFailure("output directory is not writable", dir, err)
	}
	probe.Close()
	os.Remove(probe.Name())

	v.logger.Debug("Output directory ready", slog.String("directory", dir))
	return nil
}

// ValidateFile requires path to name a readable regular file. Absent paths
// and directories are SOURCE_NOT_FOUND; an unreadable file is STORAGE.
func (v *FileValidator) ValidateFile(path string) error {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		v.logger.Debug("File does not exist", slog.String("file", path))
		return apperrors.NewSourceNotFoundError(path, err)
	case err != nil:
		v.logger.Warn("Cannot stat file", slog.String("file", path), slog.String("error", err.Error()))
		return apperrors.NewSourceNotFoundError(path, err)
	case info.IsDir():
		v.logger.Debug("Expected a file, found a directory", slog.String("path", path))
		return apperrors.NewSourceNotFoundError(path, fmt.Errorf("%s is a directory", path))
	}

	f, err := os.Open(path)
	if err != nil {
		return v.storageFailure("file is not readable", path, err)
	}
	f.Close()

	v.logger.Debug("File validated", slog.String("file", path), slog.Int64("size", info.Size()))
	return nil
}

// ValidateCSVFile is ValidateFile plus a case-insensitive .csv extension
// check, which fails with a PARSING error.
func (v *FileValidator) ValidateCSVFile(path string) error {
	if err := v.ValidateFile(path); err != nil {
		return err
	}
	if ext := filepath.Ext(path); !strings.EqualFold(ext, ".csv") {
		v.logger.Warn("Roster is not a CSV file", slog.String("file", path), slog.String("extension", ext))
		return apperrors.NewParsingError(fmt.Sprintf("%s does not have a .csv extension", path), nil).
			WithContext("path", path)
	}
	return nil
}

func (v *FileValidator) storageFailure(msg, path string, err error) error {
	v.logger.Error(msg, slog.String("path", path), slog.String("error", err.Error()))
	return apperrors.NewStorageError(fmt.Sprintf("%s: %s", msg, path), err).WithContext("path", path)
}
