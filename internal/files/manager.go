package files

import (
	"errors"
	"log/slog"
	"os"
	"strings"

	"classmate/internal/config"
	apperrors "classmate/internal/errors"
	"classmate/internal/validation"
)

// Manager provides the file operations of a run
type Manager struct {
	paths     *config.Paths
	discovery *Discovery
	validator *validation.FileValidator
	reader    *TableReader
	logger    *slog.Logger
}

// NewManager creates a new file manager instance
func NewManager(paths *config.Paths, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		paths:     paths,
		discovery: NewDiscovery(paths.WorkingDir),
		validator: validation.NewFileValidator(logger),
		reader:    NewTableReader(),
		logger:    logger,
	}
}

// LocateRoster returns the path of <InputDir>/<base>.csv.
//
// A missing file, or a directory at that path, is a SOURCE_NOT_FOUND error
// whose context lists the roster bases that do exist in the input directory.
func (m *Manager) LocateRoster(base string) (string, error) {
	path := m.paths.GetRosterPath(base)

	if err := m.validator.ValidateCSVFile(path); err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Type == apperrors.ErrTypeSourceNotFound {
			m.addAvailableBases(appErr)
		}
		return "", err
	}

	m.logger.Debug("Roster located",
		slog.String("base", base),
		slog.String("path", path))
	return path, nil
}

func (m *Manager) addAvailableBases(appErr *apperrors.AppError) {
	files, err := m.discovery.FindCSVFiles(m.paths.InputDir)
	if err != nil {
		m.logger.Debug("Could not list input directory",
			slog.String("dir", m.paths.InputDir),
			slog.String("error", err.Error()))
		return
	}

	bases := make([]string, 0, len(files))
	for _, f := range files {
		bases = append(bases, f.Base())
	}
	appErr.WithContext("available", strings.Join(bases, " "))

	if latest, ok := GetLatestFile(files); ok {
		appErr.WithContext("latest", latest.Base())
	}
}

// ReadRoster reads and parses the roster file at path.
func (m *Manager) ReadRoster(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewSourceNotFoundError(path, err)
		}
		return nil, apperrors.NewStorageError("failed to open roster", err).WithContext("path", path)
	}
	defer f.Close()

	rows, err := m.reader.ReadAll(f)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			appErr.WithContext("path", path)
		}
		return nil, err
	}

	m.logger.Debug("Roster read",
		slog.String("path", path),
		slog.Int("rows", len(rows)))
	return rows, nil
}
