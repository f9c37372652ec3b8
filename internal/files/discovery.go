package files

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// FileInfo describes one roster candidate found on disk.
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// Base is the name a user would pass on the command line.
func (f FileInfo) Base() string {
	return strings.TrimSuffix(f.Name, filepath.Ext(f.Name))
}

// Discovery lists roster candidates relative to a base directory.
type Discovery struct {
	basePath string
}

func NewDiscovery(basePath string) *Discovery {
	return &Discovery{basePath: basePath}
}

func (d *Discovery) resolve(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(d.basePath, dir)
}

// FindCSVFiles returns the regular files in dir whose extension is .csv in
// any case, ordered by name. Entries that vanish while listing are skipped.
func (d *Discovery) FindCSVFiles(dir string) ([]FileInfo, error) {
	root := d.resolve(dir)
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", root, err)
	}

	found := make([]FileInfo, 0, len(entries))
	for _, entry := range entries {
		if !isCSV(entry) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		found = append(found, FileInfo{
			Path:    filepath.Join(root, entry.Name()),
			Name:    entry.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	slices.SortFunc(found, func(a, b FileInfo) int { return cmp.Compare(a.Name, b.Name) })
	return found, nil
}

func isCSV(entry os.DirEntry) bool {
	return !entry.IsDir() && strings.EqualFold(filepath.Ext(entry.Name()), ".csv")
}

// GetLatestFile picks the newest file by modification time. Ties go to the
// earlier element.
func GetLatestFile(files []FileInfo) (FileInfo, bool) {
	if len(files) == 0 {
		return FileInfo{}, false
	}
	return slices.MaxFunc(files, func(a, b FileInfo) int {
		return a.ModTime.Compare(b.ModTime)
	}), true
}
