package walker

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// SourceExt is the extension of topic sources.
const SourceExt = ".md"

// FileInfo describes one topic source discovered under the content root.
type FileInfo struct {
	Path     string // Absolute path on disk.
	RelPath  string // Slash-separated path relative to the content root.
	PagePath string // Output page path, e.g. "topics/array.html".
	Size     int64
}

// WalkerConfig controls the behaviour of the Walk function.
type WalkerConfig struct {
	RootDir string   // Content root.
	Include []string // Glob patterns; only matching files are included.
	Exclude []string // Glob patterns; matching files are excluded.
}

// Walk returns every Markdown source under config.RootDir that passes the
// include/exclude filters, sorted by RelPath. A missing root yields no files.
func Walk(config WalkerConfig) ([]FileInfo, error) {
	root, err := filepath.Abs(config.RootDir)
	if err != nil {
		return nil, fmt.Errorf("walker: resolve root: %w", err)
	}

	var files []FileInfo

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return filepath.SkipDir
			}
			// Skip entries we cannot read instead of aborting.
			return nil
		}

		if d.IsDir() {
			if path != root && shouldExcludeDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !strings.HasSuffix(d.Name(), SourceExt) {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		if !MatchesInclude(relPath, config.Include) {
			return nil
		}
		if MatchesExclude(relPath, config.Exclude) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}

		files = append(files, FileInfo{
			Path:     path,
			RelPath:  relPath,
			PagePath: PagePath(relPath),
			Size:     info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walker: traversal: %w", err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].RelPath < files[j].RelPath })
	return files, nil
}

// PagePath converts a source path to the page it is published as.
func PagePath(relPath string) string {
	return strings.TrimSuffix(filepath.ToSlash(relPath), SourceExt) + ".html"
}

// SourcePath is the inverse of PagePath.
func SourcePath(pagePath string) string {
	return strings.TrimSuffix(filepath.ToSlash(pagePath), ".html") + SourceExt
}
