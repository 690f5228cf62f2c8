package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/yaklabco/gofluent/pkg/langdetect"
)

// Discover finds Fluent files matching opts. It returns a sorted,
// de-duplicated list of absolute paths.
//
// Files named explicitly in opts.Paths are only filtered by extension and
// ExcludeGlobs. Directories are walked recursively, skipping hidden
// entries and, when SkipVendor is set, vendored directories.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	w := walker{
		ctx:        ctx,
		workDir:    workDir,
		extensions: opts.effectiveExtensions(),
		opts:       opts,
		seen:       make(map[string]struct{}),
	}

	for _, inputPath := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if info.IsDir() {
			if err := w.walk(absPath); err != nil {
				return nil, err
			}
			continue
		}

		if w.matchesFile(absPath) {
			w.add(absPath)
		}
	}

	slices.Sort(w.files)
	return w.files, nil
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

type walker struct {
	ctx        context.Context
	workDir    string
	extensions []string
	opts       Options
	seen       map[string]struct{}
	files      []string
}

func (w *walker) add(path string) {
	if _, ok := w.seen[path]; ok {
		return
	}
	w.seen[path] = struct{}{}
	w.files = append(w.files, path)
}

func (w *walker) rel(path string) string {
	rel, err := filepath.Rel(w.workDir, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

func (w *walker) walk(root string) error {
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		if entry.IsDir() {
			if path == root {
				return nil
			}
			if w.skipDir(path, entry.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			return w.symlink(path)
		}

		if w.matchesFile(path) {
			w.add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk directory %s: %w", root, err)
	}
	return nil
}

func (w *walker) skipDir(path, name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	rel := w.rel(path)
	if w.opts.SkipVendor && langdetect.IsVendored(rel+"/") {
		return true
	}
	return matchesAny(rel, w.opts.ExcludeGlobs)
}

// symlink handles a symlink found during a walk. Broken links and links to
// unreadable targets are skipped silently.
func (w *walker) symlink(path string) error {
	realPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil //nolint:nilerr // Broken symlinks are skipped.
	}
	info, err := os.Stat(realPath)
	if err != nil {
		return nil //nolint:nilerr // Inaccessible targets are skipped.
	}

	if !info.IsDir() {
		if w.matchesFile(path) {
			w.add(path)
		}
		return nil
	}

	if !w.opts.FollowSymlinks || w.skipDir(path, filepath.Base(path)) {
		return nil
	}
	// Walk the target, not the link, so WalkDir's Lstat on root does not
	// stop at the link itself.
	return w.walk(realPath)
}

func (w *walker) matchesFile(path string) bool {
	if !hasExtension(path, w.extensions) {
		return false
	}
	return !matchesAny(w.rel(path), w.opts.ExcludeGlobs)
}

func hasExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

func matchesAny(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchGlob(relPath, pattern) {
			return true
		}
	}
	return false
}

// matchGlob matches a slash-separated relative path against pattern.
// A pattern without a slash also matches the base name, so "*.ftl"
// matches at any depth. "**" matches zero or more whole segments.
func matchGlob(relPath, pattern string) bool {
	pattern = strings.TrimSuffix(filepath.ToSlash(pattern), "/")
	if pattern == "" {
		return false
	}

	if !strings.Contains(pattern, "/") && !strings.Contains(pattern, "**") {
		matched, err := path.Match(pattern, path.Base(relPath))
		return err == nil && matched
	}

	return matchSegments(strings.Split(relPath, "/"), strings.Split(pattern, "/"))
}

func matchSegments(parts, pattern []string) bool {
	for len(pattern) > 0 {
		if pattern[0] == "**" {
			rest := pattern[1:]
			if len(rest) == 0 {
				return true
			}
			for i := range len(parts) + 1 {
				if matchSegments(parts[i:], rest) {
					return true
				}
			}
			return false
		}

		if len(parts) == 0 {
			return false
		}
		matched, err := path.Match(pattern[0], parts[0])
		if err != nil || !matched {
			return false
		}
		parts = parts[1:]
		pattern = pattern[1:]
	}
	return len(parts) == 0
}
