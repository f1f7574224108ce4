package discovery

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	log "github.com/sirupsen/logrus"
)

// ConfigDirName is never searched for source files.
const ConfigDirName = ".classmap"

// compiledPattern holds a pattern and its compiled glob. Patterns starting
// with "**/" also keep the glob without that prefix, so "**/*.cs" matches
// "Foo.cs" and "**/bin/**" matches "bin/Foo.cs".
type compiledPattern struct {
	pattern   string
	glob      glob.Glob
	rootLevel glob.Glob
}

// FileDiscovery enumerates source files under a root directory.
type FileDiscovery struct {
	rootDir         string
	includePatterns []compiledPattern
	ignorePatterns  []compiledPattern
}

// New creates a file discovery instance for rootDir.
func New(rootDir string, include, ignore []string) (*FileDiscovery, error) {
	fd := &FileDiscovery{rootDir: rootDir}

	var err error
	if fd.includePatterns, err = compilePatterns(include); err != nil {
		return nil, err
	}
	if fd.ignorePatterns, err = compilePatterns(ignore); err != nil {
		return nil, err
	}
	return fd, nil
}

func compilePatterns(patterns []string) ([]compiledPattern, error) {
	compiled := make([]compiledPattern, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		cp := compiledPattern{pattern: pattern, glob: g}
		if simplified, ok := strings.CutPrefix(pattern, "**/"); ok {
			if cp.rootLevel, err = glob.Compile(simplified, '/'); err != nil {
				return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
			}
		}
		compiled = append(compiled, cp)
	}
	return compiled, nil
}

// Discover walks the tree in lexical order and returns every file matching
// an include pattern and no ignore pattern.
func (fd *FileDiscovery) Discover() ([]string, error) {
	files := []string{}

	err := filepath.WalkDir(fd.rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == fd.rootDir {
				return err
			}
			log.WithFields(log.Fields{"path": path, "error": err}).Warn("Skipping unreadable path")
			return nil
		}

		relPath, err := filepath.Rel(fd.rootDir, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if relPath != "." && fd.shouldIgnore(relPath) {
				return filepath.SkipDir
			}
			return nil
		}

		if fd.shouldIgnore(relPath) {
			return nil
		}
		if fd.matchesAny(relPath, fd.includePatterns) {
			files = append(files, path)
		}
		return nil
	})

	return files, err
}

// Matches reports whether path, absolute or relative to the root, would be
// returned by Discover.
func (fd *FileDiscovery) Matches(path string) bool {
	relPath := path
	if filepath.IsAbs(path) {
		var err error
		if relPath, err = filepath.Rel(fd.rootDir, path); err != nil {
			return false
		}
	}
	relPath = filepath.ToSlash(relPath)
	if strings.HasPrefix(relPath, "../") {
		return false
	}
	return !fd.shouldIgnore(relPath) && fd.matchesAny(relPath, fd.includePatterns)
}

// shouldIgnore checks a path against the ignore patterns. A directory
// "bin" is also tested as "bin/**" so directory patterns prune the walk.
func (fd *FileDiscovery) shouldIgnore(relPath string) bool {
	if relPath == ConfigDirName || strings.HasPrefix(relPath, ConfigDirName+"/") {
		return true
	}
	if fd.matchesAny(relPath, fd.ignorePatterns) {
		return true
	}
	return fd.matchesAny(relPath+"/**", fd.ignorePatterns)
}

func (fd *FileDiscovery) matchesAny(path string, patterns []compiledPattern) bool {
	for _, cp := range patterns {
		if cp.glob.Match(path) {
			return true
		}
		if cp.rootLevel != nil && cp.rootLevel.Match(path) {
			return true
		}
	}
	return false
}
