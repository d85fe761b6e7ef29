package runner

import (
	"io/fs"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/sirkon/convlint/internal/engine"
)

// junkDirs are never descended into.
var junkDirs = map[string]bool{
	".git":         true,
	".hg":          true,
	".svn":         true,
	"node_modules": true,
	"vendor":       true,
	"__pycache__":  true,
}

// collectFiles expands the target paths into the flat list of files to scan.
// Unreachable targets do not stop the walk; they come back as io-error
// findings alongside the reachable files.
func collectFiles(targets, exclude []string) (files []string, failures []engine.Finding) {
	seen := make(map[string]bool)

	add := func(path string) {
		if seen[path] {
			return
		}
		if excluded(path, exclude) {
			return
		}
		seen[path] = true
		files = append(files, path)
	}

	for _, target := range targets {
		err := filepath.WalkDir(target, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				failures = append(failures, engine.IOFailure(path, err))
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				if path != target && junkDirs[d.Name()] {
					return fs.SkipDir
				}
				return nil
			}

			if !d.Type().IsRegular() {
				return nil
			}

			add(path)

			return nil
		})
		if err != nil {
			// WalkDir only errors when the callback does, and ours never does.
			failures = append(failures, engine.IOFailure(target, err))
		}
	}

	return files, failures
}

func excluded(path string, exclude []string) bool {
	slashPath := filepath.ToSlash(path)
	for _, pattern := range exclude {
		if ok, _ := doublestar.Match(pattern, slashPath); ok {
			return true
		}
	}

	return false
}
