// Package site builds, watches and serves a directory of markdown documents
// containing custom blocks.
package site

import (
	"io/fs"
	"sort"

	"github.com/gobwas/glob"
)

type globs []glob.Glob

func compileGlobs(patterns []string) (globs, error) {
	out := make(globs, 0, len(patterns))

	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, err
		}

		out = append(out, g)
	}

	return out, nil
}

func (g globs) match(path string) bool {
	for _, one := range g {
		if one.Match(path) {
			return true
		}
	}

	return false
}

// Discover returns the sorted slash separated paths of the regular files in
// fsys matching any include pattern and no exclude pattern.
func Discover(fsys fs.FS, include, exclude []string) ([]string, error) {
	inc, err := compileGlobs(include)
	if err != nil {
		return nil, err
	}

	exc, err := compileGlobs(exclude)
	if err != nil {
		return nil, err
	}

	var paths []string

	err = fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.Type().IsRegular() {
			return nil
		}

		if inc.match(path) && !exc.match(path) {
			paths = append(paths, path)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)

	return paths, nil
}
