package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Kind tells which grammar a file is parsed with.
type Kind uint8

const (
	KindModel Kind = iota + 1
	KindData
)

func (k Kind) String() string {
	if k == KindData {
		return "data"
	}
	return "model"
}

// KindOf maps an extension onto a grammar: .dzn is data, everything else a model.
// ok is false for extensions that directory walks skip.
func KindOf(path string) (kind Kind, ok bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mzn":
		return KindModel, true
	case ".dzn":
		return KindData, true
	}
	return KindModel, false
}

// CollectFiles expands directories into their .mzn and .dzn files (hidden
// directories are skipped) and keeps explicitly named files whatever their
// extension. The result is sorted and free of duplicates.
func CollectFiles(ctx context.Context, paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	add := func(path string) {
		path = filepath.Clean(path)
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("collect: %w", err)
		}
		if !info.IsDir() {
			add(p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if d.IsDir() {
				if path != p && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if _, ok := KindOf(path); ok {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("collect %s: %w", p, err)
		}
	}

	slices.Sort(files)
	return files, nil
}
