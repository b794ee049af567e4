// Package ruleset loads the immutable reference tables (classes, backgrounds,
// skills, foci, psychic disciplines, spell traditions, ability tracks) that
// drive character generation.
package ruleset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"
)

// ContentError reports a missing or malformed reference-data source. It is
// fatal to Load and is surfaced before any generation is attempted.
type ContentError struct {
	Path string
	Err  error
}

func (e *ContentError) Error() string {
	return fmt.Sprintf("ruleset: content %s: %v", e.Path, e.Err)
}

func (e *ContentError) Unwrap() error { return e.Err }

func contentErr(path string, err error) error {
	return &ContentError{Path: path, Err: err}
}

// foldKey normalises a lookup name. A fresh Caser is built per call because
// Casers are not safe for concurrent use.
func foldKey(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// yamlFiles returns the .yaml/.yml files in dir in lexical order.
func yamlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, contentErr(dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// decodeDir unmarshals every YAML file in dir into a fresh F and hands it to
// collect together with its path.
func decodeDir[F any](dir string, collect func(path string, f *F) error) error {
	files, err := yamlFiles(dir)
	if err != nil {
		return err
	}
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return contentErr(path, err)
		}
		var f F
		if err := yaml.Unmarshal(data, &f); err != nil {
			return contentErr(path, fmt.Errorf("parsing: %w", err))
		}
		if err := collect(path, &f); err != nil {
			return contentErr(path, err)
		}
	}
	return nil
}

// validationErr folds validation problems into a single error, or nil.
func validationErr(what string, errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%s validation failed: %v", what, errs)
}
