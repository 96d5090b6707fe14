// Package loader resolves configuration input sources into ordered line
// slices. A source is a filesystem path, a single multi-line string, or an
// already-split list of lines.
package loader

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// LoadError reports a config source that could not be loaded.
type LoadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("load config from %q: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("load config from %q: %s", e.Path, e.Reason)
}

func (e *LoadError) Unwrap() error { return e.Err }

// FromLines returns a copy of an already-split line list.
func FromLines(lines []string) []string {
	return append([]string(nil), lines...)
}

// FromString splits a multi-line config string into lines. Windows line
// endings are tolerated.
func FromString(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(s, "\n")
}

// FromPath reads a config file from fsys and splits it into lines.
// Missing paths, directories and unreadable files yield a *LoadError.
func FromPath(fsys afero.Fs, path string) ([]string, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		return nil, &LoadError{Path: path, Reason: "path does not exist", Err: err}
	}
	if !info.Mode().IsRegular() {
		return nil, &LoadError{Path: path, Reason: "not a regular file"}
	}
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, &LoadError{Path: path, Reason: "unreadable", Err: err}
	}
	return FromString(string(data)), nil
}

// Detect loads an input that is either a path or raw config content.
// Anything containing a newline is content; a single line naming an
// existing file is read from fsys; any other single line is treated as a
// one-line config.
func Detect(fsys afero.Fs, input string) ([]string, error) {
	if strings.ContainsAny(input, "\n\r") {
		return FromString(input), nil
	}
	if info, err := fsys.Stat(input); err == nil && info.Mode().IsRegular() {
		return FromPath(fsys, input)
	}
	return []string{input}, nil
}
