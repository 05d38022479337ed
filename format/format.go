package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format selects what an encoder writes: Snow text, or the node tree as
// JSON or YAML.  The zero Format is Snow.
type Format int

const (
	SnowFormat Format = iota
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

var names = [...]string{
	SnowFormat: "snow",
	JSONFormat: "json",
	YAMLFormat: "yaml",
}

// ParseFormat accepts a format name or its first letter.
func ParseFormat(v string) (Format, error) {
	for i, n := range names {
		if v == n || v == n[:1] {
			return Format(i), nil
		}
	}
	return SnowFormat, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) valid() bool {
	return f >= 0 && int(f) < len(names)
}

func (f Format) String() string {
	if !f.valid() {
		return fmt.Sprintf("<format %d>", int(f))
	}
	return names[f]
}

func (f Format) MarshalText() ([]byte, error) {
	if !f.valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
	return []byte(names[f]), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// Suffix is the file extension written for f, with the dot.
func (f Format) Suffix() string {
	if !f.valid() {
		return ""
	}
	return "." + names[f]
}

// FromPath picks the format an output file name asks for by its
// extension.  ".yml" is YAML.  It reports false for any other extension.
func FromPath(path string) (Format, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yml" {
		return YAMLFormat, true
	}
	for i := range names {
		if Format(i).Suffix() == ext {
			return Format(i), true
		}
	}
	return SnowFormat, false
}
