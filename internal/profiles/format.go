package profiles

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is an export file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" and "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q (want json or yaml)", s)
}

// FormatFromPath guesses the format from a file extension, JSON by default.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// EncodeAs writes list in the given format.
func EncodeAs(w io.Writer, list []Profile, f Format) error {
	if f != FormatYAML {
		return Encode(w, list)
	}
	if list == nil {
		list = []Profile{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(list); err != nil {
		return fmt.Errorf("encode profiles: %w", err)
	}
	return enc.Close()
}

// DecodeAs reads profiles in the given format, with the same checks as Decode.
func DecodeAs(r io.Reader, f Format) ([]Profile, error) {
	if f != FormatYAML {
		return Decode(r)
	}
	var list []Profile
	if err := yaml.NewDecoder(r).Decode(&list); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode profiles: %w", err)
	}
	for i := range list {
		list[i].ID = 0
		if strings.TrimSpace(list[i].Name) == "" {
			return nil, fmt.Errorf("profile %d: %w", i+1, ErrEmptyName)
		}
	}
	return list, nil
}
