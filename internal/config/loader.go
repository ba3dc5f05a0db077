package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file format.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatOf returns the format for a path by extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
}

// LoadFile reads and parses a configuration file. A missing file is not
// an error and yields nil.
func LoadFile(path string) (map[string]any, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(path, format, data)
}

// Parse parses data in format into a map. source names the data in errors.
func Parse(source string, format Format, data []byte) (map[string]any, error) {
	var (
		config map[string]any
		err    error
	)
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &config)
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		err = dec.Decode(&config)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return nil, fmt.Errorf("%s: %w", source, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, &ParseError{Path: source, Message: err.Error(), Err: err}
	}
	if config == nil {
		config = make(map[string]any)
	}
	return config, nil
}
