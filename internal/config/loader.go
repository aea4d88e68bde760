package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/706f6c6c7578/enigma/internal/enigma"
)

// Format names a description file format.
type Format string

const (
	FormatClassic Format = "classic"
	FormatYAML    Format = "yaml"
)

// FormatOf picks the format from the file extension.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatClassic
	}
}

// Load reads the description stored at path.
func Load(path string) (*Description, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, enigma.Wrapf(enigma.KindConfig, err, "could not open %s", path)
	}
	defer func() {
		_ = f.Close()
	}()

	d, err := LoadReader(f, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// LoadReader reads a description in the given format from r.
func LoadReader(r io.Reader, format Format) (*Description, error) {
	switch format {
	case FormatYAML:
		return decodeYAML(r)
	case FormatClassic:
		return ParseClassic(r)
	default:
		return nil, enigma.Errorf(enigma.KindConfig, "unknown configuration format %q", format)
	}
}

func decodeYAML(r io.Reader) (*Description, error) {
	var d Description
	dec := yaml.NewDecoder(r, yaml.DisallowUnknownField())
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, enigma.Errorf(enigma.KindConfig, "configuration file truncated")
		}
		return nil, enigma.Errorf(enigma.KindConfig, "decoding YAML configuration: %v", err)
	}
	if d.Alphabet == "" && d.Rotors == 0 && len(d.Wheels) == 0 {
		return nil, enigma.Errorf(enigma.KindConfig, "configuration file truncated")
	}
	return &d, nil
}

// Encode writes d to w as YAML.
func Encode(w io.Writer, d *Description) error {
	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("encoding configuration: %w", err)
	}
	_, err = w.Write(data)
	return err
}
