package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	ferrors "github.com/zhubert/floatchat/internal/errors"
	"github.com/zhubert/floatchat/internal/logger"
)

// Format is a serialization format for configuration files.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatFromPath infers the format from a file extension. This is the only
// place file suffixes are inspected.
func FormatFromPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	default:
		return 0, false
	}
}

// Marshal encodes the configuration in the given format.
func Marshal(cfg InstanceConfig, format Format) ([]byte, error) {
	d := documentOf(cfg)
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported format %v", format)
	}
}

// Unmarshal decodes and validates a configuration. Shape problems (syntax,
// unknown fields, wrong types) are persistence errors; a well-formed document
// that breaks the class contract yields the usual config error.
func Unmarshal(data []byte, format Format) (InstanceConfig, error) {
	const op = ferrors.Op("config.Unmarshal")
	d, err := decode(data, format)
	if err != nil {
		return InstanceConfig{}, ferrors.E(op, ferrors.KindPersistence, fmt.Sprintf("decode %s", format), err)
	}
	return d.build()
}

func decode(data []byte, format Format) (document, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(data)
	case FormatYAML:
		var d document
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&d); err != nil {
			if errors.Is(err, io.EOF) {
				return document{}, fmt.Errorf("empty document")
			}
			return document{}, err
		}
		return d, nil
	default:
		return document{}, fmt.Errorf("unsupported format %v", format)
	}
}

// Save writes the configuration to path in the given format.
func Save(cfg InstanceConfig, path string, format Format) error {
	const op = ferrors.Op("config.Save")
	data, err := Marshal(cfg, format)
	if err != nil {
		return ferrors.PersistenceFailed(op, path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return ferrors.PersistenceFailed(op, path, err)
	}
	logger.WithComponent("config").Debug("Config saved", "path", path, "format", format.String(), "instance", cfg.instanceName)
	return nil
}

// Load reads and validates the configuration at path.
func Load(path string, format Format) (InstanceConfig, error) {
	const op = ferrors.Op("config.Load")
	data, err := os.ReadFile(path)
	if err != nil {
		return InstanceConfig{}, ferrors.PersistenceFailed(op, path, err)
	}
	d, err := decode(data, format)
	if err != nil {
		return InstanceConfig{}, ferrors.PersistenceFailed(op, path, err)
	}
	cfg, err := d.build()
	if err != nil {
		return InstanceConfig{}, err
	}
	logger.WithComponent("config").Debug("Config loaded", "path", path, "format", format.String(), "instance", cfg.instanceName)
	return cfg, nil
}

// SaveFile is Save with the format inferred from the extension.
func SaveFile(cfg InstanceConfig, path string) error {
	format, ok := FormatFromPath(path)
	if !ok {
		return ferrors.PersistenceFailed(ferrors.Op("config.SaveFile"), path, fmt.Errorf("unrecognized extension %q", filepath.Ext(path)))
	}
	return Save(cfg, path, format)
}

// LoadFile is Load with the format inferred from the extension.
func LoadFile(path string) (InstanceConfig, error) {
	format, ok := FormatFromPath(path)
	if !ok {
		return InstanceConfig{}, ferrors.PersistenceFailed(ferrors.Op("config.LoadFile"), path, fmt.Errorf("unrecognized extension %q", filepath.Ext(path)))
	}
	return Load(path, format)
}

// FromSource resolves a string source: a .json, .yaml or .yml path is loaded,
// anything else is taken as the instance name of a default configuration.
// Runs of whitespace in a name become single dashes, so "my bot" names the
// instance "my-bot"; a blank source gets a generated name.
func FromSource(src string) (InstanceConfig, error) {
	if _, ok := FormatFromPath(src); ok {
		return LoadFile(src)
	}
	return Build(Fields{InstanceName: strings.Join(strings.Fields(src), "-")})
}
