package workflow

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// LoadFromPath reads a workflow file (YAML or JSON) and returns the parsed Config.
// Format is detected by extension (.yaml/.yml → YAML, .json → JSON) or by content
// (first non-whitespace char).
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workflow: %w", err)
	}
	return Load(data, filepath.Ext(path))
}

// Load parses a workflow config from bytes. ext is the file extension
// (e.g. ".json", ".yaml") used as a format hint; empty = detect from content.
func Load(data []byte, ext string) (*Config, error) {
	ext = strings.ToLower(ext)
	if ext == ".yml" {
		ext = ".yaml"
	}
	if ext == "" {
		// Detect: JSON starts with {, anything else is YAML.
		if strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
			ext = ".json"
		} else {
			ext = ".yaml"
		}
	}

	var c Config
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parse workflow json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parse workflow yaml: %w", err)
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
