package workflow

import "fmt"

// DefaultFilename is the conventional workflow configuration file name.
const DefaultFilename = "workflow.yaml"

// Delphes holds the configuration of the detector-simulation reading stage.
type Delphes struct {
	// InputDirPrefix is the root directory the Delphes-reading stage reads
	// its process directories from.
	InputDirPrefix string `json:"input_dir_prefix" yaml:"input_dir_prefix"`
}

// Config is the pipeline workflow configuration (workflow.yaml).
// Only the keys the checker consumes are mapped; the file may carry more.
type Config struct {
	Delphes Delphes `json:"delphes" yaml:"delphes"`
}

// Validate checks that the keys the checker depends on are present.
func (c *Config) Validate() error {
	if c.Delphes.InputDirPrefix == "" {
		return fmt.Errorf("workflow: missing delphes.input_dir_prefix")
	}
	return nil
}
