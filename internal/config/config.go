package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dusk-indust/sortdemo/internal/sorting"
	"github.com/dusk-indust/sortdemo/internal/validate"
)

// FileNames are the project config files looked up, in order.
var FileNames = []string{"sortdemo.yml", "sortdemo.yaml"}

// ProjectConfig holds project-level settings loaded from sortdemo.yml.
type ProjectConfig struct {
	Algorithm string `yaml:"algorithm,omitempty"`
	Order     string `yaml:"order,omitempty"`
	Format    string `yaml:"format,omitempty"`
	LogLevel  string `yaml:"logLevel,omitempty"`
	LogFormat string `yaml:"logFormat,omitempty"`
	Seed      uint64 `yaml:"seed,omitempty"`

	// Path is the file the config was read from. Empty when no file exists.
	Path string `yaml:"-"`
}

// Load attempts to read sortdemo.yml or sortdemo.yaml from the given
// directory. Returns a zero-value config (not an error) if no config file
// exists.
func Load(dir string) (*ProjectConfig, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
		var cfg ProjectConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
		cfg.Path = path
		return &cfg, nil
	}
	return &ProjectConfig{}, nil
}

// Defaults converts the algorithm and order settings into validator
// defaults. Unset fields keep the standard defaults; set fields must use the
// same selectors as the command line.
func (c *ProjectConfig) Defaults() (validate.Defaults, error) {
	d := validate.StandardDefaults()
	if c.Algorithm != "" {
		alg, err := sorting.ParseAlgorithm(c.Algorithm)
		if err != nil {
			return d, fmt.Errorf("config: algorithm: %w", err)
		}
		d.Algorithm = alg
	}
	if c.Order != "" {
		order, err := validate.ParseOrder(c.Order)
		if err != nil {
			return d, fmt.Errorf("config: order: %w", err)
		}
		d.Order = order
	}
	return d, nil
}
