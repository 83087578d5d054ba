package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	defaultFileName = ".jenkinsctl.yaml"
)

// File is the on-disk YAML config for jenkinsctl, supplying connection
// defaults. Flags and env vars override anything set here.
type File struct {
	URL      string `yaml:"url"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`

	// Timeout per HTTP round trip, in seconds.
	Timeout int `yaml:"timeout"`

	CACert     string `yaml:"cacert"`
	TLSCert    string `yaml:"cert"`
	TLSKey     string `yaml:"key"`
	SkipVerify bool   `yaml:"skip_verify"`
}

// Load reads a YAML config file. With no path given we look for
// ~/.jenkinsctl.yaml; a file that simply isn't there is not an error.
func Load(path string) (*File, error) {
	defaulted := path == ""
	if defaulted {
		home, err := os.UserHomeDir()
		if err != nil {
			return &File{}, nil
		}
		path = filepath.Join(home, defaultFileName)
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && defaulted {
		return &File{}, nil
	}
	if err != nil {
		return nil, err
	}

	cfg := &File{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
