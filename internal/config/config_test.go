package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jenkinsctl.yaml")
	err := os.WriteFile(path, []byte(`
url: https://ci.example.com
username: admin
password: hunter2
timeout: 10
skip_verify: true
`), 0600)
	assert.Nil(t, err)

	cfg, err := Load(path)

	assert.Nil(t, err)
	assert.Equal(t, &File{
		URL:        "https://ci.example.com",
		Username:   "admin",
		Password:   "hunter2",
		Timeout:    10,
		SkipVerify: true,
	}, cfg)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.NotNil(t, err)
}

func TestLoadBadYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jenkinsctl.yaml")
	err := os.WriteFile(path, []byte(`url: [`), 0600)
	assert.Nil(t, err)

	_, err = Load(path)
	assert.NotNil(t, err)
}
