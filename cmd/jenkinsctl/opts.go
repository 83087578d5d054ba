package main

import (
	"encoding/json"
	"os"
	"time"

	"github.com/rastaman/jenkinsctl/internal/config"
	"github.com/rastaman/jenkinsctl/internal/utils"
	"github.com/rastaman/jenkinsctl/pkg/jenkins"
	"github.com/rastaman/jenkinsctl/pkg/reconcile"
	"github.com/rastaman/jenkinsctl/pkg/structs"
)

type optsGeneral struct {
	Config string `long:"config" env:"JENKINSCTL_CONFIG" description:"Path to YAML config file (defaults to ~/.jenkinsctl.yaml)"`

	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

type optsServer struct {
	URL      string `long:"url" env:"JENKINS_URL" description:"Base URL of the server"`
	Username string `long:"user" env:"JENKINS_USER" description:"Username for basic auth"`
	Password string `long:"password" env:"JENKINS_PASSWORD" description:"Password or API token for basic auth"`

	Timeout int `long:"timeout" env:"JENKINS_TIMEOUT" description:"HTTP timeout in seconds"`

	TLSCaCert  string `long:"cacert" env:"JENKINS_CACERT" description:"Path to CA certificate"`
	TLSCert    string `long:"cert" env:"JENKINS_CERT" description:"Path to client TLS certificate"`
	TLSKey     string `long:"key" env:"JENKINS_KEY" description:"Path to client TLS key"`
	SkipVerify bool   `long:"insecure-skip-verify" env:"JENKINS_SKIP_VERIFY" description:"Skip TLS certificate verification"`
}

type optsJob struct {
	Name string `long:"name" short:"n" env:"JENKINS_JOB" required:"true" description:"Job name"`
}

type optsConfigXML struct {
	ConfigXML  string            `long:"config-xml" description:"Job config XML given inline"`
	ConfigFile string            `long:"config-file" description:"Path to a job config XML file"`
	Params     map[string]string `long:"param" short:"p" description:"Config template substitution values (key:value)"`
}

// options merges the config file (if any) under the flag / env values and
// builds client options from the result.
func (c *optsServer) options(gen *optsGeneral) (*jenkins.Options, error) {
	file, err := config.Load(gen.Config)
	if err != nil {
		return nil, err
	}

	if c.URL == "" {
		c.URL = file.URL
	}
	if c.Username == "" {
		c.Username = file.Username
	}
	if c.Password == "" {
		c.Password = file.Password
	}
	if c.Timeout == 0 {
		c.Timeout = file.Timeout
	}
	if c.TLSCaCert == "" {
		c.TLSCaCert = file.CACert
	}
	if c.TLSCert == "" {
		c.TLSCert = file.TLSCert
	}
	if c.TLSKey == "" {
		c.TLSKey = file.TLSKey
	}

	tlsCfg, err := utils.TLSConfig(c.TLSCaCert, c.TLSCert, c.TLSKey, c.SkipVerify || file.SkipVerify)
	if err != nil {
		return nil, err
	}

	return &jenkins.Options{
		URL:       c.URL,
		Username:  c.Username,
		Password:  c.Password,
		Timeout:   time.Duration(c.Timeout) * time.Second,
		TLSConfig: tlsCfg,
		Debug:     gen.Debug,
	}, nil
}

// service builds a reconciler over a fresh client.
// This is where we fail fast if the client cannot be constructed at all.
func (c *optsServer) service(gen *optsGeneral) (*reconcile.Service, error) {
	opts, err := c.options(gen)
	if err != nil {
		return nil, err
	}
	return reconcile.New(opts)
}

// configXML resolves the config content: inline flag wins, then file.
func (c *optsConfigXML) configXML() (string, error) {
	if c.ConfigXML != "" {
		return c.ConfigXML, nil
	}
	if c.ConfigFile == "" {
		return "", nil
	}
	data, err := os.ReadFile(c.ConfigFile)
	return string(data), err
}

// emit writes the operation result for the invoking automation to consume.
func emit(res *structs.Result) error {
	return json.NewEncoder(os.Stdout).Encode(res)
}
