package main

import (
	"fmt"

	"github.com/rastaman/jenkinsctl/pkg/jenkins"
)

const (
	docGet = `Print the job's current config XML`
)

type optsGet struct {
	optsGeneral
	optsServer
	optsJob
}

func (c *optsGet) Execute(args []string) error {
	opts, err := c.options(&c.optsGeneral)
	if err != nil {
		return err
	}
	client, err := jenkins.New(opts)
	if err != nil {
		return err
	}

	cfg, err := client.JobConfig(c.Name)
	if err != nil {
		return err
	}
	fmt.Println(cfg)
	return nil
}
