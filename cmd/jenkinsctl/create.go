package main

import (
	"github.com/rastaman/jenkinsctl/pkg/structs"
)

const (
	docCreate = `Create the job if it does not already exist`
)

type optsCreate struct {
	optsGeneral
	optsServer
	optsJob
	optsConfigXML
}

func (c *optsCreate) Execute(args []string) error {
	svc, err := c.service(&c.optsGeneral)
	if err != nil {
		return err
	}

	cfg, err := c.configXML()
	if err != nil {
		return err
	}

	res, err := svc.Apply(structs.OpCreate, c.Name, cfg, c.Params)
	if err != nil {
		return err
	}
	return emit(res)
}
