package main

import (
	"github.com/rastaman/jenkinsctl/pkg/structs"
)

const (
	docModify = `Replace the job's config with the given XML`
)

type optsModify struct {
	optsGeneral
	optsServer
	optsJob
	optsConfigXML
}

func (c *optsModify) Execute(args []string) error {
	svc, err := c.service(&c.optsGeneral)
	if err != nil {
		return err
	}

	cfg, err := c.configXML()
	if err != nil {
		return err
	}

	res, err := svc.Apply(structs.OpModify, c.Name, cfg, c.Params)
	if err != nil {
		return err
	}
	return emit(res)
}
