package main

import (
	"github.com/rastaman/jenkinsctl/pkg/structs"
)

const (
	docEnable = `Allow builds of the job if it is currently disabled`
)

type optsEnable struct {
	optsGeneral
	optsServer
	optsJob
}

func (c *optsEnable) Execute(args []string) error {
	svc, err := c.service(&c.optsGeneral)
	if err != nil {
		return err
	}

	res, err := svc.Apply(structs.OpEnable, c.Name, "", nil)
	if err != nil {
		return err
	}
	return emit(res)
}
