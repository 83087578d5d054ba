package main

import (
	"github.com/rastaman/jenkinsctl/pkg/structs"
)

const (
	docDisable = `Stop builds of the job if it is currently enabled`
)

type optsDisable struct {
	optsGeneral
	optsServer
	optsJob
}

func (c *optsDisable) Execute(args []string) error {
	svc, err := c.service(&c.optsGeneral)
	if err != nil {
		return err
	}

	res, err := svc.Apply(structs.OpDisable, c.Name, "", nil)
	if err != nil {
		return err
	}
	return emit(res)
}
