package main

import (
	"github.com/rastaman/jenkinsctl/pkg/structs"
)

const (
	docDelete = `Delete the job if it exists`
)

type optsDelete struct {
	optsGeneral
	optsServer
	optsJob
}

func (c *optsDelete) Execute(args []string) error {
	svc, err := c.service(&c.optsGeneral)
	if err != nil {
		return err
	}

	res, err := svc.Apply(structs.OpDelete, c.Name, "", nil)
	if err != nil {
		return err
	}
	return emit(res)
}
