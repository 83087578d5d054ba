package main

import (
	"log"
	"os"

	"github.com/jessevdk/go-flags"
)

func main() {
	// jenkinsctl reconciles one remote CI job to a declared desired state.
	// Each subcommand is a single guarded mutation; rerunning a command
	// whose end state already holds changes nothing and says so.
	parser := flags.NewParser(nil, flags.Default)

	commands := []struct {
		name string
		doc  string
		cmd  flags.Commander
	}{
		{"create", docCreate, &optsCreate{}},
		{"delete", docDelete, &optsDelete{}},
		{"enable", docEnable, &optsEnable{}},
		{"disable", docDisable, &optsDisable{}},
		{"modify", docModify, &optsModify{}},
		{"get", docGet, &optsGet{}},
	}
	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.doc, c.doc, c.cmd); err != nil {
			log.Fatalln(err)
		}
	}

	if _, err := parser.Parse(); err != nil {
		switch flagsErr := err.(type) {
		case flags.ErrorType:
			if flagsErr == flags.ErrHelp {
				os.Exit(0)
			}
			os.Exit(1)
		default:
			os.Exit(1)
		}
	}
}
