package main

import (
	"log"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/rastaman/jenkinsctl/internal/fakejenkins"
)

var CLI struct {
	Addr string `long:"addr" env:"ADDR" description:"Address to bind to" default:"localhost:8080"`

	RequireCrumb bool `long:"require-crumb" env:"REQUIRE_CRUMB" description:"Reject mutating requests without a valid crumb"`

	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

func main() {
	// This main runs an in-memory stand-in for a CI master so jenkinsctl
	// can be exercised locally without a real server. Jobs live only as
	// long as the process does.
	var parser = flags.NewParser(&CLI, flags.Default)
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

	s := fakejenkins.New(CLI.RequireCrumb, CLI.Debug)
	if err := s.ServeForever(CLI.Addr); err != nil {
		log.Fatalln(err)
	}
}
