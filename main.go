package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/tejaswini0604/tier-autoscaler/command"
	"github.com/tejaswini0604/tier-autoscaler/version"
)

func main() {
	logger := hclog.Default()

	c := cli.NewCLI("tier-autoscaler", version.GetHumanVersion())
	c.Args = os.Args[1:]
	c.Commands = map[string]cli.CommandFactory{
		"decide": func() (cli.Command, error) {
			return &command.DecideCommand{Logger: logger}, nil
		},
		"version": func() (cli.Command, error) {
			return &command.VersionCommand{Version: version.GetHumanVersion()}, nil
		},
	}

	exitCode, err := c.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error executing CLI: %v\n", err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}
