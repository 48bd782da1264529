package main

import (
	"fmt"
	"os"

	"github.com/boreq/guinea"
	"github.com/boreq/ircwire/cmd/ircwire/commands"
)

var globalOpt = []guinea.Option{
	guinea.Option{
		Name:        "help",
		Type:        guinea.Bool,
		Default:     false,
		Description: "Display help",
	},
}

func main() {
	cmd, cmdName, cmdArgs := guinea.FindCommand(&commands.MainCmd, os.Args)
	cmd.Options = append(cmd.Options, globalOpt...)
	e := cmd.Execute(cmdName, cmdArgs)
	if e != nil {
		fmt.Fprintln(os.Stderr, e)
		os.Exit(1)
	}
}
