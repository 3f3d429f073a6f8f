package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/macropower/pathstring/cmd/pathstring/commands"
)

const (
	cmdName = "pathstring"

	shortDesc = "Lexical path tooling."
	longDesc  = `Parse, normalize, resolve and relativize paths without touching a
filesystem.

Paths keep the exact text they were written with, so Windows and unix paths
can be manipulated on any host. The manifest commands read and write
build-output manifests whose paths stay valid when a build directory moves,
and the run command executes KCL programs with the pathstring plugin.
`
)

func main() {
	cmd := commands.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
