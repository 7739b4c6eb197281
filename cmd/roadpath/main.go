package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/blackroad/roadpath/cmd/roadpath/commands"
)

const (
	cmdName = "roadpath"

	shortDesc = "The RoadPath Command Line Interface (CLI)."
	longDesc  = `The RoadPath Command Line Interface (CLI).

RoadPath provides path manipulation, parsing, normalization, and resolution
utilities: decompose paths into their components, normalize and resolve them
against the filesystem, compute relative and common paths, expand home
directories and environment variables, and match files with glob patterns.
`
)

func main() {
	cmd := commands.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
