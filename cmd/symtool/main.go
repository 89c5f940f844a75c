// Command symtool inspects symmetry groups and applies them to
// coefficient grids.
//
// Usage:
//
//	symtool groups [-color]
//	symtool expand -group p4m -n 1 -m 2 [-r 1 -theta 0]
//	symtool grid [-option p1 -folds 5 -size 7]
//	symtool edit -config session.toml [-uniforms 64]
//	symtool plot -config session.yaml -out orbit.png
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

var errUsage = errors.New("usage: symtool groups|expand|grid|edit|plot [flags]")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run dispatches one subcommand; stdout receives results, stderr logs.
func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	switch args[0] {
	case "groups":
		return runGroups(args[1:], stdout)
	case "expand":
		return runExpand(args[1:], stdout)
	case "grid":
		return runGrid(args[1:], stdout, logger)
	case "edit":
		return runEdit(args[1:], stdout, stderr)
	case "plot":
		return runPlot(args[1:], stdout, stderr)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}
