package main

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/rolo-tools/cli/internal/app"
	"github.com/rolo-tools/cli/internal/paths"
)

var version = "dev"

func main() {
	noColor := false
	for _, arg := range os.Args[1:] {
		switch {
		case arg == "--version" || arg == "-v":
			fmt.Println("rolo " + version)
			return
		case arg == "--no-color":
			noColor = true
		case strings.HasPrefix(arg, "--data-dir="):
			paths.SetDataDir(strings.TrimPrefix(arg, "--data-dir="))
		case arg == "--help" || arg == "-h":
			printUsage()
			return
		default:
			fmt.Fprintf(os.Stderr, "unknown flag: %s\n", arg)
			os.Exit(1)
		}
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	enableColor := term.IsTerminal(int(os.Stdout.Fd())) && !noColor

	a, err := app.New(app.Options{
		StyleEnabled: enableColor,
		Interactive:  interactive,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	defer func() { _ = a.Close() }()

	if err := a.Shell.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`rolo - contacts and notes in your terminal

Usage: rolo [flags]

Flags:
  --data-dir=<dir>  Store data under <dir> instead of the default
  --no-color        Disable colored output
  --version, -v     Print the version and exit
  --help, -h        Show this help

Run 'help' inside the session to list commands.`)
}
