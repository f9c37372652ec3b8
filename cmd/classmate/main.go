package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"classmate/internal/app"
	"classmate/internal/config"
)

const usage = "usage: classmate <filebase>"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one roster run and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	showVersion := fs.Bool("version", false, "print version and exit")
	fs.Usage = func() { fmt.Fprintln(stdout, usage) }
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", config.AppName, config.AppVersion)
		return 0
	}

	// Extra arguments are ignored
	if fs.NArg() < 1 {
		fmt.Fprintln(stdout, usage)
		return 1
	}
	base := fs.Arg(0)

	application, err := app.NewApplication(stdout)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", config.AppName, err)
		return 1
	}

	ctx := context.Background()
	_, runErr := application.Run(ctx, base)

	if err := application.Shutdown(ctx); err != nil {
		fmt.Fprintf(stderr, "%s: shutdown: %v\n", config.AppName, err)
	}

	if runErr != nil {
		fmt.Fprintf(stderr, "%s: %v\n", config.AppName, runErr)
		return 1
	}
	return 0
}
