package main

import (
	"io"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/zackehh/covsummary/cmd/covsummary"
)

var exit = os.Exit

func main() {
	exit(runMain(os.Args[1:], os.Stdout, os.Stderr))
}

// runMain returns the process exit code: 0 when the coverage line was
// printed, 1 otherwise. Diagnostics have already been written to stderr.
func runMain(args []string, stdout io.Writer, stderr io.Writer) int {
	cmd := covsummary.Command()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}
